package opendart

import (
	"slices"
	"testing"
)

func TestValidateSearchRequest(t *testing.T) {
	t.Run("bad corp_code", func(t *testing.T) {
		if _, err := NewSearchRequestBuilder().SetCorpCode("126380").Build(); err == nil {
			t.Errorf("Expected error, got nil")
		}
	})
	t.Run("bad last_reprt_at", func(t *testing.T) {
		if _, err := NewSearchRequestBuilder().SetLastReportAt("x").Build(); err == nil {
			t.Errorf("Expected error, got nil")
		}
	})
	t.Run("bad corp_cls", func(t *testing.T) {
		if _, err := NewSearchRequestBuilder().SetCorpClass("Q").Build(); err == nil {
			t.Errorf("Expected error, got nil")
		}
	})
	t.Run("bad sort", func(t *testing.T) {
		if _, err := NewSearchRequestBuilder().SetSort("name", "").Build(); err == nil {
			t.Errorf("Expected error, got nil")
		}
	})
	t.Run("bad sort_mth", func(t *testing.T) {
		if _, err := NewSearchRequestBuilder().SetSort("", "up").Build(); err == nil {
			t.Errorf("Expected error, got nil")
		}
	})
	t.Run("bad pblntf_ty", func(t *testing.T) {
		if _, err := NewSearchRequestBuilder().SetDisclosureType("A", "Z").Build(); err == nil {
			t.Errorf("Expected error, got nil")
		}
	})
	t.Run("bad pblntf_detail_ty", func(t *testing.T) {
		if _, err := NewSearchRequestBuilder().SetDisclosureDetailType("A01").Build(); err == nil {
			t.Errorf("Expected error, got nil")
		}
	})
	t.Run("bad date", func(t *testing.T) {
		if _, err := NewSearchRequestBuilder().SetDateRange("2021-01-01", "").Build(); err == nil {
			t.Errorf("Expected error, got nil")
		}
	})
	t.Run("reversed dates", func(t *testing.T) {
		if _, err := NewSearchRequestBuilder().SetDateRange("20210201", "20210101").Build(); err == nil {
			t.Errorf("Expected error, got nil")
		}
	})
	t.Run("page_count too large", func(t *testing.T) {
		if _, err := NewSearchRequestBuilder().SetPage(1, 101).Build(); err == nil {
			t.Errorf("Expected error, got nil")
		}
	})
	t.Run("negative page_no", func(t *testing.T) {
		if _, err := NewSearchRequestBuilder().SetPage(-1, 10).Build(); err == nil {
			t.Errorf("Expected error, got nil")
		}
	})
	t.Run("zero page_no", func(t *testing.T) {
		if _, err := NewSearchRequestBuilder().SetPageNo(0).Build(); err == nil {
			t.Errorf("Expected error, got nil")
		}
	})
	t.Run("zero page_count", func(t *testing.T) {
		if _, err := NewSearchRequestBuilder().SetPageCount(0).Build(); err == nil {
			t.Errorf("Expected error, got nil")
		}
	})
}

func TestSuccessfulSearchRequestBuild(t *testing.T) {
	t.Run("valid 1", func(t *testing.T) {
		req, err := NewSearchRequestBuilder().
			SetCorpCode("00126380").
			SetDateRange("20210101", "20210131").
			SetLastReportAt("y").
			SetDisclosureType("a", "b").
			SetCorpClass("Y").
			SetSort("crp", "asc").
			SetPage(2, 100).
			Build()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		// Build checks but does not normalize; that happens when sending.
		if got := values(req.DisclosureType); !slices.Equal(got, []string{"a", "b"}) {
			t.Errorf("Expected [a b], got %v", got)
		}
		if req.LastReportAt != "y" {
			t.Errorf("Expected y, got %s", req.LastReportAt)
		}
		if req.PageNo.MustGet() != 2 || req.PageCount.MustGet() != 100 {
			t.Errorf("Expected page 2 of 100, got %v %v", req.PageNo, req.PageCount)
		}
	})
	t.Run("valid 2", func(t *testing.T) {
		req, err := NewSearchRequestBuilder().
			SetDateRange("", "20210131").
			SetDisclosureDetailType("a001").
			Build()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !req.DisclosureDetailType.MustGet().IsLeft() {
			t.Errorf("Expected a single code")
		}
		if req.PageNo.IsPresent() || req.PageCount.IsPresent() {
			t.Errorf("Expected pages to stay unset")
		}
	})
	t.Run("empty", func(t *testing.T) {
		req, err := NewSearchRequestBuilder().SetDisclosureType().Build()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if req.DisclosureType.IsPresent() {
			t.Errorf("Expected pblntf_ty to be absent")
		}
	})
}

func TestInterval(t *testing.T) {
	if err := (interval[int]{1, 2}).validate(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if err := (interval[int]{0, 2}).validate(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if err := (interval[string]{"b", "a"}).validate(); err == nil {
		t.Errorf("Expected error, got nil")
	}
}
