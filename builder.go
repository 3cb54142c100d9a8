package opendart

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/constraints"
	"k8s.io/apimachinery/pkg/util/sets"
)

const dateLayout = "20060102"

var (
	lastReportAtSet   = sets.New("Y", "N")
	corpClassSet      = sets.New("Y", "K", "N", "E")
	sortSet           = sets.New("date", "crp", "rpt")
	sortOrderSet      = sets.New("asc", "desc")
	disclosureTypeSet = sets.New("A", "B", "C", "D", "E", "F", "G", "H", "I", "J")

	corpCodePattern   = regexp.MustCompile(`^[0-9]{8}$`)
	detailTypePattern = regexp.MustCompile(`^[A-J][0-9]{3}$`)

	pageCountRange = interval[int]{1, 100}
)

// interval is a closed range [a, b]. The zero value of T means an open end.
type interval[T constraints.Ordered] [2]T

func (iv interval[T]) validate() error {
	var zero T
	if iv[0] != zero && iv[1] != zero && iv[0] > iv[1] {
		return fmt.Errorf("bad interval: %v > %v", iv[0], iv[1])
	}
	return nil
}

func (iv interval[T]) contains(v T) bool {
	return iv[0] <= v && v <= iv[1]
}

// ========================= SEARCH REQUEST =========================

// SearchRequestBuilder assembles a SearchRequest and checks it before any call is made.
//
// Usage:
//
//	req, err := NewSearchRequestBuilder().
//		SetCorpCode("00126380").
//		SetDateRange("20210101", "20210131").
//		SetDisclosureType("a", "b").
//		Build()
type SearchRequestBuilder struct {
	req SearchRequest
}

func NewSearchRequestBuilder() *SearchRequestBuilder {
	return &SearchRequestBuilder{}
}

func (b *SearchRequestBuilder) SetCorpCode(corpCode string) *SearchRequestBuilder {
	b.req.CorpCode = corpCode
	return b
}

// Either end may be empty.
func (b *SearchRequestBuilder) SetDateRange(begin, end string) *SearchRequestBuilder {
	b.req.BeginDate = begin
	b.req.EndDate = end
	return b
}

func (b *SearchRequestBuilder) SetLastReportAt(lastReportAt string) *SearchRequestBuilder {
	b.req.LastReportAt = lastReportAt
	return b
}

// One code is sent as a single value, several as a list.
func (b *SearchRequestBuilder) SetDisclosureType(codes ...string) *SearchRequestBuilder {
	b.req.DisclosureType = codesOf(codes)
	return b
}

func (b *SearchRequestBuilder) SetDisclosureDetailType(codes ...string) *SearchRequestBuilder {
	b.req.DisclosureDetailType = codesOf(codes)
	return b
}

func (b *SearchRequestBuilder) SetCorpClass(corpClass string) *SearchRequestBuilder {
	b.req.CorpClass = corpClass
	return b
}

func (b *SearchRequestBuilder) SetSort(sort, order string) *SearchRequestBuilder {
	b.req.Sort = sort
	b.req.SortOrder = order
	return b
}

func (b *SearchRequestBuilder) SetPage(pageNo, pageCount int) *SearchRequestBuilder {
	return b.SetPageNo(pageNo).SetPageCount(pageCount)
}

func (b *SearchRequestBuilder) SetPageNo(pageNo int) *SearchRequestBuilder {
	b.req.PageNo = mo.Some(pageNo)
	return b
}

func (b *SearchRequestBuilder) SetPageCount(pageCount int) *SearchRequestBuilder {
	b.req.PageCount = mo.Some(pageCount)
	return b
}

func (b *SearchRequestBuilder) Build() (req SearchRequest, err error) {
	req = b.req
	err = req.Validate()
	return
}

// Validate checks req against the values the provider accepts. Code fields are
// compared case-insensitively. SearchFilings does not call it.
func (req SearchRequest) Validate() error {
	req = req.Normalize()

	switch {
	case req.CorpCode != "" && !corpCodePattern.MatchString(req.CorpCode):
		return fmt.Errorf("bad `corp_code` %q: want 8 digits", req.CorpCode)
	case req.LastReportAt != "" && !lastReportAtSet.Has(req.LastReportAt):
		return fmt.Errorf("bad `last_reprt_at` %q: want one of %v", req.LastReportAt, sets.List(lastReportAtSet))
	case req.CorpClass != "" && !corpClassSet.Has(req.CorpClass):
		return fmt.Errorf("bad `corp_cls` %q: want one of %v", req.CorpClass, sets.List(corpClassSet))
	case req.Sort != "" && !sortSet.Has(req.Sort):
		return fmt.Errorf("bad `sort` %q: want one of %v", req.Sort, sets.List(sortSet))
	case req.SortOrder != "" && !sortOrderSet.Has(req.SortOrder):
		return fmt.Errorf("bad `sort_mth` %q: want one of %v", req.SortOrder, sets.List(sortOrderSet))
	case req.PageNo.IsPresent() && req.PageNo.MustGet() < 1:
		return fmt.Errorf("bad `page_no` %d: must be >= 1", req.PageNo.MustGet())
	case req.PageCount.IsPresent() && !pageCountRange.contains(req.PageCount.MustGet()):
		return fmt.Errorf("bad `page_count` %d: must be in [1, 100]", req.PageCount.MustGet())
	}

	for _, code := range values(req.DisclosureType) {
		if !disclosureTypeSet.Has(code) {
			return fmt.Errorf("bad `pblntf_ty` %q: want one of %v", code, sets.List(disclosureTypeSet))
		}
	}
	for _, code := range values(req.DisclosureDetailType) {
		if !detailTypePattern.MatchString(code) {
			return fmt.Errorf("bad `pblntf_detail_ty` %q", code)
		}
	}

	for _, d := range []string{req.BeginDate, req.EndDate} {
		if _, err := time.Parse(dateLayout, d); d != "" && err != nil {
			return fmt.Errorf("bad date format: %v", err)
		}
	}
	// YYYYMMDD sorts the same as the date it encodes.
	return interval[string]{req.BeginDate, req.EndDate}.validate()
}

// ========================= AUXILIARY FUNC =========================

func codesOf(codes []string) mo.Option[Codes] {
	codes = lo.Compact(lo.Map(codes, func(c string, _ int) string { return strings.TrimSpace(c) }))
	switch len(codes) {
	case 0:
		return mo.None[Codes]()
	case 1:
		return Code(codes[0])
	default:
		return CodeList(codes...)
	}
}
