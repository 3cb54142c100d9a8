package opendart

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/samber/mo"
)

const API_BASE_URL = "https://opendart.fss.or.kr/api"

const searchEndpoint = "/list.json"

// Defaults the provider applies when a field is left out. page_count is 10 even
// though parts of the provider's documentation list 100.
const (
	DefaultLastReportAt = "N"
	DefaultSort         = "date"
	DefaultSortOrder    = "desc"
	DefaultPageNo       = 1
	DefaultPageCount    = 10
)

// ========================= REQUESTS =========================

// SearchRequest holds the filters of a filing search. Empty strings and absent
// options mean "not set"; unset defaulted fields are sent with their defaults,
// other unset fields are omitted.
type SearchRequest struct {
	// Unique 8-digit company code. Without it the provider limits the search window to 3 months.
	CorpCode string
	// Start of the receipt date range, YYYYMMDD.
	BeginDate string
	// End of the receipt date range, YYYYMMDD. The provider uses today when empty.
	EndDate string
	// "Y" to search final reports only. Default "N".
	LastReportAt string
	// Disclosure type(s), A through J.
	DisclosureType mo.Option[Codes]
	// Detailed disclosure type(s), e.g. A001.
	DisclosureDetailType mo.Option[Codes]
	// Corporation class. Values: "Y" (KOSPI) | "K" (KOSDAQ) | "N" (KONEX) | "E" (other). Empty for all.
	CorpClass string
	// Values: "date" | "crp" (company name) | "rpt" (report name). Default "date".
	Sort string
	// Values: "asc" | "desc". Default "desc".
	SortOrder string
	// Page number, from 1. Default 1. Any present value is sent as is.
	PageNo mo.Option[int]
	// Items per page, 1 to 100. Default 10. Any present value is sent as is.
	PageCount mo.Option[int]
}

// Normalize upper-cases the case-insensitive code fields. Absent fields stay absent.
func (req SearchRequest) Normalize() SearchRequest {
	req.LastReportAt = strings.ToUpper(req.LastReportAt)
	req.DisclosureType = Upper(req.DisclosureType)
	req.DisclosureDetailType = Upper(req.DisclosureDetailType)
	return req
}

// Query builds the query string for req, including crtfc_key. It applies
// defaults but does not normalize.
func (req SearchRequest) Query(key string) url.Values {
	q := url.Values{}
	q.Set("crtfc_key", key)
	setIf(q, "corp_code", req.CorpCode)
	setIf(q, "bgn_de", req.BeginDate)
	setIf(q, "end_de", req.EndDate)
	q.Set("last_reprt_at", orDefault(req.LastReportAt, DefaultLastReportAt))
	for _, v := range values(req.DisclosureType) {
		q.Add("pblntf_ty", v)
	}
	for _, v := range values(req.DisclosureDetailType) {
		q.Add("pblntf_detail_ty", v)
	}
	setIf(q, "corp_cls", req.CorpClass)
	q.Set("sort", orDefault(req.Sort, DefaultSort))
	q.Set("sort_mth", orDefault(req.SortOrder, DefaultSortOrder))
	q.Set("page_no", strconv.Itoa(req.PageNo.OrElse(DefaultPageNo)))
	q.Set("page_count", strconv.Itoa(req.PageCount.OrElse(DefaultPageCount)))
	return q
}

// ========================= RESPONSES =========================

// Response is the decoded JSON body, returned to the caller as parsed.
type Response map[string]any

func (res Response) Status() string {
	s, _ := res["status"].(string)
	return s
}

func (res Response) Message() string {
	s, _ := res["message"].(string)
	return s
}

type Filing struct {
	CorpClass   string `json:"corp_cls"`
	CorpName    string `json:"corp_name"`
	CorpCode    string `json:"corp_code"`
	StockCode   string `json:"stock_code"`
	ReportName  string `json:"report_nm"`
	ReceiptNo   string `json:"rcept_no"`
	FilerName   string `json:"flr_nm"`
	ReceiptDate string `json:"rcept_dt"`
	Remark      string `json:"rm"`
}

type SearchResult struct {
	Status     string   `json:"status"`
	Message    string   `json:"message"`
	PageNo     int      `json:"page_no"`
	PageCount  int      `json:"page_count"`
	TotalCount int      `json:"total_count"`
	TotalPage  int      `json:"total_page"`
	List       []Filing `json:"list"`
}

// Decode gives a typed view of the response. The Response itself is not changed.
func (res Response) Decode() (out SearchResult, err error) {
	raw, err := json.Marshal(res)
	if err != nil {
		return
	}
	err = json.Unmarshal(raw, &out)
	return
}

// ========================= API =========================

var (
	baseURLMu  sync.RWMutex
	apiBaseURL = API_BASE_URL
)

// SetAPIBaseUrl changes the base URL used by clients without their own (tests, proxies).
func SetAPIBaseUrl(u string) {
	baseURLMu.Lock()
	defer baseURLMu.Unlock()
	apiBaseURL = strings.TrimRight(u, "/")
}

func GetAPIBaseUrl() string {
	baseURLMu.RLock()
	defer baseURLMu.RUnlock()
	return apiBaseURL
}

// Client sends filing searches. It holds no per-call state and is safe for concurrent use.
type Client struct {
	http    *resty.Client
	baseURL string
	keys    KeyProvider
	check   StatusChecker
}

// Option configures a Client in New.
type Option func(*Client) error

func WithBaseURL(u string) Option {
	return func(c *Client) error {
		if _, err := url.Parse(u); err != nil {
			return err
		}
		c.baseURL = strings.TrimRight(u, "/")
		return nil
	}
}

func WithKeyProvider(p KeyProvider) Option {
	return func(c *Client) error {
		c.keys = p
		return nil
	}
}

func WithStatusChecker(check StatusChecker) Option {
	return func(c *Client) error {
		c.check = check
		return nil
	}
}

// WithHTTPClient replaces the transport. Options applied earlier that touch the
// transport are lost.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		c.http = resty.NewWithClient(hc)
		return nil
	}
}

func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.SetTimeout(d)
		return nil
	}
}

// WithDebugLogging dumps requests and responses through zerolog when enabled.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if !enabled {
			return nil
		}
		base := c.http.GetClient().Transport
		if base == nil {
			base = http.DefaultTransport
		}
		if _, ok := base.(*debugTransport); !ok {
			c.http.SetTransport(&debugTransport{base: base})
		}
		return nil
	}
}

func New(opts ...Option) (*Client, error) {
	c := &Client{
		http:  resty.New().SetTimeout(30 * time.Second),
		keys:  envKey{},
		check: CheckStatus,
	}
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// The package client follows DART_* and is rebuilt when that environment changes.
var std struct {
	mu     sync.Mutex
	cfg    Config
	client *Client
}

func defaultClient() (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	std.mu.Lock()
	defer std.mu.Unlock()
	if std.client == nil || std.cfg != cfg {
		// envKey keeps SetKey ahead of DART_API_KEY.
		c, err := New(WithConfig(cfg), WithKeyProvider(envKey{}))
		if err != nil {
			return nil, err
		}
		std.cfg, std.client = cfg, c
	}
	return std.client, nil
}

// SearchFilings searches filings with the package client configured from DART_*.
func SearchFilings(req SearchRequest) (Response, error) {
	c, err := defaultClient()
	if err != nil {
		return nil, err
	}
	return c.SearchFilings(context.Background(), req)
}

// SearchFilings sends one GET to the filing list endpoint and returns the
// parsed body once its status has been checked. Errors from the key provider,
// the transport, the JSON decoder and the status checker are returned as is.
func (c *Client) SearchFilings(ctx context.Context, req SearchRequest) (res Response, err error) {
	key, err := c.keys.APIKey()
	if err != nil {
		return nil, err
	}

	endpoint := c.endpoint() + searchEndpoint
	query := req.Normalize().Query(key)
	currentLogger().Debug().Str("url", endpoint).Str("query", redacted(query)).Msg("GET")

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		Get(endpoint)
	if err != nil {
		requestsTotal.WithLabelValues(outcomeTransportError).Inc()
		return nil, err
	}
	if resp.IsError() {
		requestsTotal.WithLabelValues(outcomeHTTPError).Inc()
		httpErr := newHTTPError(resp.StatusCode())
		currentLogger().Error().Err(httpErr).Str("url", endpoint).Msg("opendart http error")
		return nil, httpErr
	}

	if err = json.Unmarshal(resp.Body(), &res); err != nil {
		requestsTotal.WithLabelValues(outcomeParseError).Inc()
		return nil, err
	}
	requestsTotal.WithLabelValues(statusLabel(res.Status())).Inc()

	if err = c.check(res); err != nil {
		currentLogger().Error().Err(err).Str("status", res.Status()).Msg("opendart status error")
		return nil, err
	}
	return res, nil
}

func (c *Client) endpoint() string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return GetAPIBaseUrl()
}

// ========================= AUXILIARY FUNC =========================

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

func redacted(q url.Values) string {
	c := url.Values{}
	for k, v := range q {
		c[k] = v
	}
	c.Set("crtfc_key", "***")
	return c.Encode()
}
