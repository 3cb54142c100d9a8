// opendart: a client for the [OpenDART] filing search (공시검색) endpoint.
//
// Instructions:
//
//  1. Describe the search, either with a [SearchRequest] literal or with
//     [NewSearchRequestBuilder]. [SearchRequestBuilder.Build] checks the
//     filters locally, reducing bad API calls.
//
//     - Disclosure types take one code ([Code]) or several ([CodeList]).
//     They are upper-cased before sending, as is last_reprt_at.
//
//  2. API Key, set with [SetKey] or the DART_API_KEY environment variable.
//
//  3. Use [SearchFilings], or a [Client] from [New] for a context, a custom
//     transport or a different key provider.
//
//  4. The parsed body is returned as a [Response]. A non-"000" status becomes a
//     [StatusError]; compare it with errors.Is against [ErrNoData],
//     [ErrRateLimited] and the other sentinels. [Response.Decode] gives a typed view.
//
//  5. Logs go through zerolog at info level by default, so the per-call debug
//     line is dropped. Pass a debug-level logger to [SetLogger] to see it.
//
// The package-level [SearchFilings] reads DART_BASE_URL, DART_TIMEOUT and
// DART_DEBUG on every call through [LoadConfig].
//
// [OpenDART]: https://opendart.fss.or.kr/guide/detail.do?apiGrpCd=DS001&apiId=2019001
package opendart
