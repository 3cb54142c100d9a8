package opendart

import (
	"net/http"
	"net/http/httputil"
	"os"
)

// debugTransport dumps every request and response at debug level, with
// crtfc_key masked in the request line. Response bodies are dumped in full.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	masked := req.Clone(req.Context())
	masked.URL.RawQuery = redacted(req.URL.Query())
	if reqDump, err := httputil.DumpRequestOut(masked, false); err == nil {
		currentLogger().Debug().Str("method", req.Method).Str("request_dump", string(reqDump)).Msg("opendart request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		currentLogger().Error().Err(err).Str("method", req.Method).Str("path", req.URL.Path).Msg("opendart request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		currentLogger().Debug().Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("opendart response")
	}
	return resp, nil
}

func debugLoggingRequested() bool {
	return os.Getenv("DART_DEBUG") == "true"
}
