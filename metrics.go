package opendart

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeTransportError = "transport_error"
	outcomeHTTPError      = "http_error"
	outcomeParseError     = "parse_error"
	outcomeUnknownStatus  = "unknown"
)

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "opendart",
		Name:      "requests_total",
		Help:      "Filing searches by provider status code or failure stage.",
	},
	[]string{"status"},
)

// statusLabel keeps the label set to the documented codes.
func statusLabel(code string) string {
	if _, ok := statusMap[code]; ok || code == StatusOK {
		return code
	}
	return outcomeUnknownStatus
}
