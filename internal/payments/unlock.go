package payments

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/hasunakalanka/Forma.Ai/internal/observability/metrics"
	"github.com/hasunakalanka/Forma.Ai/pkg/logging"
)

// LinkConfigured reports whether link is a usable payment URL. Empty
// values, the "PASTE_..." placeholder shipped in example configs and
// anything that is not an absolute http(s) URL are rejected.
func LinkConfigured(link string) bool {
	link = strings.TrimSpace(link)
	if link == "" || strings.HasPrefix(strings.ToUpper(link), "PASTE_") {
		return false
	}
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return true
	default:
		return false
	}
}

// UnlockHandler sends the user from the preview to the payment link
// (PayPal.me, hosted button or checkout URL).
type UnlockHandler struct {
	link    string
	metrics *metrics.FunnelMetrics
	logger  *logging.Logger
}

// NewUnlockHandler creates a handler for GET /unlock.
func NewUnlockHandler(link string, m *metrics.FunnelMetrics, logger *logging.Logger) *UnlockHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &UnlockHandler{link: strings.TrimSpace(link), metrics: m, logger: logger}
}

// Handle redirects to the payment link. The optional submission query
// parameter is only logged; it is never forwarded to the provider.
func (h *UnlockHandler) Handle(w http.ResponseWriter, r *http.Request) {
	submission := strings.TrimSpace(r.URL.Query().Get("submission"))

	if !LinkConfigured(h.link) {
		h.metrics.ObserveUnlock("unconfigured")
		h.logger.Error("unlock redirect: payment link not configured", "submission_id", submission)
		http.Error(w, "payment link not configured", http.StatusServiceUnavailable)
		return
	}

	h.metrics.ObserveUnlock("redirected")
	h.logger.Info("unlock redirect", "submission_id", submission)
	http.Redirect(w, r, h.link, http.StatusFound)
}
