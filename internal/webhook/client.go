// Package webhook calls the remote plan-generation webhook that receives
// intake submissions and answers with a personalized plan preview.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/hasunakalanka/Forma.Ai/internal/intake"
	"github.com/hasunakalanka/Forma.Ai/internal/preview"
	"github.com/hasunakalanka/Forma.Ai/pkg/logging"
)

var tracer = otel.Tracer("forma.internal.webhook")

const maxResponseBytes = 1 << 20

var (
	// ErrNotConfigured is returned when no webhook URL is set.
	ErrNotConfigured = errors.New("webhook: url not configured")
	// ErrBadStatus is returned for non-2xx responses.
	ErrBadStatus = errors.New("webhook: unexpected status")
	// ErrEmptyPlan is returned when the response lacks a summary or split.
	ErrEmptyPlan = errors.New("webhook: response missing goal_summary or weekly_split")
)

// request mirrors what the form posts: every field is a string.
type request struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Goal       string `json:"goal"`
	Days       string `json:"days"`
	Experience string `json:"experience"`
	Equipment  string `json:"equipment"`
	Injuries   string `json:"injuries"`
}

func newRequest(p intake.Payload) request {
	days := ""
	if p.Days != 0 {
		days = strconv.Itoa(int(p.Days))
	}
	return request{
		Name:       p.Name,
		Email:      p.Email,
		Goal:       p.Goal,
		Days:       days,
		Experience: p.Experience,
		Equipment:  p.Equipment,
		Injuries:   p.Injuries,
	}
}

// Client posts intake submissions to the plan-generation webhook.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *logging.Logger
}

// NewClient builds a webhook client. timeout bounds each HTTP call.
func NewClient(url string, timeout time.Duration, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		url: strings.TrimSpace(url),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

var _ intake.PlanGenerator = (*Client)(nil)

// Generate posts p and decodes the webhook's plan preview.
func (c *Client) Generate(ctx context.Context, p intake.Payload) (plan *preview.PlanPreview, err error) {
	if c.url == "" {
		return nil, ErrNotConfigured
	}

	ctx, span := tracer.Start(ctx, "webhook.generate", trace.WithSpanKind(trace.SpanKindClient))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(
		attribute.String("forma.goal", p.Goal),
		attribute.Int("forma.days", int(p.Days)),
	)

	body, err := json.Marshal(newRequest(p))
	if err != nil {
		return nil, fmt.Errorf("webhook: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("webhook: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("webhook: post: %w", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("webhook returned error status", "status", resp.StatusCode, "body", string(snippet))
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	var out preview.PlanPreview
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return nil, fmt.Errorf("webhook: decode response: %w", err)
	}
	if strings.TrimSpace(out.Summary) == "" || len(out.Schedule) == 0 {
		return nil, ErrEmptyPlan
	}
	return &out, nil
}
