package intake

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/hasunakalanka/Forma.Ai/internal/observability/metrics"
	"github.com/hasunakalanka/Forma.Ai/internal/preview"
	"github.com/hasunakalanka/Forma.Ai/pkg/logging"
)

// Preview sources reported on each result.
const (
	SourceWebhook = "webhook"
	SourceLocal   = "local"
)

const defaultNotifyTimeout = 10 * time.Second

// PlanGenerator produces a plan preview remotely (the plan-generation webhook).
type PlanGenerator interface {
	Generate(ctx context.Context, p Payload) (*preview.PlanPreview, error)
}

// LeadNotifier receives leads whose webhook call failed, since the
// webhook is where leads are normally captured.
type LeadNotifier interface {
	NotifyFallbackLead(ctx context.Context, submissionID string, p Payload, plan preview.PlanPreview) error
}

// Result is returned to the form after a submission.
type Result struct {
	SubmissionID string `json:"submission_id"`
	Source       string `json:"source"`
	preview.PlanPreview
	UnlockURL string `json:"unlock_url,omitempty"`
}

// ServiceConfig tunes the submission flow.
type ServiceConfig struct {
	// WebhookTimeout bounds the generator call. Zero means no extra bound.
	WebhookTimeout time.Duration
	// RevealDelay is the minimum time a submission takes, measured from
	// receipt, so the form's loading animation can finish.
	RevealDelay time.Duration
	// NotifyTimeout bounds the backup lead notification.
	NotifyTimeout time.Duration
	// UnlockPath is the payment-gate path handed back to the form.
	UnlockPath string
}

// Service runs an intake submission: validate, try the webhook, fall back
// to the local resolver.
type Service struct {
	generator PlanGenerator
	notifier  LeadNotifier
	metrics   *metrics.FunnelMetrics
	logger    *logging.Logger
	cfg       ServiceConfig
	now       func() time.Time
}

// NewService creates a new intake service. generator and notifier may be
// nil: without a generator every preview is local, without a notifier
// fallback leads are only logged.
func NewService(generator PlanGenerator, notifier LeadNotifier, m *metrics.FunnelMetrics, logger *logging.Logger, cfg ServiceConfig) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = defaultNotifyTimeout
	}
	return &Service{
		generator: generator,
		notifier:  notifier,
		metrics:   m,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Submit validates p and resolves its plan preview. The only errors are
// validation errors and ctx cancellation during the reveal delay.
func (s *Service) Submit(ctx context.Context, p Payload) (*Result, error) {
	started := s.now()
	p.Normalize()
	if err := p.Validate(); err != nil {
		s.metrics.ObserveIntake("invalid")
		return nil, err
	}

	id := uuid.NewString()
	log := s.logger.With("submission_id", id)

	plan, source := s.generate(ctx, log, p)
	if source == SourceLocal {
		s.notifyFallback(ctx, log, id, p, plan)
	}

	if err := s.reveal(ctx, started); err != nil {
		s.metrics.ObserveIntake("canceled")
		return nil, err
	}

	s.metrics.ObserveIntake("accepted")
	s.metrics.ObservePreviewSource(source)
	log.Info("intake resolved",
		"source", source,
		"goal", p.Goal,
		"days", len(plan.Schedule),
	)

	return &Result{
		SubmissionID: id,
		Source:       source,
		PlanPreview:  plan,
		UnlockURL:    s.unlockURL(id),
	}, nil
}

func (s *Service) generate(ctx context.Context, log *logging.Logger, p Payload) (preview.PlanPreview, string) {
	if s.generator == nil {
		return preview.Resolve(p.PreviewInput()), SourceLocal
	}

	callCtx := ctx
	if s.cfg.WebhookTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.cfg.WebhookTimeout)
		defer cancel()
	}

	start := s.now()
	plan, err := s.generator.Generate(callCtx, p)
	outcome := "ok"
	if err != nil || plan == nil {
		outcome = "error"
	}
	s.metrics.ObserveWebhookLatency(outcome, s.now().Sub(start).Seconds())

	if outcome == "ok" {
		return *plan, SourceWebhook
	}
	log.Warn("webhook unavailable, generating local preview", "error", err)
	return preview.Resolve(p.PreviewInput()), SourceLocal
}

func (s *Service) notifyFallback(ctx context.Context, log *logging.Logger, id string, p Payload, plan preview.PlanPreview) {
	if s.notifier == nil {
		log.Warn("fallback lead not forwarded: no notifier configured", "email", p.Email)
		return
	}
	// The lead must go out even if the browser has already gone away.
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.NotifyTimeout)
	defer cancel()
	if err := s.notifier.NotifyFallbackLead(notifyCtx, id, p, plan); err != nil {
		log.Error("fallback lead notification failed", "error", err)
	}
}

func (s *Service) reveal(ctx context.Context, started time.Time) error {
	remaining := s.cfg.RevealDelay - s.now().Sub(started)
	if remaining <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(remaining)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Service) unlockURL(id string) string {
	if s.cfg.UnlockPath == "" {
		return ""
	}
	return s.cfg.UnlockPath + "?" + url.Values{"submission": []string{id}}.Encode()
}
