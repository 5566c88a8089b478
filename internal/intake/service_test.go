package intake

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasunakalanka/Forma.Ai/internal/observability/metrics"
	"github.com/hasunakalanka/Forma.Ai/internal/preview"
	"github.com/hasunakalanka/Forma.Ai/pkg/logging"
)

type stubGenerator struct {
	plan        *preview.PlanPreview
	err         error
	calls       int
	got         Payload
	hadDeadline bool
}

func (g *stubGenerator) Generate(ctx context.Context, p Payload) (*preview.PlanPreview, error) {
	g.calls++
	g.got = p
	_, g.hadDeadline = ctx.Deadline()
	return g.plan, g.err
}

type recordingNotifier struct {
	mu    sync.Mutex
	leads []Payload
	ids   []string
	plans []preview.PlanPreview
	err   error
	ctxOK bool
}

func (n *recordingNotifier) NotifyFallbackLead(ctx context.Context, id string, p Payload, plan preview.PlanPreview) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.leads = append(n.leads, p)
	n.ids = append(n.ids, id)
	n.plans = append(n.plans, plan)
	n.ctxOK = ctx.Err() == nil
	return n.err
}

func validPayload() Payload {
	return Payload{
		Name:       " Ada ",
		Email:      " ada@example.com ",
		Goal:       "strength",
		Days:       3,
		Experience: "beginner",
		Equipment:  "full_gym",
		Injuries:   " left knee ",
	}
}

func newTestService(gen PlanGenerator, notifier LeadNotifier, cfg ServiceConfig) *Service {
	m := metrics.NewFunnelMetrics(prometheus.NewRegistry())
	return NewService(gen, notifier, m, logging.Default(), cfg)
}

func TestSubmit_UsesWebhookPlan(t *testing.T) {
	remote := &preview.PlanPreview{
		Summary:  "Remote summary",
		Schedule: []preview.DaySplit{{Day: "Mon", Focus: "Squats"}},
	}
	gen := &stubGenerator{plan: remote}
	notifier := &recordingNotifier{}
	svc := newTestService(gen, notifier, ServiceConfig{UnlockPath: "/unlock"})

	res, err := svc.Submit(context.Background(), validPayload())
	require.NoError(t, err)

	assert.Equal(t, SourceWebhook, res.Source)
	assert.Equal(t, *remote, res.PlanPreview)
	assert.NotEmpty(t, res.SubmissionID)
	assert.Equal(t, "/unlock?submission="+res.SubmissionID, res.UnlockURL)
	assert.Empty(t, notifier.leads, "webhook path must not send backup notification")

	require.Equal(t, 1, gen.calls)
	assert.Equal(t, "Ada", gen.got.Name)
	assert.Equal(t, "ada@example.com", gen.got.Email)
	assert.Equal(t, "left knee", gen.got.Injuries)
}

func TestSubmit_FallsBackToLocalPreviewOnWebhookError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("connection refused")}
	notifier := &recordingNotifier{}
	svc := newTestService(gen, notifier, ServiceConfig{})

	res, err := svc.Submit(context.Background(), validPayload())
	require.NoError(t, err)

	assert.Equal(t, SourceLocal, res.Source)
	assert.Equal(t, preview.Resolve(preview.Input{Goal: "strength", Days: 3, Experience: "beginner", Equipment: "full_gym"}), res.PlanPreview)
	assert.Empty(t, res.UnlockURL)

	require.Len(t, notifier.leads, 1)
	assert.Equal(t, "ada@example.com", notifier.leads[0].Email)
	assert.Equal(t, res.SubmissionID, notifier.ids[0])
	assert.Equal(t, res.PlanPreview, notifier.plans[0])
}

func TestSubmit_NilPlanIsTreatedAsFailure(t *testing.T) {
	svc := newTestService(&stubGenerator{}, nil, ServiceConfig{})

	res, err := svc.Submit(context.Background(), validPayload())
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, res.Source)
	assert.Len(t, res.Schedule, 3)
}

func TestSubmit_WithoutGeneratorResolvesLocally(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := newTestService(nil, notifier, ServiceConfig{})

	p := validPayload()
	p.Goal = "unknown"
	p.Days = 10
	res, err := svc.Submit(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, SourceLocal, res.Source)
	assert.Equal(t, preview.Schedule(preview.GoalGeneralFitness, preview.DefaultDays), res.Schedule)
	assert.Len(t, notifier.leads, 1)
}

func TestSubmit_NotifierErrorDoesNotFailSubmission(t *testing.T) {
	notifier := &recordingNotifier{err: errors.New("smtp down")}
	svc := newTestService(&stubGenerator{err: errors.New("boom")}, notifier, ServiceConfig{})

	res, err := svc.Submit(context.Background(), validPayload())
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, res.Source)
}

func TestSubmit_NotifiesEvenWhenRequestCanceled(t *testing.T) {
	notifier := &recordingNotifier{}
	gen := &stubGenerator{err: context.Canceled}
	svc := newTestService(gen, notifier, ServiceConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Submit(ctx, validPayload())
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, notifier.leads, 1)
	assert.True(t, notifier.ctxOK, "notification context must outlive the request")
}

func TestSubmit_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Payload)
		want   error
	}{
		{"missing email", func(p *Payload) { p.Email = "   " }, ErrMissingEmail},
		{"invalid email", func(p *Payload) { p.Email = "ada@example" }, ErrInvalidEmail},
		{"email with space", func(p *Payload) { p.Email = "ada lovelace@example.com" }, ErrInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &stubGenerator{}
			svc := newTestService(gen, nil, ServiceConfig{})

			p := validPayload()
			tt.mutate(&p)
			_, err := svc.Submit(context.Background(), p)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, "email", FieldFor(err))
			assert.Zero(t, gen.calls, "generator must not be called for invalid input")
		})
	}
}

func TestSubmit_AppliesWebhookTimeout(t *testing.T) {
	gen := &stubGenerator{plan: &preview.PlanPreview{Summary: "s", Schedule: []preview.DaySplit{{Day: "Day 1", Focus: "f"}}}}
	svc := newTestService(gen, nil, ServiceConfig{WebhookTimeout: time.Second})

	_, err := svc.Submit(context.Background(), validPayload())
	require.NoError(t, err)
	assert.True(t, gen.hadDeadline)
}

func TestSubmit_RevealDelay(t *testing.T) {
	t.Run("waits at least the delay", func(t *testing.T) {
		svc := newTestService(nil, nil, ServiceConfig{RevealDelay: 30 * time.Millisecond})

		start := time.Now()
		_, err := svc.Submit(context.Background(), validPayload())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})

	t.Run("returns early when canceled", func(t *testing.T) {
		svc := newTestService(nil, nil, ServiceConfig{RevealDelay: time.Hour})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := svc.Submit(ctx, validPayload())
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
