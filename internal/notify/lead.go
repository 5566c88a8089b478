package notify

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/hasunakalanka/Forma.Ai/internal/intake"
	"github.com/hasunakalanka/Forma.Ai/internal/preview"
	"github.com/hasunakalanka/Forma.Ai/pkg/logging"
)

// LeadNotifier e-mails leads whose webhook call failed to the coach inbox.
type LeadNotifier struct {
	email     EmailSender
	recipient string
	logger    *logging.Logger
}

// NewLeadNotifier creates a notifier that mails recipient. With no
// recipient or sender every call is a logged no-op.
func NewLeadNotifier(email EmailSender, recipient string, logger *logging.Logger) *LeadNotifier {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeadNotifier{
		email:     email,
		recipient: strings.TrimSpace(recipient),
		logger:    logger,
	}
}

var _ intake.LeadNotifier = (*LeadNotifier)(nil)

// NotifyFallbackLead sends the submission and the locally generated
// split so the lead is not lost while the webhook is down.
func (n *LeadNotifier) NotifyFallbackLead(ctx context.Context, submissionID string, p intake.Payload, plan preview.PlanPreview) error {
	if n.email == nil || n.recipient == "" {
		n.logger.Warn("lead notification disabled", "submission_id", submissionID)
		return nil
	}

	msg := EmailMessage{
		To:      n.recipient,
		ReplyTo: p.Email,
		Subject: fmt.Sprintf("New FORMA lead (webhook offline) - %s", displayName(p)),
		Body:    leadText(submissionID, p, plan),
		HTML:    leadHTML(submissionID, p, plan),
	}
	if err := n.email.Send(ctx, msg); err != nil {
		return fmt.Errorf("notify: send fallback lead: %w", err)
	}
	return nil
}

func displayName(p intake.Payload) string {
	if p.Name != "" {
		return p.Name
	}
	return p.Email
}

func leadFields(p intake.Payload) [][2]string {
	profile := preview.Normalize(p.PreviewInput())
	injuries := p.Injuries
	if injuries == "" {
		injuries = "none reported"
	}
	return [][2]string{
		{"Name", p.Name},
		{"Email", p.Email},
		{"Goal", profile.Goal.Title()},
		{"Days", fmt.Sprintf("%d", profile.Days)},
		{"Experience", profile.Experience.Label()},
		{"Equipment", profile.Equipment.Label()},
		{"Injuries", injuries},
	}
}

func leadText(submissionID string, p intake.Payload, plan preview.PlanPreview) string {
	var b strings.Builder
	b.WriteString("The plan webhook was unavailable, so this lead was captured locally.\n\n")
	for _, f := range leadFields(p) {
		fmt.Fprintf(&b, "%s: %s\n", f[0], f[1])
	}
	fmt.Fprintf(&b, "\nPreview shown:\n%s\n", plan.Summary)
	for _, d := range plan.Schedule {
		fmt.Fprintf(&b, "  %s: %s\n", d.Day, d.Focus)
	}
	fmt.Fprintf(&b, "\nSubmission: %s\n", submissionID)
	return b.String()
}

func leadHTML(submissionID string, p intake.Payload, plan preview.PlanPreview) string {
	var b strings.Builder
	b.WriteString("<p>The plan webhook was unavailable, so this lead was captured locally.</p><table>")
	for _, f := range leadFields(p) {
		fmt.Fprintf(&b, "<tr><th align=\"left\">%s</th><td>%s</td></tr>", f[0], html.EscapeString(f[1]))
	}
	b.WriteString("</table>")
	fmt.Fprintf(&b, "<p>%s</p><ul>", html.EscapeString(plan.Summary))
	for _, d := range plan.Schedule {
		fmt.Fprintf(&b, "<li><strong>%s</strong> %s</li>", html.EscapeString(d.Day), html.EscapeString(d.Focus))
	}
	fmt.Fprintf(&b, "</ul><p><small>Submission %s</small></p>", html.EscapeString(submissionID))
	return b.String()
}
