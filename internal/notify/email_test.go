package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
)

func TestNewSendGridSender_NilWithoutAPIKey(t *testing.T) {
	sender := NewSendGridSender(SendGridConfig{
		APIKey:    "",
		FromEmail: "coach@forma.fit",
	}, nil)

	if sender != nil {
		t.Error("expected nil sender when API key is empty")
	}
}

func TestNewSendGridSender_DefaultFromName(t *testing.T) {
	sender := NewSendGridSender(SendGridConfig{
		APIKey:    "test-key",
		FromEmail: "coach@forma.fit",
	}, nil)

	if sender == nil {
		t.Fatal("expected non-nil sender")
	}
	if sender.fromName != "FORMA" {
		t.Errorf("expected default from name 'FORMA', got %q", sender.fromName)
	}
}

func TestSendGridSender_Send_NilClient(t *testing.T) {
	sender := &SendGridSender{}

	err := sender.Send(context.Background(), EmailMessage{To: "lead@example.com", Subject: "Test", Body: "Test body"})
	if err == nil {
		t.Error("expected error when client is nil")
	}
}

func TestStubEmailSender_Send(t *testing.T) {
	sender := NewStubEmailSender(nil)

	err := sender.Send(context.Background(), EmailMessage{To: "lead@example.com", Subject: "Test Subject", Body: "Test body"})
	if err != nil {
		t.Errorf("stub sender should not return error, got: %v", err)
	}
}

type fakeSES struct {
	input *sesv2.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(ctx context.Context, in *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	return &sesv2.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestNewSESSender_NilClient(t *testing.T) {
	if NewSESSender(nil, SESConfig{}, nil) != nil {
		t.Fatal("expected nil sender for nil client")
	}
}

func TestSESSender_Send(t *testing.T) {
	fake := &fakeSES{}
	sender := NewSESSender(fake, SESConfig{FromEmail: "no-reply@forma.fit"}, nil)

	err := sender.Send(context.Background(), EmailMessage{
		To:      "coach@forma.fit",
		ReplyTo: "lead@example.com",
		Subject: "New lead",
		Body:    "text",
		HTML:    "<p>html</p>",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := fake.input
	if got := aws.ToString(in.FromEmailAddress); got != "FORMA <no-reply@forma.fit>" {
		t.Errorf("unexpected from address %q", got)
	}
	if len(in.Destination.ToAddresses) != 1 || in.Destination.ToAddresses[0] != "coach@forma.fit" {
		t.Errorf("unexpected destination %v", in.Destination.ToAddresses)
	}
	if len(in.ReplyToAddresses) != 1 || in.ReplyToAddresses[0] != "lead@example.com" {
		t.Errorf("unexpected reply-to %v", in.ReplyToAddresses)
	}
	if aws.ToString(in.Content.Simple.Body.Text.Data) != "text" {
		t.Errorf("missing text body")
	}
	if aws.ToString(in.Content.Simple.Body.Html.Data) != "<p>html</p>" {
		t.Errorf("missing html body")
	}
}

func TestSESSender_SendError(t *testing.T) {
	fake := &fakeSES{err: errors.New("throttled")}
	sender := NewSESSender(fake, SESConfig{FromEmail: "no-reply@forma.fit"}, nil)

	if err := sender.Send(context.Background(), EmailMessage{To: "coach@forma.fit", Body: "x"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestSESMessage_OmitsEmptyParts(t *testing.T) {
	m := sesMessage(EmailMessage{Subject: "New lead", Body: "text only"})
	if aws.ToString(m.Subject.Data) != "New lead" || aws.ToString(m.Subject.Charset) != "UTF-8" {
		t.Errorf("unexpected subject %+v", m.Subject)
	}
	if m.Body.Text == nil || aws.ToString(m.Body.Text.Data) != "text only" {
		t.Errorf("expected text part")
	}
	if m.Body.Html != nil {
		t.Errorf("expected no html part, got %q", aws.ToString(m.Body.Html.Data))
	}
}
