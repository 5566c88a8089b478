package bootstrap

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"

	appconfig "github.com/hasunakalanka/Forma.Ai/internal/config"
	"github.com/hasunakalanka/Forma.Ai/internal/notify"
	"github.com/hasunakalanka/Forma.Ai/pkg/logging"
)

// BuildEmailSender picks the backup-lead mail transport from
// EMAIL_PROVIDER. Misconfigured providers degrade to the stub sender so a
// missing key never blocks startup.
func BuildEmailSender(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) notify.EmailSender {
	if logger == nil {
		logger = logging.Default()
	}

	switch cfg.EmailProvider {
	case "sendgrid":
		sender := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
		if sender != nil {
			logger.Info("lead email via sendgrid")
			return sender
		}
		logger.Warn("SENDGRID_API_KEY missing, using stub email sender")
	case "ses":
		sender, err := buildSESSender(ctx, cfg, logger)
		if err == nil {
			logger.Info("lead email via ses", "region", cfg.AWSRegion)
			return sender
		}
		logger.Warn("ses unavailable, using stub email sender", "error", err)
	case "", "stub":
	default:
		logger.Warn("unknown EMAIL_PROVIDER, using stub email sender", "provider", cfg.EmailProvider)
	}
	return notify.NewStubEmailSender(logger)
}

func buildSESSender(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (*notify.SESSender, error) {
	if cfg.SendGridFromEmail == "" {
		return nil, fmt.Errorf("bootstrap: ses: SENDGRID_FROM_EMAIL is required as the sender address")
	}
	awsCfg, err := LoadAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: ses: load aws config: %w", err)
	}
	return notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger), nil
}
