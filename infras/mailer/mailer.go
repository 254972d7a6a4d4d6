package mailer

import (
	"studio/config"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/wneessen/go-mail"
)

const defaultTimeoutSeconds = 15

// New builds the SMTP client for the configured mail relay. The sender
// identity and credential live in config for the process lifetime; the
// dial timeout bounds every delivery attempt.
func New(config *config.Config) *mail.Client {
	if err := config.ValidateMail(); err != nil {
		log.Fatal().Err(err).Msg("Invalid mail configuration")
	}

	timeout := config.Mail.TimeoutSeconds
	if timeout <= 0 {
		timeout = defaultTimeoutSeconds
	}

	opts := []mail.Option{
		mail.WithPort(config.Mail.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTimeout(time.Duration(timeout) * time.Second),
	}

	if config.Mail.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(config.Mail.Username),
			mail.WithPassword(config.Mail.Password),
		)
	}

	client, err := mail.NewClient(config.Mail.Host, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create SMTP client")
	}

	log.Info().
		Str("host", config.Mail.Host).
		Int("port", config.Mail.Port).
		Str("sender", config.Mail.Sender).
		Msg("SMTP client initialized")

	return client
}
