package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/comite-bacias/presenca/internal/util"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

type sender interface {
	Send(email *mail.SGMailV3) (*rest.Response, error)
}

type SendGridMailer struct {
	fromEmail string
	client    sender
	isSandBox bool
	logger    *zap.SugaredLogger
	backoff   time.Duration
}

func NewSendgrid(apiKey string, fromEmail string, isProduction bool, logger *zap.SugaredLogger) *SendGridMailer {
	// For unit test
	if logger == nil {
		logger = util.NewLogger()
	}

	client := sendgrid.NewSendClient(apiKey)

	return &SendGridMailer{
		fromEmail: fromEmail,
		client:    client,
		// Sandbox mode is only used to validate your request. The email will never be delivered while this feature is enabled!
		isSandBox: !isProduction,
		logger:    logger,
		backoff:   time.Second,
	}
}

// Render executes the "subject" and "body" blocks of a template under templates/.
func Render(templateFile string, data any) (string, string, error) {
	tmpl, err := template.ParseFS(FS, "templates/"+templateFile)
	if err != nil {
		return "", "", fmt.Errorf("parsing mail template: %w", err)
	}

	subject := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(subject, "subject", data); err != nil {
		return "", "", fmt.Errorf("extracting subject from mail template: %w", err)
	}

	body := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(body, "body", data); err != nil {
		return "", "", fmt.Errorf("extracting body from mail template: %w", err)
	}

	return subject.String(), body.String(), nil
}

// Data is struct entity where it will be used in template.
//
//	Check templates/signature_receipt.tmpl to see how we use the entity
//
//	Example usage:
//	status, err := Send(mailer.SIGNATURE_RECEIPT_TEMPLATE, sig.SignerName, sig.Email, receipt)
func (m SendGridMailer) Send(templateFile, toUsername, toEmail string, data any) (int, error) {
	from := mail.NewEmail(FROM_NAME, m.fromEmail)
	to := mail.NewEmail(toUsername, toEmail)

	subject, body, err := Render(templateFile, data)
	if err != nil {
		m.logger.Errorf("Error occurred during mail template rendering, error: %v", err)
		return -1, err
	}

	message := mail.NewSingleEmail(from, subject, to, "", body)

	message.SetMailSettings(&mail.MailSettings{
		SandboxMode: &mail.Setting{
			Enable: &m.isSandBox,
		},
	})

	var retryErr error
	for i := 0; i < MAX_RETRY; i++ {
		var response *rest.Response
		response, retryErr = m.client.Send(message)
		if retryErr == nil && response.StatusCode >= http.StatusBadRequest {
			retryErr = fmt.Errorf("sendgrid responded with status %d: %s", response.StatusCode, response.Body)
		}
		if retryErr != nil {
			m.logger.Warnf("Send email attempt %d failed, error: %v", i+1, retryErr)
			// linear backoff
			time.Sleep(m.backoff * time.Duration(i+1))
			continue
		}

		return response.StatusCode, nil
	}

	m.logger.Errorf("Failed to send email after %d attempt, error: %v", MAX_RETRY, retryErr)

	return -1, fmt.Errorf("failed to send email after %d attempt: %w", MAX_RETRY, retryErr)
}
