// Package email provides email sending functionality via Resend.
package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/atelier-crm/backend/internal/application/adapter"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
)

// permanentErrorMarkers are substrings of Resend errors that will not
// resolve on retry: auth problems and rejected payloads. Rate limits and
// 5xx responses are left temporary.
var permanentErrorMarkers = []string{
	"401", "403", "422",
	"unauthorized", "forbidden", "validation", "invalid", "bad request",
}

// ResendClient implements the adapter.EmailSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// Send sends an email via Resend. Failures come back as EmailErrors
// classified permanent or temporary so the worker can decide on retries.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{input.To},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	}

	resp, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return nil, classifySendError(err)
	}

	return &adapter.SendEmailResult{ResendID: resp.Id}, nil
}

func classifySendError(err error) error {
	msg := strings.ToLower(err.Error())
	for _, marker := range permanentErrorMarkers {
		if strings.Contains(msg, marker) {
			return domainerror.NewEmailError(
				domainerror.ErrCodePermanentEmailFailure,
				"permanent email failure",
				err,
			)
		}
	}
	return domainerror.NewEmailError(
		domainerror.ErrCodeTemporaryEmailFailure,
		"temporary email failure",
		err,
	)
}

// MockEmailSender records sends in memory. It stands in for Resend when
// no API key is configured and in the integration suite.
type MockEmailSender struct {
	SentEmails  []adapter.SendEmailInput
	ShouldFail  bool
	FailError   error
	IsPermanent bool
}

// NewMockEmailSender creates a new mock email sender.
func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{SentEmails: make([]adapter.SendEmailInput, 0)}
}

// Send implements the adapter.EmailSender interface.
func (m *MockEmailSender) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if m.ShouldFail {
		code := domainerror.ErrCodeTemporaryEmailFailure
		msg := "mock temporary failure"
		if m.IsPermanent {
			code = domainerror.ErrCodePermanentEmailFailure
			msg = "mock permanent failure"
		}
		return nil, domainerror.NewEmailError(code, msg, m.FailError)
	}

	m.SentEmails = append(m.SentEmails, input)
	return &adapter.SendEmailResult{
		ResendID: fmt.Sprintf("mock-%d", len(m.SentEmails)),
	}, nil
}
