// Package mail delivers generated resumes to users by email through AWS SES.
package mail

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SenderName is the display name used on outgoing mail.
const SenderName = "SmartResume"

// RawEmailAPI is the slice of the SES client the mailer needs.
type RawEmailAPI interface {
	SendRawEmail(ctx context.Context, params *ses.SendRawEmailInput, optFns ...func(*ses.Options)) (*ses.SendRawEmailOutput, error)
}

// Mailer sends resume delivery emails with the PDF attached.
type Mailer struct {
	client RawEmailAPI
	from   string
}

// New builds a Mailer backed by a real SES client for the given region.
func New(ctx context.Context, region, from string) (*Mailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewWithClient(ses.NewFromConfig(cfg), from), nil
}

// NewWithClient builds a Mailer over an existing client. Used by tests.
func NewWithClient(client RawEmailAPI, from string) *Mailer {
	return &Mailer{client: client, from: from}
}

// SendResume emails the generated PDF to the resume owner.
func (m *Mailer) SendResume(ctx context.Context, to, firstName, lastName string, pdfData []byte) error {
	msg := buildResumeMessage(m.from, to, firstName, lastName, pdfData)

	_, err := m.client.SendRawEmail(ctx, &ses.SendRawEmailInput{
		Source:       aws.String(m.from),
		Destinations: []string{to},
		RawMessage:   &types.RawMessage{Data: msg},
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
