package mail

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	input *ses.SendRawEmailInput
	err   error
}

func (f *fakeSES) SendRawEmail(_ context.Context, params *ses.SendRawEmailInput, _ ...func(*ses.Options)) (*ses.SendRawEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendRawEmailOutput{}, nil
}

func TestSendResume(t *testing.T) {
	fake := &fakeSES{}
	mailer := NewWithClient(fake, "noreply@smartresume.com")

	pdfData := []byte("%PDF-1.4 fake content")
	err := mailer.SendResume(context.Background(), "jane@example.com", "Jane", "Doe", pdfData)
	require.NoError(t, err)

	require.NotNil(t, fake.input)
	assert.Equal(t, "noreply@smartresume.com", *fake.input.Source)
	assert.Equal(t, []string{"jane@example.com"}, fake.input.Destinations)

	raw := string(fake.input.RawMessage.Data)
	assert.Contains(t, raw, "From: SmartResume <noreply@smartresume.com>\r\n")
	assert.Contains(t, raw, "To: jane@example.com\r\n")
	assert.Contains(t, raw, "Subject: Your SmartResume - Jane Doe\r\n")
	assert.Contains(t, raw, `Content-Disposition: attachment; filename="Jane_Doe_Resume.pdf"`)
	assert.Contains(t, raw, "Dear Jane,")
}

func TestSendResume_AttachmentRoundTrips(t *testing.T) {
	fake := &fakeSES{}
	mailer := NewWithClient(fake, "noreply@smartresume.com")

	pdfData := make([]byte, 300)
	for i := range pdfData {
		pdfData[i] = byte(i % 251)
	}
	require.NoError(t, mailer.SendResume(context.Background(), "jane@example.com", "Jane", "Doe", pdfData))

	raw := string(fake.input.RawMessage.Data)
	// The attachment part sits between its blank line and the closing boundary.
	parts := strings.Split(raw, "Content-Transfer-Encoding: base64\r\n")
	require.Len(t, parts, 2)
	encoded := parts[1]
	encoded = strings.Split(encoded, "--"+mixedBoundary+"--")[0]
	encoded = strings.TrimPrefix(encoded, "Content-Disposition: attachment; filename=\"Jane_Doe_Resume.pdf\"\r\n\r\n")
	encoded = strings.ReplaceAll(strings.TrimSpace(encoded), "\r\n", "")

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, pdfData, decoded)
}

func TestSendResume_ClientError(t *testing.T) {
	fake := &fakeSES{err: errors.New("throttled")}
	mailer := NewWithClient(fake, "noreply@smartresume.com")

	err := mailer.SendResume(context.Background(), "jane@example.com", "Jane", "Doe", nil)
	assert.ErrorContains(t, err, "failed to send email")
}

func TestAttachmentName(t *testing.T) {
	assert.Equal(t, "Jane_Doe_Resume.pdf", AttachmentName("Jane", "Doe"))
	assert.Equal(t, "Mary_Jane_Watson_Resume.pdf", AttachmentName(" Mary Jane ", "Watson"))
}
