package mail

import (
	"encoding/base64"
	"fmt"
	"html"
	"strings"
	"time"
)

const mixedBoundary = "smartresume-mixed-boundary"

const bodyTemplate = `<html>
<head>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; }
.header { background: #1a237e; color: white; padding: 20px; text-align: center; }
.content { padding: 20px; }
.footer { padding: 20px; text-align: center; font-size: 12px; color: #666; }
</style>
</head>
<body>
<div class="container">
<div class="header"><h2>Your Professional Resume is Ready!</h2></div>
<div class="content">
<p>Dear %s,</p>
<p>Your professional resume has been successfully generated and is attached to this email.</p>
<p><strong>Resume Details:</strong></p>
<ul>
<li>Format: PDF</li>
<li>Generated: %s</li>
<li>Filename: %s</li>
</ul>
<p>Next Steps:</p>
<ul>
<li>Review your resume for any final adjustments</li>
<li>Customize it further for specific job applications</li>
<li>Use the resume analyzer for additional feedback</li>
</ul>
<p>Best of luck with your job search!</p>
<p>Best regards,<br>The SmartResume Team</p>
</div>
<div class="footer"><p>SmartResume - Professional resume building made easy</p></div>
</div>
</body>
</html>`

// AttachmentName returns the filename used for the mailed PDF.
func AttachmentName(firstName, lastName string) string {
	name := strings.TrimSpace(firstName) + "_" + strings.TrimSpace(lastName)
	name = strings.ReplaceAll(name, " ", "_")
	return name + "_Resume.pdf"
}

// buildResumeMessage assembles the raw multipart/mixed MIME message: an HTML
// body part followed by the base64-encoded PDF attachment.
func buildResumeMessage(from, to, firstName, lastName string, pdfData []byte) []byte {
	filename := AttachmentName(firstName, lastName)
	body := fmt.Sprintf(bodyTemplate,
		html.EscapeString(firstName),
		time.Now().Format("2006-01-02 15:04:05"),
		html.EscapeString(filename),
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s <%s>\r\n", SenderName, from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", to))
	sb.WriteString(fmt.Sprintf("Subject: Your SmartResume - %s %s\r\n", firstName, lastName))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=%q\r\n", mixedBoundary))
	sb.WriteString("\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", mixedBoundary))
	sb.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)
	sb.WriteString("\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", mixedBoundary))
	sb.WriteString("Content-Type: application/pdf\r\n")
	sb.WriteString("Content-Transfer-Encoding: base64\r\n")
	sb.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=%q\r\n", filename))
	sb.WriteString("\r\n")
	sb.WriteString(wrapBase64(base64.StdEncoding.EncodeToString(pdfData)))
	sb.WriteString("\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", mixedBoundary))
	return []byte(sb.String())
}

// wrapBase64 folds encoded content at 76 columns per RFC 2045.
func wrapBase64(encoded string) string {
	const lineLen = 76
	var sb strings.Builder
	for len(encoded) > lineLen {
		sb.WriteString(encoded[:lineLen])
		sb.WriteString("\r\n")
		encoded = encoded[lineLen:]
	}
	sb.WriteString(encoded)
	return sb.String()
}
