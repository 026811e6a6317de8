// Package extract pulls plain text out of uploaded resume documents so the
// analyzer can score them.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Media types accepted by the analyze upload endpoint.
const (
	MediaTypePDF  = "application/pdf"
	MediaTypeDoc  = "application/msword"
	MediaTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ErrNoText is returned when a document parses but yields no readable text.
var ErrNoText = errors.New("could not extract text from the uploaded file")

// UnsupportedTypeError is returned for media types the extractor does not
// handle.
type UnsupportedTypeError struct {
	MediaType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.MediaType)
}

var (
	xmlTagPattern     = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Text extracts plain text from a document of the given media type. The
// result always has collapsed whitespace and no leading or trailing space.
func Text(mediaType string, data []byte) (string, error) {
	var (
		text string
		err  error
	)

	switch mediaType {
	case MediaTypePDF:
		text, err = pdfText(data)
	case MediaTypeDoc:
		text = docText(data)
	case MediaTypeDocx:
		text, err = docxText(data)
	default:
		return "", &UnsupportedTypeError{MediaType: mediaType}
	}
	if err != nil {
		return "", err
	}

	text = normalize(text)
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	// GetContent returns the raw document.xml; strip markup and entities.
	content := doc.Editable().GetContent()
	content = xmlTagPattern.ReplaceAllString(content, " ")
	return html.UnescapeString(content), nil
}

// docText salvages readable text from a legacy binary .doc file by keeping
// only printable ASCII. Crude, but matches what the upload flow has always
// accepted for this format.
func docText(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		if (b >= 0x20 && b <= 0x7e) || b == '\n' || b == '\r' {
			sb.WriteByte(b)
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func normalize(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}
