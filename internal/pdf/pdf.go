// Package pdf renders resume HTML into a PDF document using a headless
// browser. Requires Chrome/Chromium to be installed on the system.
package pdf

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultTimeout bounds a single print job.
const DefaultTimeout = 30 * time.Second

// A4 paper with 15mm margins, expressed in inches for the print API.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
	marginInches      = 0.59
)

// Generator turns rendered resume HTML into PDF bytes.
type Generator struct {
	timeout time.Duration
}

// NewGenerator returns a Generator with the given per-job timeout; a
// non-positive timeout falls back to DefaultTimeout.
func NewGenerator(timeout time.Duration) *Generator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Generator{timeout: timeout}
}

// FromHTML prints a standalone HTML document to PDF.
func (g *Generator) FromHTML(ctx context.Context, html string) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, g.timeout)
	defer cancel()

	var pdfData []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("data:text/html,"+url.PathEscape(html)),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithMarginTop(marginInches).
				WithMarginBottom(marginInches).
				WithMarginLeft(marginInches).
				WithMarginRight(marginInches).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfData = data
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf rendering failed: %w", err)
	}

	return pdfData, nil
}
