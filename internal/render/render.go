// Package render turns a ResumeRecord into a self-contained styled HTML
// fragment. The same output feeds the live preview and the PDF export path.
package render

import (
	"html"
	"strings"
	"time"

	"github.com/michal/smartresume/internal/template"
	"github.com/michal/smartresume/internal/types"
)

// Role accent colors, keyed by job role id.
var roleColors = map[string]string{
	"full-stack-developer": "#1a237e",
	"data-analyst":         "#2e7d32",
	"mobile-developer":     "#e65100",
	"backend-developer":    "#4a148c",
	"frontend-developer":   "#c62828",
}

const defaultColor = "#1a237e"

// Renderer expands resume templates. The zero value is not usable; construct
// with NewRenderer. A Renderer holds no per-call state and is safe for
// concurrent use.
type Renderer struct {
	engine *template.Engine
}

// NewRenderer creates a renderer using the given template loader. A nil
// loader means every render uses the built-in default template.
func NewRenderer(loader template.Loader) *Renderer {
	return &Renderer{engine: template.NewEngine(loader, defaultTemplate)}
}

// Render produces the HTML fragment for a record using the template named by
// its job role, falling back to the built-in default. The output is always a
// complete fragment, even for an empty record.
func (r *Renderer) Render(record *types.ResumeRecord) string {
	return r.engine.Render(record.TemplateID(), BuildContext(record))
}

// AccentColor returns the accent color for a role id.
func AccentColor(roleID string) string {
	if c, ok := roleColors[roleID]; ok {
		return c
	}
	return defaultColor
}

// BuildContext converts a record into the generic data tree the template
// layer consumes. Incomplete entries are dropped here, scalar values are
// HTML-escaped, and dates are formatted for display, so templates only ever
// see render-ready values.
func BuildContext(record *types.ResumeRecord) map[string]any {
	p := record.PersonalInfo
	ctx := map[string]any{
		"personalInfo": map[string]any{
			"firstName": html.EscapeString(p.FirstName),
			"lastName":  html.EscapeString(p.LastName),
			"email":     html.EscapeString(p.Email),
			"phone":     html.EscapeString(p.Phone),
			"address":   html.EscapeString(p.Address),
			"linkedin":  html.EscapeString(p.LinkedIn),
			"website":   html.EscapeString(p.Website),
			"objective": html.EscapeString(p.Objective),
		},
		"fullName":    html.EscapeString(p.FullName()),
		"accentColor": AccentColor(record.RoleID()),
	}

	role := map[string]any{"id": "", "name": "", "template": ""}
	if record.JobRole != nil {
		role["id"] = record.JobRole.ID
		role["name"] = html.EscapeString(record.JobRole.Name)
		role["template"] = record.JobRole.Template
	}
	ctx["jobRole"] = role

	experience := make([]any, 0, len(record.Experience))
	for _, e := range record.CompleteExperience() {
		end := "Present"
		if !e.Current {
			end = formatMonth(e.EndDate)
		}
		experience = append(experience, map[string]any{
			"title":       html.EscapeString(e.Title),
			"company":     html.EscapeString(e.Company),
			"startDate":   formatMonth(e.StartDate),
			"endDate":     end,
			"current":     e.Current,
			"description": html.EscapeString(e.Description),
		})
	}
	ctx["experience"] = experience

	education := make([]any, 0, len(record.Education))
	for _, e := range record.CompleteEducation() {
		education = append(education, map[string]any{
			"degree":      html.EscapeString(e.Degree),
			"institution": html.EscapeString(e.Institution),
			"year":        html.EscapeString(e.Year),
			"gpa":         html.EscapeString(e.GPA),
			"location":    html.EscapeString(e.Location),
		})
	}
	ctx["education"] = education

	ctx["skills"] = map[string]any{
		"technical": escapeList(record.Skills.Technical),
		"soft":      escapeList(record.Skills.Soft),
	}

	certifications := make([]any, 0, len(record.Certifications))
	for _, c := range record.CompleteCertifications() {
		certifications = append(certifications, map[string]any{
			"name":   html.EscapeString(c.Name),
			"issuer": html.EscapeString(c.Issuer),
			"year":   html.EscapeString(c.Year),
		})
	}
	ctx["certifications"] = certifications

	languages := make([]any, 0, len(record.Languages))
	for _, l := range record.CompleteLanguages() {
		languages = append(languages, map[string]any{
			"name":  html.EscapeString(l.Name),
			"level": html.EscapeString(l.Level),
		})
	}
	ctx["languages"] = languages

	return ctx
}

func escapeList(items []string) []any {
	out := make([]any, 0, len(items))
	for _, s := range items {
		out = append(out, html.EscapeString(s))
	}
	return out
}

// formatMonth renders a "YYYY-MM" month input value as "Jan 2006". Values
// that do not parse are passed through unchanged.
func formatMonth(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return s
	}
	return t.Format("Jan 2006")
}
