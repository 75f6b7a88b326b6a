// Package web holds the console's HTML templates and the helpers they call.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"report-console/internal/models"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/*.html
var files embed.FS

// Raw HTML inside remarks is escaped: WithUnsafe is not set.
var md = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// FuncMap returns the template helpers. Timestamps are shown in loc.
func FuncMap(loc *time.Location) template.FuncMap {
	return template.FuncMap{
		"formatDate":     func(s string) string { return FormatDate(s, loc) },
		"formatDateTime": func(s string) string { return FormatDateTime(s, loc) },
		"markdown":       Markdown,
		"statusLabel":    func(s models.Status) string { return s.Label() },
		"roleLabel":      RoleLabel,
		"orDash":         orDash,
		"add":            func(a, b int) int { return a + b },
	}
}

// Templates parses every page template with its shared partials.
func Templates(loc *time.Location) (*template.Template, error) {
	return template.New("").Funcs(FuncMap(loc)).ParseFS(files, "templates/*.html")
}

func FormatDate(s string, loc *time.Location) string {
	t, ok := models.ParseTimestamp(s, loc)
	if !ok {
		return "-"
	}
	return t.Format("2006/01/02")
}

func FormatDateTime(s string, loc *time.Location) string {
	t, ok := models.ParseTimestamp(s, loc)
	if !ok {
		return "-"
	}
	return t.Format("2006/01/02 15:04")
}

// Markdown renders free text safely; on failure the text is shown escaped.
func Markdown(s string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(s), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(s))
	}
	return template.HTML(buf.String())
}

func RoleLabel(r models.UserRole) string {
	if r == models.RoleAdmin {
		return "Administrator"
	}
	return "User"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
