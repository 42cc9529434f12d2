// Package templates provides email template rendering functionality.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

//go:embed *.html *.txt
var templateFS embed.FS

// ReminderItem is one due item rendered into a deadline reminder.
type ReminderItem struct {
	Title    string
	Kind     string
	Status   string
	Priority string
}

// DeadlineReminderData contains data for the deadline reminder template.
type DeadlineReminderData struct {
	UserName    string
	DueDate     string
	Items       []ReminderItem
	CalendarURL string
}

// Renderer renders the embedded email templates. Every email carries an
// HTML body and, when a matching .txt template exists, a plain text body.
type Renderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	html, err := htmltemplate.ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML templates: %w", err)
	}

	text, err := texttemplate.ParseFS(templateFS, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}

	return &Renderer{html: html, text: text}, nil
}

// Render renders both bodies of the named template. A missing text
// template is not an error; the email just goes out HTML-only.
func (r *Renderer) Render(templateName string, data interface{}) (html string, text string, err error) {
	var htmlBuf bytes.Buffer
	if err := r.html.ExecuteTemplate(&htmlBuf, templateName+".html", data); err != nil {
		return "", "", fmt.Errorf("failed to render HTML template %s: %w", templateName, err)
	}

	var textBuf bytes.Buffer
	if err := r.text.ExecuteTemplate(&textBuf, templateName+".txt", data); err != nil {
		return htmlBuf.String(), "", nil
	}

	return htmlBuf.String(), textBuf.String(), nil
}
