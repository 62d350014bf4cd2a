package notify

import (
	"bytes"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

// WelcomeData fills the welcome email templates
type WelcomeData struct {
	FullName          string
	Email             string
	CompanyName       string
	LoginURL          string
	TemporaryPassword string
}

const welcomeText = `Hello {{.FullName}},

An account was created for you{{if .CompanyName}} at {{.CompanyName}}{{end}} on Maintenance Hub.

Sign in at {{.LoginURL}} with {{.Email}}.
{{- if .TemporaryPassword}}
Temporary password: {{.TemporaryPassword}}
Please change it after your first login.
{{- end}}
`

const welcomeHTML = `<p>Hello {{.FullName}},</p>
<p>An account was created for you{{if .CompanyName}} at <strong>{{.CompanyName}}</strong>{{end}} on Maintenance Hub.</p>
<p>Sign in at <a href="{{.LoginURL}}">{{.LoginURL}}</a> with <code>{{.Email}}</code>.</p>
{{- if .TemporaryPassword}}
<p>Temporary password: <code>{{.TemporaryPassword}}</code><br>Please change it after your first login.</p>
{{- end}}
`

var (
	welcomeTextTmpl = texttemplate.Must(texttemplate.New("welcome.txt").Parse(welcomeText))
	welcomeHTMLTmpl = htmltemplate.Must(htmltemplate.New("welcome.html").Parse(welcomeHTML))
)

// WelcomeMessage renders the welcome email sent to invited users
func WelcomeMessage(data WelcomeData) (*Message, error) {
	var text, html bytes.Buffer
	if err := welcomeTextTmpl.Execute(&text, data); err != nil {
		return nil, err
	}
	if err := welcomeHTMLTmpl.Execute(&html, data); err != nil {
		return nil, err
	}

	subject := "Welcome to Maintenance Hub"
	if data.CompanyName != "" {
		subject += " - " + data.CompanyName
	}

	return &Message{
		To:      data.Email,
		Subject: subject,
		Text:    strings.TrimSpace(text.String()),
		HTML:    html.String(),
	}, nil
}
