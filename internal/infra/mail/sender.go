package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/chittyos/chittyconcierge/internal/infra/queue"
)

var alertTemplate = template.Must(template.New("urgent_lead").Parse(`An urgent message just came in.

From:     {{.Phone}}
Category: {{.Category}} (urgency {{.Urgency}}/5)
Message:  {{.Message}}
{{if .ExtractedInfo.Name}}Name:     {{.ExtractedInfo.Name}}
{{end}}{{if .ExtractedInfo.Email}}Email:    {{.ExtractedInfo.Email}}
{{end}}{{if .ExtractedInfo.Timeframe}}Timeframe: {{.ExtractedInfo.Timeframe}}
{{end}}
Suggested reply (already sent if Twilio was reachable):
{{.SuggestedResponse}}
`))

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string // the property manager's inbox
}

func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

// SendUrgentLeadAlert emails the property manager about one urgent lead.
func (s *EmailSender) SendUrgentLeadAlert(payload queue.LeadCreatedPayload) error {
	var body bytes.Buffer
	if err := alertTemplate.Execute(&body, payload); err != nil {
		return fmt.Errorf("failed to render alert template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("🚨 Urgent %s lead from %s", payload.Category, payload.Phone))
	m.SetBody("text/plain", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send alert email: %w", err)
	}

	return nil
}
