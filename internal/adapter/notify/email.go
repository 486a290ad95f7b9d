package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/wneessen/go-mail"

	"zephyrtask/internal/core/domain"
	"zephyrtask/internal/core/ports"
)

// EmailConfig carries the SMTP transport settings. The server is expected to
// speak implicit TLS (the classic port 465 setup).
type EmailConfig struct {
	Host     string
	Port     int
	Login    string
	Password string
	From     string
}

// EmailNotifier renders notification payloads as two-part messages (plain
// text plus an HTML table) and delivers them over SMTP.
type EmailNotifier struct {
	cfg EmailConfig
}

var _ ports.Notifier = (*EmailNotifier)(nil)

func NewEmailNotifier(cfg EmailConfig) *EmailNotifier {
	return &EmailNotifier{cfg: cfg}
}

const reminderHTMLTemplate = `<html>
<body>
  <p>You have <b>{{len .Tasks}}</b> upcoming task(s)
     within the next {{.WindowHours}} hour(s).<br>
     {{.AdditionalText}}</p>
  <table border="1" cellpadding="5" cellspacing="0" style="border-collapse: collapse;">
    <tr>
      <th>Time</th>
      <th>Event</th>
      <th>Value</th>
    </tr>
{{- range .Tasks}}
    <tr>
      <td>{{.Time}}</td>
      <td>{{.Event}}</td>
      <td>{{.Value}}</td>
    </tr>
{{- end}}
  </table>
</body>
</html>
`

const rewardHTMLTemplate = `<html>
<body>
  <h2>Congratulations on Your Achievement!</h2>
  <p>You have earned a total of <b>{{.Total}}</b> points,
     meeting your goal of <b>{{.Threshold}}</b>.</p>
  <p>{{.RewardMessage}}</p>
{{- if .Joke}}
  <p><i>Here's a joke to celebrate: "{{.Joke}}"</i></p>
{{- end}}
{{- if .CompletedTasks}}
  <h3>Your Completed Tasks:</h3>
  <table border="1" cellpadding="5" cellspacing="0" style="border-collapse: collapse;">
    <tr>
      <th>Time</th>
      <th>Event</th>
      <th>Value</th>
    </tr>
{{- range .CompletedTasks}}
    <tr>
      <td>{{.Time}}</td>
      <td>{{.Event}}</td>
      <td>{{.Value}}</td>
    </tr>
{{- end}}
  </table>
{{- end}}
</body>
</html>
`

var (
	reminderHTML = template.Must(template.New("reminder").Parse(reminderHTMLTemplate))
	rewardHTML   = template.Must(template.New("reward").Parse(rewardHTMLTemplate))
)

// SendReminder delivers a due-soon summary to the payload's recipient.
func (n *EmailNotifier) SendReminder(ctx context.Context, payload domain.ReminderPayload) error {
	text, html, err := reminderBodies(payload)
	if err != nil {
		return err
	}
	return n.send(ctx, payload.To, "Upcoming Task Reminder", text, html)
}

// SendReward delivers a threshold-reached summary to the payload's
// recipient.
func (n *EmailNotifier) SendReward(ctx context.Context, payload domain.RewardPayload) error {
	text, html, err := rewardBodies(payload)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Goal Achievement Reward: %d points", payload.Total)
	return n.send(ctx, payload.To, subject, text, html)
}

func reminderBodies(payload domain.ReminderPayload) (string, string, error) {
	var text strings.Builder
	text.WriteString("You have upcoming tasks.\n")
	fmt.Fprintf(&text, "Deadline window: %d hours.\n", payload.WindowHours)
	text.WriteString(payload.AdditionalText + "\n\n")
	text.WriteString("Please view the HTML part for a detailed table.")

	var html bytes.Buffer
	if err := reminderHTML.Execute(&html, payload); err != nil {
		return "", "", fmt.Errorf("render reminder: %w", err)
	}
	return text.String(), html.String(), nil
}

func rewardBodies(payload domain.RewardPayload) (string, string, error) {
	var text strings.Builder
	fmt.Fprintf(&text, "Congratulations! You have reached %d points, meeting your goal of %d.\n", payload.Total, payload.Threshold)
	text.WriteString(payload.RewardMessage + "\n\n")
	if payload.Joke != "" {
		text.WriteString(payload.Joke + "\n\n")
	}
	text.WriteString("Please view the HTML part for more details.")

	var html bytes.Buffer
	if err := rewardHTML.Execute(&html, payload); err != nil {
		return "", "", fmt.Errorf("render reward: %w", err)
	}
	return text.String(), html.String(), nil
}

func (n *EmailNotifier) send(ctx context.Context, to, subject, text, html string) error {
	msg := mail.NewMsg()
	if err := msg.From(n.cfg.From); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, text)
	msg.AddAlternativeString(mail.TypeTextHTML, html)

	client, err := mail.NewClient(
		n.cfg.Host,
		mail.WithPort(n.cfg.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(n.cfg.Login),
		mail.WithPassword(n.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
