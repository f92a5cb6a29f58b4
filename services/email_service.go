package services

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"golang.org/x/net/html"

	"maintlog/models"
)

// convertHTMLToText converts HTML content to plain text for email sending
func convertHTMLToText(htmlContent string) string {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		// If parsing fails, return the original content
		return htmlContent
	}

	var text strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			text.WriteString(n.Data)
		case html.ElementNode:
			// Add line breaks for block elements
			switch n.Data {
			case "p", "div", "br", "h1", "h2", "h3", "table", "tr":
				text.WriteString("\n")
			case "td", "th":
				text.WriteString(" | ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	// Collapse runs of blank lines left by nested block elements
	lines := strings.Split(text.String(), "\n")
	var out []string
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return strings.Join(out, "\n")
}

// EmailNotifier sends the day-closure summary once shift C is submitted.
// A nil notifier (or one without SMTP settings) is a no-op.
type EmailNotifier struct {
	host     string
	port     string
	user     string
	password string
	to       string
}

// NewEmailNotifier returns nil when SMTP is not configured so callers can
// keep a plain nil check.
func NewEmailNotifier(host, port, user, password, to string) *EmailNotifier {
	if host == "" || to == "" {
		return nil
	}
	return &EmailNotifier{host: host, port: port, user: user, password: password, to: to}
}

// SendDayClosure emails the summary table for a completed day. Failures are
// logged and never surfaced to the submitting client.
func (n *EmailNotifier) SendDayClosure(date string, logs []models.MaintenanceLog) {
	if n == nil {
		return
	}

	subject := fmt.Sprintf("Maintenance day closed: %s", date)
	body := convertHTMLToText(dayClosureHTML(date, logs))

	if err := n.send(subject, body); err != nil {
		log.Printf("Failed to send day-closure email for %s: %v", date, err)
	}
}

func dayClosureHTML(date string, logs []models.MaintenanceLog) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<h2>Shift log summary for %s</h2>", date))
	b.WriteString("<table><tr><th>Shift</th><th>Electrician</th><th>Submitted</th></tr>")
	for _, l := range logs {
		b.WriteString(fmt.Sprintf("<tr><td>%s</td><td>%s</td><td>%s</td></tr>",
			l.Shift, l.Electrician, l.Timestamp))
	}
	b.WriteString("</table>")
	b.WriteString("<p>All three shifts for this date have been submitted.</p>")
	return b.String()
}

func (n *EmailNotifier) send(subject, body string) error {
	from := n.user
	if from == "" {
		from = "maintenance-log@localhost"
	}

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", n.to),
		fmt.Sprintf("Subject: %s", subject),
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%s", n.host, n.port)
	var auth smtp.Auth
	if n.user != "" {
		auth = smtp.PlainAuth("", n.user, n.password, n.host)
	}

	if err := smtp.SendMail(addr, auth, from, []string{n.to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send failed: %v", err)
	}
	return nil
}
