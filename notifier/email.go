package notifier

import (
	"bytes"
	"cine-match/catalog"
	"cine-match/recommend"
	"fmt"
	"html/template"
	"log"
	"os"
	"strings"
	"time"

	gomail "gopkg.in/mail.v2"
)

// EmailNotifier sends recommendation digests by email
type EmailNotifier struct {
	smtpHost       string
	smtpPort       int
	senderEmail    string
	username       string
	senderPass     string
	recipientEmail string
	htmlTemplate   *template.Template
}

// EmailConfig contains configuration for email notifications
type EmailConfig struct {
	SMTPHost       string
	SMTPPort       int
	SenderEmail    string
	Username       string
	SenderPassword string
	RecipientEmail string
}

// Enabled reports whether enough is configured to send mail
func (c EmailConfig) Enabled() bool {
	return c.SMTPHost != "" && c.RecipientEmail != ""
}

const digestTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Cine Match - Recommended Movies</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 800px; margin: 0 auto; }
        h1 { color: #e50914; }
        table { width: 100%; border-collapse: collapse; margin-bottom: 20px; }
        th { background-color: #f4f4f4; text-align: left; padding: 10px; }
        td { padding: 10px; border-bottom: 1px solid #ddd; }
        .criteria { font-style: italic; color: #666; }
        .count { font-weight: bold; color: #e50914; }
        .footer { font-size: 12px; color: #666; margin-top: 50px; text-align: center; }
    </style>
</head>
<body>
    <h1>Cine Match - Recommended Movies</h1>
    <p class="criteria">Genres: {{.Genres}} &middot; Minimum rating: {{.MinRating}} &middot; Years: {{.StartYear}}-{{.EndYear}}</p>
    <p>Matching movies: <span class="count">{{len .Movies}}</span></p>

    {{if .Movies}}
    <table>
        <tr>
            <th>Title</th>
            <th>Year</th>
            <th>Genre</th>
            <th>Rating</th>
        </tr>
        {{range .Movies}}
        <tr>
            <td>{{.Title}}</td>
            <td>{{.Year}}</td>
            <td>{{.Genre}}</td>
            <td>{{.Rating}}</td>
        </tr>
        {{end}}
    </table>
    {{else}}
    <p>No movies in the catalog match your preferences.</p>
    {{end}}

    <div class="footer">
        <p>Generated on {{.Date}}. This is an automated email from Cine Match. Please do not reply.</p>
    </div>
</body>
</html>
`

// NewEmailNotifier creates a new email notifier
func NewEmailNotifier(config EmailConfig) (*EmailNotifier, error) {
	tmpl, err := template.New("digest").Parse(digestTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse email template: %w", err)
	}

	username := config.Username
	if username == "" {
		username = "api"
	}

	return &EmailNotifier{
		smtpHost:       config.SMTPHost,
		smtpPort:       config.SMTPPort,
		senderEmail:    config.SenderEmail,
		username:       username,
		senderPass:     config.SenderPassword,
		recipientEmail: config.RecipientEmail,
		htmlTemplate:   tmpl,
	}, nil
}

// GetEmailConfigFromEnv loads email configuration from environment variables
func GetEmailConfigFromEnv() EmailConfig {
	smtpPort := 587
	if portStr := os.Getenv("EMAIL_SMTP_PORT"); portStr != "" {
		if p, err := fmt.Sscanf(portStr, "%d", &smtpPort); err != nil || p != 1 {
			log.Printf("Invalid SMTP port '%s', using default 587", portStr)
			smtpPort = 587
		}
	}

	return EmailConfig{
		SMTPHost:       os.Getenv("EMAIL_SMTP_HOST"),
		SMTPPort:       smtpPort,
		SenderEmail:    os.Getenv("EMAIL_SENDER"),
		Username:       os.Getenv("EMAIL_USERNAME"),
		SenderPassword: os.Getenv("EMAIL_PASSWORD"),
		RecipientEmail: os.Getenv("EMAIL_RECIPIENT"),
	}
}

// MaskSecret shows at most the first and last four characters of s
func MaskSecret(s string) string {
	switch {
	case s == "":
		return ""
	case len(s) > 8:
		return s[:4] + "..." + s[len(s)-4:]
	default:
		return "***"
	}
}

type digestData struct {
	Date      string
	Genres    string
	MinRating string
	StartYear int
	EndYear   int
	Movies    []catalog.Movie
}

func newDigestData(prefs recommend.Preferences, movies []catalog.Movie, now time.Time) digestData {
	genres := "any"
	if len(prefs.Genres) > 0 {
		genres = strings.Join(prefs.Genres, ", ")
	}
	return digestData{
		Date:      now.Format("January 2, 2006 at 3:04 PM"),
		Genres:    genres,
		MinRating: catalog.FormatRating(prefs.MinRating),
		StartYear: prefs.YearRange.Start,
		EndYear:   prefs.YearRange.End,
		Movies:    movies,
	}
}

// RenderRecommendations builds the plain text and HTML bodies of a digest
func (n *EmailNotifier) RenderRecommendations(prefs recommend.Preferences, movies []catalog.Movie, now time.Time) (string, string, error) {
	data := newDigestData(prefs, movies, now)

	var html bytes.Buffer
	if err := n.htmlTemplate.Execute(&html, data); err != nil {
		return "", "", fmt.Errorf("failed to render email template: %w", err)
	}

	var plain strings.Builder
	fmt.Fprintf(&plain, "Cine Match Recommendations\n\n")
	fmt.Fprintf(&plain, "Genres: %s, minimum rating: %s, years: %d-%d\n\n",
		data.Genres, data.MinRating, data.StartYear, data.EndYear)
	plain.WriteString("Recommended Movies:\n")
	for _, m := range movies {
		plain.WriteString(m.String())
		plain.WriteString("\n")
	}
	fmt.Fprintf(&plain, "\nGenerated on %s. This is an automated email from Cine Match. Please do not reply.", data.Date)

	return plain.String(), html.String(), nil
}

// NotifyRecommendations emails the movies matching prefs
func (n *EmailNotifier) NotifyRecommendations(prefs recommend.Preferences, movies []catalog.Movie) error {
	if n.recipientEmail == "" {
		log.Println("No recipient email configured, skipping notification")
		return nil
	}

	log.Printf("Email configuration - SMTP Host: %s, Port: %d, Sender: %s, Token: %s",
		n.smtpHost, n.smtpPort, n.senderEmail, MaskSecret(n.senderPass))

	plain, html, err := n.RenderRecommendations(prefs, movies, time.Now())
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.senderEmail)
	m.SetHeader("To", n.recipientEmail)
	m.SetHeader("Subject", fmt.Sprintf("Cine Match: %d Recommended Movies", len(movies)))
	m.SetBody("text/plain", plain)
	m.AddAlternative("text/html", html)

	d := gomail.NewDialer(n.smtpHost, n.smtpPort, n.username, n.senderPass)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("Recommendation digest sent to %s with %d movies", n.recipientEmail, len(movies))
	return nil
}
