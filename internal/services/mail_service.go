package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"voyago/internal/models/db_models"
	"voyago/internal/store"
	"voyago/pkg/utils"
)

type MailServiceInterface interface {
	SendBookingConfirmation(booking db_models.Booking) error
	SendPasswordReset(email, token string) error
}

type smtpMailService struct {
	store   *store.Store
	htmlTpl *template.Template
	textTpl *template.Template
}

// NewSMTPMailService sends through whatever SMTP host the admin saved in
// EmailSettings, falling back to SMTP_* environment variables.
func NewSMTPMailService(s *store.Store) MailServiceInterface {
	return &smtpMailService{
		store:   s,
		htmlTpl: template.Must(template.New("mailHTML").Parse(baseHTMLTemplate)),
		textTpl: template.Must(template.New("mailText").Parse(plainTextTemplate)),
	}
}

type emailData struct {
	Title     string
	Intro     string
	ButtonURL string
	ButtonTxt string
	AppName   string
	Year      int
}

const baseHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
</head>
<body style="margin:0;padding:24px;background:#f8fafc;font-family:-apple-system,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;color:#0f172a;">
  <div style="max-width:600px;margin:0 auto;background:#ffffff;border-radius:12px;overflow:hidden;border:1px solid #e2e8f0;">
    <div style="padding:24px 32px;border-bottom:1px solid #e2e8f0;">
      <span style="font-weight:700;font-size:20px;color:#2563eb;">{{.AppName}}</span>
    </div>
    <div style="padding:32px;">
      <h1 style="margin:0 0 16px;font-size:24px;">{{.Title}}</h1>
      <p style="margin:0 0 20px;line-height:1.7;color:#475569;">{{.Intro}}</p>
      {{if .ButtonURL}}
        <p style="margin:24px 0;">
          <a href="{{.ButtonURL}}" style="display:inline-block;padding:14px 28px;background:#2563eb;color:#ffffff;text-decoration:none;border-radius:8px;font-weight:600;">{{.ButtonTxt}}</a>
        </p>
        <p style="color:#64748b;font-size:13px;">If the button doesn't work, copy this link:<br>{{.ButtonURL}}</p>
      {{end}}
    </div>
    <div style="padding:20px 32px;color:#64748b;font-size:13px;border-top:1px solid #e2e8f0;">
      © {{.Year}} {{.AppName}}. All rights reserved.
    </div>
  </div>
</body>
</html>`

const plainTextTemplate = `{{.Title}}

{{.Intro}}

{{if .ButtonURL}}Open this link:
{{.ButtonURL}}
{{end}}

{{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) SendBookingConfirmation(booking db_models.Booking) error {
	subject := fmt.Sprintf("Your booking %s is confirmed", booking.ID)
	intro := fmt.Sprintf(
		"Hi %s, your %s booking is confirmed. Reference: %s.",
		booking.CustomerName, booking.Type, booking.ID)
	if booking.ItemName != "" {
		intro = fmt.Sprintf(
			"Hi %s, your booking for %q is confirmed. Reference: %s.",
			booking.CustomerName, booking.ItemName, booking.ID)
	}
	if booking.TravelDate != "" {
		intro += " Travel date: " + booking.TravelDate + "."
	}

	return s.sendRendered(booking.CustomerEmail, subject, emailData{
		Title: subject,
		Intro: intro,
	})
}

func (s *smtpMailService) SendPasswordReset(to, token string) error {
	base := strings.TrimRight(os.Getenv("APP_BASE_URL"), "/")
	link := fmt.Sprintf("%s/admin/reset-password?token=%s", base, url.QueryEscape(token))
	subject := "Reset your admin password"

	return s.sendRendered(to, subject, emailData{
		Title:     subject,
		Intro:     "We received a request to reset the admin password. If you didn't request this, you can safely ignore this email.",
		ButtonURL: link,
		ButtonTxt: "Reset Password",
	})
}

func (s *smtpMailService) config() (db_models.EmailSettings, string, error) {
	cfg := s.store.Settings().Email
	if cfg.SMTPHost == "" {
		cfg.SMTPHost = os.Getenv("SMTP_HOST")
		if port, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
			cfg.SMTPPort = port
		}
		cfg.Username = os.Getenv("SMTP_USERNAME")
		cfg.Password = os.Getenv("SMTP_PASSWORD")
		cfg.FromAddress = os.Getenv("SMTP_FROM")
	}
	if cfg.SMTPHost == "" || cfg.FromAddress == "" {
		return cfg, "", utils.ErrMailNotConfigured
	}

	appName := s.store.Settings().Company.Name
	if appName == "" {
		appName = "Voyago Travels"
	}
	return cfg, appName, nil
}

func (s *smtpMailService) sendRendered(to, subject string, data emailData) error {
	cfg, appName, err := s.config()
	if err != nil {
		return err
	}
	data.AppName = appName
	data.Year = time.Now().Year()

	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return err
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return err
	}

	return s.send(cfg, to, subject, hb.String(), tb.String())
}

func (s *smtpMailService) send(cfg db_models.EmailSettings, to, subject, htmlBody, textBody string) error {
	from := cfg.FromAddress
	fromHeader := from
	if cfg.FromName != "" {
		fromHeader = fmt.Sprintf("%s <%s>", cfg.FromName, from)
	}

	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", fromHeader)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort)
	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.SMTPHost)

	if cfg.UseSSL {
		// SMTPS (implicit TLS, usually port 465)
		tlsCfg := &tls.Config{ServerName: cfg.SMTPHost, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		c, err := smtp.NewClient(conn, cfg.SMTPHost)
		if err != nil {
			return err
		}
		defer c.Quit()

		return smtpTransact(c, auth, from, to, msg.Bytes())
	}

	// STARTTLS path (typically port 587)
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, cfg.SMTPHost)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: cfg.SMTPHost, MinVersion: tls.VersionTLS12}
		if err := c.StartTLS(tlsCfg); err != nil {
			return err
		}
	}

	return smtpTransact(c, auth, from, to, msg.Bytes())
}

func smtpTransact(c *smtp.Client, auth smtp.Auth, from, to string, msg []byte) error {
	if ok, _ := c.Extension("AUTH"); ok {
		if err := c.Auth(auth); err != nil {
			return err
		}
	}
	if err := c.Mail(from); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}
