package mailer

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"log"
	"net"
	"net/smtp"
	"net/url"
	"strings"
	"time"
)

const activationTemplate = `<html>
  <body>
    <p>Welcome! Please activate your account.</p>
    <p><a href="{{.Link}}">Activate account</a></p>
    <p>Token: {{.Token}}</p>
  </body>
</html>`

type SMTPMailer struct {
	host              string
	port              string
	username          string
	password          string
	mailFrom          string
	mailFromName      string
	subject           string
	activationBaseURL string
}

func NewSMTPMailer(host, port, username, password, mailFrom, mailFromName, subject, activationBaseURL string) *SMTPMailer {
	return &SMTPMailer{
		host:              host,
		port:              port,
		username:          username,
		password:          password,
		mailFrom:          mailFrom,
		mailFromName:      mailFromName,
		subject:           subject,
		activationBaseURL: activationBaseURL,
	}
}

func (s *SMTPMailer) SendActivationEmail(to string, token string) error {
	link := fmt.Sprintf("%s?token=%s",
		s.activationBaseURL,
		url.QueryEscape(token),
	)

	htmlBody, err := s.renderActivationTemplate(link, token)
	if err != nil {
		return err
	}

	fromHeader := fmt.Sprintf("%s <%s>", s.mailFromName, s.mailFrom)

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", fromHeader),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", s.subject),
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		htmlBody,
	}, "\r\n")

	addr := net.JoinHostPort(s.host, s.port)
	log.Printf("[MAIL] smtp sending to=%s via=%s", to, addr)

	if err := s.sendSMTPWithTimeout(addr, to, []byte(msg)); err != nil {
		return err
	}

	log.Printf("[MAIL] sent to=%s", to)
	return nil
}

func (s *SMTPMailer) renderActivationTemplate(link, token string) (string, error) {
	tmpl, err := template.New("activation").Parse(activationTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]string{
		"Link":  link,
		"Token": token,
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *SMTPMailer) sendSMTPWithTimeout(addr, to string, msg []byte) error {
	conn, err := net.DialTimeout("tcp", addr, 8*time.Second)
	if err != nil {
		return err
	}
	// deadline covers the whole SMTP conversation
	_ = conn.SetDeadline(time.Now().Add(15 * time.Second))

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return err
	}
	defer func() { _ = c.Quit() }()

	// STARTTLS
	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return err
		}
	}
	// Auth
	if s.username != "" {
		auth := smtp.PlainAuth("", s.username, s.password, s.host)
		if err := c.Auth(auth); err != nil {
			return err
		}
	}

	// From/To
	if err := c.Mail(s.mailFrom); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}

	// Data
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
