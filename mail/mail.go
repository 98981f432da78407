// ABOUTME: Outbound email delivery over SMTP
// ABOUTME: Falls back to logging messages when no credentials are configured
package mail

import (
	"log"

	gomail "gopkg.in/gomail.v2"
)

type Config struct {
	SMTPServer string
	SMTPPort   int
	Username   string
	Password   string
	FromEmail  string
	FromName   string
	AdminEmail string
}

type Mailer struct {
	cfg Config
}

func New(cfg Config) *Mailer {
	if cfg.SMTPServer == "" {
		cfg.SMTPServer = "smtp.gmail.com"
	}
	if cfg.SMTPPort == 0 {
		cfg.SMTPPort = 587
	}
	if cfg.FromEmail == "" {
		cfg.FromEmail = "noreply@cravekind.ca"
	}
	if cfg.FromName == "" {
		cfg.FromName = "CraveKind"
	}
	return &Mailer{cfg: cfg}
}

// Send delivers one email and reports whether it went out. Email is
// best effort everywhere in this app; failures are logged, never fatal.
// Without SMTP credentials the message is logged and counted as sent.
func (m *Mailer) Send(to, subject, htmlBody, textBody string) bool {
	if m.cfg.Username == "" || m.cfg.Password == "" {
		log.Printf("mail: no SMTP credentials, logging instead")
		log.Printf("mail: to=%s subject=%q", to, subject)
		if textBody != "" {
			log.Printf("mail: body:\n%s", textBody)
		}
		return true
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.FromEmail, m.cfg.FromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	if textBody != "" {
		msg.SetBody("text/plain", textBody)
		msg.AddAlternative("text/html", htmlBody)
	} else {
		msg.SetBody("text/html", htmlBody)
	}

	dialer := gomail.NewDialer(m.cfg.SMTPServer, m.cfg.SMTPPort, m.cfg.Username, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Printf("mail: failed to send to %s: %v", to, err)
		return false
	}

	log.Printf("mail: sent to %s", to)
	return true
}

// AdminEmail is where contact-form alerts go.
func (m *Mailer) AdminEmail() string {
	if m.cfg.AdminEmail != "" {
		return m.cfg.AdminEmail
	}
	return "cravekind@gmail.com"
}
