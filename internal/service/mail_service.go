package service

import (
	"strings"

	"sauvetage/config"
	"sauvetage/internal/repository"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Sender delivers a rendered mail. Tests substitute a recording fake.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

type SMTPSender struct {
	cfg config.SMTPConfig
}

func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	return d.DialAndSend(m)
}

// MailService looks up the active template for a mail type, substitutes
// placeholders and hands the result to the Sender.
type MailService struct {
	templates *repository.EmailTemplateRepository
	sender    Sender
	log       *zap.Logger
}

func NewMailService(templates *repository.EmailTemplateRepository, sender Sender, log *zap.Logger) *MailService {
	return &MailService{templates: templates, sender: sender, log: log}
}

// SendTemplate renders and sends the active template of the given type.
// Missing or inactive templates are an error so callers can decide whether
// the mail was required.
func (s *MailService) SendTemplate(typ, to string, vars map[string]string) error {
	tpl, err := s.templates.GetActiveByType(typ)
	if err != nil {
		return err
	}
	subject := Render(tpl.Sujet, vars)
	body := Render(tpl.Corps, vars)
	if err := s.sender.Send(to, subject, body); err != nil {
		s.log.Error("mail send failed", zap.String("type", typ), zap.String("to", to), zap.Error(err))
		return err
	}
	return nil
}

// Render replaces every {{key}} token with its value. Unknown tokens are left
// as-is so a template typo is visible instead of silently blanked.
func Render(text string, vars map[string]string) string {
	for k, v := range vars {
		text = strings.ReplaceAll(text, "{{"+k+"}}", v)
	}
	return text
}
