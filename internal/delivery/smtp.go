package delivery

import (
	"context"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// SMTPMailer sends through a plain SMTP relay, mainly for local
// development against a mailcatcher. SMTP has no provider id, so one is
// minted locally and stamped as the Message-ID.
type SMTPMailer struct {
	Host     string
	Port     int
	User     string
	Password string
}

func (s *SMTPMailer) Send(ctx context.Context, msg Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := uuid.NewString()

	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", "<"+id+"@scenemail>")
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetBody("text/html", msg.HTML)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return "", err
	}

	return id, nil
}
