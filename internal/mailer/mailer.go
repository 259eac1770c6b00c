// Package mailer sends transactional email over SMTP.
package mailer

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/autogy/listing-service/internal/listing/domain"
)

// sender abstracts gomail's dialer so tests can capture messages.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Mailer struct {
	sender sender
	from   string
	logger *zap.Logger
}

func New(host string, port int, username, password, from string, logger *zap.Logger) *Mailer {
	return &Mailer{
		sender: gomail.NewDialer(host, port, username, password),
		from:   from,
		logger: logger,
	}
}

// SendListingSold tells the dealer their listing was marked sold and
// when it will leave the public catalog.
func (m *Mailer) SendListingSold(to string, listing *domain.Listing) error {
	subject := fmt.Sprintf("Your listing %q is marked as sold", listing.Title)
	body := fmt.Sprintf(
		"<p>Congratulations on the sale of <strong>%s %s (%d)</strong>!</p>"+
			"<p>The listing stays visible to buyers for another 24 hours and is then removed from search results. "+
			"You can restore it from your dashboard at any time if the sale falls through.</p>",
		listing.Make, listing.Model, listing.Year)
	return m.send(to, subject, body)
}

// SendDealerDecision notifies an applicant of the admin's verdict.
func (m *Mailer) SendDealerDecision(to string, dealer *domain.Dealer, approved bool) error {
	var subject, body string
	if approved {
		subject = "Your dealership has been approved"
		body = fmt.Sprintf(
			"<p>Good news! <strong>%s</strong> is now approved and visible in the dealer directory.</p>"+
				"<p>You can start publishing listings right away.</p>",
			dealer.BusinessName)
	} else {
		subject = "Your dealership application was not approved"
		body = fmt.Sprintf(
			"<p>Unfortunately the application for <strong>%s</strong> was not approved.</p>"+
				"<p>Reply to this email if you believe this is a mistake.</p>",
			dealer.BusinessName)
	}
	return m.send(to, subject, body)
}

func (m *Mailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.sender.DialAndSend(msg); err != nil {
		return fmt.Errorf("mailer: failed to send %q to %s: %w", subject, to, err)
	}
	m.logger.Debug("mail sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
