package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host         string
	Port         int
	Username     string
	Password     string
	FromAddress  string
	FromName     string
	DashboardURL string // Base URL for ticket links in outgoing mail
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// SendTicketAssignedEmail notifies an agent that a ticket was assigned to them.
func (s *SMTPEmailService) SendTicketAssignedEmail(to, ticketTitle string, ticketID uint) error {
	ticketURL := fmt.Sprintf("%s/tickets/%d", s.config.DashboardURL, ticketID)

	subject := fmt.Sprintf("Ticket assigned to you: %s", ticketTitle)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>A ticket has been assigned to you</h2>
			<p><strong>%s</strong></p>
			<p><a href="%s">Open the ticket</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
		</body>
		</html>
	`, ticketTitle, ticketURL, ticketURL)

	plainBody := fmt.Sprintf(`
A ticket has been assigned to you.

%s

Open it here:
%s
	`, ticketTitle, ticketURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

// SendTicketReceivedEmail confirms to a requester that their ticket was created.
func (s *SMTPEmailService) SendTicketReceivedEmail(to, ticketTitle string) error {
	subject := fmt.Sprintf("We received your request: %s", ticketTitle)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your request has been received</h2>
			<p><strong>%s</strong></p>
			<p>Our support team will get back to you as soon as possible.</p>
			<p>You can reply to this email to add more information.</p>
		</body>
		</html>
	`, ticketTitle)

	plainBody := fmt.Sprintf(`
Your request has been received.

%s

Our support team will get back to you as soon as possible.
You can reply to this email to add more information.
	`, ticketTitle)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
