// Package email composes the fixed notification templates and hands them to
// the SMTP transport. Exactly one send attempt per call; failures are logged
// here and never abort event processing. The returned error is advisory: the
// notification engine reads it only to decide the email_sent flag.
package email

import (
	"fmt"
	"time"

	"github.com/wb-go/wbf/zlog"
)

const timeLayout = "2006-01-02 15:04:05"

type mailer interface {
	Send(to, subject, body string) error
}

// Sender builds subjects and bodies for each notification category.
type Sender struct {
	client mailer
	now    func() time.Time
}

// NewSender creates a Sender on top of an SMTP client.
func NewSender(client mailer) *Sender {
	return &Sender{client: client, now: time.Now}
}

func (s *Sender) send(to, subject, body string) error {
	if err := s.client.Send(to, subject, body); err != nil {
		zlog.Logger.Error().Err(err).Str("to", to).Msg("failed to send email")
		return err
	}

	zlog.Logger.Info().Str("to", to).Msg("email sent")
	return nil
}

func (s *Sender) sentAt() string {
	return "Sent at: " + s.now().Format(timeLayout)
}

// SendProjectCreated confirms to the client that their project was posted.
func (s *Sender) SendProjectCreated(clientEmail, projectTitle string) error {
	subject := fmt.Sprintf("Your Project '%s' Has Been Posted Successfully!", projectTitle)
	body := "Dear Client,\n\n" +
		fmt.Sprintf("Your project '%s' has been successfully posted on Freelance Nexus!\n", projectTitle) +
		"Freelancers can now view and submit proposals for your project.\n\n" +
		"What's Next?\n" +
		"- Review proposals as they come in\n" +
		"- Compare freelancer profiles and ratings\n" +
		"- Select the best candidate for your project\n\n" +
		"Visit your dashboard to manage your project.\n\n" +
		"Best regards,\nFreelance Nexus Team\n" + s.sentAt()

	return s.send(clientEmail, subject, body)
}

// SendProposalReceived tells the client a new proposal came in.
func (s *Sender) SendProposalReceived(clientEmail, freelancerName, projectTitle string) error {
	subject := fmt.Sprintf("New Proposal Received for '%s'", projectTitle)
	body := "Dear Client,\n\n" +
		fmt.Sprintf("Great news! %s has submitted a proposal for your project '%s'.\n\n", freelancerName, projectTitle) +
		"Proposal Details:\n" +
		fmt.Sprintf("- Freelancer: %s\n", freelancerName) +
		fmt.Sprintf("- Project: %s\n\n", projectTitle) +
		"Action Required:\n" +
		"Review the proposal and freelancer profile to make an informed decision.\n\n" +
		"View Proposal: [Dashboard Link]\n\n" +
		"Best regards,\nFreelance Nexus Team\n" + s.sentAt()

	return s.send(clientEmail, subject, body)
}

// SendProposalAccepted congratulates the freelancer assigned to a project.
func (s *Sender) SendProposalAccepted(freelancerEmail, projectTitle string) error {
	subject := fmt.Sprintf("Congratulations! Your Proposal for '%s' Has Been Accepted", projectTitle)
	body := "Dear Freelancer,\n\n" +
		fmt.Sprintf("Congratulations! Your proposal has been accepted for the project '%s'.\n\n", projectTitle) +
		"Next Steps:\n" +
		"1. Review the project requirements carefully\n" +
		"2. Communicate with the client to clarify any details\n" +
		"3. Start working on the project\n" +
		"4. Submit deliverables as per the agreed timeline\n\n" +
		"Project Details: [View in Dashboard]\n\n" +
		"Remember to maintain professional communication and deliver quality work.\n\n" +
		"Good luck with your project!\n\n" +
		"Best regards,\nFreelance Nexus Team\n" + s.sentAt()

	return s.send(freelancerEmail, subject, body)
}

// SendPaymentCompleted confirms an outgoing payment to the payer.
func (s *Sender) SendPaymentCompleted(payerEmail string, amount float64, transactionID, currency string) error {
	subject := fmt.Sprintf("Payment Confirmation - Transaction #%s", transactionID)
	body := "Dear User,\n\n" +
		"Your payment has been processed successfully!\n\n" +
		"Transaction Details:\n" +
		fmt.Sprintf("- Amount: %.2f %s\n", amount, currency) +
		fmt.Sprintf("- Transaction ID: %s\n", transactionID) +
		fmt.Sprintf("- Date: %s\n", s.now().Format(timeLayout)) +
		"- Status: COMPLETED\n\n" +
		"This payment has been credited to the recipient's account.\n\n" +
		"View Transaction History: [Dashboard Link]\n\n" +
		"Thank you for using Freelance Nexus!\n\n" +
		"Best regards,\nFreelance Nexus Team\n" + s.sentAt()

	return s.send(payerEmail, subject, body)
}

// SendPaymentReceived notifies the receiver of an incoming payment.
func (s *Sender) SendPaymentReceived(receiverEmail string, amount float64, transactionID, projectTitle, currency string) error {
	subject := fmt.Sprintf("Payment Received - %.2f %s", amount, currency)
	body := "Dear Freelancer,\n\n" +
		"Great news! You've received a payment for your work.\n\n" +
		"Payment Details:\n" +
		fmt.Sprintf("- Amount: %.2f %s\n", amount, currency) +
		fmt.Sprintf("- Project: %s\n", projectTitle) +
		fmt.Sprintf("- Transaction ID: %s\n", transactionID) +
		fmt.Sprintf("- Date: %s\n\n", s.now().Format(timeLayout)) +
		"The funds are now available in your account.\n\n" +
		"View Balance: [Dashboard Link]\n\n" +
		"Thank you for your excellent work!\n\n" +
		"Best regards,\nFreelance Nexus Team\n" + s.sentAt()

	return s.send(receiverEmail, subject, body)
}

// SendGeneric sends an arbitrary subject and body, stamping the footer.
func (s *Sender) SendGeneric(to, subject, bodyContent string) error {
	body := bodyContent + "\n\n" + s.sentAt()

	return s.send(to, subject, body)
}
