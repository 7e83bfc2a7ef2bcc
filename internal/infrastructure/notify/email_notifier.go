package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"plotbook/internal/config"
	"plotbook/internal/domain/entities"
	"plotbook/internal/usecase/interfaces"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

var _ interfaces.INotifier = (*EmailNotifier)(nil)

// EmailNotifier emails the booking's relationship manager when stages go
// overdue.
type EmailNotifier struct {
	cfg    *config.Config
	logger *logrus.Logger
}

func NewEmailNotifier(cfg *config.Config, logger *logrus.Logger) *EmailNotifier {
	return &EmailNotifier{cfg: cfg, logger: logger}
}

func (n *EmailNotifier) SendOverdueAlert(_ context.Context, b entities.Booking, stageNames []string) error {
	if !n.cfg.SMTPConfigured() {
		n.logger.Warnf("SMTP not configured, skipping overdue alert for booking %s", b.ID)
		return nil
	}
	if b.RMEmail == "" {
		n.logger.Warnf("Booking %s has no RM email, skipping overdue alert", b.ID)
		return nil
	}

	e := email.NewEmail()
	e.From = n.cfg.SenderEmail
	e.To = []string{b.RMEmail}
	e.Subject = fmt.Sprintf("Overdue payment stages on booking %s", b.ID)
	e.Text = []byte(fmt.Sprintf(
		"Booking %s (customer %s, plot %s) has overdue stages: %s.\nPlease follow up with the customer.",
		b.ID, b.CustomerID, b.PlotID, strings.Join(stageNames, ", "),
	))

	addr := n.cfg.SMTPHost + ":" + n.cfg.SMTPPort
	auth := smtp.PlainAuth("", n.cfg.SMTPUsername, n.cfg.SMTPPassword, n.cfg.SMTPHost)

	if err := e.Send(addr, auth); err != nil {
		n.logger.Errorf("Failed to send overdue alert for booking %s: %v", b.ID, err)
		return err
	}

	n.logger.Infof("Overdue alert sent to %s for booking %s (%d stages)", b.RMEmail, b.ID, len(stageNames))
	return nil
}
