package notification

import (
	"fmt"
	"time"

	"github.com/merchantops/backoffice/services/monitoring/logging"
	"github.com/merchantops/backoffice/utils"
	"github.com/shopspring/decimal"
)

const templateDir = "static/templates/"

// Mailer delivers one fully rendered message to a single recipient.
// No retry is performed here; delivery is best-effort by contract.
type Mailer interface {
	SendEmail(to, subject, body string) error
}

type TransferNotifier struct {
	mailer Mailer
	logger *logging.Logger
}

func NewTransferNotifier(mailer Mailer, logger *logging.Logger) *TransferNotifier {
	return &TransferNotifier{
		mailer: mailer,
		logger: logger,
	}
}

// TransferEmailData feeds the transfer_sent / transfer_received templates.
type TransferEmailData struct {
	SenderName     string
	SenderEmail    string
	RecipientName  string
	RecipientEmail string
	Amount         decimal.Decimal
	NewBalance     decimal.Decimal
	Reference      string
	Timestamp      time.Time
}

func (n *TransferNotifier) NotifyTransferSent(data TransferEmailData) error {
	body, err := utils.RenderEmailTemplate(templateDir+"transfer_sent.html", data)
	if err != nil {
		return fmt.Errorf("render transfer_sent: %w", err)
	}

	subject := fmt.Sprintf("You sent %s credits", data.Amount.StringFixed(2))
	if err := n.mailer.SendEmail(data.SenderEmail, subject, body); err != nil {
		return fmt.Errorf("send transfer_sent mail: %w", err)
	}
	return nil
}

func (n *TransferNotifier) NotifyTransferReceived(data TransferEmailData) error {
	body, err := utils.RenderEmailTemplate(templateDir+"transfer_received.html", data)
	if err != nil {
		return fmt.Errorf("render transfer_received: %w", err)
	}

	subject := fmt.Sprintf("You received %s credits", data.Amount.StringFixed(2))
	if err := n.mailer.SendEmail(data.RecipientEmail, subject, body); err != nil {
		return fmt.Errorf("send transfer_received mail: %w", err)
	}
	return nil
}
