package transfer

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferParams carries one transfer request into the service.
type TransferParams struct {
	SenderID              int64
	RecipientIdentifier   string
	Amount                decimal.Decimal
	ServiceFee            decimal.Decimal
	Note                  string
	Metadata              json.RawMessage
	SendEmailNotification *bool
}

// notify defaults to true when the caller leaves the flag unset.
func (p TransferParams) notify() bool {
	return p.SendEmailNotification == nil || *p.SendEmailNotification
}

// TransferResult reports a committed transfer. EmailsSent is false when
// either notification failed; the transfer itself is already durable.
type TransferResult struct {
	TransactionID    uuid.UUID       `json:"transaction_id"`
	Reference        string          `json:"reference"`
	Amount           decimal.Decimal `json:"amount"`
	RecipientID      int64           `json:"recipient_id"`
	NewSenderBalance decimal.Decimal `json:"new_sender_balance"`
	Timestamp        time.Time       `json:"timestamp"`
	EmailsSent       bool            `json:"emails_sent"`
}
