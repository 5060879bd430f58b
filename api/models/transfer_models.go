package models

import (
	"encoding/json"
	"time"

	db "github.com/merchantops/backoffice/db/sqlc"
	"github.com/merchantops/backoffice/services/transfer"
	"github.com/shopspring/decimal"
)

type TransferRequest struct {
	SenderID              int64           `json:"sender_id" binding:"required"`
	RecipientIdentifier   string          `json:"recipient_identifier" binding:"required"`
	Amount                decimal.Decimal `json:"amount"`
	ServiceFee            decimal.Decimal `json:"service_fee"`
	Note                  string          `json:"note"`
	Metadata              json.RawMessage `json:"metadata"`
	SendEmailNotification *bool           `json:"send_email_notification"`
}

func (r *TransferRequest) ToParams() transfer.TransferParams {
	return transfer.TransferParams{
		SenderID:              r.SenderID,
		RecipientIdentifier:   r.RecipientIdentifier,
		Amount:                r.Amount,
		ServiceFee:            r.ServiceFee,
		Note:                  r.Note,
		Metadata:              r.Metadata,
		SendEmailNotification: r.SendEmailNotification,
	}
}

type TransferResponse struct {
	TransactionID    string          `json:"transaction_id"`
	Reference        string          `json:"reference"`
	Amount           decimal.Decimal `json:"amount"`
	RecipientID      int64           `json:"recipient_id"`
	NewSenderBalance decimal.Decimal `json:"new_sender_balance"`
	Timestamp        time.Time       `json:"timestamp"`
	EmailsSent       bool            `json:"emails_sent"`
}

func ToTransferResponse(result *transfer.TransferResult) TransferResponse {
	return TransferResponse{
		TransactionID:    result.TransactionID.String(),
		Reference:        result.Reference,
		Amount:           result.Amount,
		RecipientID:      result.RecipientID,
		NewSenderBalance: result.NewSenderBalance,
		Timestamp:        result.Timestamp,
		EmailsSent:       result.EmailsSent,
	}
}

type TransferRowResponse struct {
	TransactionID string          `json:"transaction_id"`
	Reference     string          `json:"reference"`
	SenderID      int64           `json:"sender_id"`
	RecipientID   int64           `json:"recipient_id"`
	Amount        string          `json:"amount"`
	Fee           string          `json:"fee"`
	Note          string          `json:"note,omitempty"`
	Metadata      json.RawMessage `json:"metadata,omitempty"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

func ToTransferRowResponse(t *db.Transfer) TransferRowResponse {
	resp := TransferRowResponse{
		TransactionID: t.TransactionID.String(),
		Reference:     t.Reference,
		SenderID:      t.SenderID,
		RecipientID:   t.RecipientID,
		Amount:        t.Amount,
		Fee:           t.Fee,
		Status:        t.Status,
		CreatedAt:     t.CreatedAt,
	}
	if t.Note.Valid {
		resp.Note = t.Note.String
	}
	if t.Metadata.Valid {
		resp.Metadata = t.Metadata.RawMessage
	}
	return resp
}

func ToTransferRowCollectionResponse(transfers []db.Transfer) []TransferRowResponse {
	collection := make([]TransferRowResponse, 0, len(transfers))
	for i := range transfers {
		collection = append(collection, ToTransferRowResponse(&transfers[i]))
	}
	return collection
}
