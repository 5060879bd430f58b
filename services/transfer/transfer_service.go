package transfer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	db "github.com/merchantops/backoffice/db/sqlc"
	"github.com/merchantops/backoffice/services/cache"
	"github.com/merchantops/backoffice/services/monitoring/logging"
	"github.com/merchantops/backoffice/services/notification"
	"github.com/merchantops/backoffice/utils"
	"github.com/shopspring/decimal"
	"github.com/sqlc-dev/pqtype"
)

// Store is the slice of the query layer the transfer service depends on.
// *db.Store satisfies it.
type Store interface {
	GetAccount(ctx context.Context, id int64) (db.Account, error)
	TransferTx(ctx context.Context, arg db.TransferTxParams) (db.TransferTxResult, error)
	GetTransferByTransactionID(ctx context.Context, transactionID uuid.UUID) (db.Transfer, error)
	ListTransfersByAccountID(ctx context.Context, arg db.ListTransfersByAccountIDParams) ([]db.Transfer, error)
}

// Resolver translates recipient identifiers and owns the account cache.
type Resolver interface {
	ResolveIdentifier(ctx context.Context, identifier string) (*db.Account, error)
	InvalidateAccount(id int64)
}

// Notifier sends the two post-commit transfer emails.
type Notifier interface {
	NotifyTransferSent(data notification.TransferEmailData) error
	NotifyTransferReceived(data notification.TransferEmailData) error
}

// VolumeTracker records daily outgoing volume per sender. Best-effort.
type VolumeTracker interface {
	TrackDailyTransfer(ctx context.Context, accountID int64, amount decimal.Decimal) error
}

type TransferService struct {
	store    Store
	resolver Resolver
	notifier Notifier
	tracker  VolumeTracker
	cache    *cache.Cache
	refs     *utils.ReferenceCodec
	logger   *logging.Logger
}

func NewTransferService(
	store Store,
	resolver Resolver,
	notifier Notifier,
	tracker VolumeTracker,
	listCache *cache.Cache,
	refs *utils.ReferenceCodec,
	logger *logging.Logger,
) *TransferService {
	return &TransferService{
		store:    store,
		resolver: resolver,
		notifier: notifier,
		tracker:  tracker,
		cache:    listCache,
		refs:     refs,
		logger:   logger,
	}
}

func transfersCacheKey(accountID int64) string {
	return fmt.Sprintf("transfers:%d", accountID)
}

// TransferCredits validates the sender/recipient pair, moves the balance
// inside one database transaction and appends the ledger row. Validation
// failures occur before any write. Email notification runs after commit
// and never fails the transfer.
func (s *TransferService) TransferCredits(ctx context.Context, arg TransferParams) (*TransferResult, error) {
	if !arg.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if arg.RecipientIdentifier == "" {
		return nil, ErrMissingIdentifier
	}

	sender, err := s.store.GetAccount(ctx, arg.SenderID)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("sender: %w", ErrAccountNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("fetch sender: %w", err)
	}

	recipient, err := s.resolver.ResolveIdentifier(ctx, arg.RecipientIdentifier)
	if err != nil {
		return nil, err
	}

	if sender.ID == recipient.ID {
		return nil, ErrSelfTransfer
	}

	senderBalance, err := decimal.NewFromString(sender.Balance)
	if err != nil {
		return nil, fmt.Errorf("parse sender balance: %w", err)
	}
	if senderBalance.LessThan(arg.Amount) {
		return nil, ErrInsufficientFunds
	}

	transactionID := uuid.New()
	reference, err := s.refs.FromUUID(transactionID)
	if err != nil {
		return nil, fmt.Errorf("generate reference: %w", err)
	}

	txResult, err := s.store.TransferTx(ctx, db.TransferTxParams{
		TransferParams: db.CreateTransferParams{
			TransactionID: transactionID,
			Reference:     reference,
			SenderID:      sender.ID,
			RecipientID:   recipient.ID,
			Amount:        arg.Amount.String(),
			Fee:           arg.ServiceFee.String(),
			Note: sql.NullString{
				String: arg.Note,
				Valid:  arg.Note != "",
			},
			Metadata: pqtype.NullRawMessage{
				RawMessage: arg.Metadata,
				Valid:      len(arg.Metadata) > 0,
			},
			Status: db.TransferStatusCompleted,
		},
	})
	if err != nil {
		// The conditional debit lost a race against a concurrent transfer.
		if errors.Is(err, db.ErrInsufficientBalance) {
			return nil, ErrInsufficientFunds
		}
		return nil, fmt.Errorf("transfer transaction: %w", err)
	}

	newBalance, err := decimal.NewFromString(txResult.SenderBalance)
	if err != nil {
		return nil, fmt.Errorf("parse new sender balance: %w", err)
	}

	// Everything below is post-commit and best-effort.
	s.resolver.InvalidateAccount(sender.ID)
	s.resolver.InvalidateAccount(recipient.ID)
	if s.cache != nil {
		s.cache.Delete(transfersCacheKey(sender.ID))
		s.cache.Delete(transfersCacheKey(recipient.ID))
	}

	if s.tracker != nil {
		if err := s.tracker.TrackDailyTransfer(ctx, sender.ID, arg.Amount); err != nil {
			s.logger.Error(fmt.Sprintf("failed to track daily transfer volume for account %d: %v", sender.ID, err))
		}
	}

	result := &TransferResult{
		TransactionID:    txResult.Transfer.TransactionID,
		Reference:        txResult.Transfer.Reference,
		Amount:           arg.Amount,
		RecipientID:      recipient.ID,
		NewSenderBalance: newBalance,
		Timestamp:        txResult.Transfer.CreatedAt,
		EmailsSent:       false,
	}

	if arg.notify() {
		result.EmailsSent = s.sendNotifications(&sender, recipient, result)
	}

	return result, nil
}

func (s *TransferService) sendNotifications(sender, recipient *db.Account, result *TransferResult) bool {
	data := notification.TransferEmailData{
		SenderName:     sender.DisplayName,
		SenderEmail:    sender.Email,
		RecipientName:  recipient.DisplayName,
		RecipientEmail: recipient.Email,
		Amount:         result.Amount,
		NewBalance:     result.NewSenderBalance,
		Reference:      result.Reference,
		Timestamp:      result.Timestamp,
	}

	sent := true
	if err := s.notifier.NotifyTransferSent(data); err != nil {
		s.logger.Error(fmt.Sprintf("failed to notify sender %d: %v", sender.ID, err))
		sent = false
	}
	if err := s.notifier.NotifyTransferReceived(data); err != nil {
		s.logger.Error(fmt.Sprintf("failed to notify recipient %d: %v", recipient.ID, err))
		sent = false
	}
	return sent
}

// GetTransfer fetches one ledger row by its transaction identifier.
func (s *TransferService) GetTransfer(ctx context.Context, transactionID uuid.UUID) (*db.Transfer, error) {
	transfer, err := s.store.GetTransferByTransactionID(ctx, transactionID)
	if err == sql.ErrNoRows {
		return nil, ErrTransferNotFound
	} else if err != nil {
		return nil, err
	}
	return &transfer, nil
}

// ListTransfers serves the back-office history view through the TTL cache.
func (s *TransferService) ListTransfers(ctx context.Context, accountID int64, limit int32) ([]db.Transfer, error) {
	key := transfersCacheKey(accountID)
	if s.cache != nil {
		if cached, err := s.cache.Get(key); err == nil {
			if transfers, ok := cached.([]db.Transfer); ok {
				return transfers, nil
			}
		}
	}

	transfers, err := s.store.ListTransfersByAccountID(ctx, db.ListTransfersByAccountIDParams{
		AccountID: accountID,
		RowLimit:  limit,
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Insert(key, transfers)
	}
	return transfers, nil
}
