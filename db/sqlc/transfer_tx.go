package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// TransferStatusCompleted is the only ledger state in the current design.
// Transfers are never updated after insertion.
const TransferStatusCompleted = "completed"

// ErrInsufficientBalance is returned when the conditional debit touches
// zero rows, i.e. the sender no longer covers the amount.
var ErrInsufficientBalance = errors.New("insufficient balance for debit")

type TransferTxParams struct {
	TransferParams CreateTransferParams
}

type TransferTxResult struct {
	Transfer      Transfer
	SenderBalance string
}

// TransferTx moves credits between two accounts and appends the ledger row
// in a single database transaction. The debit is a conditional decrement
// guarded by the balance check, so two concurrent transfers from the same
// sender cannot double-spend: the second debit finds no qualifying row and
// the whole unit rolls back.
func (s *Store) TransferTx(ctx context.Context, arg TransferTxParams) (TransferTxResult, error) {
	var result TransferTxResult

	err := s.ExecTx(ctx, func(q *Queries) error {
		sender, err := q.DebitAccountBalance(ctx, DebitAccountBalanceParams{
			Amount: arg.TransferParams.Amount,
			ID:     arg.TransferParams.SenderID,
		})
		if err == sql.ErrNoRows {
			return ErrInsufficientBalance
		} else if err != nil {
			return fmt.Errorf("debit sender: %w", err)
		}

		if _, err := q.CreditAccountBalance(ctx, CreditAccountBalanceParams{
			Amount: arg.TransferParams.Amount,
			ID:     arg.TransferParams.RecipientID,
		}); err != nil {
			return fmt.Errorf("credit recipient: %w", err)
		}

		transfer, err := q.CreateTransfer(ctx, arg.TransferParams)
		if err != nil {
			return fmt.Errorf("create transfer record: %w", err)
		}

		result.Transfer = transfer
		result.SenderBalance = sender.Balance
		return nil
	})

	return result, err
}
