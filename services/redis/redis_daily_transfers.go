package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

/// This file tracks the daily outgoing transfer volume per sender account.
/// The totals are informational (back-office dashboards); tracking failures
/// must never affect the transfer outcome.

type DailyTransferVolume struct {
	AccountID   int64           `json:"account_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Count       int64           `json:"count"`
	CreatedAt   time.Time       `json:"created_at"`
}

// isSameDay checks if two times are on the same calendar day
func isSameDay(t1, t2 time.Time) bool {
	y1, m1, d1 := t1.Date()
	y2, m2, d2 := t2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (r *RedisService) TrackDailyTransfer(ctx context.Context, accountID int64, amount decimal.Decimal) error {
	key := fmt.Sprintf("daily_transfers:%d", accountID)

	current, err := r.GetDailyTransfers(ctx, accountID)
	if err != nil {
		return err
	}

	// If no volume exists for today, start a fresh window
	if current.CreatedAt.IsZero() || !isSameDay(current.CreatedAt, time.Now()) {
		current = DailyTransferVolume{
			AccountID:   accountID,
			TotalAmount: amount,
			Count:       1,
			CreatedAt:   time.Now(),
		}
	} else {
		current.TotalAmount = current.TotalAmount.Add(amount)
		current.Count++
	}

	err = r.client.HSet(ctx, key, map[string]interface{}{
		"account_id":   current.AccountID,
		"total_amount": current.TotalAmount.String(),
		"count":        current.Count,
		"created_at":   current.CreatedAt.Format(time.RFC3339),
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to store daily transfer volume: %w", err)
	}

	// Expire the key at the end of the day
	midnight := time.Now().Add(24 * time.Hour).Truncate(24 * time.Hour)
	if err := r.client.ExpireAt(ctx, key, midnight).Err(); err != nil {
		return fmt.Errorf("failed to set expiration: %w", err)
	}

	return nil
}

func (r *RedisService) GetDailyTransfers(ctx context.Context, accountID int64) (DailyTransferVolume, error) {
	key := fmt.Sprintf("daily_transfers:%d", accountID)

	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return DailyTransferVolume{}, fmt.Errorf("failed to get daily transfer volume: %w", err)
	}

	if len(fields) == 0 {
		return DailyTransferVolume{
			AccountID:   accountID,
			TotalAmount: decimal.Zero,
		}, nil
	}

	createdAt, err := time.Parse(time.RFC3339, fields["created_at"])
	if err != nil {
		return DailyTransferVolume{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	total, err := decimal.NewFromString(fields["total_amount"])
	if err != nil {
		return DailyTransferVolume{}, fmt.Errorf("failed to parse total_amount: %w", err)
	}

	var count int64
	fmt.Sscanf(fields["count"], "%d", &count)

	return DailyTransferVolume{
		AccountID:   accountID,
		TotalAmount: total,
		Count:       count,
		CreatedAt:   createdAt,
	}, nil
}
