package transfer

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	db "github.com/merchantops/backoffice/db/sqlc"
	"github.com/merchantops/backoffice/services/account"
	"github.com/merchantops/backoffice/services/monitoring/logging"
	"github.com/merchantops/backoffice/services/notification"
	"github.com/merchantops/backoffice/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// fakeStore keeps accounts and transfers in memory and applies TransferTx
// with the same conditional-debit semantics as the SQL implementation.
type fakeStore struct {
	accounts    map[int64]db.Account
	transfers   []db.Transfer
	reads       int
	txCalls     int
	failTx      error
	nextTransID int64
}

func newFakeStore(accounts ...db.Account) *fakeStore {
	s := &fakeStore{accounts: map[int64]db.Account{}}
	for _, a := range accounts {
		s.accounts[a.ID] = a
	}
	return s
}

func (s *fakeStore) CreateAccount(ctx context.Context, arg db.CreateAccountParams) (db.Account, error) {
	return db.Account{}, errors.New("not implemented")
}

func (s *fakeStore) GetAccount(ctx context.Context, id int64) (db.Account, error) {
	s.reads++
	a, ok := s.accounts[id]
	if !ok {
		return db.Account{}, sql.ErrNoRows
	}
	return a, nil
}

func (s *fakeStore) GetAccountByMerchantCode(ctx context.Context, code sql.NullString) (db.Account, error) {
	s.reads++
	for _, a := range s.accounts {
		if a.MerchantCode.Valid && code.Valid && a.MerchantCode.String == code.String {
			return a, nil
		}
	}
	return db.Account{}, sql.ErrNoRows
}

func (s *fakeStore) GetAccountByEmail(ctx context.Context, email string) (db.Account, error) {
	s.reads++
	for _, a := range s.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return db.Account{}, sql.ErrNoRows
}

func (s *fakeStore) ListAccounts(ctx context.Context, arg db.ListAccountsParams) ([]db.Account, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeStore) GetTransferByTransactionID(ctx context.Context, transactionID uuid.UUID) (db.Transfer, error) {
	for _, t := range s.transfers {
		if t.TransactionID == transactionID {
			return t, nil
		}
	}
	return db.Transfer{}, sql.ErrNoRows
}

func (s *fakeStore) ListTransfersByAccountID(ctx context.Context, arg db.ListTransfersByAccountIDParams) ([]db.Transfer, error) {
	var out []db.Transfer
	for _, t := range s.transfers {
		if t.SenderID == arg.AccountID || t.RecipientID == arg.AccountID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *fakeStore) TransferTx(ctx context.Context, arg db.TransferTxParams) (db.TransferTxResult, error) {
	s.txCalls++
	if s.failTx != nil {
		return db.TransferTxResult{}, s.failTx
	}

	p := arg.TransferParams
	sender := s.accounts[p.SenderID]
	recipient := s.accounts[p.RecipientID]

	amount, err := decimal.NewFromString(p.Amount)
	if err != nil {
		return db.TransferTxResult{}, err
	}
	senderBalance, _ := decimal.NewFromString(sender.Balance)
	recipientBalance, _ := decimal.NewFromString(recipient.Balance)

	if senderBalance.LessThan(amount) {
		return db.TransferTxResult{}, db.ErrInsufficientBalance
	}

	sender.Balance = senderBalance.Sub(amount).String()
	recipient.Balance = recipientBalance.Add(amount).String()
	s.accounts[sender.ID] = sender
	s.accounts[recipient.ID] = recipient

	s.nextTransID++
	transfer := db.Transfer{
		ID:            s.nextTransID,
		TransactionID: p.TransactionID,
		Reference:     p.Reference,
		SenderID:      p.SenderID,
		RecipientID:   p.RecipientID,
		Amount:        p.Amount,
		Fee:           p.Fee,
		Note:          p.Note,
		Metadata:      p.Metadata,
		Status:        p.Status,
	}
	s.transfers = append(s.transfers, transfer)

	return db.TransferTxResult{
		Transfer:      transfer,
		SenderBalance: sender.Balance,
	}, nil
}

type fakeNotifier struct {
	sentCalls     int
	receivedCalls int
	failSent      bool
	failReceived  bool
	lastData      notification.TransferEmailData
}

func (n *fakeNotifier) NotifyTransferSent(data notification.TransferEmailData) error {
	n.sentCalls++
	n.lastData = data
	if n.failSent {
		return errors.New("smtp gateway unreachable")
	}
	return nil
}

func (n *fakeNotifier) NotifyTransferReceived(data notification.TransferEmailData) error {
	n.receivedCalls++
	if n.failReceived {
		return errors.New("smtp gateway unreachable")
	}
	return nil
}

type fakeTracker struct {
	calls int
	fail  bool
}

func (t *fakeTracker) TrackDailyTransfer(ctx context.Context, accountID int64, amount decimal.Decimal) error {
	t.calls++
	if t.fail {
		return errors.New("redis down")
	}
	return nil
}

func testLogger() *logging.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return &logging.Logger{Logger: l}
}

func merchantAccount(id int64, code, email, balance string) db.Account {
	return db.Account{
		ID:           id,
		MerchantCode: sql.NullString{String: code, Valid: code != ""},
		Email:        email,
		DisplayName:  "Merchant " + code,
		Balance:      balance,
	}
}

func newTestService(t *testing.T, store *fakeStore, notifier *fakeNotifier, tracker *fakeTracker) *TransferService {
	t.Helper()
	logger := testLogger()
	resolver := account.NewAccountService(store, nil, logger)
	refs, err := utils.NewReferenceCodec("test-salt")
	if err != nil {
		t.Fatalf("reference codec: %v", err)
	}
	return NewTransferService(store, resolver, notifier, tracker, nil, refs, logger)
}

func TestTransferCredits_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		arg     TransferParams
		wantErr error
	}{
		{
			name:    "zero amount",
			arg:     TransferParams{SenderID: 1, RecipientIdentifier: "M-200", Amount: decimal.Zero},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			arg:     TransferParams{SenderID: 1, RecipientIdentifier: "M-200", Amount: decimal.NewFromInt(-5)},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "missing recipient identifier",
			arg:     TransferParams{SenderID: 1, Amount: decimal.NewFromInt(100)},
			wantErr: ErrMissingIdentifier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore(
				merchantAccount(1, "M-100", "one@example.com", "1000"),
				merchantAccount(2, "M-200", "two@example.com", "0"),
			)
			svc := newTestService(t, store, &fakeNotifier{}, &fakeTracker{})

			_, err := svc.TransferCredits(context.Background(), tt.arg)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if store.reads != 0 || store.txCalls != 0 {
				t.Errorf("expected no store calls, got %d reads and %d tx calls", store.reads, store.txCalls)
			}
		})
	}
}

func TestTransferCredits_SenderNotFound(t *testing.T) {
	store := newFakeStore(merchantAccount(2, "M-200", "two@example.com", "0"))
	svc := newTestService(t, store, &fakeNotifier{}, &fakeTracker{})

	_, err := svc.TransferCredits(context.Background(), TransferParams{
		SenderID:            99,
		RecipientIdentifier: "M-200",
		Amount:              decimal.NewFromInt(100),
	})
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
	if store.txCalls != 0 {
		t.Errorf("expected no tx calls, got %d", store.txCalls)
	}
}

func TestTransferCredits_RecipientNotFound(t *testing.T) {
	store := newFakeStore(merchantAccount(1, "M-100", "one@example.com", "1000"))
	svc := newTestService(t, store, &fakeNotifier{}, &fakeTracker{})

	_, err := svc.TransferCredits(context.Background(), TransferParams{
		SenderID:            1,
		RecipientIdentifier: "no-such-merchant",
		Amount:              decimal.NewFromInt(100),
	})
	if !errors.Is(err, account.ErrRecipientNotFound) {
		t.Fatalf("expected ErrRecipientNotFound, got %v", err)
	}
	if store.txCalls != 0 {
		t.Errorf("expected no tx calls, got %d", store.txCalls)
	}
}

func TestTransferCredits_SelfTransfer(t *testing.T) {
	store := newFakeStore(merchantAccount(1, "M-100", "one@example.com", "1000"))
	svc := newTestService(t, store, &fakeNotifier{}, &fakeTracker{})

	_, err := svc.TransferCredits(context.Background(), TransferParams{
		SenderID:            1,
		RecipientIdentifier: "one@example.com",
		Amount:              decimal.NewFromInt(100),
	})
	if !errors.Is(err, ErrSelfTransfer) {
		t.Fatalf("expected ErrSelfTransfer, got %v", err)
	}
	if store.txCalls != 0 {
		t.Errorf("expected no tx calls, got %d", store.txCalls)
	}
}

func TestTransferCredits_InsufficientBalance(t *testing.T) {
	store := newFakeStore(
		merchantAccount(1, "M-100", "one@example.com", "50"),
		merchantAccount(2, "M-200", "two@example.com", "0"),
	)
	svc := newTestService(t, store, &fakeNotifier{}, &fakeTracker{})

	_, err := svc.TransferCredits(context.Background(), TransferParams{
		SenderID:            1,
		RecipientIdentifier: "M-200",
		Amount:              decimal.NewFromInt(100),
	})
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if store.txCalls != 0 {
		t.Errorf("expected no tx calls, got %d", store.txCalls)
	}
	if got := store.accounts[1].Balance; got != "50" {
		t.Errorf("sender balance changed to %s", got)
	}
}

func TestTransferCredits_ConcurrentDebitRace(t *testing.T) {
	// The pre-check passes but the conditional debit inside the transaction
	// loses against a concurrent transfer.
	store := newFakeStore(
		merchantAccount(1, "M-100", "one@example.com", "1000"),
		merchantAccount(2, "M-200", "two@example.com", "0"),
	)
	store.failTx = db.ErrInsufficientBalance
	svc := newTestService(t, store, &fakeNotifier{}, &fakeTracker{})

	_, err := svc.TransferCredits(context.Background(), TransferParams{
		SenderID:            1,
		RecipientIdentifier: "M-200",
		Amount:              decimal.NewFromInt(100),
	})
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
}

func TestTransferCredits_Success(t *testing.T) {
	store := newFakeStore(
		merchantAccount(1, "M-100", "one@example.com", "1000"),
		merchantAccount(2, "M-200", "two@example.com", "250"),
	)
	notifier := &fakeNotifier{}
	tracker := &fakeTracker{}
	svc := newTestService(t, store, notifier, tracker)

	result, err := svc.TransferCredits(context.Background(), TransferParams{
		SenderID:            1,
		RecipientIdentifier: "M-200",
		Amount:              decimal.NewFromInt(200),
		ServiceFee:          decimal.NewFromInt(5),
		Note:                "settlement for June",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := store.accounts[1].Balance; got != "800" {
		t.Errorf("sender balance = %s, want 800", got)
	}
	if got := store.accounts[2].Balance; got != "450" {
		t.Errorf("recipient balance = %s, want 450", got)
	}
	if len(store.transfers) != 1 {
		t.Fatalf("expected 1 ledger row, got %d", len(store.transfers))
	}

	row := store.transfers[0]
	if row.SenderID != 1 || row.RecipientID != 2 {
		t.Errorf("ledger row accounts = (%d, %d), want (1, 2)", row.SenderID, row.RecipientID)
	}
	if row.Amount != "200" || row.Fee != "5" {
		t.Errorf("ledger row amount/fee = (%s, %s), want (200, 5)", row.Amount, row.Fee)
	}
	if !row.Note.Valid || row.Note.String != "settlement for June" {
		t.Errorf("ledger row note = %+v", row.Note)
	}
	if row.Status != db.TransferStatusCompleted {
		t.Errorf("ledger row status = %s, want %s", row.Status, db.TransferStatusCompleted)
	}
	if row.TransactionID == uuid.Nil {
		t.Error("ledger row has nil transaction id")
	}
	if row.Reference == "" {
		t.Error("ledger row has empty reference")
	}

	if !result.NewSenderBalance.Equal(decimal.NewFromInt(800)) {
		t.Errorf("result.NewSenderBalance = %s, want 800", result.NewSenderBalance)
	}
	if result.RecipientID != 2 {
		t.Errorf("result.RecipientID = %d, want 2", result.RecipientID)
	}
	if !result.EmailsSent {
		t.Error("result.EmailsSent = false, want true")
	}

	if notifier.sentCalls != 1 || notifier.receivedCalls != 1 {
		t.Errorf("notifier calls = (%d, %d), want (1, 1)", notifier.sentCalls, notifier.receivedCalls)
	}
	if !notifier.lastData.NewBalance.Equal(decimal.NewFromInt(800)) {
		t.Errorf("notification balance = %s, want 800", notifier.lastData.NewBalance)
	}
	if tracker.calls != 1 {
		t.Errorf("tracker calls = %d, want 1", tracker.calls)
	}
}

func TestTransferCredits_RecipientResolvedByEmail(t *testing.T) {
	store := newFakeStore(
		merchantAccount(1, "M-100", "one@example.com", "1000"),
		merchantAccount(2, "", "two@example.com", "0"),
	)
	svc := newTestService(t, store, &fakeNotifier{}, &fakeTracker{})

	result, err := svc.TransferCredits(context.Background(), TransferParams{
		SenderID:            1,
		RecipientIdentifier: "two@example.com",
		Amount:              decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RecipientID != 2 {
		t.Errorf("result.RecipientID = %d, want 2", result.RecipientID)
	}
	if got := store.accounts[2].Balance; got != "100" {
		t.Errorf("recipient balance = %s, want 100", got)
	}
}

func TestTransferCredits_EmailFailureDoesNotFailTransfer(t *testing.T) {
	store := newFakeStore(
		merchantAccount(1, "M-100", "one@example.com", "1000"),
		merchantAccount(2, "M-200", "two@example.com", "0"),
	)
	notifier := &fakeNotifier{failSent: true}
	svc := newTestService(t, store, notifier, &fakeTracker{})

	result, err := svc.TransferCredits(context.Background(), TransferParams{
		SenderID:            1,
		RecipientIdentifier: "M-200",
		Amount:              decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.EmailsSent {
		t.Error("result.EmailsSent = true, want false")
	}
	// Balances stay committed despite the failed notification.
	if got := store.accounts[1].Balance; got != "900" {
		t.Errorf("sender balance = %s, want 900", got)
	}
	// The recipient mail is still attempted after the sender mail fails.
	if notifier.receivedCalls != 1 {
		t.Errorf("recipient notification calls = %d, want 1", notifier.receivedCalls)
	}
}

func TestTransferCredits_NotificationsDisabled(t *testing.T) {
	store := newFakeStore(
		merchantAccount(1, "M-100", "one@example.com", "1000"),
		merchantAccount(2, "M-200", "two@example.com", "0"),
	)
	notifier := &fakeNotifier{}
	svc := newTestService(t, store, notifier, &fakeTracker{})

	noEmail := false
	result, err := svc.TransferCredits(context.Background(), TransferParams{
		SenderID:              1,
		RecipientIdentifier:   "M-200",
		Amount:                decimal.NewFromInt(100),
		SendEmailNotification: &noEmail,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.EmailsSent {
		t.Error("result.EmailsSent = true, want false")
	}
	if notifier.sentCalls != 0 || notifier.receivedCalls != 0 {
		t.Errorf("notifier calls = (%d, %d), want (0, 0)", notifier.sentCalls, notifier.receivedCalls)
	}
}

func TestTransferCredits_TrackerFailureIsSilent(t *testing.T) {
	store := newFakeStore(
		merchantAccount(1, "M-100", "one@example.com", "1000"),
		merchantAccount(2, "M-200", "two@example.com", "0"),
	)
	svc := newTestService(t, store, &fakeNotifier{}, &fakeTracker{fail: true})

	result, err := svc.TransferCredits(context.Background(), TransferParams{
		SenderID:            1,
		RecipientIdentifier: "M-200",
		Amount:              decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.EmailsSent {
		t.Error("result.EmailsSent = false, want true")
	}
}

func TestTransferCredits_NotIdempotent(t *testing.T) {
	// Two identical calls create two independent ledger rows.
	store := newFakeStore(
		merchantAccount(1, "M-100", "one@example.com", "1000"),
		merchantAccount(2, "M-200", "two@example.com", "0"),
	)
	svc := newTestService(t, store, &fakeNotifier{}, &fakeTracker{})

	arg := TransferParams{
		SenderID:            1,
		RecipientIdentifier: "M-200",
		Amount:              decimal.NewFromInt(100),
	}

	first, err := svc.TransferCredits(context.Background(), arg)
	if err != nil {
		t.Fatalf("first transfer: %v", err)
	}
	second, err := svc.TransferCredits(context.Background(), arg)
	if err != nil {
		t.Fatalf("second transfer: %v", err)
	}

	if first.TransactionID == second.TransactionID {
		t.Error("expected distinct transaction ids")
	}
	if len(store.transfers) != 2 {
		t.Errorf("expected 2 ledger rows, got %d", len(store.transfers))
	}
	if got := store.accounts[1].Balance; got != "800" {
		t.Errorf("sender balance = %s, want 800", got)
	}
}
