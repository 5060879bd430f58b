package account

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	db "github.com/merchantops/backoffice/db/sqlc"
	"github.com/merchantops/backoffice/services/cache"
	"github.com/merchantops/backoffice/services/monitoring/logging"
)

// Store is the slice of the query layer the account service reads from.
type Store interface {
	CreateAccount(ctx context.Context, arg db.CreateAccountParams) (db.Account, error)
	GetAccount(ctx context.Context, id int64) (db.Account, error)
	GetAccountByMerchantCode(ctx context.Context, merchantCode sql.NullString) (db.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (db.Account, error)
	ListAccounts(ctx context.Context, arg db.ListAccountsParams) ([]db.Account, error)
}

type AccountService struct {
	store  Store
	cache  *cache.Cache
	logger *logging.Logger
}

func NewAccountService(store Store, cache *cache.Cache, logger *logging.Logger) *AccountService {
	return &AccountService{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

type CreateAccountParams struct {
	MerchantCode string
	Email        string
	DisplayName  string
}

// CreateAccount registers a new merchant account with a zero balance.
func (a *AccountService) CreateAccount(ctx context.Context, arg CreateAccountParams) (*db.Account, error) {
	acct, err := a.store.CreateAccount(ctx, db.CreateAccountParams{
		MerchantCode: sql.NullString{
			String: arg.MerchantCode,
			Valid:  arg.MerchantCode != "",
		},
		Email:       arg.Email,
		DisplayName: arg.DisplayName,
		Balance:     "0",
	})
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == db.DuplicateEntry {
			return nil, NewAccountError(ErrDuplicateAccount, arg.Email, err)
		}
		return nil, err
	}
	return &acct, nil
}

func accountCacheKey(id int64) string {
	return fmt.Sprintf("account:%d", id)
}

// GetAccount serves dashboard reads through the TTL cache. Transfer-path
// balance reads go straight to the store; only this lookup is cached.
func (a *AccountService) GetAccount(ctx context.Context, id int64) (*db.Account, error) {
	if a.cache != nil {
		if cached, err := a.cache.Get(accountCacheKey(id)); err == nil {
			if acct, ok := cached.(db.Account); ok {
				return &acct, nil
			}
		}
	}

	acct, err := a.store.GetAccount(ctx, id)
	if err == sql.ErrNoRows {
		return nil, ErrAccountNotFound
	} else if err != nil {
		return nil, err
	}

	if a.cache != nil {
		a.cache.Insert(accountCacheKey(id), acct)
	}
	return &acct, nil
}

func (a *AccountService) ListAccounts(ctx context.Context, limit, offset int32) ([]db.Account, error) {
	return a.store.ListAccounts(ctx, db.ListAccountsParams{
		Limit:  limit,
		Offset: offset,
	})
}

// ResolveIdentifier translates a user-supplied string into an account,
// matching the merchant code first and falling back to the email address.
// Resolution is never cached; the transfer path needs a fresh row.
func (a *AccountService) ResolveIdentifier(ctx context.Context, identifier string) (*db.Account, error) {
	acct, err := a.store.GetAccountByMerchantCode(ctx, sql.NullString{
		String: identifier,
		Valid:  identifier != "",
	})
	if err == nil {
		return &acct, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	acct, err = a.store.GetAccountByEmail(ctx, identifier)
	if err == sql.ErrNoRows {
		return nil, ErrRecipientNotFound
	} else if err != nil {
		return nil, err
	}
	return &acct, nil
}

// InvalidateAccount drops the cached row after a balance mutation.
func (a *AccountService) InvalidateAccount(id int64) {
	if a.cache != nil {
		a.cache.Delete(accountCacheKey(id))
	}
}
