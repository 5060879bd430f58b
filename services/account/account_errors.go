package account

import "fmt"

var (
	ErrAccountNotFound   = fmt.Errorf("account not found")
	ErrRecipientNotFound = fmt.Errorf("recipient not found")
	ErrDuplicateAccount  = fmt.Errorf("account already exists")
)

type AccountError struct {
	ErrorObj  error
	AccountID string
	Other     []error
}

func (a *AccountError) Error() string {
	return a.ErrorObj.Error()
}

func (a *AccountError) Unwrap() error {
	return a.ErrorObj
}

func (a *AccountError) ErrorOut() string {
	return fmt.Sprintf("%v: %v", a.ErrorObj.Error(), a.AccountID)
}

func NewAccountError(err error, accountID string, e ...error) *AccountError {
	return &AccountError{
		ErrorObj:  err,
		AccountID: accountID,
		Other:     e,
	}
}
