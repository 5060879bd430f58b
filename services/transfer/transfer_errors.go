package transfer

import "fmt"

var (
	ErrInvalidAmount     = fmt.Errorf("transfer amount must be greater than zero")
	ErrMissingIdentifier = fmt.Errorf("recipient identifier is required")
	ErrAccountNotFound   = fmt.Errorf("account not found")
	ErrTransferNotFound  = fmt.Errorf("transfer not found")
	ErrSelfTransfer      = fmt.Errorf("cannot transfer credits to your own account")
	ErrInsufficientFunds = fmt.Errorf("insufficient funds")
)

type TransferError struct {
	ErrorObj error
	Ref      string
	Other    []error
}

func (t *TransferError) Error() string {
	return t.ErrorObj.Error()
}

func (t *TransferError) ErrorOut() string {
	return fmt.Sprintf("%v: %v", t.ErrorObj.Error(), t.Ref)
}

func NewTransferError(err error, ref string, e ...error) *TransferError {
	return &TransferError{
		ErrorObj: err,
		Ref:      ref,
		Other:    e,
	}
}
