package apistrings

const (
	/// Basic Account Related Strings
	AccountNotFound     = "account does not exist"
	RecipientNotFound   = "recipient does not match any merchant code or email"
	InvalidAccountID    = "entered account ID is invalid"
	DuplicateAccount    = "an account with this email or merchant code already exists"
	InvalidAccountInput = "check 'email' or 'display_name' keys, invalid request"

	/// Core Functionality Error
	ServerError = "a server error occurred, please try again later"

	/// Transfer Related Strings
	InvalidTransferInput = "check 'sender_id', 'recipient_identifier' or 'amount' keys, invalid request"
	InvalidAmount        = "transfer amount must be greater than zero"
	SelfTransfer         = "sender and recipient cannot be the same account"
	InsufficientFunds    = "insufficient balance to complete this transfer"
	InvalidTransactionID = "entered transaction ID is invalid"
	TransferNotFound     = "no transfer matches this transaction ID"
)
