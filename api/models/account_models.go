package models

import (
	"time"

	db "github.com/merchantops/backoffice/db/sqlc"
)

type AccountResponse struct {
	ID           int64     `json:"id"`
	MerchantCode string    `json:"merchant_code,omitempty"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	Balance      string    `json:"balance"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToAccountResponse(a *db.Account) AccountResponse {
	resp := AccountResponse{
		ID:          a.ID,
		Email:       a.Email,
		DisplayName: a.DisplayName,
		Balance:     a.Balance,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if a.MerchantCode.Valid {
		resp.MerchantCode = a.MerchantCode.String
	}
	return resp
}

func ToAccountCollectionResponse(accounts []db.Account) []AccountResponse {
	collection := make([]AccountResponse, 0, len(accounts))
	for i := range accounts {
		collection = append(collection, ToAccountResponse(&accounts[i]))
	}
	return collection
}
