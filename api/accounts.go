package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/merchantops/backoffice/api/apistrings"
	models "github.com/merchantops/backoffice/api/models"
	db "github.com/merchantops/backoffice/db/sqlc"
	basemodels "github.com/merchantops/backoffice/models"
	"github.com/merchantops/backoffice/services/account"
	"github.com/merchantops/backoffice/services/monitoring/logging"
)

// AccountOperations is implemented by *account.AccountService.
type AccountOperations interface {
	CreateAccount(ctx context.Context, arg account.CreateAccountParams) (*db.Account, error)
	GetAccount(ctx context.Context, id int64) (*db.Account, error)
	ListAccounts(ctx context.Context, limit, offset int32) ([]db.Account, error)
	ResolveIdentifier(ctx context.Context, identifier string) (*db.Account, error)
}

type Accounts struct {
	service AccountOperations
	logger  *logging.Logger
}

func (a Accounts) router(server *Server) {
	a.service = server.accountService
	a.logger = server.logger
	a.registerRoutes(server.router.Group("/api/v1/accounts"))
}

func (a *Accounts) registerRoutes(group *gin.RouterGroup) {
	group.POST("", a.createAccount)
	group.GET("", a.listAccounts)
	group.GET("lookup", a.resolveIdentifier)
	group.GET(":id", a.getAccount)
}

func (a *Accounts) createAccount(ctx *gin.Context) {
	request := struct {
		MerchantCode string `json:"merchant_code"`
		Email        string `json:"email" binding:"required,email"`
		DisplayName  string `json:"display_name" binding:"required"`
	}{}

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAccountInput))
		return
	}

	acct, err := a.service.CreateAccount(ctx, account.CreateAccountParams{
		MerchantCode: request.MerchantCode,
		Email:        request.Email,
		DisplayName:  request.DisplayName,
	})
	if err != nil {
		if errors.Is(err, account.ErrDuplicateAccount) {
			ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.DuplicateAccount))
			return
		}
		a.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Account Created Successfully", models.ToAccountResponse(acct)))
}

func (a *Accounts) getAccount(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAccountID))
		return
	}

	acct, err := a.service.GetAccount(ctx, id)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.AccountNotFound))
			return
		}
		a.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Account Fetched Successfully", models.ToAccountResponse(acct)))
}

func (a *Accounts) listAccounts(ctx *gin.Context) {
	limit := int32(50)
	offset := int32(0)
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed <= 0 {
			ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAccountInput))
			return
		}
		limit = int32(parsed)
	}
	if raw := ctx.Query("offset"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed < 0 {
			ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAccountInput))
			return
		}
		offset = int32(parsed)
	}

	accounts, err := a.service.ListAccounts(ctx, limit, offset)
	if err != nil {
		a.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Accounts Fetched Successfully", models.ToAccountCollectionResponse(accounts)))
}

func (a *Accounts) resolveIdentifier(ctx *gin.Context) {
	identifier := ctx.Query("identifier")
	if identifier == "" {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAccountInput))
		return
	}

	acct, err := a.service.ResolveIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, account.ErrRecipientNotFound) {
			ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.RecipientNotFound))
			return
		}
		a.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Account Resolved Successfully", models.ToAccountResponse(acct)))
}
