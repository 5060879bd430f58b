package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/merchantops/backoffice/api/apistrings"
	models "github.com/merchantops/backoffice/api/models"
	db "github.com/merchantops/backoffice/db/sqlc"
	basemodels "github.com/merchantops/backoffice/models"
	"github.com/merchantops/backoffice/services/account"
	"github.com/merchantops/backoffice/services/monitoring/logging"
	"github.com/merchantops/backoffice/services/transfer"
)

// TransferOperations is implemented by *transfer.TransferService.
type TransferOperations interface {
	TransferCredits(ctx context.Context, arg transfer.TransferParams) (*transfer.TransferResult, error)
	GetTransfer(ctx context.Context, transactionID uuid.UUID) (*db.Transfer, error)
	ListTransfers(ctx context.Context, accountID int64, limit int32) ([]db.Transfer, error)
}

type Transfers struct {
	service TransferOperations
	logger  *logging.Logger
}

func (t Transfers) router(server *Server) {
	t.service = server.transferService
	t.logger = server.logger
	t.registerRoutes(server.router.Group("/api/v1/transfers"))
}

func (t *Transfers) registerRoutes(group *gin.RouterGroup) {
	group.POST("", t.createTransfer)
	group.GET("", t.listTransfers)
	group.GET(":transaction_id", t.getTransfer)
}

func (t *Transfers) createTransfer(ctx *gin.Context) {
	var request models.TransferRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidTransferInput))
		return
	}

	result, err := t.service.TransferCredits(ctx, request.ToParams())
	if err != nil {
		t.transferErrorResponse(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Transfer Completed Successfully", models.ToTransferResponse(result)))
}

func (t *Transfers) getTransfer(ctx *gin.Context) {
	transactionID, err := uuid.Parse(ctx.Param("transaction_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidTransactionID))
		return
	}

	row, err := t.service.GetTransfer(ctx, transactionID)
	if err != nil {
		if errors.Is(err, transfer.ErrTransferNotFound) {
			ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.TransferNotFound))
			return
		}
		t.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Transfer Fetched Successfully", models.ToTransferRowResponse(row)))
}

func (t *Transfers) listTransfers(ctx *gin.Context) {
	accountID, err := strconv.ParseInt(ctx.Query("account_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAccountID))
		return
	}

	limit := int32(20)
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed <= 0 {
			ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidTransferInput))
			return
		}
		limit = int32(parsed)
	}

	transfers, err := t.service.ListTransfers(ctx, accountID, limit)
	if err != nil {
		t.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Transfers Fetched Successfully", models.ToTransferRowCollectionResponse(transfers)))
}

func (t *Transfers) transferErrorResponse(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, transfer.ErrInvalidAmount):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAmount))
	case errors.Is(err, transfer.ErrMissingIdentifier):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidTransferInput))
	case errors.Is(err, transfer.ErrSelfTransfer):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.SelfTransfer))
	case errors.Is(err, transfer.ErrInsufficientFunds):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InsufficientFunds))
	case errors.Is(err, transfer.ErrAccountNotFound):
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.AccountNotFound))
	case errors.Is(err, account.ErrRecipientNotFound):
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.RecipientNotFound))
	default:
		t.logger.Error("Transfer Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
	}
}
