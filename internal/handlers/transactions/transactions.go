package transactions

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
	"github.com/GlebRadaev/fuelfleet/internal/dto"
	"github.com/GlebRadaev/fuelfleet/internal/handlers/apierr"
	"github.com/GlebRadaev/fuelfleet/pkg/utils"
)

//go:generate mockgen -source=transactions.go -destination=mock_transactions.go -package=transactions

type Service interface {
	Create(ctx context.Context, in domain.NewTransaction) (*domain.Transaction, error)
	Update(ctx context.Context, id string, patch domain.TransactionPatch) (*domain.Transaction, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Transaction, error)
	List(ctx context.Context) ([]domain.Transaction, error)
	ListPending(ctx context.Context) ([]domain.TransactionDetails, error)
	CountPending(ctx context.Context) (int64, error)
}

type TransactionHandler struct {
	transactionService Service
}

func New(transactionService Service) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// CreateTransaction godoc
//
//	@Summary		Record a dispense
//	@Description	Takes fuel out of the tank and off the employee quota in one transaction.
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateTransactionRequestDTO	true	"Transaction"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.TransactionResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed body"
//	@Failure		402	{object}	utils.Response	"Employee quota exceeded"
//	@Failure		404	{object}	utils.Response	"Unknown tank, employee or car"
//	@Failure		409	{object}	utils.Response	"Insufficient fuel in tank"
//	@Failure		422	{object}	utils.Response	"Invalid transaction"
//	@Router			/api/transactions [post]
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionRequestDTO
	if err := apierr.Decode(r, &req); err != nil {
		apierr.Respond(w, err)
		return
	}
	tr, err := h.transactionService.Create(r.Context(), req.Command())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewTransactionResponse(*tr))
}

// UpdateTransaction godoc
//
//	@Summary		Change a dispense
//	@Description	Reverses the stored dispense and applies the new one atomically.
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string							true	"Transaction id"
//	@Param			request	body	dto.UpdateTransactionRequestDTO	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.TransactionResponseDTO
//	@Failure		402	{object}	utils.Response	"Employee quota exceeded"
//	@Failure		404	{object}	utils.Response	"Transaction not found"
//	@Failure		409	{object}	utils.Response	"Insufficient fuel in tank"
//	@Router			/api/transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateTransactionRequestDTO
	if err := apierr.Decode(r, &req); err != nil {
		apierr.Respond(w, err)
		return
	}
	tr, err := h.transactionService.Update(r.Context(), chi.URLParam(r, "id"), req.Patch())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionResponse(*tr))
}

// DeleteTransaction godoc
//
//	@Summary		Remove a dispense
//	@Description	Returns the fuel to the tank and the litres to the employee quota.
//	@Tags			Transactions
//	@Param			id	path	string	true	"Transaction id"
//	@Security		BearerAuth
//	@Success		204
//	@Failure		404	{object}	utils.Response	"Transaction not found"
//	@Failure		409	{object}	utils.Response	"Tank capacity exceeded"
//	@Router			/api/transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := h.transactionService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		apierr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetTransaction godoc
//
//	@Summary	Get a dispense
//	@Tags		Transactions
//	@Produce	json
//	@Param		id	path	string	true	"Transaction id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.TransactionResponseDTO
//	@Failure	404	{object}	utils.Response	"Transaction not found"
//	@Router		/api/transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	tr, err := h.transactionService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionResponse(*tr))
}

// GetTransactions godoc
//
//	@Summary	List dispenses, newest first
//	@Tags		Transactions
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	dto.TransactionResponseDTO
//	@Router		/api/transactions [get]
func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	trs, err := h.transactionService.List(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionsResponse(trs))
}

// GetPending godoc
//
//	@Summary	List dispenses waiting for approval
//	@Tags		Transactions
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	dto.PendingTransactionResponseDTO
//	@Router		/api/transactions/pending [get]
func (h *TransactionHandler) GetPending(w http.ResponseWriter, r *http.Request) {
	trs, err := h.transactionService.ListPending(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPendingResponse(trs))
}

// CountPending godoc
//
//	@Summary	Count dispenses waiting for approval
//	@Tags		Transactions
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.CountResponseDTO
//	@Router		/api/transactions/pending/count [get]
func (h *TransactionHandler) CountPending(w http.ResponseWriter, r *http.Request) {
	n, err := h.transactionService.CountPending(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CountResponseDTO{Count: n})
}
