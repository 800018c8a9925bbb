package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avdeyev/ledger/internal/domain"
	"github.com/avdeyev/ledger/internal/dto"
	"github.com/avdeyev/ledger/pkg/auth"
	"github.com/avdeyev/ledger/pkg/utils"
)

type Service interface {
	Debit(ctx context.Context, userID int, amount float64, description string) (*domain.Transaction, error)
	Credit(ctx context.Context, userID int, amount float64, description string) (*domain.Transaction, error)
	Summary(ctx context.Context, userID int) (*domain.Summary, error)
	History(ctx context.Context, userID int, order domain.ListOrder) ([]domain.Transaction, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

func respondWithOperationError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidationError(err):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, domain.ErrAccountBlocked):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Debit godoc
//
//	@Summary		Record a debit
//	@Description	Record a debit transaction; the configured savings percentage is skimmed atomically with it.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransactionRequestDTO	true	"Debit payload"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or description"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		403		{object}	utils.Response	"Account blocked by overdue loan"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/transactions/debit [post]
func (h *LedgerHandler) Debit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.TransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	trx, err := h.ledgerService.Debit(r.Context(), userID, req.Amount, req.Description)
	if err != nil {
		respondWithOperationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(trx))
}

// Credit godoc
//
//	@Summary		Record a credit
//	@Description	Record a credit transaction increasing the balance.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransactionRequestDTO	true	"Credit payload"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or description"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Account blocked by overdue loan"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/transactions/credit [post]
func (h *LedgerHandler) Credit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.TransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	trx, err := h.ledgerService.Credit(r.Context(), userID, req.Amount, req.Description)
	if err != nil {
		respondWithOperationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(trx))
}

// GetSummary godoc
//
//	@Summary		Get account summary
//	@Description	Retrieve the balance, accumulated savings and outstanding loan total in one coherent view.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SummaryResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/summary [get]
func (h *LedgerHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	summary, err := h.ledgerService.Summary(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SummaryResponseDTO{
		Balance:         summary.Balance,
		Savings:         summary.Savings,
		LoanOutstanding: summary.LoanOutstanding,
	})
}

// GetHistory godoc
//
//	@Summary		Get transaction history
//	@Description	Get the full transaction log for the authenticated user, oldest or newest first.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			order	query		string	false	"Ordering: oldest or newest"	Enums(oldest, newest)
//	@Success		200		{array}		dto.TransactionResponseDTO
//	@Success		204		{object}	utils.Response	"No transactions"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *LedgerHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	order := domain.OldestFirst
	if r.URL.Query().Get("order") == string(domain.NewestFirst) {
		order = domain.NewestFirst
	}

	transactions, err := h.ledgerService.History(r.Context(), userID, order)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, trx := range transactions {
		trx := trx
		response[i] = toTransactionDTO(&trx)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toTransactionDTO(trx *domain.Transaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		ID:          trx.ID,
		Kind:        trx.Kind,
		Amount:      trx.Amount,
		Description: trx.Description,
		Timestamp:   trx.Timestamp,
	}
}
