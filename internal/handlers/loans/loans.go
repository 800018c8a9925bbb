package loans

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
	ApplyLoan(ctx context.Context, userID int, principal, rate float64, periodMonths int) (*domain.Loan, error)
	RepayLoan(ctx context.Context, userID int) (*domain.Loan, error)
	LoanReminders(ctx context.Context, userID int) ([]domain.LoanReminder, error)
}

type LoansHandler struct {
	loanService Service
}

func New(loanService Service) *LoansHandler {
	return &LoansHandler{
		loanService: loanService,
	}
}

// Apply godoc
//
//	@Summary		Apply for a loan
//	@Description	Create an interest-bearing loan; the outstanding balance is principal * (1 + rate).
//	@Tags			Loans
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ApplyLoanRequestDTO	true	"Loan terms"
//	@Success		200		{object}	dto.LoanResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid loan terms"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/loans [post]
func (h *LoansHandler) Apply(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ApplyLoanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	loan, err := h.loanService.ApplyLoan(r.Context(), userID, req.Principal, req.Rate, req.PeriodMonths)
	if err != nil {
		if domain.IsValidationError(err) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toLoanDTO(loan))
}

// Repay godoc
//
//	@Summary		Repay a loan installment
//	@Description	Pay one installment (current outstanding / period months) off the oldest active loan.
//	@Tags			Loans
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.LoanResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		409	{object}	utils.Response	"No active loan to repay"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/loans/repay [post]
func (h *LoansHandler) Repay(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	loan, err := h.loanService.RepayLoan(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveLoan) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toLoanDTO(loan))
}

// GetReminders godoc
//
//	@Summary		Get loan due-date reminders
//	@Description	List active loans whose due date falls within the next seven days.
//	@Tags			Loans
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.LoanReminderDTO
//	@Success		204	{object}	utils.Response	"No repayments due soon"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/loans/reminders [get]
func (h *LoansHandler) GetReminders(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	reminders, err := h.loanService.LoanReminders(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(reminders) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No loan repayments due within the next 7 days")
		return
	}

	response := make([]dto.LoanReminderDTO, len(reminders))
	for i, reminder := range reminders {
		response[i] = dto.LoanReminderDTO{
			LoanID:      reminder.LoanID,
			Outstanding: reminder.Outstanding,
			DueDate:     reminder.DueDate,
			DaysLeft:    reminder.DaysLeft,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toLoanDTO(loan *domain.Loan) dto.LoanResponseDTO {
	return dto.LoanResponseDTO{
		ID:           loan.ID,
		Principal:    loan.Principal,
		Rate:         loan.Rate,
		PeriodMonths: loan.PeriodMonths,
		Outstanding:  loan.Outstanding,
		Status:       loan.Status,
		CreatedAt:    loan.CreatedAt,
	}
}
