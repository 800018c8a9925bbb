package savings

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avdeyev/ledger/internal/domain"
	"github.com/avdeyev/ledger/internal/dto"
	"github.com/avdeyev/ledger/pkg/auth"
	"github.com/avdeyev/ledger/pkg/utils"
)

type Service interface {
	ActivateSavings(ctx context.Context, userID int, percentage int) error
}

type SavingsHandler struct {
	savingsService Service
}

func New(savingsService Service) *SavingsHandler {
	return &SavingsHandler{
		savingsService: savingsService,
	}
}

// Activate godoc
//
//	@Summary		Activate savings
//	@Description	Opt into automatic savings: the given percentage of every debit is diverted into the savings pool.
//	@Tags			Savings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ActivateSavingsRequestDTO	true	"Savings percentage"
//	@Success		200		{object}	dto.ActivateSavingsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid percentage"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/savings [post]
func (h *SavingsHandler) Activate(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ActivateSavingsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.savingsService.ActivateSavings(r.Context(), userID, req.Percentage); err != nil {
		if domain.IsValidationError(err) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ActivateSavingsResponseDTO{
		Message: "Savings successfully activated",
	})
}
