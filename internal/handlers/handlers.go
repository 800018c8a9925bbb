package handlers

import (
	"net/http"

	_ "github.com/avdeyev/ledger/docs"
	authhandlers "github.com/avdeyev/ledger/internal/handlers/auth"
	ledgerhandlers "github.com/avdeyev/ledger/internal/handlers/ledger"
	loanshandlers "github.com/avdeyev/ledger/internal/handlers/loans"
	savingshandlers "github.com/avdeyev/ledger/internal/handlers/savings"
	"github.com/avdeyev/ledger/internal/service"
	"github.com/avdeyev/ledger/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	Debit(w http.ResponseWriter, r *http.Request)
	Credit(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type SavingsHandler interface {
	Activate(w http.ResponseWriter, r *http.Request)
}

type LoansHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	Repay(w http.ResponseWriter, r *http.Request)
	GetReminders(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	LedgerHandler  LedgerHandler
	SavingsHandler SavingsHandler
	LoansHandler   LoansHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		LedgerHandler:  ledgerhandlers.New(s.LedgerService),
		SavingsHandler: savingshandlers.New(s.SavingsService),
		LoansHandler:   loanshandlers.New(s.LoanService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/transactions", func(r chi.Router) {
				r.Post("/debit", h.LedgerHandler.Debit)
				r.Post("/credit", h.LedgerHandler.Credit)
				r.Get("/", h.LedgerHandler.GetHistory)
			})
			r.Get("/summary", h.LedgerHandler.GetSummary)
			r.Post("/savings", h.SavingsHandler.Activate)
			r.Route("/loans", func(r chi.Router) {
				r.Post("/", h.LoansHandler.Apply)
				r.Post("/repay", h.LoansHandler.Repay)
				r.Get("/reminders", h.LoansHandler.GetReminders)
			})
		})
	})

	return r
}
