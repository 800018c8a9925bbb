package service

import (
	authhandlers "github.com/avdeyev/ledger/internal/handlers/auth"
	ledgerhandlers "github.com/avdeyev/ledger/internal/handlers/ledger"
	loanshandlers "github.com/avdeyev/ledger/internal/handlers/loans"
	savingshandlers "github.com/avdeyev/ledger/internal/handlers/savings"

	pkgauth "github.com/avdeyev/ledger/pkg/auth"

	"github.com/avdeyev/ledger/internal/pg"
	"github.com/avdeyev/ledger/internal/repo"
	"github.com/avdeyev/ledger/internal/service/authservice"
	"github.com/avdeyev/ledger/internal/service/ledgerservice"
	"github.com/avdeyev/ledger/internal/service/loanservice"
	"github.com/avdeyev/ledger/internal/service/savingsservice"
)

type Services struct {
	AuthService    authhandlers.Service
	LedgerService  ledgerhandlers.Service
	SavingsService savingshandlers.Service
	LoanService    loanshandlers.Service

	// SavingsEngine is exposed for the sweeper's scheduled sweep, which goes
	// through the same transactional path as interactive operations.
	SavingsEngine *savingsservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	savingsEngine := savingsservice.New(repo.SavingsRepo, repo.TransactionRepo, txManager)
	loanEngine := loanservice.New(repo.LoanRepo, repo.TransactionRepo, repo.UserRepo, txManager)
	facade := ledgerservice.New(repo.TransactionRepo, repo.UserRepo, savingsEngine, loanEngine, txManager)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:    authService,
		LedgerService:  facade,
		SavingsService: facade,
		LoanService:    facade,
		SavingsEngine:  savingsEngine,
	}
}
