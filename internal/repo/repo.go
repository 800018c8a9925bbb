package repo

import (
	"github.com/avdeyev/ledger/internal/pg"
	loanrepo "github.com/avdeyev/ledger/internal/repo/loan-repo"
	savingsrepo "github.com/avdeyev/ledger/internal/repo/savings-repo"
	transactionrepo "github.com/avdeyev/ledger/internal/repo/transaction-repo"
	userrepo "github.com/avdeyev/ledger/internal/repo/user-repo"
	"github.com/avdeyev/ledger/internal/service/authservice"
	"github.com/avdeyev/ledger/internal/service/ledgerservice"
	"github.com/avdeyev/ledger/internal/service/loanservice"
	"github.com/avdeyev/ledger/internal/service/savingsservice"
)

type Repositories struct {
	UserRepo        authservice.Repo
	TransactionRepo ledgerservice.TransactionRepo
	SavingsRepo     savingsservice.SavingsRepo
	LoanRepo        loanservice.LoanRepo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		SavingsRepo:     savingsrepo.New(conn),
		LoanRepo:        loanrepo.New(conn),
	}
}
