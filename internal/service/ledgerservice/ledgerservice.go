package ledgerservice

import (
	"context"
	"time"

	"github.com/avdeyev/ledger/internal/domain"
	"github.com/avdeyev/ledger/internal/pg"
	"go.uber.org/zap"
)

const (
	maxAmount         = 1_000_000
	maxDescriptionLen = 100
)

type TransactionRepo interface {
	Append(ctx context.Context, trx *domain.Transaction) error
	SumByOwner(ctx context.Context, ownerEmail string) (float64, error)
	ListByOwner(ctx context.Context, ownerEmail string, order domain.ListOrder) ([]domain.Transaction, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type SavingsEngine interface {
	Activate(ctx context.Context, ownerEmail string, percentage int) error
	GetAccount(ctx context.Context, ownerEmail string) (*domain.SavingsAccount, error)
	SkimOnDebit(ctx context.Context, ownerEmail string, debitAmount float64) (float64, error)
}

type LoanEngine interface {
	Apply(ctx context.Context, userID int, principal, rate float64, periodMonths int) (*domain.Loan, error)
	Repay(ctx context.Context, userID int) (*domain.Loan, error)
	IsBlocked(ctx context.Context, userID int) (bool, error)
	Outstanding(ctx context.Context, userID int) (float64, error)
	DueReminders(ctx context.Context, userID int) ([]domain.LoanReminder, error)
}

// Service is the single entry point external collaborators call. Every
// operation validates its input against current aggregate state, then runs
// its writes inside one store transaction.
type Service struct {
	transactionRepo TransactionRepo
	userRepo        UserRepo
	savings         SavingsEngine
	loans           LoanEngine
	txManager       pg.TXManager
}

func New(transactionRepo TransactionRepo, userRepo UserRepo, savings SavingsEngine, loans LoanEngine, txManager pg.TXManager) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		savings:         savings,
		loans:           loans,
		txManager:       txManager,
	}
}

func validateEntry(amount float64, description string) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	if amount > maxAmount {
		return domain.ErrAmountTooLarge
	}
	if len(description) > maxDescriptionLen {
		return domain.ErrDescriptionTooLong
	}
	return nil
}

func (s *Service) requireUser(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *Service) requireNotBlocked(ctx context.Context, userID int) error {
	blocked, err := s.loans.IsBlocked(ctx, userID)
	if err != nil {
		return err
	}
	if blocked {
		zap.L().Info("operation refused for blocked user", zap.Int("userID", userID))
		return domain.ErrAccountBlocked
	}
	return nil
}

// Debit records a spend. The funds check, the log append and the savings
// skim happen inside one transaction: the balance can never drop below zero
// and a debit can never land without its skim. The balance is reduced by
// exactly amount; the skim is bookkeeping on top of it, not in addition.
func (s *Service) Debit(ctx context.Context, userID int, amount float64, description string) (*domain.Transaction, error) {
	if err := validateEntry(amount, description); err != nil {
		return nil, err
	}
	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.requireNotBlocked(ctx, userID); err != nil {
		return nil, err
	}

	trx := &domain.Transaction{
		Kind:        domain.DebitKind,
		Amount:      amount,
		Description: description,
		OwnerEmail:  user.Email,
		Timestamp:   time.Now(),
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.transactionRepo.SumByOwner(ctx, user.Email)
		if err != nil {
			return err
		}
		if amount > balance {
			return domain.ErrInsufficientFunds
		}
		if err := s.transactionRepo.Append(ctx, trx); err != nil {
			return err
		}
		_, err = s.savings.SkimOnDebit(ctx, user.Email, amount)
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("debit recorded", zap.Int("userID", userID), zap.Float64("amount", amount))
	return trx, nil
}

func (s *Service) Credit(ctx context.Context, userID int, amount float64, description string) (*domain.Transaction, error) {
	if err := validateEntry(amount, description); err != nil {
		return nil, err
	}
	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.requireNotBlocked(ctx, userID); err != nil {
		return nil, err
	}

	trx := &domain.Transaction{
		Kind:        domain.CreditKind,
		Amount:      amount,
		Description: description,
		OwnerEmail:  user.Email,
		Timestamp:   time.Now(),
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		return s.transactionRepo.Append(ctx, trx)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("credit recorded", zap.Int("userID", userID), zap.Float64("amount", amount))
	return trx, nil
}

// ActivateSavings validates the percentage on behalf of the engine, which
// trusts its callers by contract.
func (s *Service) ActivateSavings(ctx context.Context, userID int, percentage int) error {
	if percentage < 1 || percentage > 100 {
		return domain.ErrInvalidPercentage
	}
	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return err
	}
	return s.savings.Activate(ctx, user.Email, percentage)
}

func (s *Service) ApplyLoan(ctx context.Context, userID int, principal, rate float64, periodMonths int) (*domain.Loan, error) {
	if _, err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.loans.Apply(ctx, userID, principal, rate, periodMonths)
}

func (s *Service) RepayLoan(ctx context.Context, userID int) (*domain.Loan, error) {
	return s.loans.Repay(ctx, userID)
}

func (s *Service) LoanReminders(ctx context.Context, userID int) ([]domain.LoanReminder, error) {
	return s.loans.DueReminders(ctx, userID)
}

// Summary returns one coherent view of balance, savings pool and loan
// outstanding for the user. The three reads share a single transaction: a
// sweep committing in between could otherwise show the swept amount in
// neither balance nor savings.
func (s *Service) Summary(ctx context.Context, userID int) (*domain.Summary, error) {
	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var summary domain.Summary
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.transactionRepo.SumByOwner(ctx, user.Email)
		if err != nil {
			return err
		}
		summary.Balance = balance

		account, err := s.savings.GetAccount(ctx, user.Email)
		if err != nil {
			return err
		}
		if account != nil {
			summary.Savings = account.Accumulated
		}

		outstanding, err := s.loans.Outstanding(ctx, userID)
		if err != nil {
			return err
		}
		summary.LoanOutstanding = outstanding
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// History is the read-only transaction feed for the export collaborator.
func (s *Service) History(ctx context.Context, userID int, order domain.ListOrder) ([]domain.Transaction, error) {
	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactionRepo.ListByOwner(ctx, user.Email, order)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}
