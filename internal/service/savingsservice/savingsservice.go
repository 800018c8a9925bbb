package savingsservice

import (
	"context"
	"time"

	"github.com/avdeyev/ledger/internal/domain"
	"github.com/avdeyev/ledger/internal/pg"
	"go.uber.org/zap"
)

// SweepDescription is the fixed description of the monthly sweep credit.
const SweepDescription = "Monthly savings transfer"

type SavingsRepo interface {
	GetByOwner(ctx context.Context, ownerEmail string) (*domain.SavingsAccount, error)
	Upsert(ctx context.Context, ownerEmail string, percentage int) error
	AddToAccumulated(ctx context.Context, ownerEmail string, amount float64) error
	ResetAccumulated(ctx context.Context, ownerEmail string) error
	FindAccumulating(ctx context.Context) ([]domain.SavingsAccount, error)
}

type TransactionRepo interface {
	Append(ctx context.Context, trx *domain.Transaction) error
}

type Service struct {
	savingsRepo     SavingsRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
}

func New(savingsRepo SavingsRepo, transactionRepo TransactionRepo, txManager pg.TXManager) *Service {
	return &Service{
		savingsRepo:     savingsRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
	}
}

// Activate upserts the savings account. The percentage range is the caller's
// contract (the facade validates it); the engine trusts what it is given.
func (s *Service) Activate(ctx context.Context, ownerEmail string, percentage int) error {
	if err := s.savingsRepo.Upsert(ctx, ownerEmail, percentage); err != nil {
		zap.L().Error("can't activate savings", zap.Error(err))
		return err
	}
	zap.L().Info("savings activated",
		zap.String("owner", ownerEmail), zap.Int("percentage", percentage))
	return nil
}

func (s *Service) GetAccount(ctx context.Context, ownerEmail string) (*domain.SavingsAccount, error) {
	account, err := s.savingsRepo.GetByOwner(ctx, ownerEmail)
	if err != nil {
		zap.L().Error("can't get savings account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// SkimOnDebit diverts the configured percentage of a debit into the savings
// pool. It opens no transaction of its own: the caller must invoke it inside
// the same transaction as the triggering debit, so neither write can land
// without the other. Returns the skimmed amount, 0 when savings are inactive.
func (s *Service) SkimOnDebit(ctx context.Context, ownerEmail string, debitAmount float64) (float64, error) {
	account, err := s.savingsRepo.GetByOwner(ctx, ownerEmail)
	if err != nil {
		return 0, err
	}
	if account == nil {
		return 0, nil
	}

	skim := debitAmount * float64(account.Percentage) / 100
	if err := s.savingsRepo.AddToAccumulated(ctx, ownerEmail, skim); err != nil {
		return 0, err
	}
	return skim, nil
}

// MonthlySweep moves every non-zero savings pool into its owner's balance as
// one Credit transaction and resets the pool. Each account is one atomic
// unit: a failed account is rolled back, logged and skipped, and is not
// retried until the next scheduled run.
func (s *Service) MonthlySweep(ctx context.Context) error {
	accounts, err := s.savingsRepo.FindAccumulating(ctx)
	if err != nil {
		zap.L().Error("can't fetch savings accounts for sweep", zap.Error(err))
		return err
	}

	for _, account := range accounts {
		account := account
		err := s.txManager.Begin(ctx, func(ctx context.Context) error {
			trx := &domain.Transaction{
				Kind:        domain.CreditKind,
				Amount:      account.Accumulated,
				Description: SweepDescription,
				OwnerEmail:  account.OwnerEmail,
				Timestamp:   time.Now(),
			}
			if err := s.transactionRepo.Append(ctx, trx); err != nil {
				return err
			}
			return s.savingsRepo.ResetAccumulated(ctx, account.OwnerEmail)
		})
		if err != nil {
			zap.L().Error("savings sweep failed for account",
				zap.String("owner", account.OwnerEmail), zap.Error(err))
			continue
		}
		zap.L().Info("transferred savings to balance",
			zap.String("owner", account.OwnerEmail), zap.Float64("amount", account.Accumulated))
	}
	return nil
}
