package loanservice

import (
	"context"
	"errors"
	"time"

	"github.com/avdeyev/ledger/internal/domain"
	"github.com/avdeyev/ledger/internal/pg"
	"go.uber.org/zap"
)

// RepaymentDescription is the fixed description of the repayment debit.
const RepaymentDescription = "Loan repayment"

// reminderWindowDays is how far ahead of the due date reminders start.
const reminderWindowDays = 7

type LoanRepo interface {
	Create(ctx context.Context, loan *domain.Loan) error
	FindActiveByUserID(ctx context.Context, userID int) (*domain.Loan, error)
	FindActiveForReminders(ctx context.Context, userID int) ([]domain.Loan, error)
	UpdateRepayment(ctx context.Context, loanID int, outstanding float64, status string) error
	HasOverdue(ctx context.Context, userID int, now time.Time) (bool, error)
	SumOutstanding(ctx context.Context, userID int) (float64, error)
}

type TransactionRepo interface {
	Append(ctx context.Context, trx *domain.Transaction) error
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Service struct {
	loanRepo        LoanRepo
	transactionRepo TransactionRepo
	userRepo        UserRepo
	txManager       pg.TXManager
	now             func() time.Time
}

func New(loanRepo LoanRepo, transactionRepo TransactionRepo, userRepo UserRepo, txManager pg.TXManager) *Service {
	return &Service{
		loanRepo:        loanRepo,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		txManager:       txManager,
		now:             time.Now,
	}
}

// Apply creates an active loan with outstanding = principal * (1 + rate).
// Nothing prevents a user from holding several active loans at once.
func (s *Service) Apply(ctx context.Context, userID int, principal, rate float64, periodMonths int) (*domain.Loan, error) {
	if principal <= 0 || rate < 0 || periodMonths <= 0 {
		return nil, domain.ErrInvalidLoanTerms
	}

	loan := &domain.Loan{
		UserID:       userID,
		Principal:    principal,
		Rate:         rate,
		PeriodMonths: periodMonths,
		Outstanding:  principal * (1 + rate),
		Status:       domain.ActiveLoanStatus,
		CreatedAt:    s.now(),
	}
	if err := s.loanRepo.Create(ctx, loan); err != nil {
		zap.L().Error("can't create loan", zap.Error(err))
		return nil, err
	}

	zap.L().Info("loan issued",
		zap.Int("userID", userID),
		zap.Float64("principal", principal),
		zap.Float64("outstanding", loan.Outstanding))
	return loan, nil
}

// Repay pays one installment (current outstanding / period months) off the
// oldest active loan. The loan is read, the debit appended and the balance
// updated inside one transaction, so concurrent repayments each see the
// previous one's outstanding rather than double-debiting against a stale
// read. The loan flips to repaid when the remainder drops to the epsilon.
func (s *Service) Repay(ctx context.Context, userID int) (*domain.Loan, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	var loan *domain.Loan
	var installment float64
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		loan, err = s.loanRepo.FindActiveByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if loan == nil {
			return domain.ErrNoActiveLoan
		}

		installment = loan.Outstanding / float64(loan.PeriodMonths)
		newOutstanding := loan.Outstanding - installment
		status := domain.ActiveLoanStatus
		if newOutstanding <= domain.RepaidEpsilon {
			status = domain.RepaidLoanStatus
		}

		trx := &domain.Transaction{
			Kind:        domain.DebitKind,
			Amount:      installment,
			Description: RepaymentDescription,
			OwnerEmail:  user.Email,
			Timestamp:   s.now(),
		}
		if err := s.transactionRepo.Append(ctx, trx); err != nil {
			return err
		}
		if err := s.loanRepo.UpdateRepayment(ctx, loan.ID, newOutstanding, status); err != nil {
			return err
		}
		loan.Outstanding = newOutstanding
		loan.Status = status
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveLoan) {
			return nil, err
		}
		zap.L().Error("loan repayment failed", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("loan installment repaid",
		zap.Int("loanID", loan.ID),
		zap.Float64("installment", installment),
		zap.Float64("outstanding", loan.Outstanding),
		zap.String("status", loan.Status))
	return loan, nil
}

// IsBlocked reports whether the user has an active loan past its full
// repayment horizon with outstanding balance left. Blocked users are refused
// ordinary debits and credits by the facade.
func (s *Service) IsBlocked(ctx context.Context, userID int) (bool, error) {
	blocked, err := s.loanRepo.HasOverdue(ctx, userID, s.now())
	if err != nil {
		zap.L().Error("can't check blocked state", zap.Error(err))
		return false, err
	}
	return blocked, nil
}

func (s *Service) Outstanding(ctx context.Context, userID int) (float64, error) {
	total, err := s.loanRepo.SumOutstanding(ctx, userID)
	if err != nil {
		zap.L().Error("can't get outstanding loan total", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// DueReminders lists the active loans whose due date falls within the next
// seven days. Pure read, no state change.
func (s *Service) DueReminders(ctx context.Context, userID int) ([]domain.LoanReminder, error) {
	loans, err := s.loanRepo.FindActiveForReminders(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var reminders []domain.LoanReminder
	for _, loan := range loans {
		dueDate := truncateToDay(loan.DueDate())
		daysLeft := daysBetween(now, loan.DueDate())
		if daysLeft >= 0 && daysLeft <= reminderWindowDays {
			reminders = append(reminders, domain.LoanReminder{
				LoanID:      loan.ID,
				Outstanding: loan.Outstanding,
				DueDate:     dueDate,
				DaysLeft:    daysLeft,
			})
		}
	}
	return reminders, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from a to b. Both dates are rebuilt at
// midnight UTC so the difference is an exact multiple of 24 hours even when
// the span crosses a DST transition in the wall-clock location.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}
