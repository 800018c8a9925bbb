package loanrepo

import (
	"context"
	"time"

	"github.com/avdeyev/ledger/internal/domain"
	"github.com/avdeyev/ledger/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, loan *domain.Loan) error {
	query := `
		INSERT INTO loans (user_id, principal, rate, period_months, outstanding, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		loan.UserID, loan.Principal, loan.Rate, loan.PeriodMonths, loan.Outstanding, loan.Status, loan.CreatedAt).
		Scan(&loan.ID)
	if err != nil {
		zap.L().Error("can't save loan", zap.Error(err))
		return err
	}
	return nil
}

// FindActiveByUserID returns the oldest active loan with something left to
// repay, or nil when the user has none.
func (r *Repository) FindActiveByUserID(ctx context.Context, userID int) (*domain.Loan, error) {
	query := `
        SELECT id, user_id, principal, rate, period_months, outstanding, status, created_at
        FROM loans
        WHERE user_id = $1 AND status = 'active' AND outstanding > 0
        ORDER BY created_at ASC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var loan domain.Loan
	err := row.Scan(&loan.ID, &loan.UserID, &loan.Principal, &loan.Rate, &loan.PeriodMonths,
		&loan.Outstanding, &loan.Status, &loan.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find active loan", zap.Error(err))
		return nil, err
	}
	return &loan, nil
}

func (r *Repository) FindActiveForReminders(ctx context.Context, userID int) ([]domain.Loan, error) {
	query := `
        SELECT id, user_id, principal, rate, period_months, outstanding, status, created_at
        FROM loans
        WHERE user_id = $1 AND status = 'active'
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get active loans", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		var loan domain.Loan
		err := rows.Scan(&loan.ID, &loan.UserID, &loan.Principal, &loan.Rate, &loan.PeriodMonths,
			&loan.Outstanding, &loan.Status, &loan.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan loan row", zap.Error(err))
			return nil, err
		}
		loans = append(loans, loan)
	}
	return loans, nil
}

// UpdateRepayment is the only mutation a loan sees after creation: the
// outstanding balance only ever decreases, and active flips to repaid once.
func (r *Repository) UpdateRepayment(ctx context.Context, loanID int, outstanding float64, status string) error {
	query := `
        UPDATE loans
        SET outstanding = $1, status = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, outstanding, status, loanID)
	if err != nil {
		zap.L().Error("can't update loan repayment", zap.Error(err))
		return err
	}
	return nil
}

// HasOverdue reports whether any active loan has passed its full repayment
// horizon (created_at + period months) with outstanding balance left.
func (r *Repository) HasOverdue(ctx context.Context, userID int, now time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM loans
			WHERE user_id = $1
			  AND status = 'active'
			  AND outstanding > 0
			  AND created_at + make_interval(months => period_months) <= $2
		)
	`
	var overdue bool
	err := r.db.QueryRow(ctx, query, userID, now).Scan(&overdue)
	if err != nil {
		zap.L().Error("can't check overdue loans", zap.Error(err))
		return false, err
	}
	return overdue, nil
}

func (r *Repository) SumOutstanding(ctx context.Context, userID int) (float64, error) {
	query := `
		SELECT COALESCE(SUM(outstanding), 0)
		FROM loans
		WHERE user_id = $1
	`
	var total float64
	err := r.db.QueryRow(ctx, query, userID).Scan(&total)
	if err != nil {
		zap.L().Error("can't sum outstanding loans", zap.Error(err))
		return 0, err
	}
	return total, nil
}
