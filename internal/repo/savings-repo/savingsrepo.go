package savingsrepo

import (
	"context"

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

func (r *Repository) GetByOwner(ctx context.Context, ownerEmail string) (*domain.SavingsAccount, error) {
	query := `
        SELECT id, owner_email, percentage, accumulated_amount
        FROM savings
        WHERE owner_email = $1
    `
	row := r.db.QueryRow(ctx, query, ownerEmail)
	var account domain.SavingsAccount
	err := row.Scan(&account.ID, &account.OwnerEmail, &account.Percentage, &account.Accumulated)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get savings account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

// Upsert creates the account on first activation and only changes the
// percentage afterwards; the accumulated amount is never touched here.
func (r *Repository) Upsert(ctx context.Context, ownerEmail string, percentage int) error {
	query := `
		INSERT INTO savings (owner_email, percentage)
		VALUES ($1, $2)
		ON CONFLICT (owner_email) DO UPDATE SET percentage = EXCLUDED.percentage
	`
	_, err := r.db.Exec(ctx, query, ownerEmail, percentage)
	if err != nil {
		zap.L().Error("can't upsert savings account", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AddToAccumulated(ctx context.Context, ownerEmail string, amount float64) error {
	query := `
		UPDATE savings
		SET accumulated_amount = accumulated_amount + $1
		WHERE owner_email = $2
	`
	_, err := r.db.Exec(ctx, query, amount, ownerEmail)
	if err != nil {
		zap.L().Error("can't accumulate savings", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ResetAccumulated(ctx context.Context, ownerEmail string) error {
	query := `
		UPDATE savings
		SET accumulated_amount = 0
		WHERE owner_email = $1
	`
	_, err := r.db.Exec(ctx, query, ownerEmail)
	if err != nil {
		zap.L().Error("can't reset accumulated savings", zap.Error(err))
		return err
	}
	return nil
}

// FindAccumulating returns the accounts with anything to sweep. Accounts at
// zero are skipped, which makes a repeated sweep a no-op.
func (r *Repository) FindAccumulating(ctx context.Context) ([]domain.SavingsAccount, error) {
	query := `
        SELECT id, owner_email, percentage, accumulated_amount
        FROM savings
        WHERE accumulated_amount > 0
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get accumulating savings accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.SavingsAccount
	for rows.Next() {
		var account domain.SavingsAccount
		err := rows.Scan(&account.ID, &account.OwnerEmail, &account.Percentage, &account.Accumulated)
		if err != nil {
			zap.L().Error("can't scan savings account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}
