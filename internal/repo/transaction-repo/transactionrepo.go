package transactionrepo

import (
	"context"

	"github.com/avdeyev/ledger/internal/domain"
	"github.com/avdeyev/ledger/internal/pg"
	"go.uber.org/zap"
)

// Repository owns the append-only transaction log. Rows are never updated or
// deleted; the balance is always derivable from the fold over them.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Append(ctx context.Context, trx *domain.Transaction) error {
	query := `
		INSERT INTO transactions (kind, amount, description, owner_email, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, trx.Kind, trx.Amount, trx.Description, trx.OwnerEmail, trx.Timestamp).Scan(&trx.ID)
	if err != nil {
		zap.L().Error("can't append transaction", zap.Error(err))
		return err
	}
	return nil
}

// SumByOwner recomputes the owner's balance as sum(Credit) - sum(Debit) over
// the whole log. Inside a transaction it sees that transaction's own writes.
func (r *Repository) SumByOwner(ctx context.Context, ownerEmail string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN kind = 'Credit' THEN amount ELSE -amount END), 0)
		FROM transactions
		WHERE owner_email = $1
	`
	var balance float64
	err := r.db.QueryRow(ctx, query, ownerEmail).Scan(&balance)
	if err != nil {
		zap.L().Error("can't compute balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (r *Repository) ListByOwner(ctx context.Context, ownerEmail string, order domain.ListOrder) ([]domain.Transaction, error) {
	query := `
        SELECT id, kind, amount, description, owner_email, timestamp
        FROM transactions
        WHERE owner_email = $1
        ORDER BY id ASC
    `
	if order == domain.NewestFirst {
		query = `
        SELECT id, kind, amount, description, owner_email, timestamp
        FROM transactions
        WHERE owner_email = $1
        ORDER BY id DESC
    `
	}
	rows, err := r.db.Query(ctx, query, ownerEmail)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var trx domain.Transaction
		err := rows.Scan(&trx.ID, &trx.Kind, &trx.Amount, &trx.Description, &trx.OwnerEmail, &trx.Timestamp)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, trx)
	}
	return transactions, nil
}
