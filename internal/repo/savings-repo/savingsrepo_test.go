package savingsrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/avdeyev/ledger/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_GetByOwner(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, owner_email, percentage, accumulated_amount
        FROM savings
        WHERE owner_email = $1
    `)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.SavingsAccount
	}{
		{
			name: "Account found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "owner_email", "percentage", "accumulated_amount"}).
					AddRow(1, "maria@example.com", 10, 52.3)
				mock.ExpectQuery(query).WithArgs("maria@example.com").WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.SavingsAccount{
				ID:          1,
				OwnerEmail:  "maria@example.com",
				Percentage:  10,
				Accumulated: 52.3,
			},
		},
		{
			name: "Savings not activated",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("maria@example.com").WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("maria@example.com").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByOwner(context.Background(), "maria@example.com")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
		INSERT INTO savings (owner_email, percentage)
		VALUES ($1, $2)
		ON CONFLICT (owner_email) DO UPDATE SET percentage = EXCLUDED.percentage
	`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "First activation inserts",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("maria@example.com", 10).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
		},
		{
			name: "Re-activation updates percentage",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("maria@example.com", 25).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("maria@example.com", 10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			percentage := 10
			if tt.name == "Re-activation updates percentage" {
				percentage = 25
			}
			err := repo.Upsert(context.Background(), "maria@example.com", percentage)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_AddToAccumulated(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
		UPDATE savings
		SET accumulated_amount = accumulated_amount + $1
		WHERE owner_email = $2
	`)

	mock.ExpectExec(query).
		WithArgs(12.5, "maria@example.com").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.AddToAccumulated(context.Background(), "maria@example.com", 12.5)
	assert.NoError(t, err)
}

func TestRepository_ResetAccumulated(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
		UPDATE savings
		SET accumulated_amount = 0
		WHERE owner_email = $1
	`)

	mock.ExpectExec(query).
		WithArgs("maria@example.com").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.ResetAccumulated(context.Background(), "maria@example.com")
	assert.NoError(t, err)
}

func TestRepository_FindAccumulating(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, owner_email, percentage, accumulated_amount
        FROM savings
        WHERE accumulated_amount > 0
        ORDER BY id ASC
    `)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  []domain.SavingsAccount
	}{
		{
			name: "Accounts with something to sweep",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "owner_email", "percentage", "accumulated_amount"}).
					AddRow(1, "maria@example.com", 10, 52.3).
					AddRow(2, "ivan@example.com", 5, 7.0)
				mock.ExpectQuery(query).WillReturnRows(rows)
			},
			expectErr: false,
			expected: []domain.SavingsAccount{
				{ID: 1, OwnerEmail: "maria@example.com", Percentage: 10, Accumulated: 52.3},
				{ID: 2, OwnerEmail: "ivan@example.com", Percentage: 5, Accumulated: 7},
			},
		},
		{
			name: "Nothing accumulated",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "owner_email", "percentage", "accumulated_amount"})
				mock.ExpectQuery(query).WillReturnRows(rows)
			},
			expectErr: false,
			expected:  nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			accounts, err := repo.FindAccumulating(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, accounts)
			}
		})
	}
}
