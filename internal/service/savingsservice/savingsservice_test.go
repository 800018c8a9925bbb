package savingsservice

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/avdeyev/ledger/internal/domain"
	"github.com/avdeyev/ledger/internal/pg"
	savingsrepo "github.com/avdeyev/ledger/internal/repo/savings-repo"
	transactionrepo "github.com/avdeyev/ledger/internal/repo/transaction-repo"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockSavingsRepo, *MockTransactionRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	savingsRepo := NewMockSavingsRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(savingsRepo, transactionRepo, txManager)
	defer ctrl.Finish()
	return service, savingsRepo, transactionRepo, txManager
}

func passThroughTx(txManager *pg.MockTXManager) *gomock.Call {
	return txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
}

func TestActivate(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(savingsRepo *MockSavingsRepo)
		expectedError error
	}{
		{
			name: "Successful activation",
			prepareMock: func(savingsRepo *MockSavingsRepo) {
				savingsRepo.EXPECT().Upsert(gomock.Any(), "maria@example.com", 10).Return(nil)
			},
		},
		{
			name: "Repo error surfaces",
			prepareMock: func(savingsRepo *MockSavingsRepo) {
				savingsRepo.EXPECT().Upsert(gomock.Any(), "maria@example.com", 10).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, savingsRepo, _, _ := NewMock(t)
			tt.prepareMock(savingsRepo)

			err := service.Activate(context.Background(), "maria@example.com", 10)
			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSkimOnDebit(t *testing.T) {
	tests := []struct {
		name         string
		debitAmount  float64
		prepareMock  func(savingsRepo *MockSavingsRepo)
		expectedSkim float64
		expectErr    bool
	}{
		{
			name:        "Ten percent of the debit is skimmed",
			debitAmount: 250,
			prepareMock: func(savingsRepo *MockSavingsRepo) {
				savingsRepo.EXPECT().GetByOwner(gomock.Any(), "maria@example.com").Return(&domain.SavingsAccount{
					ID: 1, OwnerEmail: "maria@example.com", Percentage: 10,
				}, nil)
				savingsRepo.EXPECT().AddToAccumulated(gomock.Any(), "maria@example.com", 25.0).Return(nil)
			},
			expectedSkim: 25,
		},
		{
			name:        "Inactive savings skim nothing",
			debitAmount: 250,
			prepareMock: func(savingsRepo *MockSavingsRepo) {
				savingsRepo.EXPECT().GetByOwner(gomock.Any(), "maria@example.com").Return(nil, nil)
			},
			expectedSkim: 0,
		},
		{
			name:        "Accumulate failure surfaces",
			debitAmount: 250,
			prepareMock: func(savingsRepo *MockSavingsRepo) {
				savingsRepo.EXPECT().GetByOwner(gomock.Any(), "maria@example.com").Return(&domain.SavingsAccount{
					ID: 1, OwnerEmail: "maria@example.com", Percentage: 10,
				}, nil)
				savingsRepo.EXPECT().AddToAccumulated(gomock.Any(), "maria@example.com", 25.0).Return(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, savingsRepo, _, _ := NewMock(t)
			tt.prepareMock(savingsRepo)

			skim, err := service.SkimOnDebit(context.Background(), "maria@example.com", tt.debitAmount)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedSkim, skim)
			}
		})
	}
}

func TestMonthlySweep(t *testing.T) {
	t.Run("Each pool becomes one credit and resets", func(t *testing.T) {
		service, savingsRepo, transactionRepo, txManager := NewMock(t)

		savingsRepo.EXPECT().FindAccumulating(gomock.Any()).Return([]domain.SavingsAccount{
			{ID: 1, OwnerEmail: "maria@example.com", Percentage: 10, Accumulated: 52.3},
			{ID: 2, OwnerEmail: "ivan@example.com", Percentage: 5, Accumulated: 7},
		}, nil)
		passThroughTx(txManager).Times(2)

		transactionRepo.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, trx *domain.Transaction) error {
				assert.Equal(t, domain.CreditKind, trx.Kind)
				assert.Equal(t, 52.3, trx.Amount)
				assert.Equal(t, SweepDescription, trx.Description)
				return nil
			})
		savingsRepo.EXPECT().ResetAccumulated(gomock.Any(), "maria@example.com").Return(nil)
		transactionRepo.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, trx *domain.Transaction) error {
				assert.Equal(t, 7.0, trx.Amount)
				return nil
			})
		savingsRepo.EXPECT().ResetAccumulated(gomock.Any(), "ivan@example.com").Return(nil)

		err := service.MonthlySweep(context.Background())
		assert.NoError(t, err)
	})

	t.Run("A failed account is skipped, the rest still sweep", func(t *testing.T) {
		service, savingsRepo, transactionRepo, txManager := NewMock(t)

		savingsRepo.EXPECT().FindAccumulating(gomock.Any()).Return([]domain.SavingsAccount{
			{ID: 1, OwnerEmail: "maria@example.com", Percentage: 10, Accumulated: 52.3},
			{ID: 2, OwnerEmail: "ivan@example.com", Percentage: 5, Accumulated: 7},
		}, nil)
		passThroughTx(txManager).Times(2)

		transactionRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
		transactionRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		savingsRepo.EXPECT().ResetAccumulated(gomock.Any(), "ivan@example.com").Return(nil)

		err := service.MonthlySweep(context.Background())
		assert.NoError(t, err)
	})

	t.Run("Nothing accumulated is a no-op", func(t *testing.T) {
		service, savingsRepo, _, _ := NewMock(t)

		savingsRepo.EXPECT().FindAccumulating(gomock.Any()).Return(nil, nil)

		err := service.MonthlySweep(context.Background())
		assert.NoError(t, err)
	})

	t.Run("Listing failure aborts the sweep", func(t *testing.T) {
		service, savingsRepo, _, _ := NewMock(t)

		savingsRepo.EXPECT().FindAccumulating(gomock.Any()).Return(nil, errors.New("db error"))

		err := service.MonthlySweep(context.Background())
		assert.Error(t, err)
	})
}

// A failed reset must take that account's sweep credit down with it: over the
// real transaction manager the first account rolls back in full while the
// second still commits.
func TestMonthlySweepRollsBackFailedAccount(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	conn := pg.New(mockDB)
	txManager := pg.NewTXManager(conn)
	service := New(savingsrepo.New(conn), transactionrepo.New(conn), txManager)

	mockDB.ExpectQuery(regexp.QuoteMeta("SELECT id, owner_email, percentage, accumulated_amount")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "owner_email", "percentage", "accumulated_amount"}).
			AddRow(1, "maria@example.com", 10, 52.3).
			AddRow(2, "ivan@example.com", 5, 7.0))

	mockDB.ExpectBegin()
	mockDB.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs(domain.CreditKind, 52.3, SweepDescription, "maria@example.com", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mockDB.ExpectExec(regexp.QuoteMeta("UPDATE savings")).
		WithArgs("maria@example.com").
		WillReturnError(errors.New("connection reset"))
	mockDB.ExpectRollback()

	mockDB.ExpectBegin()
	mockDB.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs(domain.CreditKind, 7.0, SweepDescription, "ivan@example.com", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(2)))
	mockDB.ExpectExec(regexp.QuoteMeta("UPDATE savings")).
		WithArgs("ivan@example.com").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mockDB.ExpectCommit()

	err = service.MonthlySweep(context.Background())
	assert.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestGetAccount(t *testing.T) {
	service, savingsRepo, _, _ := NewMock(t)

	account := &domain.SavingsAccount{ID: 1, OwnerEmail: "maria@example.com", Percentage: 10, Accumulated: 52.3}
	savingsRepo.EXPECT().GetByOwner(gomock.Any(), "maria@example.com").Return(account, nil)

	result, err := service.GetAccount(context.Background(), "maria@example.com")
	assert.NoError(t, err)
	assert.Equal(t, account, result)
}
