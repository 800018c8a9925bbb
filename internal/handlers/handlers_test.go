package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/avdeyev/ledger/docs"
	"github.com/avdeyev/ledger/internal/handlers/auth"
	"github.com/avdeyev/ledger/internal/handlers/ledger"
	"github.com/avdeyev/ledger/internal/handlers/loans"
	"github.com/avdeyev/ledger/internal/handlers/savings"
	"github.com/avdeyev/ledger/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:    auth.NewMockService(ctrl),
		LedgerService:  ledger.NewMockService(ctrl),
		SavingsService: savings.NewMockService(ctrl),
		LoanService:    loans.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockLedgerHandler := NewMockLedgerHandler(ctrl)
	mockSavingsHandler := NewMockSavingsHandler(ctrl)
	mockLoansHandler := NewMockLoansHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().Debit(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().Credit(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().GetHistory(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().GetSummary(gomock.Any(), gomock.Any()).AnyTimes()
	mockSavingsHandler.EXPECT().Activate(gomock.Any(), gomock.Any()).AnyTimes()
	mockLoansHandler.EXPECT().Apply(gomock.Any(), gomock.Any()).AnyTimes()
	mockLoansHandler.EXPECT().Repay(gomock.Any(), gomock.Any()).AnyTimes()
	mockLoansHandler.EXPECT().GetReminders(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		LedgerHandler:  mockLedgerHandler,
		SavingsHandler: mockSavingsHandler,
		LoansHandler:   mockLoansHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"POST", "/api/user/transactions/debit", http.StatusUnauthorized},
		{"POST", "/api/user/transactions/credit", http.StatusUnauthorized},
		{"GET", "/api/user/transactions", http.StatusUnauthorized},
		{"GET", "/api/user/summary", http.StatusUnauthorized},
		{"POST", "/api/user/savings", http.StatusUnauthorized},
		{"POST", "/api/user/loans", http.StatusUnauthorized},
		{"POST", "/api/user/loans/repay", http.StatusUnauthorized},
		{"GET", "/api/user/loans/reminders", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
