package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

const (
	// CreditKind increases the owner's balance.
	CreditKind string = "Credit"
	// DebitKind decreases the owner's balance.
	DebitKind string = "Debit"
)

// Transaction is an immutable row of the append-only ledger log. The balance
// of an owner is the fold sum(Credit) - sum(Debit) over their rows.
type Transaction struct {
	ID          int64     `db:"id"`
	Kind        string    `db:"kind"`
	Amount      float64   `db:"amount"`
	Description string    `db:"description"`
	OwnerEmail  string    `db:"owner_email"`
	Timestamp   time.Time `db:"timestamp"`
}

type SavingsAccount struct {
	ID          int     `db:"id"`
	OwnerEmail  string  `db:"owner_email"`
	Percentage  int     `db:"percentage"`
	Accumulated float64 `db:"accumulated_amount"`
}

const (
	ActiveLoanStatus string = "active"
	RepaidLoanStatus string = "repaid"
)

// RepaidEpsilon is the residue below which a loan counts as fully repaid.
const RepaidEpsilon = 0.01

type Loan struct {
	ID           int       `db:"id"`
	UserID       int       `db:"user_id"`
	Principal    float64   `db:"principal"`
	Rate         float64   `db:"rate"`
	PeriodMonths int       `db:"period_months"`
	Outstanding  float64   `db:"outstanding"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}

// DueDate is the full repayment horizon of the loan.
func (l *Loan) DueDate() time.Time {
	return l.CreatedAt.AddDate(0, l.PeriodMonths, 0)
}

type LoanReminder struct {
	LoanID      int
	Outstanding float64
	DueDate     time.Time
	DaysLeft    int
}

// Summary is the coherent per-call view of all aggregates for one user.
type Summary struct {
	Balance         float64
	Savings         float64
	LoanOutstanding float64
}

// ListOrder enumerates the orderings the transaction log can be read in.
type ListOrder string

const (
	OldestFirst ListOrder = "oldest"
	NewestFirst ListOrder = "newest"
)
