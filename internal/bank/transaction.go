package bank

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is one immutable ledger entry: a signed amount, a memo and
// the instant it was appended. Transactions are created only through
// Account.AddTransaction and are never mutated or removed afterwards.
type Transaction struct {
	ID        string
	Amount    decimal.Decimal
	Memo      string
	Timestamp time.Time
}

func newTransaction(amount decimal.Decimal, memo string) *Transaction {
	return &Transaction{
		ID:        uuid.New().String(),
		Amount:    amount,
		Memo:      memo,
		Timestamp: time.Now(),
	}
}

// SummaryLine renders the entry for display. Negative amounts are wrapped
// in parentheses, keeping their sign, the same convention as
// Account.SummaryLine.
func (t *Transaction) SummaryLine() string {
	if t.Amount.Sign() >= 0 {
		return fmt.Sprintf("%s : $%s : %s", t.Timestamp.Format(time.DateTime), t.Amount.StringFixed(2), t.Memo)
	}
	return fmt.Sprintf("%s : $(%s) : %s", t.Timestamp.Format(time.DateTime), t.Amount.StringFixed(2), t.Memo)
}
