package bank

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// Account is a dumb append-only ledger. It holds no balance field: the
// balance is always recomputed from the transaction log, so the two can
// never drift apart. Amount-sign and sufficiency validation live one layer
// up, in User.
type Account struct {
	ID   string
	Name string

	mu           sync.Mutex
	transactions []*Transaction
}

func newAccount(id, name string) *Account {
	return &Account{ID: id, Name: name}
}

// Balance is the sum of all transaction amounts, computed on demand.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balanceLocked()
}

func (a *Account) balanceLocked() decimal.Decimal {
	balance := decimal.Zero
	for _, t := range a.transactions {
		balance = balance.Add(t.Amount)
	}
	return balance
}

// AddTransaction appends a new entry with the current timestamp. The sign
// of amount decides credit versus debit; no validation happens here.
func (a *Account) AddTransaction(amount decimal.Decimal, memo string) *Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.addTransactionLocked(amount, memo)
}

func (a *Account) addTransactionLocked(amount decimal.Decimal, memo string) *Transaction {
	t := newTransaction(amount, memo)
	a.transactions = append(a.transactions, t)
	return t
}

// TransactionHistory returns the ledger most-recent-first. The slice is a
// copy, so the caller gets a stable snapshot of an append-only log.
func (a *Account) TransactionHistory() []*Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]*Transaction, len(a.transactions))
	for i, t := range a.transactions {
		out[len(a.transactions)-1-i] = t
	}
	return out
}

// SummaryLine renders "ID : $balance : name". A negative balance is
// wrapped in parentheses, still carrying its sign. The display layer
// depends on this exact shape.
func (a *Account) SummaryLine() string {
	balance := a.Balance()
	if balance.Sign() >= 0 {
		return fmt.Sprintf("%s : $%s : %s", a.ID, balance.StringFixed(2), a.Name)
	}
	return fmt.Sprintf("%s : $(%s) : %s", a.ID, balance.StringFixed(2), a.Name)
}
