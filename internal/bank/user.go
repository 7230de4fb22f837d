package bank

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"atm-ledger/internal/interfaces"
	"atm-ledger/internal/models/events"
	"atm-ledger/internal/pin"
)

// User owns an ordered list of accounts and the digest of their PIN. The
// cleartext PIN is digested at creation time and never retained. All money
// movement goes through the User methods, which hold the validation rules
// the Account layer deliberately does not have.
type User struct {
	ID        string
	FirstName string
	LastName  string

	pinDigest []byte
	accounts  []*Account

	hasher pin.Hasher
	events interfaces.EventPublisher
}

// ValidatePIN digests the candidate PIN and compares it against the stored
// digest, whole buffer, never cleartext.
func (u *User) ValidatePIN(candidate string) bool {
	return u.hasher.Equal(u.hasher.Digest(candidate), u.pinDigest)
}

// AddAccount attaches an account to the user's list. The account must
// already be registered in the bank's flat index (Bank.NewAccount does
// both ID generation and registration).
func (u *User) AddAccount(a *Account) {
	u.accounts = append(u.accounts, a)
}

func (u *User) AccountCount() int {
	return len(u.accounts)
}

// AccountSummaries returns one display line per account, in account order.
func (u *User) AccountSummaries() []string {
	out := make([]string, len(u.accounts))
	for i, a := range u.accounts {
		out[i] = a.SummaryLine()
	}
	return out
}

// TransactionHistory returns display lines for the indexed account's
// ledger, most recent first.
func (u *User) TransactionHistory(idx int) ([]string, error) {
	acct, err := u.account(idx)
	if err != nil {
		return nil, err
	}
	history := acct.TransactionHistory()
	out := make([]string, len(history))
	for i, t := range history {
		out[i] = t.SummaryLine()
	}
	return out, nil
}

func (u *User) AccountBalance(idx int) (decimal.Decimal, error) {
	acct, err := u.account(idx)
	if err != nil {
		return decimal.Zero, err
	}
	return acct.Balance(), nil
}

func (u *User) AccountID(idx int) (string, error) {
	acct, err := u.account(idx)
	if err != nil {
		return "", err
	}
	return acct.ID, nil
}

// Deposit appends +amount to the indexed account. Any positive amount is
// accepted, there is no upper bound.
func (u *User) Deposit(idx int, amount decimal.Decimal, memo string) error {
	acct, err := u.account(idx)
	if err != nil {
		return err
	}
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	t := acct.AddTransaction(amount, memo)
	u.publishPosted(acct.ID, t)
	return nil
}

// Withdraw appends -amount to the indexed account after checking the
// balance. The check and the append happen under the account's lock, so
// the balance cannot shrink between the two.
func (u *User) Withdraw(idx int, amount decimal.Decimal, memo string) error {
	acct, err := u.account(idx)
	if err != nil {
		return err
	}
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	acct.mu.Lock()
	if amount.GreaterThan(acct.balanceLocked()) {
		acct.mu.Unlock()
		return ErrInsufficientFunds
	}
	t := acct.addTransactionLocked(amount.Neg(), memo)
	acct.mu.Unlock()

	u.publishPosted(acct.ID, t)
	return nil
}

// Transfer moves amount between two of the user's accounts as two ledger
// legs: a debit whose memo names the destination and a credit whose memo
// names the source. Both account locks are held for the whole
// validate-then-append sequence, acquired in ID order to avoid deadlocks.
func (u *User) Transfer(fromIdx, toIdx int, amount decimal.Decimal) error {
	from, err := u.account(fromIdx)
	if err != nil {
		return err
	}
	to, err := u.account(toIdx)
	if err != nil {
		return err
	}
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	debit, credit, err := transferLegs(from, to, amount)
	if err != nil {
		return err
	}

	u.publishPosted(from.ID, debit)
	u.publishPosted(to.ID, credit)
	return nil
}

// transferLegs appends both legs under the account locks and returns them.
// Publishing happens in the caller, once the locks are released; a slow
// event sink must not sit inside the two-account critical section.
func transferLegs(from, to *Account, amount decimal.Decimal) (debit, credit *Transaction, err error) {
	debitMemo := fmt.Sprintf("Transfer to account %s", to.ID)
	creditMemo := fmt.Sprintf("Transfer from account %s", from.ID)

	if from.ID == to.ID {
		// Same account on both sides: one lock, two legs that cancel out.
		from.mu.Lock()
		defer from.mu.Unlock()
		if amount.GreaterThan(from.balanceLocked()) {
			return nil, nil, ErrInsufficientFunds
		}
		debit = from.addTransactionLocked(amount.Neg(), debitMemo)
		credit = from.addTransactionLocked(amount, creditMemo)
		return debit, credit, nil
	}

	if from.ID < to.ID {
		from.mu.Lock()
		to.mu.Lock()
	} else {
		to.mu.Lock()
		from.mu.Lock()
	}
	defer from.mu.Unlock()
	defer to.mu.Unlock()

	if amount.GreaterThan(from.balanceLocked()) {
		return nil, nil, ErrInsufficientFunds
	}

	debit = from.addTransactionLocked(amount.Neg(), debitMemo)
	credit = to.addTransactionLocked(amount, creditMemo)
	return debit, credit, nil
}

func (u *User) account(idx int) (*Account, error) {
	if idx < 0 || idx >= len(u.accounts) {
		return nil, ErrInvalidAccountIndex
	}
	return u.accounts[idx], nil
}

func (u *User) publishPosted(accountID string, t *Transaction) {
	// Best-effort: the ledger entry is already final.
	_ = u.events.Publish(events.TopicTransactionPosted, events.TransactionPosted{
		TransactionID: t.ID,
		AccountID:     accountID,
		Amount:        t.Amount,
		Memo:          t.Memo,
		OccurredAt:    time.Now(),
	})
}
