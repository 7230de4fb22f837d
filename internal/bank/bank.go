// Package bank implements the core of the ATM simulation: a Bank holding
// users, each user holding accounts, each account holding an append-only
// sequence of transactions. Balances are always derived from the ledger,
// identifiers are unique per namespace, and PINs are stored only as
// digests.
package bank

import (
	"sync"
	"time"

	"atm-ledger/internal/interfaces"
	"atm-ledger/internal/models/events"
	"atm-ledger/internal/pin"
)

// Bank is the process-wide root. It owns the user list, a flat index of
// every account across all users, and the two identifier namespaces. The
// mutex serializes user/account registration and each namespace's
// check-then-insert.
type Bank struct {
	Name string

	mu       sync.Mutex
	users    []*User
	accounts map[string]*Account

	hasher pin.Hasher
	events interfaces.EventPublisher
}

// New creates an empty bank with the given secret hasher and event sink.
// There is no ambient singleton: the session layer holds the instance it
// gets here.
func New(name string, hasher pin.Hasher, publisher interfaces.EventPublisher) *Bank {
	return &Bank{
		Name:     name,
		accounts: make(map[string]*Account),
		hasher:   hasher,
		events:   publisher,
	}
}

// AddUser provisions a new user together with their default savings
// account. The account is registered in both the user's list and the
// bank's flat index.
func (b *Bank) AddUser(first, last, pinCode string) *User {
	b.mu.Lock()
	u := &User{
		ID:        b.newUserIDLocked(),
		FirstName: first,
		LastName:  last,
		pinDigest: b.hasher.Digest(pinCode),
		hasher:    b.hasher,
		events:    b.events,
	}
	b.users = append(b.users, u)

	savings := newAccount(b.newAccountIDLocked(), "Savings")
	b.accounts[savings.ID] = savings
	u.accounts = append(u.accounts, savings)
	b.mu.Unlock()

	_ = b.events.Publish(events.TopicUserCreated, events.UserCreated{
		UserID:           u.ID,
		FirstName:        first,
		LastName:         last,
		DefaultAccountID: savings.ID,
		OccurredAt:       time.Now(),
	})
	return u
}

// NewAccount creates an account with a fresh unique identifier and
// registers it in the flat index in the same critical section, so the
// uniqueness check and the insert cannot be split. The caller attaches
// the account to a user with User.AddAccount.
func (b *Bank) NewAccount(name string) *Account {
	b.mu.Lock()
	defer b.mu.Unlock()
	a := newAccount(b.newAccountIDLocked(), name)
	b.accounts[a.ID] = a
	return a
}

// AddAccount registers an externally held account in the flat index.
func (b *Bank) AddAccount(a *Account) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.accounts[a.ID] = a
}

// Login finds the user by identifier and validates the PIN. Both an
// unknown ID and a wrong PIN come back as ErrAuthentication; the caller
// re-prompts.
func (b *Bank) Login(userID, pinCode string) (*User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, u := range b.users {
		if u.ID == userID && u.ValidatePIN(pinCode) {
			return u, nil
		}
	}
	return nil, ErrAuthentication
}

// UserCount reports how many users the bank holds.
func (b *Bank) UserCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.users)
}

// AccountCount reports the size of the flat account index.
func (b *Bank) AccountCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.accounts)
}
