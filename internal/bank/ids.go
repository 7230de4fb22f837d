package bank

import "math/rand"

// Identifier digit counts per namespace. Accounts outnumber users, so the
// account namespace is wider.
const (
	userIDDigits    = 6
	accountIDDigits = 10
)

// newUserIDLocked draws fixed-length digit strings until one does not
// collide with an existing user. Caller must hold b.mu so the check and
// the eventual insert form one critical section. Namespace exhaustion is
// assumed never to occur.
func (b *Bank) newUserIDLocked() string {
	for {
		id := randomDigits(userIDDigits)
		if !b.userIDTakenLocked(id) {
			return id
		}
	}
}

// newAccountIDLocked is the account-namespace counterpart, checked
// against the flat index rather than any per-user list.
func (b *Bank) newAccountIDLocked() string {
	for {
		id := randomDigits(accountIDDigits)
		if _, taken := b.accounts[id]; !taken {
			return id
		}
	}
}

func (b *Bank) userIDTakenLocked(id string) bool {
	for _, u := range b.users {
		if u.ID == id {
			return true
		}
	}
	return false
}

func randomDigits(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = '0' + byte(rand.Intn(10))
	}
	return string(buf)
}
