package events

import "time"

const TopicUserCreated = "user_created"

// UserCreated is emitted when the bank provisions a new user and their
// default savings account.
type UserCreated struct {
	UserID           string    `json:"user_id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	DefaultAccountID string    `json:"default_account_id"`
	OccurredAt       time.Time `json:"occurred_at"`
}
