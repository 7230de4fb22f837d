package events

import (
	"time"

	"github.com/shopspring/decimal"
)

const TopicTransactionPosted = "transaction_posted"

// TransactionPosted is emitted once per appended ledger entry. A transfer
// produces two of these, one per leg.
type TransactionPosted struct {
	TransactionID string          `json:"transaction_id"`
	AccountID     string          `json:"account_id"`
	Amount        decimal.Decimal `json:"amount"`
	Memo          string          `json:"memo"`
	OccurredAt    time.Time       `json:"occurred_at"`
}
