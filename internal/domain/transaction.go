package domain

import "time"

// TransactionType classifies a balance-affecting event
type TransactionType string

// Supported transaction types
const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
	TypeGame       TransactionType = "game"
)

// Transaction Model. Records are created only by the generator or the
// seeding routine and are immutable afterwards.
type Transaction struct {
	UserID        string          `bson:"user_id" json:"user_id"`               // Owning user (reference, not ownership)
	Type          TransactionType `bson:"type" json:"type"`                     // deposit, withdrawal or game
	Amount        float64         `bson:"amount" json:"amount"`                 // Signed amount
	BalanceChange string          `bson:"balance_change" json:"balance_change"` // Display string mirroring the sign of Amount
	NewBalance    float64         `bson:"new_balance" json:"new_balance"`       // Balance snapshot after applying this transaction
	Game          string          `bson:"game" json:"game"`                     // Game name, "N/A" for non-game transactions
	Date          time.Time       `bson:"date" json:"date"`                     // Event timestamp
}
