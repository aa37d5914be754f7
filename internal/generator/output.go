package generator

import (
	"encoding/json"
	"os"

	"github.com/Gabohhh/Casinomongo2/internal/domain"
	"github.com/Gabohhh/Casinomongo2/internal/utils"
)

// userRecord is the file representation of a user, with the timestamp
// rendered as YYYY-MM-DD HH:MM:SS.
type userRecord struct {
	ID        string  `json:"_id"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Role      string  `json:"role"`
	Balance   float64 `json:"balance"`
	Active    bool    `json:"active"`
	CreatedAt string  `json:"created_at"`
}

// transactionRecord is the file representation of a transaction.
type transactionRecord struct {
	UserID        string  `json:"user_id"`
	Type          string  `json:"type"`
	Amount        float64 `json:"amount"`
	BalanceChange string  `json:"balance_change"`
	NewBalance    float64 `json:"new_balance"`
	Game          string  `json:"game"`
	Date          string  `json:"date"`
}

// WriteUsersFile serializes users to a JSON array file.
func WriteUsersFile(path string, users []domain.User) error {
	records := make([]userRecord, len(users))
	for i, u := range users {
		records[i] = userRecord{
			ID:        u.ID,
			Email:     u.Email,
			Password:  u.Password,
			Role:      string(u.Role),
			Balance:   u.Balance,
			Active:    u.Active,
			CreatedAt: utils.FormatTimestamp(u.CreatedAt),
		}
	}
	return writeJSON(path, records)
}

// WriteTransactionsFile serializes transactions to a JSON array file.
func WriteTransactionsFile(path string, txs []domain.Transaction) error {
	records := make([]transactionRecord, len(txs))
	for i, tx := range txs {
		records[i] = transactionRecord{
			UserID:        tx.UserID,
			Type:          string(tx.Type),
			Amount:        tx.Amount,
			BalanceChange: tx.BalanceChange,
			NewBalance:    tx.NewBalance,
			Game:          tx.Game,
			Date:          utils.FormatTimestamp(tx.Date),
		}
	}
	return writeJSON(path, records)
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
