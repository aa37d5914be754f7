package generator

import (
	"math"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gabohhh/Casinomongo2/internal/auth"
	"github.com/Gabohhh/Casinomongo2/internal/domain"
)

// replay applies amounts in order with the zero floor, the same way the
// generator maintains its running balance.
func replay(start float64, txs []domain.Transaction) float64 {
	balance := start
	for _, tx := range txs {
		balance = math.Round((balance+tx.Amount)*100) / 100
		if balance < 0 {
			balance = 0
		}
	}
	return balance
}

func TestTransactionsReconcileWithFinalBalance(t *testing.T) {
	g := New(42)
	user := domain.User{
		ID:        "user-1",
		Balance:   500,
		CreatedAt: time.Now().AddDate(0, -6, 0),
	}
	start := user.Balance

	txs := g.GenerateTransactions(&user, 200)
	require.Len(t, txs, 200)

	// Replaying the history in chronological order reproduces every
	// recorded balance snapshot
	sorted := make([]domain.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	balance := start
	for i, tx := range sorted {
		balance = math.Round((balance+tx.Amount)*100) / 100
		if balance < 0 {
			balance = 0
		}
		assert.InDelta(t, balance, tx.NewBalance, 1e-9, "transaction %d", i)
	}
	assert.InDelta(t, balance, user.Balance, 1e-9, "final stored balance")
	assert.InDelta(t, replay(start, sorted), user.Balance, 1e-9)
}

func TestTransactionDatesAreChronological(t *testing.T) {
	g := New(7)
	user := domain.User{ID: "user-2", Balance: 1000, CreatedAt: time.Now().AddDate(-1, 0, 0)}
	txs := g.GenerateTransactions(&user, 100)
	for i := 1; i < len(txs); i++ {
		assert.False(t, txs[i].Date.Before(txs[i-1].Date), "dates must be non-decreasing")
	}
	for _, tx := range txs {
		assert.False(t, tx.Date.Before(user.CreatedAt), "date before account creation")
		assert.False(t, tx.Date.After(time.Now()), "date in the future")
	}
}

func TestNoNegativeBalancePersists(t *testing.T) {
	g := New(3)
	user := domain.User{ID: "user-3", Balance: 100, CreatedAt: time.Now().AddDate(0, -1, 0)}
	txs := g.GenerateTransactions(&user, 300)
	for _, tx := range txs {
		assert.GreaterOrEqual(t, tx.NewBalance, 0.0)
	}
	assert.GreaterOrEqual(t, user.Balance, 0.0)
}

func TestTransactionAmountBounds(t *testing.T) {
	g := New(11)
	user := domain.User{ID: "user-4", Balance: 5000, CreatedAt: time.Now().AddDate(-1, 0, 0)}
	prev := user.Balance
	for _, tx := range g.GenerateTransactions(&user, 500) {
		switch tx.Type {
		case domain.TypeDeposit:
			assert.GreaterOrEqual(t, tx.Amount, 10.0)
			assert.LessOrEqual(t, tx.Amount, 1000.0)
			assert.Equal(t, "N/A", tx.Game)
		case domain.TypeWithdrawal:
			assert.LessOrEqual(t, tx.Amount, 0.0)
			assert.GreaterOrEqual(t, tx.Amount, -500.0)
			// Never withdraws more than was available
			assert.GreaterOrEqual(t, prev+tx.Amount, -0.005)
			assert.Equal(t, "N/A", tx.Game)
		case domain.TypeGame:
			cfg, ok := GameTypes[tx.Game]
			require.True(t, ok, "unknown game %q", tx.Game)
			assert.LessOrEqual(t, tx.Amount, cfg.MaxWin)
			assert.GreaterOrEqual(t, tx.Amount, -cfg.MaxLoss)
		default:
			t.Fatalf("unexpected transaction type %q", tx.Type)
		}
		prev = tx.NewBalance
	}
}

func TestBalanceChangeMirrorsSign(t *testing.T) {
	g := New(5)
	user := domain.User{ID: "user-5", Balance: 2000, CreatedAt: time.Now().AddDate(0, -2, 0)}
	for _, tx := range g.GenerateTransactions(&user, 100) {
		if tx.Amount >= 0 {
			assert.Equal(t, byte('+'), tx.BalanceChange[0])
		} else {
			assert.Equal(t, byte('-'), tx.BalanceChange[0])
		}
	}
}

func TestWithdrawalFromEmptyBalance(t *testing.T) {
	// Histories that spend the balance down to zero keep drawing
	// withdrawals; those must record a clean zero amount with a positive
	// change string, never negative zero
	for seed := int64(1); seed <= 20; seed++ {
		g := New(seed)
		user := domain.User{ID: "user-empty", Balance: 0, CreatedAt: time.Now().AddDate(0, -1, 0)}
		for i, tx := range g.GenerateTransactions(&user, 200) {
			if tx.Amount == 0 {
				require.False(t, math.Signbit(tx.Amount),
					"seed %d tx %d: negative zero amount", seed, i)
				assert.Equal(t, "+0.00", tx.BalanceChange, "seed %d tx %d", seed, i)
			}
			if tx.Amount >= 0 {
				assert.Equal(t, byte('+'), tx.BalanceChange[0], "seed %d tx %d", seed, i)
			} else {
				assert.Equal(t, byte('-'), tx.BalanceChange[0], "seed %d tx %d", seed, i)
			}
		}
	}
}

func TestTxCountBounds(t *testing.T) {
	g := New(1)
	for i := 0; i < 1000; i++ {
		n := g.txCount(4)
		assert.GreaterOrEqual(t, n, 2)
		assert.LessOrEqual(t, n, 8)
	}
	for i := 0; i < 100; i++ {
		assert.GreaterOrEqual(t, g.txCount(1), 1)
	}
}

func TestGenerateUsers(t *testing.T) {
	g := New(99)
	users, err := g.GenerateUsers(50)
	require.NoError(t, err)
	require.Len(t, users, 50)

	seen := make(map[string]bool)
	twoYearsAgo := time.Now().AddDate(-2, 0, -1)
	for _, u := range users {
		assert.NotEmpty(t, u.ID)
		assert.False(t, seen[u.Email], "duplicate email %s", u.Email)
		seen[u.Email] = true
		assert.Contains(t, []domain.Role{domain.RoleNormal, domain.RoleVIP, domain.RoleAdmin}, u.Role)
		assert.GreaterOrEqual(t, u.Balance, 100.0)
		assert.LessOrEqual(t, u.Balance, 10000.0)
		assert.False(t, u.CreatedAt.Before(twoYearsAgo))
		assert.False(t, u.CreatedAt.After(time.Now()))
	}
	// Stored passwords are bcrypt hashes of the shared seed password
	assert.True(t, auth.CheckPassword(users[0].Password, SeedPassword))
	assert.NotEqual(t, SeedPassword, users[0].Password)
}

func TestGenerateEndToEnd(t *testing.T) {
	g := New(1234)
	users, txs, err := g.Generate(20, 4)
	require.NoError(t, err)
	require.Len(t, users, 20)

	byUser := make(map[string][]domain.Transaction)
	for _, tx := range txs {
		byUser[tx.UserID] = append(byUser[tx.UserID], tx)
	}
	for _, u := range users {
		history := byUser[u.ID]
		require.NotEmpty(t, history, "every user gets at least one transaction")
		last := history[len(history)-1]
		assert.InDelta(t, last.NewBalance, u.Balance, 1e-9,
			"stored balance must equal the last snapshot")
	}
}
