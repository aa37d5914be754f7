package generator

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Gabohhh/Casinomongo2/internal/auth"
	"github.com/Gabohhh/Casinomongo2/internal/domain"
	"github.com/Gabohhh/Casinomongo2/internal/utils"
)

// SeedPassword is the plaintext password every generated user gets.
const SeedPassword = "Password123!"

// Generator produces a self-consistent synthetic dataset: every user's stored
// balance equals the result of replaying their transactions in order.
type Generator struct {
	rng   *rand.Rand
	faker *gofakeit.Faker
	now   time.Time
}

// New returns a generator. A non-zero seed makes runs reproducible.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng:   rand.New(rand.NewSource(seed)),
		faker: gofakeit.New(uint64(seed)),
		now:   time.Now(),
	}
}

// Generate produces numUsers users and their transaction histories. Each
// user's transaction count is drawn uniformly from [avg/2, avg*2], minimum 1.
func (g *Generator) Generate(numUsers, avgTxPerUser int) ([]domain.User, []domain.Transaction, error) {
	users, err := g.GenerateUsers(numUsers)
	if err != nil {
		return nil, nil, err
	}
	var all []domain.Transaction
	for i := range users {
		count := g.txCount(avgTxPerUser)
		all = append(all, g.GenerateTransactions(&users[i], count)...)
	}
	return users, all, nil
}

// GenerateUsers produces users with a weighted role distribution (80% normal,
// 15% vip, 5% admin), a starting balance in [100, 10000], a 90/10 active flag
// and a creation timestamp within the last two years.
func (g *Generator) GenerateUsers(n int) ([]domain.User, error) {
	// Every generated account shares one seed password; hash it once
	hash, err := auth.HashPassword(SeedPassword, 0)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, n)
	users := make([]domain.User, n)
	for i := range users {
		email := g.faker.Email()
		if seen[email] {
			email = fmt.Sprintf("%d.%s", i, email)
		}
		seen[email] = true
		users[i] = domain.User{
			ID:        primitive.NewObjectID().Hex(),
			Email:     email,
			Password:  hash,
			Role:      g.weightedRole(),
			Balance:   roundCents(g.uniform(100, 10000)),
			Active:    g.rng.Float64() < 0.9,
			CreatedAt: g.timeBetween(g.now.AddDate(-2, 0, 0), g.now),
		}
	}
	return users, nil
}

// GenerateTransactions produces count transactions for the user and sets the
// user's balance to the ending running balance. Timestamps are drawn between
// the user's creation time and now, then sorted ascending before transactions
// are built, so generation order equals chronological order and replaying the
// history by date reproduces every recorded new_balance.
func (g *Generator) GenerateTransactions(u *domain.User, count int) []domain.Transaction {
	dates := make([]time.Time, count)
	for i := range dates {
		dates[i] = g.timeBetween(u.CreatedAt, g.now)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	balance := u.Balance
	txs := make([]domain.Transaction, count)
	for i := 0; i < count; i++ {
		txType := g.weightedType()
		game := "N/A"
		var amount float64
		switch txType {
		case domain.TypeDeposit:
			amount = roundCents(g.uniform(10, 1000))
		case domain.TypeWithdrawal:
			// Never withdraw more than is available, capped at 500
			limit := math.Min(500, balance)
			var w float64
			if limit < 10 {
				w = roundCents(limit) // Drain what little is left
			} else {
				w = roundCents(g.uniform(10, limit))
			}
			// An empty balance yields a zero withdrawal, not IEEE -0
			if w == 0 {
				amount = 0
			} else {
				amount = -w
			}
		case domain.TypeGame:
			game = gameNames[g.rng.Intn(len(gameNames))]
			amount = g.gameResult(game)
		}
		balance = roundCents(balance + amount)
		// No negative balances persist; the floor applies before the
		// snapshot is recorded
		if balance < 0 {
			balance = 0
		}
		txs[i] = domain.Transaction{
			UserID:        u.ID,
			Type:          txType,
			Amount:        amount,
			BalanceChange: utils.FormatChange(amount),
			NewBalance:    balance,
			Game:          game,
			Date:          dates[i],
		}
	}
	u.Balance = balance
	return txs
}

// gameResult draws a bounded win or loss from the game table.
func (g *Generator) gameResult(name string) float64 {
	cfg := GameTypes[name]
	if g.rng.Float64() < cfg.WinProb {
		return roundCents(g.uniform(10, cfg.MaxWin))
	}
	return -roundCents(g.uniform(5, cfg.MaxLoss))
}

// txCount draws a per-user transaction count from [avg/2, avg*2], minimum 1.
func (g *Generator) txCount(avg int) int {
	lo := avg / 2
	if lo < 1 {
		lo = 1
	}
	hi := avg * 2
	if hi < lo {
		hi = lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// weightedRole draws a role: 80% normal, 15% vip, 5% admin.
func (g *Generator) weightedRole() domain.Role {
	r := g.rng.Float64()
	switch {
	case r < 0.80:
		return domain.RoleNormal
	case r < 0.95:
		return domain.RoleVIP
	default:
		return domain.RoleAdmin
	}
}

// weightedType draws a type: 20% deposit, 15% withdrawal, 65% game.
func (g *Generator) weightedType() domain.TransactionType {
	r := g.rng.Float64()
	switch {
	case r < 0.20:
		return domain.TypeDeposit
	case r < 0.35:
		return domain.TypeWithdrawal
	default:
		return domain.TypeGame
	}
}

// uniform draws from [lo, hi).
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// timeBetween draws a timestamp uniformly from [start, end].
func (g *Generator) timeBetween(start, end time.Time) time.Time {
	if !end.After(start) {
		return start
	}
	delta := end.Sub(start)
	return start.Add(time.Duration(g.rng.Int63n(int64(delta))))
}

// roundCents rounds to two decimals.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
