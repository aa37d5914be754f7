package generator

// GameConfig describes the win odds and payout bounds of a casino game.
type GameConfig struct {
	WinProb float64 // Probability of a winning outcome
	MaxWin  float64 // Upper bound of a winning amount
	MaxLoss float64 // Upper bound of a losing amount
}

// GameTypes is the fixed per-game outcome table.
var GameTypes = map[string]GameConfig{
	"Blackjack": {WinProb: 0.45, MaxWin: 500, MaxLoss: 200},
	"Slots":     {WinProb: 0.35, MaxWin: 1000, MaxLoss: 50},
	"Roulette":  {WinProb: 0.48, MaxWin: 300, MaxLoss: 100},
	"Poker":     {WinProb: 0.40, MaxWin: 800, MaxLoss: 150},
	"Baccarat":  {WinProb: 0.49, MaxWin: 400, MaxLoss: 200},
}

// gameNames gives a stable draw order for the game table.
var gameNames = []string{"Blackjack", "Slots", "Roulette", "Poker", "Baccarat"}
