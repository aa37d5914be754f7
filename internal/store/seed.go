package store

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Gabohhh/Casinomongo2/internal/auth"
	"github.com/Gabohhh/Casinomongo2/internal/domain"
)

// Default accounts created at startup.
const (
	AdminEmail    = "admin@casino.com"
	adminPassword = "Admin123!"

	DemoEmail    = "demo@casino.com"
	demoPassword = "Password123!"
)

// EnsureAdmin creates the default admin account if it does not exist yet.
func EnsureAdmin(ctx context.Context, s Store, bcryptCost int) error {
	if _, err := s.GetUserByEmail(ctx, AdminEmail); err == nil {
		return nil
	} else if err != ErrUserNotFound {
		return err
	}
	hash, err := auth.HashPassword(adminPassword, bcryptCost)
	if err != nil {
		return err
	}
	admin := &domain.User{
		Email:     AdminEmail,
		Password:  hash,
		Role:      domain.RoleAdmin,
		Balance:   0,
		Active:    true,
		CreatedAt: time.Now(),
	}
	if err := s.CreateUser(ctx, admin); err != nil {
		return err
	}
	logrus.Infof("created default admin user %s", AdminEmail)
	return nil
}

// SeedDemoUser creates a demo player with a small sample history: a 1000
// deposit, a 200 Blackjack loss and a 500 Slots win, leaving a 1300 balance.
// It is a no-op when the demo user already exists.
func SeedDemoUser(ctx context.Context, s Store, bcryptCost int) error {
	if _, err := s.GetUserByEmail(ctx, DemoEmail); err == nil {
		return nil
	} else if err != ErrUserNotFound {
		return err
	}
	hash, err := auth.HashPassword(demoPassword, bcryptCost)
	if err != nil {
		return err
	}
	now := time.Now()
	user := &domain.User{
		Email:     DemoEmail,
		Password:  hash,
		Role:      domain.RoleNormal,
		Balance:   1300,
		Active:    true,
		CreatedAt: now.AddDate(0, -3, 0),
	}
	if err := s.CreateUser(ctx, user); err != nil {
		return err
	}
	txs := []domain.Transaction{
		{
			UserID:        user.ID,
			Type:          domain.TypeDeposit,
			Amount:        1000,
			BalanceChange: "+1000.00",
			NewBalance:    1000,
			Game:          "N/A",
			Date:          now.AddDate(0, 0, -3),
		},
		{
			UserID:        user.ID,
			Type:          domain.TypeGame,
			Amount:        -200,
			BalanceChange: "-200.00",
			NewBalance:    800,
			Game:          "Blackjack",
			Date:          now.AddDate(0, 0, -2),
		},
		{
			UserID:        user.ID,
			Type:          domain.TypeGame,
			Amount:        500,
			BalanceChange: "+500.00",
			NewBalance:    1300,
			Game:          "Slots",
			Date:          now.AddDate(0, 0, -1),
		},
	}
	if err := s.InsertTransactions(ctx, txs); err != nil {
		return err
	}
	logrus.Infof("created demo user %s with sample transactions", DemoEmail)
	return nil
}
