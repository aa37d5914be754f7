package main

import (
	"flag" // Command line flags

	"github.com/Gabohhh/Casinomongo2/internal/generator" // Synthetic data generator

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main entry point for the synthetic data generator. Produces two JSON files
// (users and transactions) for bulk-loading into the document store.
func main() {
	numUsers := flag.Int("users", 5000, "number of users to generate")
	avgTx := flag.Int("avg-tx", 4, "average transactions per user")
	usersOut := flag.String("users-out", "users.json", "output file for users")
	txOut := flag.String("tx-out", "transactions.json", "output file for transactions")
	seed := flag.Int64("seed", 0, "random seed, 0 for time-based")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	g := generator.New(*seed)
	logrus.Infof("Generating %d users...", *numUsers)
	logrus.Infof("Generating ~%d transactions...", (*numUsers)*(*avgTx))
	users, txs, err := g.Generate(*numUsers, *avgTx)
	if err != nil {
		logrus.Fatalf("generation failed: %v", err)
	}

	if err := generator.WriteUsersFile(*usersOut, users); err != nil {
		logrus.Fatalf("failed to write %s: %v", *usersOut, err)
	}
	logrus.Infof("Saved %d records to %s", len(users), *usersOut)

	if err := generator.WriteTransactionsFile(*txOut, txs); err != nil {
		logrus.Fatalf("failed to write %s: %v", *txOut, err)
	}
	logrus.Infof("Saved %d records to %s", len(txs), *txOut)

	logrus.Infof("Data generation complete! Final stats: %d users, %d transactions", len(users), len(txs))
}
