package service

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/Softx0/web-cuentas-bancarias/internal/constants"
)

func TestSeederInitialAccounts(t *testing.T) {
	seeder := NewSeeder(rand.New(rand.NewSource(1)), testClock)

	accounts := seeder.InitialAccounts()
	if len(accounts) != 3 {
		t.Fatalf("seeded %d accounts, want 3", len(accounts))
	}

	wantTypes := []string{constants.TypeChecking, constants.TypeSavings, constants.TypeCredit}
	wantBalances := []int64{2500000, 5750000, -850000}
	for i, acc := range accounts {
		if acc.Type != wantTypes[i] {
			t.Errorf("account %d type = %q, want %q", i, acc.Type, wantTypes[i])
		}
		if acc.Balance != wantBalances[i] {
			t.Errorf("account %d balance = %d, want %d", i, acc.Balance, wantBalances[i])
		}
		if !acc.Active {
			t.Errorf("account %d seeded inactive", i)
		}
		if acc.Currency != "DOP" {
			t.Errorf("account %d currency = %q, want DOP", i, acc.Currency)
		}
	}

	// only the credit account may carry a negative balance
	for _, acc := range accounts {
		if acc.Balance < 0 && acc.Type != constants.TypeCredit {
			t.Errorf("non-credit account %s seeded with negative balance %d", acc.ID, acc.Balance)
		}
	}
}

func TestSeederInitialTransactions(t *testing.T) {
	seeder := NewSeeder(rand.New(rand.NewSource(1)), testClock)
	accounts := seeder.InitialAccounts()

	transactions := seeder.InitialTransactions(accounts)
	if len(transactions) != 60 {
		t.Fatalf("seeded %d transactions, want 60 (20 per account)", len(transactions))
	}

	perAccount := make(map[string]int)
	for _, tx := range transactions {
		perAccount[tx.AccountID]++

		if tx.Type != constants.TxDebit && tx.Type != constants.TxCredit {
			t.Errorf("transaction %s has direction %q", tx.ID, tx.Type)
		}
		if tx.Amount < 10000 || tx.Amount > 509999 {
			t.Errorf("transaction %s amount %d outside [10000, 509999]", tx.ID, tx.Amount)
		}
		if tx.Description == "" || tx.Category == "" {
			t.Errorf("transaction %s missing description or category", tx.ID)
		}
		if !strings.HasPrefix(tx.Reference, "REF") {
			t.Errorf("transaction %s reference %q lacks REF prefix", tx.ID, tx.Reference)
		}
	}
	for id, n := range perAccount {
		if n != seedHistoryPerAccount {
			t.Errorf("account %s has %d seeded transactions, want %d", id, n, seedHistoryPerAccount)
		}
	}

	// newest first
	for i := 1; i < len(transactions); i++ {
		if transactions[i-1].Date < transactions[i].Date {
			t.Fatalf("history not sorted newest first at index %d: %s < %s",
				i, transactions[i-1].Date, transactions[i].Date)
		}
	}
}

func TestSeederIsDeterministic(t *testing.T) {
	a := NewSeeder(rand.New(rand.NewSource(7)), testClock)
	b := NewSeeder(rand.New(rand.NewSource(7)), testClock)

	txA := a.InitialTransactions(a.InitialAccounts())
	txB := b.InitialTransactions(b.InitialAccounts())

	if !reflect.DeepEqual(txA, txB) {
		t.Error("same seed produced different synthetic histories")
	}
}
