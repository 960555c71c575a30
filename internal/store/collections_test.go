package store

import (
	"testing"

	"github.com/Softx0/web-cuentas-bancarias/internal/model"
)

func TestAccountsCodec(t *testing.T) {
	s := newTestStore(t)

	accounts := []*model.Account{
		{ID: "1", Name: "Checking", Type: "checking", Balance: 2500000, Currency: "DOP", Active: true},
		{ID: "2", Name: "Savings", Type: "savings", Balance: 5750000, Currency: "DOP", Active: true},
	}
	if err := SaveAccounts(s, accounts); err != nil {
		t.Fatalf("SaveAccounts() error: %v", err)
	}

	got, err := LoadAccounts(s)
	if err != nil {
		t.Fatalf("LoadAccounts() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("LoadAccounts() returned %d accounts, want 2", len(got))
	}
	// insertion order survives the round trip
	if got[0].ID != "1" || got[1].ID != "2" {
		t.Errorf("LoadAccounts() order = %s, %s; want 1, 2", got[0].ID, got[1].ID)
	}
	if got[0].Balance != 2500000 {
		t.Errorf("balance = %d, want 2500000", got[0].Balance)
	}
}

func TestAppendTransactions(t *testing.T) {
	s := newTestStore(t)

	// append creates the log when it does not exist yet
	first := &model.Transaction{ID: "a", AccountID: "1", Type: "debit", Amount: 100}
	if err := AppendTransactions(s, first); err != nil {
		t.Fatalf("AppendTransactions() error: %v", err)
	}

	pair := []*model.Transaction{
		{ID: "b", AccountID: "1", Type: "debit", Amount: 200, Reference: "TRF1"},
		{ID: "c", AccountID: "2", Type: "credit", Amount: 200, Reference: "TRF1"},
	}
	if err := AppendTransactions(s, pair...); err != nil {
		t.Fatalf("AppendTransactions() error: %v", err)
	}

	got, err := LoadTransactions(s)
	if err != nil {
		t.Fatalf("LoadTransactions() error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("log has %d records, want 3", len(got))
	}
	for i, wantID := range []string{"a", "b", "c"} {
		if got[i].ID != wantID {
			t.Errorf("log[%d] = %s, want %s", i, got[i].ID, wantID)
		}
	}
}
