package service

import (
	"testing"

	"github.com/Softx0/web-cuentas-bancarias/internal/model"
)

func TestFilter(t *testing.T) {
	transactions := []*model.Transaction{
		{ID: "a", Type: "debit", Date: "2024-01-10"},
		{ID: "b", Type: "credit", Date: "2024-01-12"},
		{ID: "c", Type: "debit", Date: "2024-01-14"},
		{ID: "d", Type: "credit", Date: "2024-01-16"},
	}

	tests := []struct {
		name    string
		opts    model.FilterOptions
		wantIDs []string
	}{
		{
			name:    "no filters",
			opts:    model.FilterOptions{},
			wantIDs: []string{"a", "b", "c", "d"},
		},
		{
			name:    "type all",
			opts:    model.FilterOptions{Type: "all"},
			wantIDs: []string{"a", "b", "c", "d"},
		},
		{
			name:    "debits only",
			opts:    model.FilterOptions{Type: "debit"},
			wantIDs: []string{"a", "c"},
		},
		{
			name:    "credits only",
			opts:    model.FilterOptions{Type: "credit"},
			wantIDs: []string{"b", "d"},
		},
		{
			name:    "from is inclusive",
			opts:    model.FilterOptions{DateFrom: "2024-01-12"},
			wantIDs: []string{"b", "c", "d"},
		},
		{
			name:    "to is inclusive",
			opts:    model.FilterOptions{DateTo: "2024-01-12"},
			wantIDs: []string{"a", "b"},
		},
		{
			name:    "range and type combined",
			opts:    model.FilterOptions{DateFrom: "2024-01-11", DateTo: "2024-01-15", Type: "debit"},
			wantIDs: []string{"c"},
		},
		{
			name:    "empty range",
			opts:    model.FilterOptions{DateFrom: "2024-02-01"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(transactions, tt.opts)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Filter() returned %d transactions, want %d", len(got), len(tt.wantIDs))
			}
			for i, tx := range got {
				if tx.ID != tt.wantIDs[i] {
					t.Errorf("Filter()[%d] = %q, want %q", i, tx.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestListForAccountOwnership(t *testing.T) {
	svc := newTestService(newMemRepo())

	transactions, err := svc.Transaction.ListForAccount("2")
	if err != nil {
		t.Fatalf("ListForAccount() error: %v", err)
	}
	if len(transactions) == 0 {
		t.Fatal("no transactions seeded for account 2")
	}
	for _, tx := range transactions {
		if tx.AccountID != "2" {
			t.Errorf("transaction %s belongs to account %s, leaked into account 2's listing", tx.ID, tx.AccountID)
		}
	}
}
