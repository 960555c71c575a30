package validation

import (
	"strings"
	"testing"

	"github.com/Softx0/web-cuentas-bancarias/internal/model"
)

func fixtureAccounts() []*model.Account {
	return []*model.Account{
		{ID: "1", Name: "Checking", Type: "checking", Balance: 2500000, Currency: "DOP", Active: true},
		{ID: "2", Name: "Savings", Type: "savings", Balance: 5750000, Currency: "DOP", Active: true},
		{ID: "3", Name: "Credit Card", Type: "credit", Balance: -850000, Currency: "DOP", Active: true},
		{ID: "4", Name: "Closed", Type: "checking", Balance: 0, Currency: "DOP", Active: false},
	}
}

func TestValidateSource(t *testing.T) {
	v := NewTransferValidator(fixtureAccounts())

	tests := []struct {
		name    string
		id      string
		wantErr string
	}{
		{"valid checking", "1", ""},
		{"valid savings", "2", ""},
		{"empty selection", "", "select a source"},
		{"unknown account", "99", "unknown source"},
		{"credit card", "3", "credit accounts"},
		{"inactive account", "4", "not active"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateSource(tt.id)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateSource(%q) error: %v", tt.id, err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ValidateSource(%q) = %v, want error containing %q", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDestination(t *testing.T) {
	v := NewTransferValidator(fixtureAccounts())

	tests := []struct {
		name    string
		from    string
		to      string
		wantErr string
	}{
		{"valid", "1", "2", ""},
		{"credit card destination is fine", "1", "3", ""},
		{"empty selection", "1", "", "select a destination"},
		{"same as source", "1", "1", "different from the source"},
		{"unknown account", "1", "99", "unknown destination"},
		{"inactive account", "1", "4", "not active"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateDestination(tt.from, tt.to)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateDestination(%q, %q) error: %v", tt.from, tt.to, err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ValidateDestination(%q, %q) = %v, want error containing %q",
					tt.from, tt.to, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAmount(t *testing.T) {
	v := NewTransferValidator(fixtureAccounts())

	tests := []struct {
		name    string
		amount  string
		from    string
		want    int64
		wantErr string
	}{
		{"valid", "1000.00", "1", 100000, ""},
		{"whole number", "500", "1", 50000, ""},
		{"not a number", "abc", "1", 0, "valid amount"},
		{"zero", "0", "1", 0, "valid amount"},
		{"negative", "-10", "1", 0, "valid amount"},
		{"over balance", "30000.00", "1", 0, "insufficient funds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.ValidateAmount(tt.amount, tt.from)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateAmount(%q) error: %v", tt.amount, err)
				}
				if got != tt.want {
					t.Errorf("ValidateAmount(%q) = %d, want %d", tt.amount, got, tt.want)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ValidateAmount(%q) = %v, want error containing %q", tt.amount, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDescription(t *testing.T) {
	if err := ValidateDescription("Rent"); err != nil {
		t.Errorf("ValidateDescription(Rent) error: %v", err)
	}
	if err := ValidateDescription(""); err == nil {
		t.Error("ValidateDescription(\"\") accepted, want error")
	}
	if err := ValidateDescription("   "); err == nil {
		t.Error("ValidateDescription(blank) accepted, want error")
	}
	if err := ValidateDescription(strings.Repeat("x", 200)); err == nil {
		t.Error("ValidateDescription(long) accepted, want error")
	}
}

func TestSourceOptions(t *testing.T) {
	v := NewTransferValidator(fixtureAccounts())

	options := v.SourceOptions()
	if len(options) != 2 {
		t.Fatalf("SourceOptions() returned %d accounts, want 2", len(options))
	}
	for _, acc := range options {
		if acc.Type == "credit" || !acc.Active {
			t.Errorf("SourceOptions() includes %s (%s, active=%v)", acc.Name, acc.Type, acc.Active)
		}
	}
}

func TestDestinationOptions(t *testing.T) {
	v := NewTransferValidator(fixtureAccounts())

	options := v.DestinationOptions("1")
	if len(options) != 2 {
		t.Fatalf("DestinationOptions(1) returned %d accounts, want 2", len(options))
	}
	for _, acc := range options {
		if acc.ID == "1" || !acc.Active {
			t.Errorf("DestinationOptions(1) includes %s (id=%s, active=%v)", acc.Name, acc.ID, acc.Active)
		}
	}
}
