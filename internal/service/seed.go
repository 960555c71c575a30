package service

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/Softx0/web-cuentas-bancarias/internal/constants"
	"github.com/Softx0/web-cuentas-bancarias/internal/model"
)

// Seeder generates the synthetic first-run data set. The randomness source
// and the clock are injected so tests can pin both and assert exact fixtures.
type Seeder struct {
	rng *rand.Rand
	now func() time.Time
}

func NewSeeder(rng *rand.Rand, now func() time.Time) *Seeder {
	if now == nil {
		now = time.Now
	}
	return &Seeder{rng: rng, now: now}
}

const seedHistoryPerAccount = 20

var debitDescriptions = []string{
	"Supermarket purchase",
	"Utility bill payment",
	"ATM withdrawal",
	"Transfer sent",
	"Credit card payment",
	"Online purchase",
	"Loan payment",
	"Pharmacy purchase",
	"Fuel payment",
	"Restaurant purchase",
}

var creditDescriptions = []string{
	"Transfer received",
	"Cash deposit",
	"Monthly salary",
	"Payroll payment",
	"Purchase refund",
	"Interest earned",
	"Bonus received",
	"Insurance reimbursement",
	"Dividends received",
	"Deposit by transfer",
}

var debitCategories = []string{
	"Food",
	"Transport",
	"Utilities",
	"Entertainment",
	"Transfers",
	"Payments",
	"Shopping",
	"Fuel",
}

var creditCategories = []string{
	"Salary",
	"Transfers",
	"Deposits",
	"Refunds",
	"Interest",
	"Bonuses",
	"Income",
	"Other",
}

// InitialAccounts returns the fixed three-account starter set: a checking
// account, a savings account, and a credit card carrying a negative balance.
func (s *Seeder) InitialAccounts() []*model.Account {
	return []*model.Account{
		{
			ID:                  "1",
			AccountNumber:       "1234567890",
			Type:                constants.TypeChecking,
			Balance:             2500000,
			Currency:            "DOP",
			Name:                "Main Checking Account",
			Active:              true,
			CreatedAt:           "2023-01-15",
			LastTransactionDate: "2024-01-10",
		},
		{
			ID:                  "2",
			AccountNumber:       "0987654321",
			Type:                constants.TypeSavings,
			Balance:             5750000,
			Currency:            "DOP",
			Name:                "Savings Account",
			Active:              true,
			CreatedAt:           "2023-03-20",
			LastTransactionDate: "2024-01-08",
		},
		{
			ID:                  "3",
			AccountNumber:       "1122334455",
			Type:                constants.TypeCredit,
			Balance:             -850000,
			Currency:            "DOP",
			Name:                "Credit Card",
			Active:              true,
			CreatedAt:           "2023-06-10",
			LastTransactionDate: "2024-01-09",
		},
	}
}

// InitialTransactions generates a fixed-size synthetic history per account,
// newest first. Record dates walk back one day per entry; amounts, directions,
// descriptions and categories come from the injected randomness source. The
// carried balance is the account's seeded balance, as in the original demo
// data (the history does not reconstruct a running balance).
func (s *Seeder) InitialTransactions(accounts []*model.Account) []*model.Transaction {
	var transactions []*model.Transaction
	nowMillis := s.now().UnixMilli()

	for _, account := range accounts {
		for i := 0; i < seedHistoryPerAccount; i++ {
			date := s.now().AddDate(0, 0, -i).Format(constants.DateFormat)

			txType := constants.TxDebit
			description := debitDescriptions[s.rng.Intn(len(debitDescriptions))]
			category := debitCategories[s.rng.Intn(len(debitCategories))]
			if s.rng.Float64() > 0.6 {
				txType = constants.TxCredit
				description = creditDescriptions[s.rng.Intn(len(creditDescriptions))]
				category = creditCategories[s.rng.Intn(len(creditCategories))]
			}

			transactions = append(transactions, &model.Transaction{
				ID:          fmt.Sprintf("%s-%d", account.ID, i),
				AccountID:   account.ID,
				Type:        txType,
				Amount:      int64(s.rng.Intn(500000)) + 10000,
				Description: description,
				Date:        date,
				Balance:     account.Balance,
				Reference:   fmt.Sprintf("REF%d%d", nowMillis, i),
				Category:    category,
			})
		}
	}

	// newest first; ISO dates compare lexicographically
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date > transactions[j].Date
	})

	return transactions
}
