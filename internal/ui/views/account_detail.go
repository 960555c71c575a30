package views

import (
	"github.com/pterm/pterm"

	"github.com/Softx0/web-cuentas-bancarias/internal/currency"
	"github.com/Softx0/web-cuentas-bancarias/internal/model"
	"github.com/Softx0/web-cuentas-bancarias/internal/ui"
)

type AccountDetailView struct{}

func NewAccountDetailView() *AccountDetailView {
	return &AccountDetailView{}
}

// Render prints the account card followed by its (possibly filtered)
// transaction history.
func (v *AccountDetailView) Render(account *model.Account, transactions []*model.Transaction, filters model.FilterOptions) error {
	ui.PrintL1Title("%s", account.Name)

	status := pterm.Green("active")
	if !account.Active {
		status = pterm.Gray("inactive")
	}

	balance := currency.Format(account.Balance, account.Currency)
	if account.Balance < 0 {
		balance = pterm.Red(balance)
	} else {
		balance = pterm.Green(balance)
	}

	info := pterm.TableData{
		{"Number", account.MaskedNumber()},
		{"Type", account.Type},
		{"Balance", balance},
		{"Currency", account.Currency},
		{"Status", status},
		{"Opened", account.CreatedAt},
		{"Last activity", account.LastTransactionDate},
	}
	if err := pterm.DefaultTable.WithData(info).Render(); err != nil {
		return err
	}

	ui.PrintL2Title("Transactions")
	if filters.DateFrom != "" || filters.DateTo != "" || (filters.Type != "" && filters.Type != "all") {
		pterm.Info.Printf("Filters: from=%s to=%s type=%s\n",
			orAny(filters.DateFrom), orAny(filters.DateTo), orAny(filters.Type))
	}

	return NewTransactionListView().Render(transactions, account.Currency)
}

func orAny(s string) string {
	if s == "" {
		return "any"
	}
	return s
}
