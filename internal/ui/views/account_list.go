package views

import (
	"github.com/pterm/pterm"

	"github.com/Softx0/web-cuentas-bancarias/internal/currency"
	"github.com/Softx0/web-cuentas-bancarias/internal/model"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(accounts []*model.Account) error {
	headers := []string{"ID", "Name", "Number", "Type", "Balance", "Status"}
	tableData := pterm.TableData{headers}

	for _, acc := range accounts {
		balance := currency.Format(acc.Balance, acc.Currency)

		var coloredType, coloredBalance string
		switch {
		case acc.Balance < 0:
			coloredBalance = pterm.Red(balance)
		default:
			coloredBalance = pterm.Green(balance)
		}

		switch acc.Type {
		case "credit":
			coloredType = pterm.Magenta(acc.Type)
		case "savings":
			coloredType = pterm.Cyan(acc.Type)
		default:
			coloredType = pterm.Blue(acc.Type)
		}

		status := pterm.Green("active")
		if !acc.Active {
			status = pterm.Gray("inactive")
		}

		tableData = append(tableData, []string{
			acc.ID, acc.Name, acc.MaskedNumber(), coloredType, coloredBalance, status,
		})
	}

	pterm.DefaultSection.Printf("Accounts")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))

	return nil
}
