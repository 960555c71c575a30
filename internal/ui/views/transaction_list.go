package views

import (
	"github.com/pterm/pterm"

	"github.com/Softx0/web-cuentas-bancarias/internal/constants"
	"github.com/Softx0/web-cuentas-bancarias/internal/currency"
	"github.com/Softx0/web-cuentas-bancarias/internal/model"
)

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

func (v *TransactionListView) Render(transactions []*model.Transaction, currencyCode string) error {
	if len(transactions) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	tableData := pterm.TableData{
		{"Date", "Type", "Description", "Category", "Amount", "Balance", "Reference"},
	}

	for _, tx := range transactions {
		amount := tx.Amount
		if tx.Type == constants.TxDebit {
			amount = -amount
		}
		amountStr := currency.FormatSigned(amount, currencyCode)

		var coloredType, coloredAmount string
		switch tx.Type {
		case constants.TxDebit:
			coloredType = pterm.Red(tx.Type)
			coloredAmount = pterm.Red(amountStr)
		case constants.TxCredit:
			coloredType = pterm.Green(tx.Type)
			coloredAmount = pterm.Green(amountStr)
		default:
			coloredType = tx.Type
			coloredAmount = amountStr
		}

		tableData = append(tableData, []string{
			tx.Date,
			coloredType,
			tx.Description,
			tx.Category,
			coloredAmount,
			currency.Format(tx.Balance, currencyCode),
			tx.Reference,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(transactions))
	return nil
}
