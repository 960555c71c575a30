package views

import (
	"github.com/pterm/pterm"

	"github.com/Softx0/web-cuentas-bancarias/internal/currency"
	"github.com/Softx0/web-cuentas-bancarias/internal/service"
)

type TransferReceiptView struct{}

func NewTransferReceiptView() *TransferReceiptView {
	return &TransferReceiptView{}
}

// Render prints the confirmation of a completed transfer.
func (v *TransferReceiptView) Render(conf *service.Confirmation) error {
	pterm.Success.Println("Transfer completed successfully")

	data := pterm.TableData{
		{"Reference", conf.Reference},
		{"Date", conf.Debit.Date},
		{"Amount", currency.Format(conf.Debit.Amount, conf.Currency)},
		{"Source balance", currency.Format(conf.FromBalance, conf.Currency)},
		{"Destination balance", currency.Format(conf.ToBalance, conf.Currency)},
	}

	return pterm.DefaultTable.WithData(data).Render()
}
