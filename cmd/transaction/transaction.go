package transaction

import (
	"github.com/spf13/cobra"

	"github.com/Softx0/web-cuentas-bancarias/internal/service"
)

func NewTransactionCmd(svc *service.Service) *cobra.Command {
	transactionCmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"transactions", "tx"},
		Short:   "List transactions of an account.",
		Long:    `List transactions of an account.`,
	}

	transactionCmd.AddCommand(NewListCmd(svc))

	return transactionCmd
}
