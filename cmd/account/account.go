package account

import (
	"github.com/spf13/cobra"

	"github.com/Softx0/web-cuentas-bancarias/internal/service"
)

func NewAccountCmd(svc *service.Service) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:     "account",
		Aliases: []string{"accounts", "acc"},
		Short:   "List accounts and show account detail with transaction history.",
		Long:    `List accounts and show account detail with transaction history.`,
	}

	accountCmd.AddCommand(NewListCmd(svc))
	accountCmd.AddCommand(NewShowCmd(svc))

	return accountCmd
}
