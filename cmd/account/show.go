package account

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Softx0/web-cuentas-bancarias/internal/model"
	"github.com/Softx0/web-cuentas-bancarias/internal/service"
	"github.com/Softx0/web-cuentas-bancarias/internal/ui/views"
)

type showFlags struct {
	DateFrom string
	DateTo   string
	Type     string
	Limit    int
}

type ShowCommandRunner struct {
	svc   *service.Service
	flags *showFlags
}

func NewShowCmd(svc *service.Service) *cobra.Command {
	flags := &showFlags{}

	cmd := &cobra.Command{
		Use:   "show <account-id>",
		Short: "Show one account with its transaction history",
		Long: `Show the detail of one account together with its transaction history.
The history can be narrowed by date range and direction.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ShowCommandRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(args[0])
		},
	}

	cmd.Flags().StringVar(&flags.DateFrom, "from", "", "Only transactions on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.DateTo, "to", "", "Only transactions on or before this date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "all", "Transaction direction: all, debit or credit")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0, "Maximum number of transactions to display (0 = all)")

	return cmd
}

func (r *ShowCommandRunner) Run(accountID string) error {
	acc, err := r.svc.Account.Get(accountID)
	if err != nil {
		return err
	}

	transactions, err := r.svc.Transaction.ListForAccount(accountID)
	if err != nil {
		return fmt.Errorf("failed to get transactions: %w", err)
	}

	filters := model.FilterOptions{
		DateFrom: r.flags.DateFrom,
		DateTo:   r.flags.DateTo,
		Type:     r.flags.Type,
	}
	transactions = service.Filter(transactions, filters)

	if r.flags.Limit > 0 && len(transactions) > r.flags.Limit {
		transactions = transactions[:r.flags.Limit]
	}

	return views.NewAccountDetailView().Render(acc, transactions, filters)
}
