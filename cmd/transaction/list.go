package transaction

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Softx0/web-cuentas-bancarias/internal/model"
	"github.com/Softx0/web-cuentas-bancarias/internal/service"
	"github.com/Softx0/web-cuentas-bancarias/internal/ui/views"
)

type listFlags struct {
	Account  string
	DateFrom string
	DateTo   string
	Type     string
	Limit    int
}

type listRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List transactions for an account",
		Long: `List transactions for an account in storage order.

The listing can be narrowed by date range and by direction (debit/credit).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "Account id to list transactions for (required)")
	cmd.Flags().StringVar(&flags.DateFrom, "from", "", "Only transactions on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.DateTo, "to", "", "Only transactions on or before this date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "all", "Transaction direction: all, debit or credit")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0, "Maximum number of transactions to display (0 = all)")
	cmd.MarkFlagRequired("account")

	return cmd
}

func (r *listRunner) Run() error {
	acc, err := r.svc.Account.Get(r.flags.Account)
	if err != nil {
		return err
	}

	transactions, err := r.svc.Transaction.ListForAccount(acc.ID)
	if err != nil {
		return fmt.Errorf("failed to get transactions: %w", err)
	}

	transactions = service.Filter(transactions, model.FilterOptions{
		DateFrom: r.flags.DateFrom,
		DateTo:   r.flags.DateTo,
		Type:     r.flags.Type,
	})

	if r.flags.Limit > 0 && len(transactions) > r.flags.Limit {
		transactions = transactions[:r.flags.Limit]
	}

	pterm.Info.Printf("Showing transactions for account: %s\n\n", acc.Name)

	return views.NewTransactionListView().Render(transactions, acc.Currency)
}
