/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package account

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Softx0/web-cuentas-bancarias/internal/model"
	"github.com/Softx0/web-cuentas-bancarias/internal/service"
	"github.com/Softx0/web-cuentas-bancarias/internal/ui/views"
)

type listFlags struct {
	Type       string
	ActiveOnly bool
}

type ListCommandRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all accounts with their balances",
		Long: `List all accounts in the system with their current balances.
You can filter by account type or restrict to active accounts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Filter accounts by type (checking, savings, credit)")
	cmd.Flags().BoolVar(&flags.ActiveOnly, "active", false, "Show only active accounts")

	return cmd
}

func (r *ListCommandRunner) Run() error {
	accounts, err := r.svc.Account.List()
	if err != nil {
		return fmt.Errorf("failed to get accounts: %w", err)
	}

	if r.flags.Type != "" {
		accounts = filterByType(accounts, r.flags.Type)
	}
	if r.flags.ActiveOnly {
		accounts = filterActive(accounts)
	}

	return views.NewAccountListView().Render(accounts)
}

func filterByType(accounts []*model.Account, accType string) []*model.Account {
	var filtered []*model.Account
	for _, acc := range accounts {
		if acc.Type == accType {
			filtered = append(filtered, acc)
		}
	}
	return filtered
}

func filterActive(accounts []*model.Account) []*model.Account {
	var filtered []*model.Account
	for _, acc := range accounts {
		if acc.Active {
			filtered = append(filtered, acc)
		}
	}
	return filtered
}
