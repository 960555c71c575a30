/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Softx0/web-cuentas-bancarias/internal/currency"
	"github.com/Softx0/web-cuentas-bancarias/internal/errhandler"
	"github.com/Softx0/web-cuentas-bancarias/internal/model"
	"github.com/Softx0/web-cuentas-bancarias/internal/service"
	"github.com/Softx0/web-cuentas-bancarias/internal/ui/prompts"
	"github.com/Softx0/web-cuentas-bancarias/internal/ui/views"
	"github.com/Softx0/web-cuentas-bancarias/internal/validation"
)

type transferFlags struct {
	From        string
	To          string
	Amount      string
	Description string
	Reference   string
}

// TransferRunner manages the state of the transfer form: collect the fields,
// validate them, then hand the request to the transfer processor.
type TransferRunner struct {
	svc   *service.Service
	flags *transferFlags
}

func NewTransferCmd(svc *service.Service) *cobra.Command {
	flags := &transferFlags{}

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer money between two accounts",
		Long: `Transfer money between two of your accounts.

Run without flags for the interactive form, or pass the fields directly:

Example: cuentas transfer --from 1 --to 2 --amount 1000.00 -d "Rent"`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &TransferRunner{svc: svc, flags: flags}

			if cmd.Flags().Changed("from") || cmd.Flags().Changed("to") ||
				cmd.Flags().Changed("amount") {
				return runner.FlagsMode()
			}
			return runner.InteractiveMode()
		},
	}

	cmd.Flags().StringVar(&flags.From, "from", "", "Source account id")
	cmd.Flags().StringVar(&flags.To, "to", "", "Destination account id")
	cmd.Flags().StringVar(&flags.Amount, "amount", "", "Amount in major units (e.g. 1000.00)")
	cmd.Flags().StringVarP(&flags.Description, "description", "d", "", "Transfer description")
	cmd.Flags().StringVarP(&flags.Reference, "reference", "r", "", "Reference code (generated when omitted)")

	return cmd
}

// FlagsMode validates the flag-provided fields all at once, fail fast.
func (r *TransferRunner) FlagsMode() error {
	accounts, err := r.svc.Account.List()
	if err != nil {
		return fmt.Errorf("failed to get accounts: %w", err)
	}

	validator := validation.NewTransferValidator(accounts)

	if err := validator.ValidateSource(r.flags.From); err != nil {
		return err
	}
	if err := validator.ValidateDestination(r.flags.From, r.flags.To); err != nil {
		return err
	}
	amount, err := validator.ValidateAmount(r.flags.Amount, r.flags.From)
	if err != nil {
		return err
	}
	if err := validation.ValidateDescription(r.flags.Description); err != nil {
		return err
	}

	return r.execute(model.TransferRequest{
		FromAccountID: r.flags.From,
		ToAccountID:   r.flags.To,
		Amount:        amount,
		Description:   r.flags.Description,
		Reference:     r.flags.Reference,
	})
}

// InteractiveMode walks the transfer form field by field, validating each
// answer before moving on.
func (r *TransferRunner) InteractiveMode() error {
	accounts, err := r.svc.Account.List()
	if err != nil {
		return fmt.Errorf("failed to get accounts: %w", err)
	}

	validator := validation.NewTransferValidator(accounts)

	fromID, err := prompts.PromptSourceAccount(validator.SourceOptions())
	if err != nil {
		errhandler.HandleError(err)
		return nil
	}

	toID, err := prompts.PromptDestinationAccount(validator.DestinationOptions(fromID))
	if err != nil {
		errhandler.HandleError(err)
		return nil
	}

	amountStr, err := prompts.PromptAmount(
		"Amount:",
		"Major units, e.g. 1000.00",
		func(s string) error {
			_, err := validator.ValidateAmount(s, fromID)
			return err
		},
	)
	if err != nil {
		errhandler.HandleError(err)
		return nil
	}

	amount, err := validator.ValidateAmount(amountStr, fromID)
	if err != nil {
		return err
	}

	description, err := prompts.PromptDescription("Description:", true)
	if err != nil {
		errhandler.HandleError(err)
		return nil
	}

	from, err := r.svc.Account.Get(fromID)
	if err != nil {
		return err
	}
	to, err := r.svc.Account.Get(toID)
	if err != nil {
		return err
	}
	summary := fmt.Sprintf("Transfer %s from '%s' to '%s'?",
		currency.Format(amount, from.Currency), from.Name, to.Name)

	ok, err := prompts.PromptConfirm(summary, true)
	if err != nil {
		errhandler.HandleError(err)
		return nil
	}
	if !ok {
		pterm.Warning.Println("Transfer cancelled")
		return nil
	}

	return r.execute(model.TransferRequest{
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        amount,
		Description:   description,
	})
}

func (r *TransferRunner) execute(req model.TransferRequest) error {
	conf, err := r.svc.Transfer.Execute(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInsufficientFunds):
			return fmt.Errorf("insufficient funds in the source account")
		case errors.Is(err, service.ErrAccountNotFound):
			return err
		default:
			return fmt.Errorf("transfer failed: %w", err)
		}
	}

	return views.NewTransferReceiptView().Render(conf)
}
