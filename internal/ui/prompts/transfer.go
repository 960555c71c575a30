package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/Softx0/web-cuentas-bancarias/internal/currency"
	"github.com/Softx0/web-cuentas-bancarias/internal/model"
)

// PromptSourceAccount selects the transfer source. Options show the live
// balance so the user can judge what is available.
func PromptSourceAccount(accounts []*model.Account) (string, error) {
	if len(accounts) == 0 {
		return "", fmt.Errorf("no accounts available as a transfer source")
	}

	var opts []huh.Option[string]
	for _, acc := range accounts {
		display := fmt.Sprintf("%s - %s", acc.Name, currency.Format(acc.Balance, acc.Currency))
		opts = append(opts, huh.NewOption(display, acc.ID))
	}

	return PromptSelect("Source account:", opts)
}

// PromptDestinationAccount selects the transfer destination. Options show
// the masked account number, not the balance.
func PromptDestinationAccount(accounts []*model.Account) (string, error) {
	if len(accounts) == 0 {
		return "", fmt.Errorf("no accounts available as a transfer destination")
	}

	var opts []huh.Option[string]
	for _, acc := range accounts {
		display := fmt.Sprintf("%s - %s", acc.Name, acc.MaskedNumber())
		opts = append(opts, huh.NewOption(display, acc.ID))
	}

	return PromptSelect("Destination account:", opts)
}
