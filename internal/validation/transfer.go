package validation

import (
	"fmt"
	"strings"

	"github.com/Softx0/web-cuentas-bancarias/internal/constants"
	"github.com/Softx0/web-cuentas-bancarias/internal/currency"
	"github.com/Softx0/web-cuentas-bancarias/internal/model"
)

// TransferValidator checks the transfer form fields before the processor is
// ever invoked (fail fast, no partial attempt). It validates against a
// snapshot of the account list taken when the form was opened.
type TransferValidator struct {
	accounts []*model.Account
}

func NewTransferValidator(accounts []*model.Account) *TransferValidator {
	return &TransferValidator{accounts: accounts}
}

func (v *TransferValidator) find(id string) *model.Account {
	for _, acc := range v.accounts {
		if acc.ID == id {
			return acc
		}
	}
	return nil
}

// ValidateSource checks the source account selection. Credit cards cannot be
// a transfer source, and inactive accounts are not selectable.
func (v *TransferValidator) ValidateSource(id string) error {
	if id == "" {
		return fmt.Errorf("select a source account")
	}

	acc := v.find(id)
	if acc == nil {
		return fmt.Errorf("unknown source account '%s'", id)
	}
	if !acc.Active {
		return fmt.Errorf("account '%s' is not active", acc.Name)
	}
	if acc.Type == constants.TypeCredit {
		return fmt.Errorf("credit accounts cannot be a transfer source")
	}

	return nil
}

// ValidateDestination checks the destination selection against the source.
func (v *TransferValidator) ValidateDestination(fromID, toID string) error {
	if toID == "" {
		return fmt.Errorf("select a destination account")
	}
	if toID == fromID {
		return fmt.Errorf("destination account must be different from the source")
	}

	acc := v.find(toID)
	if acc == nil {
		return fmt.Errorf("unknown destination account '%s'", toID)
	}
	if !acc.Active {
		return fmt.Errorf("account '%s' is not active", acc.Name)
	}

	return nil
}

// ValidateAmount parses a user-entered amount and checks it against the
// source account's available balance.
func (v *TransferValidator) ValidateAmount(amountStr, fromID string) (int64, error) {
	cents, err := currency.ParseToCents(amountStr)
	if err != nil {
		return 0, fmt.Errorf("enter a valid amount greater than 0")
	}
	if cents <= 0 {
		return 0, fmt.Errorf("enter a valid amount greater than 0")
	}

	if from := v.find(fromID); from != nil && cents > from.Balance {
		return 0, fmt.Errorf("insufficient funds. Available: %s",
			currency.Format(from.Balance, from.Currency))
	}

	return cents, nil
}

// ValidateDescription requires a non-empty description of sane length.
func ValidateDescription(desc string) error {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return fmt.Errorf("enter a description")
	}
	if len(desc) > constants.MaxDescLen {
		return fmt.Errorf("description too long (max %d characters)", constants.MaxDescLen)
	}
	return nil
}

// SourceOptions returns the accounts selectable as a transfer source:
// active, non-credit.
func (v *TransferValidator) SourceOptions() []*model.Account {
	var options []*model.Account
	for _, acc := range v.accounts {
		if acc.Active && acc.Type != constants.TypeCredit {
			options = append(options, acc)
		}
	}
	return options
}

// DestinationOptions returns the accounts selectable as a destination:
// active, minus the chosen source.
func (v *TransferValidator) DestinationOptions(fromID string) []*model.Account {
	var options []*model.Account
	for _, acc := range v.accounts {
		if acc.Active && acc.ID != fromID {
			options = append(options, acc)
		}
	}
	return options
}
