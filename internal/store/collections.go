package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Softx0/web-cuentas-bancarias/internal/constants"
	"github.com/Softx0/web-cuentas-bancarias/internal/model"
)

// Typed helpers over the raw collection blobs. They keep the JSON shapes of
// the persisted banking_accounts / banking_transactions collections in one
// place so the services only deal with model types.

// LoadAccounts decodes the accounts collection in insertion order.
// A repository that has never been seeded yields ErrCollectionNotFound.
func LoadAccounts(repo Repository) ([]*model.Account, error) {
	raw, err := repo.GetCollection(constants.AccountsKey)
	if err != nil {
		return nil, err
	}

	var accounts []*model.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCollection, err)
	}
	return accounts, nil
}

func SaveAccounts(repo Repository, accounts []*model.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to encode accounts: %w", err)
	}
	return repo.PutCollection(constants.AccountsKey, raw)
}

// LoadTransactions decodes the transaction log in storage order.
func LoadTransactions(repo Repository) ([]*model.Transaction, error) {
	raw, err := repo.GetCollection(constants.TransactionsKey)
	if err != nil {
		return nil, err
	}

	var transactions []*model.Transaction
	if err := json.Unmarshal(raw, &transactions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCollection, err)
	}
	return transactions, nil
}

func SaveTransactions(repo Repository, transactions []*model.Transaction) error {
	raw, err := json.Marshal(transactions)
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}
	return repo.PutCollection(constants.TransactionsKey, raw)
}

// AppendTransactions adds records to the end of the log, creating it when it
// does not exist yet. The log is append-only; nothing ever rewrites existing
// entries.
func AppendTransactions(repo Repository, records ...*model.Transaction) error {
	existing, err := LoadTransactions(repo)
	if err != nil && !errors.Is(err, ErrCollectionNotFound) {
		return err
	}
	return SaveTransactions(repo, append(existing, records...))
}
