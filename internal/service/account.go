package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Softx0/web-cuentas-bancarias/internal/model"
	"github.com/Softx0/web-cuentas-bancarias/internal/store"
)

// AccountService is the read side of the account collection. Accounts are
// created once by seeding and mutated only by the transfer processor.
type AccountService struct {
	repo   store.Repository
	config Config
	seeder *Seeder
	logger zerolog.Logger
}

func NewAccountService(repo store.Repository, cfg Config, seeder *Seeder, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, config: cfg, seeder: seeder, logger: logger}
}

// List returns all accounts in insertion order, seeding the fixed initial
// set on first access.
func (as *AccountService) List() ([]*model.Account, error) {
	as.config.delay(delayListAccounts)
	return as.listOn(as.repo)
}

// listOn is List against an explicit repository view, so the transfer
// processor can reuse it inside a store transaction.
func (as *AccountService) listOn(repo store.Repository) ([]*model.Account, error) {
	accounts, err := store.LoadAccounts(repo)
	if err == nil {
		return accounts, nil
	}
	if !errors.Is(err, store.ErrCollectionNotFound) {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	accounts = as.seeder.InitialAccounts()
	if err := store.SaveAccounts(repo, accounts); err != nil {
		return nil, fmt.Errorf("failed to seed accounts: %w", err)
	}

	as.logger.Info().Int("accounts", len(accounts)).Msg("seeded initial account set")

	return accounts, nil
}

// Get returns the account with the given id or ErrAccountNotFound.
func (as *AccountService) Get(id string) (*model.Account, error) {
	as.config.delay(delayGetAccount)

	accounts, err := as.listOn(as.repo)
	if err != nil {
		return nil, err
	}

	for _, acc := range accounts {
		if acc.ID == id {
			return acc, nil
		}
	}

	return nil, fmt.Errorf("account '%s': %w", id, ErrAccountNotFound)
}
