package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Softx0/web-cuentas-bancarias/internal/constants"
	"github.com/Softx0/web-cuentas-bancarias/internal/model"
	"github.com/Softx0/web-cuentas-bancarias/internal/store"
)

// TransactionService is the read side of the transaction log.
type TransactionService struct {
	repo     store.Repository
	config   Config
	accounts *AccountService
	seeder   *Seeder
	logger   zerolog.Logger
}

func NewTransactionService(repo store.Repository, cfg Config, accounts *AccountService, seeder *Seeder, logger zerolog.Logger) *TransactionService {
	return &TransactionService{
		repo:     repo,
		config:   cfg,
		accounts: accounts,
		seeder:   seeder,
		logger:   logger,
	}
}

// ListForAccount returns the transactions owned by accountID in storage
// order. The order is whatever the log holds: seeded history is newest
// first, but later appends land at the end, so the result is not guaranteed
// sorted. First access generates the synthetic history for every account.
func (ts *TransactionService) ListForAccount(accountID string) ([]*model.Transaction, error) {
	ts.config.delay(delayListTransactions)

	transactions, err := ts.listAll()
	if err != nil {
		return nil, err
	}

	var owned []*model.Transaction
	for _, tx := range transactions {
		if tx.AccountID == accountID {
			owned = append(owned, tx)
		}
	}
	return owned, nil
}

func (ts *TransactionService) listAll() ([]*model.Transaction, error) {
	transactions, err := store.LoadTransactions(ts.repo)
	if err == nil {
		return transactions, nil
	}
	if !errors.Is(err, store.ErrCollectionNotFound) {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	accounts, err := ts.accounts.listOn(ts.repo)
	if err != nil {
		return nil, err
	}

	transactions = ts.seeder.InitialTransactions(accounts)
	if err := store.SaveTransactions(ts.repo, transactions); err != nil {
		return nil, fmt.Errorf("failed to seed transactions: %w", err)
	}

	ts.logger.Info().Int("transactions", len(transactions)).Msg("seeded synthetic transaction history")

	return transactions, nil
}

// Filter narrows a listing by date range and direction. Dates are inclusive
// on both ends; an empty bound is open. A zero-value or "all" type keeps
// both directions.
func Filter(transactions []*model.Transaction, opts model.FilterOptions) []*model.Transaction {
	filtered := make([]*model.Transaction, 0, len(transactions))

	for _, tx := range transactions {
		if opts.DateFrom != "" && tx.Date < opts.DateFrom {
			continue
		}
		if opts.DateTo != "" && tx.Date > opts.DateTo {
			continue
		}
		if opts.Type != "" && opts.Type != constants.TxAll && tx.Type != opts.Type {
			continue
		}
		filtered = append(filtered, tx)
	}

	return filtered
}
