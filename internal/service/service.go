package service

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/Softx0/web-cuentas-bancarias/internal/store"
)

type Config struct {
	DefaultCurrency string

	// SimulateLatency reproduces the demo's artificial service delays.
	// Off by default; purely cosmetic.
	SimulateLatency bool
}

type Service struct {
	Account     *AccountService
	Transaction *TransactionService
	Transfer    *TransferService
}

func NewService(repo store.Repository, cfg Config, seeder *Seeder, logger zerolog.Logger) *Service {
	account := NewAccountService(repo, cfg, seeder, logger)
	transaction := NewTransactionService(repo, cfg, account, seeder, logger)
	transfer := NewTransferService(repo, cfg, account, logger)

	return &Service{
		Account:     account,
		Transaction: transaction,
		Transfer:    transfer,
	}
}

// simulated latencies of the original mock endpoints
const (
	delayListAccounts     = 800 * time.Millisecond
	delayGetAccount       = 500 * time.Millisecond
	delayListTransactions = 600 * time.Millisecond
	delayTransfer         = 1200 * time.Millisecond
)

func (c Config) delay(d time.Duration) {
	if c.SimulateLatency {
		time.Sleep(d)
	}
}
