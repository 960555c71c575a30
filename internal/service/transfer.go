package service

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Softx0/web-cuentas-bancarias/internal/constants"
	"github.com/Softx0/web-cuentas-bancarias/internal/model"
	"github.com/Softx0/web-cuentas-bancarias/internal/store"
)

// TransferService executes a money transfer between two accounts: validate,
// mutate both balances, append the paired debit/credit records, persist.
//
// The two collection writes happen inside one store transaction, so a fault
// mid-way never persists half a transfer. What is NOT protected is the
// read-modify-write window itself: two concurrent processes can still lose
// an update, a documented limitation of this whole-collection store.
type TransferService struct {
	repo     store.Repository
	config   Config
	accounts *AccountService
	logger   zerolog.Logger

	// clock for dates, references and record ids
	now func() time.Time
}

func NewTransferService(repo store.Repository, cfg Config, accounts *AccountService, logger zerolog.Logger) *TransferService {
	return &TransferService{
		repo:     repo,
		config:   cfg,
		accounts: accounts,
		logger:   logger,
		now:      time.Now,
	}
}

// Confirmation reports a completed transfer: the shared reference, both
// appended records, and the post-transfer balances.
type Confirmation struct {
	Reference   string
	Currency    string
	Debit       *model.Transaction
	Credit      *model.Transaction
	FromBalance int64
	ToBalance   int64
}

// Execute performs one transfer as a single-shot validate-then-mutate
// operation. On any error the persisted state is left as it was before the
// attempt began.
func (tp *TransferService) Execute(req model.TransferRequest) (*Confirmation, error) {
	tp.config.delay(delayTransfer)

	if req.Amount <= 0 {
		return nil, ErrBadAmount
	}
	if req.FromAccountID == req.ToAccountID {
		return nil, ErrSameAccount
	}

	var conf *Confirmation

	err := tp.repo.ExecTx(func(repo store.Repository) error {
		accounts, err := tp.accounts.listOn(repo)
		if err != nil {
			return err
		}

		var from, to *model.Account
		for _, acc := range accounts {
			switch acc.ID {
			case req.FromAccountID:
				from = acc
			case req.ToAccountID:
				to = acc
			}
		}
		if from == nil {
			return fmt.Errorf("source account '%s': %w", req.FromAccountID, ErrAccountNotFound)
		}
		if to == nil {
			return fmt.Errorf("destination account '%s': %w", req.ToAccountID, ErrAccountNotFound)
		}

		if from.Balance < req.Amount {
			return fmt.Errorf("source account '%s': %w", from.ID, ErrInsufficientFunds)
		}

		// exact integer arithmetic in minor units
		from.Balance -= req.Amount
		to.Balance += req.Amount

		now := tp.now()
		date := now.Format(constants.DateFormat)

		// Timestamp-derived reference shared by both legs. Unique enough
		// for a single-user demo; not collision-proof under rapid calls.
		reference := req.Reference
		if reference == "" {
			reference = fmt.Sprintf("TRF%d", now.UnixMilli())
		}

		description := req.Description
		if description == "" {
			description = "Transfer"
		}

		debit := &model.Transaction{
			ID:          fmt.Sprintf("%d-debit", now.UnixMilli()),
			AccountID:   from.ID,
			Type:        constants.TxDebit,
			Amount:      req.Amount,
			Description: fmt.Sprintf("Transfer to %s: %s", to.Name, description),
			Date:        date,
			Balance:     from.Balance,
			Reference:   reference,
			Category:    constants.CategoryTransfers,
		}
		credit := &model.Transaction{
			ID:          fmt.Sprintf("%d-credit", now.UnixMilli()),
			AccountID:   to.ID,
			Type:        constants.TxCredit,
			Amount:      req.Amount,
			Description: fmt.Sprintf("Transfer from %s: %s", from.Name, description),
			Date:        date,
			Balance:     to.Balance,
			Reference:   reference,
			Category:    constants.CategoryTransfers,
		}

		if err := store.SaveAccounts(repo, accounts); err != nil {
			return err
		}
		if err := store.AppendTransactions(repo, debit, credit); err != nil {
			return err
		}

		currencyCode := from.Currency
		if currencyCode == "" {
			currencyCode = tp.config.DefaultCurrency
		}

		conf = &Confirmation{
			Reference:   reference,
			Currency:    currencyCode,
			Debit:       debit,
			Credit:      credit,
			FromBalance: from.Balance,
			ToBalance:   to.Balance,
		}
		return nil
	})

	if err != nil {
		tp.logger.Debug().
			Str("from", req.FromAccountID).
			Str("to", req.ToAccountID).
			Int64("amount", req.Amount).
			Err(err).
			Msg("transfer rejected")
		return nil, err
	}

	tp.logger.Info().
		Str("from", req.FromAccountID).
		Str("to", req.ToAccountID).
		Int64("amount", req.Amount).
		Str("reference", conf.Reference).
		Msg("transfer executed")

	return conf, nil
}
