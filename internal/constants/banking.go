package constants

const (
	// Persisted collection keys
	AccountsKey     = "banking_accounts"
	TransactionsKey = "banking_transactions"

	// Account Types
	TypeChecking = "checking"
	TypeSavings  = "savings"
	TypeCredit   = "credit"

	// Transaction Directions
	TxDebit  = "debit"
	TxCredit = "credit"

	// Filter wildcard for transaction direction
	TxAll = "all"

	// Date Layout
	DateFormat = "2006-01-02"
)

const (
	CentsPerUnit = 100
	MaxDescLen   = 140
)

// CategoryTransfers labels both legs of a money transfer.
const CategoryTransfers = "Transfers"
