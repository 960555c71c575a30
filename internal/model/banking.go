package model

// Account is a single bank account as persisted in the accounts collection.
// Balance is in minor currency units and may be negative for credit accounts.
type Account struct {
	ID                  string `json:"id"`
	AccountNumber       string `json:"accountNumber"`
	Type                string `json:"accountType"`
	Balance             int64  `json:"balance"`
	Currency            string `json:"currency"`
	Name                string `json:"name"`
	Active              bool   `json:"isActive"`
	CreatedAt           string `json:"createdAt"`
	LastTransactionDate string `json:"lastTransactionDate"`
}

// MaskedNumber returns the account number reduced to its last 4 digits.
func (a *Account) MaskedNumber() string {
	if len(a.AccountNumber) <= 4 {
		return "****" + a.AccountNumber
	}
	return "****" + a.AccountNumber[len(a.AccountNumber)-4:]
}

// Transaction is one entry of the append-only transaction log.
// Balance is the owning account's balance after this transaction was applied.
type Transaction struct {
	ID          string `json:"id"`
	AccountID   string `json:"accountId"`
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Balance     int64  `json:"balance"`
	Reference   string `json:"reference"`
	Category    string `json:"category"`
}

// TransferRequest carries the caller's input for one transfer.
// Reference is optional; the processor generates one when it is empty.
type TransferRequest struct {
	FromAccountID string `json:"fromAccountId"`
	ToAccountID   string `json:"toAccountId"`
	Amount        int64  `json:"amount"`
	Description   string `json:"description"`
	Reference     string `json:"reference,omitempty"`
}

// FilterOptions narrows a transaction listing by date range and direction.
// Empty dates mean unbounded; Type is "all", "debit" or "credit".
type FilterOptions struct {
	DateFrom string
	DateTo   string
	Type     string
}
