package store

// Repository is the persistence contract for the two banking collections.
// The whole collection is always read and written as one value; there is no
// partial-update API, callers do read-modify-write.
type Repository interface {
	GetCollection(key string) ([]byte, error)
	PutCollection(key string, value []byte) error

	// ExecTx runs fn against a transactional view of the repository.
	// All PutCollection calls inside fn commit or roll back together.
	ExecTx(fn func(Repository) error) error

	Close() error
}
