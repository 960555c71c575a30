package service

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/Softx0/web-cuentas-bancarias/internal/store"
)

// memRepo is an in-memory Repository for tests. ExecTx stages writes on a
// copy and commits them only when fn succeeds, mirroring the SQL store's
// rollback behavior.
type memRepo struct {
	data map[string][]byte
}

func newMemRepo() *memRepo {
	return &memRepo{data: make(map[string][]byte)}
}

func (m *memRepo) GetCollection(key string) ([]byte, error) {
	value, ok := m.data[key]
	if !ok {
		return nil, fmt.Errorf("collection '%s': %w", key, store.ErrCollectionNotFound)
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *memRepo) PutCollection(key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

func (m *memRepo) ExecTx(fn func(store.Repository) error) error {
	staged := newMemRepo()
	for k, v := range m.data {
		staged.data[k] = v
	}
	if err := fn(staged); err != nil {
		return err
	}
	m.data = staged.data
	return nil
}

func (m *memRepo) Close() error { return nil }

// testClock is a fixed instant so dates, references and record ids are
// reproducible.
var testClock = func() time.Time {
	return time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
}

func newTestService(repo store.Repository) *Service {
	seeder := NewSeeder(rand.New(rand.NewSource(1)), testClock)
	svc := NewService(repo, Config{DefaultCurrency: "DOP"}, seeder, zerolog.Nop())
	svc.Transfer.now = testClock
	return svc
}
