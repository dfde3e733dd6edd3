package memory

import "context"

// TxManager runs multi-step mutations atomically against a DB.
// Nested RunInTx calls are NOT supported: the inner call deadlocks on the
// writer lock.
type TxManager struct {
	db      *DB
	writeMu chan struct{}
}

// NewTxManager creates a new TxManager.
func NewTxManager(db *DB) *TxManager {
	return &TxManager{db: db, writeMu: make(chan struct{}, 1)}
}

// RunInTx executes fn with writers serialized.
// On success: the changes made by fn stay.
// On error from fn: every table is restored to its state before fn ran.
// On panic from fn: restores and re-panics.
// A cancelled ctx aborts before fn starts.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	select {
	case m.writeMu <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-m.writeMu }()

	before := m.db.snapshot()

	defer func() {
		if r := recover(); r != nil {
			m.db.restore(before)
			panic(r)
		}
	}()

	if err := fn(ctx); err != nil {
		m.db.restore(before)
		return err
	}
	return nil
}
