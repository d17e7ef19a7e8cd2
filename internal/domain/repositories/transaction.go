package repositories

import "context"

// TxFn is a function that runs within a transaction.
// Repositories pick the transaction up from ctx.
type TxFn func(ctx context.Context) error

// TransactionManager runs a function atomically against the record store
type TransactionManager interface {
	// ExecTx commits when fn returns nil and rolls back otherwise
	ExecTx(ctx context.Context, fn TxFn) error
}
