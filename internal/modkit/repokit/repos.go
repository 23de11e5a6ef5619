// Package repokit provides common types and helpers for repository implementations
package repokit

import (
	"context"

	"voicebooking/internal/platform/store"
)

// Queryer is the transaction handle repos are bound to
type Queryer = *store.Tx

// TxRunner can execute a function inside a transaction
type TxRunner = store.TxRunner

// WithTx binds b to a fresh transaction and runs fn with the bound repo
func WithTx[T any](ctx context.Context, db TxRunner, b Binder[T], fn func(repo T) error) error {
	return db.Tx(ctx, func(q Queryer) error { return fn(MustBind(b, q)) })
}

// Read runs fn in a transaction and returns its value
func Read[T, V any](ctx context.Context, db TxRunner, b Binder[T], fn func(repo T) (V, error)) (V, error) {
	var out V
	err := WithTx(ctx, db, b, func(repo T) error {
		v, err := fn(repo)
		out = v
		return err
	})
	return out, err
}
