// Package store provides the process local storage backend: keyed tables and
// id sequences guarded by one lock, with transactional rollback
package store

import (
	"context"
	"errors"
	"sync"

	"voicebooking/internal/platform/logger"
)

// ErrClosed is returned by Tx after Close
var ErrClosed = errors.New("store closed")

// TxRunner runs fn inside a transaction. An error returned by fn rolls back every write made through q
type TxRunner interface {
	Tx(ctx context.Context, fn func(q *Tx) error) error
}

// Memory is the in memory backend. The zero value is not usable, call Open
type Memory struct {
	mu     sync.Mutex
	log    logger.Logger
	tables map[string]*table
	seqs   map[string]int
	closed bool
}

type table struct {
	rows  map[string]any
	order []string
}

// Open constructs an empty store
func Open(opts ...Option) *Memory {
	m := &Memory{
		log:    *logger.Named("store"),
		tables: map[string]*table{},
		seqs:   map[string]int{},
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Tx serializes fn against every other transaction
func (m *Memory) Tx(ctx context.Context, fn func(q *Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}

	tx := &Tx{m: m}
	err := fn(tx)
	if err != nil {
		tx.rollback()
		m.log.Debug().Err(err).Int("undone", len(tx.undo)).Msg("tx rolled back")
	}
	tx.m = nil
	return err
}

// Guard reports whether the store still accepts transactions
func (m *Memory) Guard(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	return nil
}

// Close drops all data; later transactions fail with ErrClosed
func (m *Memory) Close(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.tables, m.seqs = nil, nil
	return nil
}

// Option mutates Memory during Open
type Option func(*Memory)

// WithLogger sets the logger used for store diagnostics
func WithLogger(log logger.Logger) Option {
	return func(m *Memory) { m.log = log }
}
