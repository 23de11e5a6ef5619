// Package repo provides the payment order repository over the process local store
package repo

import (
	"strconv"

	"voicebooking/internal/modkit/repokit"
	perr "voicebooking/internal/platform/errors"
	"voicebooking/internal/platform/store"
	"voicebooking/internal/services/api/payment/domain"
)

const (
	table    = "payment_orders"
	sequence = "order_id"
	firstID  = 5000
)

// Repo is the order persistence surface used by the service layer
type Repo interface {
	NextID() string
	Put(o domain.Order)
	Get(id string) (domain.Order, error)
}

type (
	// Mem is the store backed implementation of the order repo
	Mem     struct{}
	queries struct {
		q    repokit.Queryer
		rows store.Keyed[domain.Order]
	}
)

// NewMem returns a binder for the store implementation
func NewMem() repokit.Binder[Repo] { return Mem{} }

// Bind attaches a transaction to the store implementation
func (Mem) Bind(q repokit.Queryer) Repo {
	return &queries{q: q, rows: store.Table[domain.Order](q, table)}
}

// NextID draws ORD5000, ORD5001, ...
func (r *queries) NextID() string {
	return "ORD" + strconv.Itoa(r.q.NextSeq(sequence, firstID))
}

func (r *queries) Put(o domain.Order) { r.rows.Put(o.OrderID, o) }

func (r *queries) Get(id string) (domain.Order, error) {
	o, ok := r.rows.Get(id)
	if !ok {
		return domain.Order{}, perr.NotFoundf("Payment order not found")
	}
	return o, nil
}
