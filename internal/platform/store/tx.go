package store

// Tx is the handle passed to transaction bodies. It is only valid inside the body
type Tx struct {
	m    *Memory
	undo []func()
}

func (q *Tx) mustOpen() {
	if q.m == nil {
		panic("store: Tx used outside its transaction")
	}
}

func (q *Tx) rollback() {
	for i := len(q.undo) - 1; i >= 0; i-- {
		q.undo[i]()
	}
}

func (q *Tx) table(name string) *table {
	q.mustOpen()
	t, ok := q.m.tables[name]
	if !ok {
		t = &table{rows: map[string]any{}}
		q.m.tables[name] = t
	}
	return t
}

// NextSeq returns the next value of the named sequence; the first call yields start
func (q *Tx) NextSeq(name string, start int) int {
	q.mustOpen()
	prev, ok := q.m.seqs[name]
	next := start
	if ok {
		next = prev + 1
	}
	q.m.seqs[name] = next
	seqs := q.m.seqs
	q.undo = append(q.undo, func() {
		if ok {
			seqs[name] = prev
		} else {
			delete(seqs, name)
		}
	})
	return next
}

// Keyed is a typed view over one table; rows keep insertion order
type Keyed[V any] struct {
	q *Tx
	t *table
}

// Table returns the typed view of name, creating the table on first use
func Table[V any](q *Tx, name string) Keyed[V] {
	return Keyed[V]{q: q, t: q.table(name)}
}

// Get returns the row stored under key
func (k Keyed[V]) Get(key string) (V, bool) {
	k.q.mustOpen()
	v, ok := k.t.rows[key]
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

// Put inserts or replaces the row under key
func (k Keyed[V]) Put(key string, v V) {
	k.q.mustOpen()
	t := k.t
	prev, existed := t.rows[key]
	t.rows[key] = v
	if !existed {
		t.order = append(t.order, key)
	}
	k.q.undo = append(k.q.undo, func() {
		if existed {
			t.rows[key] = prev
			return
		}
		delete(t.rows, key)
		t.order = t.order[:len(t.order)-1]
	})
}

// Len reports the number of rows
func (k Keyed[V]) Len() int {
	k.q.mustOpen()
	return len(k.t.rows)
}

// All returns every row in insertion order
func (k Keyed[V]) All() []V {
	k.q.mustOpen()
	out := make([]V, 0, len(k.t.order))
	for _, key := range k.t.order {
		out = append(out, k.t.rows[key].(V))
	}
	return out
}
