package service

import (
	"context"
	"sync"

	"monges_backend/internals/features/monks/model"
)

// Snapshot menyimpan hasil GetAll terakhir dan otomatis refetch
// kalau Store.Revision() berubah (tulis baru atau restore).
type Snapshot struct {
	store *Store

	mu      sync.Mutex
	rev     uint64
	records []model.Monk
	loaded  bool
}

func NewSnapshot(store *Store) *Snapshot {
	return &Snapshot{store: store}
}

// Records mengembalikan salinan dalam daftar record terbaru; caller bebas mengubahnya.
func (c *Snapshot) Records(ctx context.Context) ([]model.Monk, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rev := c.store.Revision()
	if !c.loaded || rev != c.rev {
		rows, err := c.store.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		c.records = rows
		c.rev = rev
		c.loaded = true
	}

	out := make([]model.Monk, len(c.records))
	for i := range c.records {
		out[i] = c.records[i].Clone()
	}
	return out, nil
}

// Invalidate memaksa fetch ulang di panggilan berikutnya.
func (c *Snapshot) Invalidate() {
	c.mu.Lock()
	c.loaded = false
	c.mu.Unlock()
}
