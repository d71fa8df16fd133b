package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/amirhossein-jamali/money-flow-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/money-flow-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/domain/port/persistence"
)

// MoneyFlowRepository implements MoneyFlowRepository against a Store.
// With a transaction it sees its own staged writes; without one every write is applied immediately.
type MoneyFlowRepository struct {
	store *Store
	tx    *transaction
}

var _ persistence.MoneyFlowRepository = (*MoneyFlowRepository)(nil)

// NewMoneyFlowRepository creates a repository that writes straight to store
func NewMoneyFlowRepository(store *Store) *MoneyFlowRepository {
	return &MoneyFlowRepository{store: store}
}

// Insert stores a new money flow and writes the generated ID back into it
func (r *MoneyFlowRepository) Insert(ctx context.Context, moneyFlow *entity.MoneyFlow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	id := r.store.nextID()
	row := moneyFlow.Clone()
	row.ID = id

	err := r.write(func(t *transaction) {
		t.staged[id] = row
		t.inserted[id] = true
	})
	if err != nil {
		return err
	}

	moneyFlow.ID = id
	return nil
}

// Replace overwrites the stored copy of an existing money flow
func (r *MoneyFlowRepository) Replace(ctx context.Context, moneyFlow *entity.MoneyFlow) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, found := r.find(moneyFlow.ID); !found {
		return errs.ErrMoneyFlowNotFound
	}

	row := moneyFlow.Clone()
	return r.write(func(t *transaction) {
		t.staged[row.ID] = row
	})
}

// Delete removes the money flow with the given ID
func (r *MoneyFlowRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, found := r.find(id); !found {
		return errs.ErrMoneyFlowNotFound
	}

	return r.write(func(t *transaction) {
		delete(t.staged, id)
		if t.inserted[id] {
			delete(t.inserted, id)
			return
		}
		t.deleted[id] = true
	})
}

// FindByID returns a copy of the money flow with the given ID
func (r *MoneyFlowRepository) FindByID(ctx context.Context, id uint64) (*entity.MoneyFlow, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	mf, found := r.find(id)
	return mf, found, nil
}

// FindAll returns every money flow ordered by ID
func (r *MoneyFlowRepository) FindAll(ctx context.Context) ([]*entity.MoneyFlow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows := r.visible()
	result := make([]*entity.MoneyFlow, 0, len(rows))
	for _, mf := range rows {
		result = append(result, mf)
	}
	slices.SortFunc(result, func(a, b *entity.MoneyFlow) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result, nil
}

// FindByKind returns the money flows of one kind, newest occurred date first with ties broken by ID descending
func (r *MoneyFlowRepository) FindByKind(ctx context.Context, kind entity.MoneyFlowKind) ([]*entity.MoneyFlow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make([]*entity.MoneyFlow, 0)
	for _, mf := range r.visible() {
		if mf.Kind == kind {
			result = append(result, mf)
		}
	}
	slices.SortFunc(result, func(a, b *entity.MoneyFlow) int {
		if c := b.OccurredDate.Compare(a.OccurredDate); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return result, nil
}

// write stages fn in the transaction, or runs it in a throwaway one that is committed at once
func (r *MoneyFlowRepository) write(fn func(t *transaction)) error {
	if r.tx != nil {
		r.tx.mu.Lock()
		defer r.tx.mu.Unlock()
		if r.tx.finished {
			return ErrNoTransaction
		}
		fn(r.tx)
		return nil
	}

	t := newTransaction()
	fn(t)
	r.store.applyDirect(t)
	return nil
}

func (r *MoneyFlowRepository) find(id uint64) (*entity.MoneyFlow, bool) {
	if r.tx != nil {
		r.tx.mu.Lock()
		if r.tx.deleted[id] {
			r.tx.mu.Unlock()
			return nil, false
		}
		if mf, ok := r.tx.staged[id]; ok {
			r.tx.mu.Unlock()
			return mf.Clone(), true
		}
		r.tx.mu.Unlock()
	}
	return r.store.get(id)
}

// visible merges the committed rows with the transaction's staged writes
func (r *MoneyFlowRepository) visible() map[uint64]*entity.MoneyFlow {
	rows := r.store.snapshot()
	if r.tx == nil {
		return rows
	}

	r.tx.mu.Lock()
	defer r.tx.mu.Unlock()
	for id := range r.tx.deleted {
		delete(rows, id)
	}
	for id, mf := range r.tx.staged {
		rows[id] = mf.Clone()
	}
	return rows
}
