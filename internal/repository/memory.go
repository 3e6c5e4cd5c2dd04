package repository

import (
	"context"
	"sync"
	"time"

	"coffeehouse/internal/model"
)

// MemoryStore is the in-process backing store shared by the memory-backed
// repositories. A single mutex gives the single-writer discipline the id
// counters rely on; ids are assigned from per-entity counters and never
// derived from collection length, so they stay monotonic regardless of
// what else happens to the collections.
type MemoryStore struct {
	mu          sync.RWMutex
	nextOrderID int
	nextRevID   int
	nextSubID   int
	orders      []model.Order
	reviews     []model.Review
	subs        []model.Subscription
	subIdx      map[string]int // email -> index into subs
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextOrderID: 1,
		nextRevID:   1,
		nextSubID:   1,
		subIdx:      make(map[string]int),
	}
}

// MemoryOrders implements OrderRepository on top of a MemoryStore.
type MemoryOrders struct{ store *MemoryStore }

// NewMemoryOrders creates an order repository backed by store.
func NewMemoryOrders(store *MemoryStore) *MemoryOrders { return &MemoryOrders{store: store} }

var _ OrderRepository = (*MemoryOrders)(nil)

func (mo *MemoryOrders) Create(ctx context.Context, o *model.Order) error {
	mo.store.mu.Lock()
	defer mo.store.mu.Unlock()

	o.ID = mo.store.nextOrderID
	mo.store.nextOrderID++
	o.Status = model.StatusPending
	o.OrderDate = time.Now().UTC()
	o.UpdatedAt = nil
	mo.store.orders = append(mo.store.orders, cloneOrder(*o))
	return nil
}

func (mo *MemoryOrders) List(ctx context.Context) ([]model.Order, error) {
	mo.store.mu.RLock()
	defer mo.store.mu.RUnlock()

	out := make([]model.Order, 0, len(mo.store.orders))
	for _, o := range mo.store.orders {
		out = append(out, cloneOrder(o))
	}
	return out, nil
}

func (mo *MemoryOrders) GetByID(ctx context.Context, id int) (*model.Order, error) {
	mo.store.mu.RLock()
	defer mo.store.mu.RUnlock()

	for _, o := range mo.store.orders {
		if o.ID == id {
			cp := cloneOrder(o)
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (mo *MemoryOrders) UpdateStatus(ctx context.Context, id int, status string) (*model.Order, error) {
	mo.store.mu.Lock()
	defer mo.store.mu.Unlock()

	for i := range mo.store.orders {
		if mo.store.orders[i].ID == id {
			now := time.Now().UTC()
			mo.store.orders[i].Status = status
			mo.store.orders[i].UpdatedAt = &now
			cp := cloneOrder(mo.store.orders[i])
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// cloneOrder deep-copies an order so callers cannot reach into the store's
// item slices.
func cloneOrder(o model.Order) model.Order {
	items := make([]model.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	if o.UpdatedAt != nil {
		ts := *o.UpdatedAt
		o.UpdatedAt = &ts
	}
	return o
}

// MemoryReviews implements ReviewRepository on top of a MemoryStore.
type MemoryReviews struct{ store *MemoryStore }

// NewMemoryReviews creates a review repository backed by store.
func NewMemoryReviews(store *MemoryStore) *MemoryReviews { return &MemoryReviews{store: store} }

var _ ReviewRepository = (*MemoryReviews)(nil)

func (mr *MemoryReviews) Create(ctx context.Context, rev *model.Review) error {
	mr.store.mu.Lock()
	defer mr.store.mu.Unlock()

	rev.ID = mr.store.nextRevID
	mr.store.nextRevID++
	rev.Approved = false
	rev.CreatedAt = time.Now().UTC()
	mr.store.reviews = append(mr.store.reviews, *rev)
	return nil
}

func (mr *MemoryReviews) ListApproved(ctx context.Context) ([]model.Review, error) {
	mr.store.mu.RLock()
	defer mr.store.mu.RUnlock()

	out := make([]model.Review, 0)
	for _, r := range mr.store.reviews {
		if r.Approved {
			out = append(out, r)
		}
	}
	return out, nil
}

func (mr *MemoryReviews) Approve(ctx context.Context, id int) error {
	mr.store.mu.Lock()
	defer mr.store.mu.Unlock()

	for i := range mr.store.reviews {
		if mr.store.reviews[i].ID == id {
			mr.store.reviews[i].Approved = true
			return nil
		}
	}
	return ErrNotFound
}

// MemoryNewsletter implements NewsletterRepository on top of a MemoryStore.
type MemoryNewsletter struct{ store *MemoryStore }

// NewMemoryNewsletter creates a newsletter repository backed by store.
func NewMemoryNewsletter(store *MemoryStore) *MemoryNewsletter {
	return &MemoryNewsletter{store: store}
}

var _ NewsletterRepository = (*MemoryNewsletter)(nil)

func (mn *MemoryNewsletter) Create(ctx context.Context, sub *model.Subscription) error {
	mn.store.mu.Lock()
	defer mn.store.mu.Unlock()

	if _, ok := mn.store.subIdx[sub.Email]; ok {
		return ErrDuplicate
	}

	sub.ID = mn.store.nextSubID
	mn.store.nextSubID++
	sub.SubscribedAt = time.Now().UTC()
	mn.store.subIdx[sub.Email] = len(mn.store.subs)
	mn.store.subs = append(mn.store.subs, *sub)
	return nil
}

func (mn *MemoryNewsletter) List(ctx context.Context) ([]model.Subscription, error) {
	mn.store.mu.RLock()
	defer mn.store.mu.RUnlock()

	out := make([]model.Subscription, len(mn.store.subs))
	copy(out, mn.store.subs)
	return out, nil
}
