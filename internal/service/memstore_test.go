package service

import (
	"context"
	"sync"
	"time"

	"payment-settlement/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// memStore is an in-memory stand-in for the Postgres repositories. Row locks
// taken through GetByIDForUpdate are held until the transaction ends, and
// writes made inside a transaction become visible only on Commit.
type memStore struct {
	mu       sync.Mutex
	orders   map[string]domain.Order
	items    map[string][]domain.OrderItem
	payments []domain.OrderPayment
	plans    map[string]domain.PaymentPlan
	events   map[string]domain.WebhookEvent
	locks    map[string]*sync.Mutex
}

func newMemStore() *memStore {
	return &memStore{
		orders: make(map[string]domain.Order),
		items:  make(map[string][]domain.OrderItem),
		plans:  make(map[string]domain.PaymentPlan),
		events: make(map[string]domain.WebhookEvent),
		locks:  make(map[string]*sync.Mutex),
	}
}

func (m *memStore) addOrder(o *domain.Order, items ...domain.OrderItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[o.ID] = *o
	m.items[o.ID] = items
}

func (m *memStore) order(id string) domain.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.orders[id]
}

func (m *memStore) rows(orderID string) []domain.OrderPayment {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.OrderPayment
	for _, p := range m.payments {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	return out
}

func (m *memStore) rowLock(id string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.locks[id]
	if !ok {
		l = &sync.Mutex{}
		m.locks[id] = l
	}
	return l
}

// memTx buffers writes until Commit.
type memTx struct {
	pgx.Tx
	store *memStore
	held  []*sync.Mutex
	ops   []func()
	done  bool
}

func (t *memTx) Commit(_ context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.store.mu.Lock()
	for _, op := range t.ops {
		op()
	}
	t.store.mu.Unlock()
	t.finish()
	return nil
}

func (t *memTx) Rollback(_ context.Context) error {
	if t.done {
		return nil
	}
	t.finish()
	return nil
}

func (t *memTx) finish() {
	t.done = true
	for _, l := range t.held {
		l.Unlock()
	}
	t.held = nil
	t.ops = nil
}

func (m *memStore) Begin(_ context.Context) (pgx.Tx, error) {
	return &memTx{store: m}, nil
}

// --- OrderRepository ---

func (m *memStore) GetByID(_ context.Context, id string) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (m *memStore) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.Order, error) {
	l := m.rowLock(id)
	l.Lock()
	mt := tx.(*memTx)
	mt.held = append(mt.held, l)
	return m.GetByID(ctx, id)
}

func (m *memStore) UpdateBalances(_ context.Context, tx pgx.Tx, order *domain.Order) error {
	o := *order
	tx.(*memTx).ops = append(tx.(*memTx).ops, func() {
		cur := m.orders[o.ID]
		cur.PaidAmount, cur.BalanceDue, cur.PaymentStatus = o.PaidAmount, o.BalanceDue, o.PaymentStatus
		m.orders[o.ID] = cur
	})
	return nil
}

func (m *memStore) UpdatePaymentStatus(_ context.Context, tx pgx.Tx, id string, status domain.PaymentStatus) error {
	tx.(*memTx).ops = append(tx.(*memTx).ops, func() {
		cur := m.orders[id]
		cur.PaymentStatus = status
		m.orders[id] = cur
	})
	return nil
}

func (m *memStore) UpdateFulfillmentStatus(_ context.Context, id string, status domain.FulfillmentStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur := m.orders[id]
	cur.FulfillmentStatus = status
	m.orders[id] = cur
	return nil
}

func (m *memStore) GetItems(_ context.Context, orderID string) ([]domain.OrderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[orderID], nil
}

// --- OrderPaymentRepository ---

func sharesRef(a, b domain.GatewayRefs) bool {
	eq := func(x, y string) bool { return x != "" && x == y }
	return eq(a.CardIntentID, b.CardIntentID) ||
		eq(a.CardChargeID, b.CardChargeID) ||
		eq(a.RegionalTransactionID, b.RegionalTransactionID) ||
		eq(a.RegionalValidationID, b.RegionalValidationID) ||
		eq(a.RegionalBankTransactionID, b.RegionalBankTransactionID) ||
		eq(a.CODReference, b.CODReference)
}

func (m *memStore) Create(_ context.Context, tx pgx.Tx, payment *domain.OrderPayment) error {
	p := *payment
	if p.IsSettledCharge() {
		m.mu.Lock()
		for _, existing := range m.payments {
			if existing.IsSettledCharge() && sharesRef(existing.Refs, p.Refs) {
				m.mu.Unlock()
				return domain.ErrDuplicatePayment
			}
		}
		m.mu.Unlock()
	}
	tx.(*memTx).ops = append(tx.(*memTx).ops, func() {
		m.payments = append(m.payments, p)
	})
	return nil
}

func (m *memStore) FindSucceededByRefs(_ context.Context, _ pgx.Tx, refs domain.GatewayRefs) (*domain.OrderPayment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.payments {
		if p.IsSettledCharge() && sharesRef(p.Refs, refs) {
			return &p, nil
		}
	}
	return nil, nil
}

func (m *memStore) ListByOrder(_ context.Context, orderID string) ([]domain.OrderPayment, error) {
	return m.rows(orderID), nil
}

// memPlans adapts the store to PaymentPlanRepository, whose Create collides
// with the payment ledger's.
type memPlans struct{ *memStore }

func (m memPlans) Create(_ context.Context, plan *domain.PaymentPlan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plans[plan.OrderID] = *plan
	return nil
}

func (m memPlans) GetByOrderID(_ context.Context, orderID string) (*domain.PaymentPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.plans[orderID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m memPlans) Advance(_ context.Context, tx pgx.Tx, orderID string, to domain.PaymentPlanStatus, at time.Time) (bool, error) {
	m.mu.Lock()
	p, ok := m.plans[orderID]
	m.mu.Unlock()
	if !ok || !p.Status.CanAdvanceTo(to) {
		return false, nil
	}
	tx.(*memTx).ops = append(tx.(*memTx).ops, func() {
		cur := m.plans[orderID]
		if !cur.Status.CanAdvanceTo(to) {
			return
		}
		cur.Status = to
		switch to {
		case domain.PaymentPlanDepositPaid:
			cur.DepositPaidAt = &at
		case domain.PaymentPlanFullyPaid:
			cur.BalancePaidAt = &at
		}
		m.plans[orderID] = cur
	})
	return true, nil
}

// memEvents adapts the store to WebhookEventRepository.
type memEvents struct{ *memStore }

func (m memEvents) Claim(_ context.Context, ev *domain.WebhookEvent, lease time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	if cur, ok := m.events[ev.ID]; ok {
		switch {
		case cur.Status == domain.WebhookEventProcessed:
			return false, nil
		case cur.Status == domain.WebhookEventProcessing && now.Sub(cur.ReceivedAt) < lease:
			return false, nil
		}
	}
	e := *ev
	e.Status = domain.WebhookEventProcessing
	e.ReceivedAt = now
	m.events[e.ID] = e
	return true, nil
}

func (m memEvents) Complete(_ context.Context, id string, status domain.WebhookEventStatus, result string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := m.events[id]
	now := time.Now()
	e.Status, e.Result, e.ProcessedAt = status, result, &now
	m.events[id] = e
	return nil
}

func (m memEvents) Record(_ context.Context, ev *domain.WebhookEvent) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.events[ev.ID]; ok {
		return false, nil
	}
	m.events[ev.ID] = *ev
	return true, nil
}

func (m memEvents) GetByID(_ context.Context, id string) (*domain.WebhookEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

// memInventory counts calls to the stock service.
type memInventory struct {
	mu       sync.Mutex
	deducts  int
	releases int
	reserves int
}

func (i *memInventory) Reserve(context.Context, []domain.InventoryEntry, string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.reserves++
	return nil
}

func (i *memInventory) Deduct(context.Context, []domain.InventoryEntry, string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.deducts++
	return nil
}

func (i *memInventory) Release(context.Context, []domain.InventoryEntry, string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.releases++
	return nil
}

func (i *memInventory) CheckLowStockAndAlert(context.Context, string) error { return nil }

func (i *memInventory) counts() (deducts, releases int) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.deducts, i.releases
}

type nopMetrics struct{}

func (nopMetrics) Settlement(domain.GatewayTag, string) {}
func (nopMetrics) Refund(domain.GatewayTag, string) {}
func (nopMetrics) Webhook(domain.WebhookProvider, string) {}
func (nopMetrics) InventoryFailure(string) {}
func (nopMetrics) SettingsCache(bool) {}
