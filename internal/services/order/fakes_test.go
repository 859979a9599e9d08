package order

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gunturaf/sukab-restaurant/internal/models"
)

// fakeStore is an in-memory Store with the same (table_number,
// order_id) scoping semantics as the PostgreSQL repository.
type fakeStore struct {
	mu          sync.Mutex
	menus       map[int64]models.MenuItem
	orders      map[int64]models.Order
	nextID      int64
	pingErr     error
	createCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		menus: map[int64]models.MenuItem{
			1: {MenuID: 1, Name: "Nasi Goreng"},
			2: {MenuID: 2, Name: "Sate Ayam"},
		},
		orders: make(map[int64]models.Order),
	}
}

func (f *fakeStore) CreateOrder(ctx context.Context, tableNumber int, menuID int64, cookTime int) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.createCalls++
	f.nextID++
	o := models.Order{
		OrderID:     f.nextID,
		MenuID:      menuID,
		TableNumber: tableNumber,
		CookTime:    cookTime,
		CreatedAt:   time.Now().UTC(),
	}
	f.orders[o.OrderID] = o
	return &o, nil
}

func (f *fakeStore) ListOrders(ctx context.Context, tableNumber int) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	orders := []models.Order{}
	for _, o := range f.orders {
		if o.TableNumber == tableNumber {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].OrderID < orders[j].OrderID })
	return orders, nil
}

func (f *fakeStore) GetOrder(ctx context.Context, tableNumber int, orderID int64) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	o, ok := f.orders[orderID]
	if !ok || o.TableNumber != tableNumber {
		return nil, models.ErrOrderNotFound
	}
	return &o, nil
}

func (f *fakeStore) DeleteOrder(ctx context.Context, tableNumber int, orderID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	o, ok := f.orders[orderID]
	if !ok || o.TableNumber != tableNumber {
		return models.ErrOrderNotFound
	}
	delete(f.orders, orderID)
	return nil
}

func (f *fakeStore) GetMenuItem(ctx context.Context, menuID int64) (*models.MenuItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	m, ok := f.menus[menuID]
	if !ok {
		return nil, models.ErrMenuNotFound
	}
	return &m, nil
}

func (f *fakeStore) Ping(ctx context.Context) error {
	return f.pingErr
}

// fakePublisher records published events.
type fakePublisher struct {
	mu        sync.Mutex
	created   []models.Order
	cancelled []int64
	err       error
}

func (f *fakePublisher) PublishOrderCreated(ctx context.Context, order *models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, *order)
	return nil
}

func (f *fakePublisher) PublishOrderCancelled(ctx context.Context, tableNumber int, orderID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.cancelled = append(f.cancelled, orderID)
	return nil
}
