package board

import (
	"sort"
	"sync"

	"service-gestor/internal/domain"
)

// Cache is the board's local copy of orders and couriers. Reads never wait on the store.
type Cache struct {
	mu       sync.RWMutex
	orders   map[string]domain.Order
	couriers map[int64]domain.Courier
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{
		orders:   make(map[string]domain.Order),
		couriers: make(map[int64]domain.Courier),
	}
}

// Order returns a copy of the cached order.
func (c *Cache) Order(id string) (domain.Order, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	o, ok := c.orders[id]
	if !ok {
		return domain.Order{}, false
	}
	return o.Clone(), true
}

// Courier returns a copy of the cached courier.
func (c *Cache) Courier(id int64) (domain.Courier, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.couriers[id]
	if !ok {
		return domain.Courier{}, false
	}
	return v.Clone(), true
}

// Orders returns every cached order, newest first.
func (c *Cache) Orders() []domain.Order {
	c.mu.RLock()
	out := make([]domain.Order, 0, len(c.orders))
	for _, o := range c.orders {
		out = append(out, o.Clone())
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedDate.Equal(out[j].CreatedDate) {
			return out[i].CreatedDate.After(out[j].CreatedDate)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// PutOrder stores o.
func (c *Cache) PutOrder(o domain.Order) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orders[o.ID] = o.Clone()
}

// PutCourier stores v.
func (c *Cache) PutCourier(v domain.Courier) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.couriers[v.ID] = v.Clone()
}

// Replace swaps in a fresh listing. Orders for which keep returns true retain their
// local copy, so a refresh never overwrites a change that is still being committed.
func (c *Cache) Replace(orders []domain.Order, couriers []domain.Courier, keep func(orderID string) bool) {
	nextOrders := make(map[string]domain.Order, len(orders))
	for _, o := range orders {
		nextOrders[o.ID] = o.Clone()
	}
	nextCouriers := make(map[int64]domain.Courier, len(couriers))
	for _, v := range couriers {
		nextCouriers[v.ID] = v.Clone()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if keep != nil {
		for id, o := range c.orders {
			if keep(id) {
				nextOrders[id] = o
				if o.EntregadorID != nil {
					if v, ok := c.couriers[*o.EntregadorID]; ok {
						nextCouriers[v.ID] = v
					}
				}
			}
		}
	}
	c.orders = nextOrders
	c.couriers = nextCouriers
}

// snapshot holds exact copies of the records a command touches. A nil entry means the
// record was absent.
type snapshot struct {
	orders   map[string]*domain.Order
	couriers map[int64]*domain.Courier
}

func (c *Cache) capture(orderIDs []string, courierIDs []int64) snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := snapshot{
		orders:   make(map[string]*domain.Order, len(orderIDs)),
		couriers: make(map[int64]*domain.Courier, len(courierIDs)),
	}
	for _, id := range orderIDs {
		if o, ok := c.orders[id]; ok {
			cp := o.Clone()
			s.orders[id] = &cp
		} else {
			s.orders[id] = nil
		}
	}
	for _, id := range courierIDs {
		if v, ok := c.couriers[id]; ok {
			cp := v.Clone()
			s.couriers[id] = &cp
		} else {
			s.couriers[id] = nil
		}
	}
	return s
}

func (c *Cache) apply(orders []domain.Order, couriers []domain.Courier) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, o := range orders {
		c.orders[o.ID] = o.Clone()
	}
	for _, v := range couriers {
		c.couriers[v.ID] = v.Clone()
	}
}

func (c *Cache) restore(s snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, o := range s.orders {
		if o == nil {
			delete(c.orders, id)
			continue
		}
		c.orders[id] = o.Clone()
	}
	for id, v := range s.couriers {
		if v == nil {
			delete(c.couriers, id)
			continue
		}
		c.couriers[id] = v.Clone()
	}
}
