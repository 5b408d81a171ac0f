package state

import (
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"storefront/internal/domain"
)

// CartStore is an ordered list of cart lines, one per product. It is not
// tied to the session: an anonymous cart is carried through login.
type CartStore struct {
	mu    sync.RWMutex
	lines []domain.CartLine
	p     persister
	log   *logrus.Logger
}

func NewCartStore(store domain.StateStore, logger *logrus.Logger) *CartStore {
	c := &CartStore{
		p:   persister{store: store, key: keyCart, log: logger},
		log: logger,
	}

	var persisted []domain.CartLine
	if c.p.load(&persisted) {
		if err := validateLines(persisted); err != nil {
			logger.Warnf("State: persisted cart is inconsistent, starting empty: %v", err)
		} else {
			c.lines = persisted
			logger.Infof("State: restored cart with %d lines", len(persisted))
		}
	}
	return c
}

func validateLines(lines []domain.CartLine) error {
	seen := make(map[int]bool, len(lines))
	for _, line := range lines {
		if line.Quantity < 1 {
			return domain.ErrValidation
		}
		if seen[line.ProductID] {
			return domain.ErrValidation
		}
		seen[line.ProductID] = true
	}
	return nil
}

// AddItem increments the line for the product or appends a new line with
// quantity 1. The snapshot fields are only read when the line is created.
func (c *CartStore) AddItem(snapshot domain.ProductSnapshot) domain.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(snapshot.ProductID); i >= 0 {
		c.lines[i].Quantity++
		c.persist()
		c.log.Debugf("State: cart product %d quantity now %d", snapshot.ProductID, c.lines[i].Quantity)
		return c.lines[i]
	}

	line := domain.CartLine{
		ProductID: snapshot.ProductID,
		Title:     snapshot.Title,
		Price:     snapshot.Price,
		Category:  snapshot.Category,
		Image:     snapshot.Image,
		Quantity:  1,
	}
	c.lines = append(c.lines, line)
	c.persist()
	c.log.Debugf("State: cart product %d added", snapshot.ProductID)
	return line
}

// UpdateQuantity sets the quantity of a line; zero or less removes it.
// It reports whether the product was in the cart.
func (c *CartStore) UpdateQuantity(productID, quantity int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	if quantity <= 0 {
		c.removeAt(i)
	} else {
		c.lines[i].Quantity = quantity
	}
	c.persist()
	return true
}

func (c *CartStore) RemoveItem(productID int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	c.removeAt(i)
	c.persist()
	return true
}

func (c *CartStore) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	c.persist()
	c.log.Info("State: cart cleared")
}

// RemoveOrdered takes the ordered quantities out of the cart. Lines added,
// or quantities raised, after the order was drawn up stay in the cart.
func (c *CartStore) RemoveOrdered(items []domain.OrderLine) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range items {
		i := c.indexOf(item.ProductID)
		if i < 0 {
			continue
		}
		if c.lines[i].Quantity <= item.Quantity {
			c.removeAt(i)
		} else {
			c.lines[i].Quantity -= item.Quantity
		}
	}
	c.persist()
	c.log.Infof("State: %d ordered line(s) removed from cart, %d line(s) left", len(items), len(c.lines))
}

func (c *CartStore) Lines() []domain.CartLine {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *CartStore) IsEmpty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.lines) == 0
}

func (c *CartStore) TotalItems() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

func (c *CartStore) TotalPrice() decimal.Decimal {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Summary reads lines and totals under one lock so they always agree.
func (c *CartStore) Summary() domain.CartSummary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	summary := domain.CartSummary{
		Lines:      make([]domain.CartLine, len(c.lines)),
		TotalPrice: decimal.Zero,
	}
	copy(summary.Lines, c.lines)
	for _, line := range c.lines {
		summary.TotalItems += line.Quantity
		summary.TotalPrice = summary.TotalPrice.Add(line.Subtotal())
	}
	return summary
}

func (c *CartStore) indexOf(productID int) int {
	for i, line := range c.lines {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}

func (c *CartStore) removeAt(i int) {
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

func (c *CartStore) persist() {
	c.p.save(c.lines)
}
