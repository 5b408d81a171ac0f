package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"storefront/internal/domain"
)

// ProductMirror is a rendering cache of the catalog. The backend stays the
// source of truth: a refresh replaces the mirror wholesale.
//
// Every local write bumps the generation. A refresh takes a ticket when it
// starts and ReplaceAllAt drops it if a local write happened since, or if a
// refresh that started later was already applied.
type ProductMirror struct {
	mu          sync.RWMutex
	products    []domain.Product
	generation  uint64
	refreshSeq  uint64
	appliedSeq  uint64
	lastLocalID int
	now         func() time.Time
	p           persister
	log         *logrus.Logger
}

// RefreshTicket identifies one refresh: its start order and the generation
// it saw.
type RefreshTicket struct {
	Seq        uint64
	Generation uint64
}

func NewProductMirror(store domain.StateStore, logger *logrus.Logger) *ProductMirror {
	m := &ProductMirror{
		now: time.Now,
		p:   persister{store: store, key: keyProducts, log: logger},
		log: logger,
	}

	var persisted []domain.Product
	if m.p.load(&persisted) {
		m.products = uniqueByID(persisted, logger)
		logger.Infof("State: restored product mirror with %d products", len(m.products))
	} else {
		m.products = DefaultCatalog()
		logger.Infof("State: product mirror seeded with %d default products", len(m.products))
	}
	return m
}

// ReplaceAll drops every local entry in favour of products.
func (m *ProductMirror) ReplaceAll(products []domain.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replaceLocked(products)
}

func (m *ProductMirror) BeginRefresh() RefreshTicket {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshSeq++
	return RefreshTicket{Seq: m.refreshSeq, Generation: m.generation}
}

// ReplaceAllAt applies the refresh holding ticket. It returns false, leaving
// the mirror alone, when a local write or a later-started refresh got there
// first.
func (m *ProductMirror) ReplaceAllAt(ticket RefreshTicket, products []domain.Product) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ticket.Generation != m.generation {
		m.log.Warnf("State: discarding catalog refresh %d, the mirror was written since it started", ticket.Seq)
		return false
	}
	if ticket.Seq < m.appliedSeq {
		m.log.Warnf("State: discarding catalog refresh %d, refresh %d is newer", ticket.Seq, m.appliedSeq)
		return false
	}
	m.appliedSeq = ticket.Seq
	m.products = uniqueByID(products, m.log)
	m.persist()
	m.log.Infof("State: product mirror refreshed with %d products", len(m.products))
	return true
}

func (m *ProductMirror) replaceLocked(products []domain.Product) {
	m.products = uniqueByID(products, m.log)
	m.generation++
	m.persist()
	m.log.Infof("State: product mirror replaced with %d products", len(m.products))
}

// Add appends product. A zero or already used id is replaced with a local
// one taken from the millisecond clock, kept strictly increasing.
func (m *ProductMirror) Add(product domain.Product) domain.Product {
	m.mu.Lock()
	defer m.mu.Unlock()

	if product.ID <= 0 || m.indexOf(product.ID) >= 0 {
		product.ID = m.nextLocalID()
	}
	m.products = append(m.products, product)
	m.generation++
	m.persist()
	m.log.Infof("State: product %d '%s' added to mirror", product.ID, product.Title)
	return product
}

// Upsert stores a product the backend confirmed. Its id is kept and any
// entry already holding that id is overwritten. Only a product without an
// id gets a local one.
func (m *ProductMirror) Upsert(product domain.Product) domain.Product {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch i := m.indexOf(product.ID); {
	case product.ID <= 0:
		product.ID = m.nextLocalID()
		m.products = append(m.products, product)
	case i >= 0:
		m.products[i] = product
	default:
		m.products = append(m.products, product)
	}
	m.generation++
	m.persist()
	m.log.Infof("State: product %d '%s' stored in mirror", product.ID, product.Title)
	return product
}

func (m *ProductMirror) nextLocalID() int {
	id := int(m.now().UnixMilli())
	if id <= m.lastLocalID {
		id = m.lastLocalID + 1
	}
	for m.indexOf(id) >= 0 {
		id++
	}
	m.lastLocalID = id
	return id
}

func (m *ProductMirror) Update(id int, patch domain.ProductPatch) (domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return domain.Product{}, fmt.Errorf("product with id %d: %w", id, domain.ErrProductNotFound)
	}
	m.products[i] = patch.Apply(m.products[i])
	m.products[i].ID = id
	m.generation++
	m.persist()
	return m.products[i], nil
}

// Delete is idempotent; it reports whether anything was removed.
func (m *ProductMirror) Delete(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return false
	}
	m.products = append(m.products[:i], m.products[i+1:]...)
	m.generation++
	m.persist()
	m.log.Infof("State: product %d removed from mirror", id)
	return true
}

func (m *ProductMirror) SetStock(id, quantity int) (domain.Product, error) {
	if quantity < 0 {
		return domain.Product{}, domain.ErrNegativeStock
	}
	return m.Update(id, domain.ProductPatch{Stock: &quantity})
}

func (m *ProductMirror) Get(id int) (domain.Product, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i := m.indexOf(id)
	if i < 0 {
		return domain.Product{}, false
	}
	return m.products[i], true
}

func (m *ProductMirror) List() []domain.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Product, len(m.products))
	copy(out, m.products)
	return out
}

func (m *ProductMirror) ListByCategory(category domain.Category) []domain.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []domain.Product{}
	for _, p := range m.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (m *ProductMirror) indexOf(id int) int {
	for i, p := range m.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (m *ProductMirror) persist() {
	m.p.save(m.products)
}

func uniqueByID(products []domain.Product, logger *logrus.Logger) []domain.Product {
	seen := make(map[int]bool, len(products))
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if seen[p.ID] {
			logger.Warnf("State: duplicate product id %d dropped from mirror", p.ID)
			continue
		}
		seen[p.ID] = true
		out = append(out, p)
	}
	return out
}
