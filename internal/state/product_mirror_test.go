package state

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

func product(id int, title string) domain.Product {
	return domain.Product{
		ID:       id,
		Title:    title,
		Price:    decimal.NewFromInt(10),
		Category: domain.CategoryBags,
		Size:     domain.SizeSmall,
		Stock:    1,
	}
}

func TestProductMirror_SeededWithDefaults(t *testing.T) {
	mirror := NewProductMirror(repository.NewMemoryStateRepository(), testLogger())
	assert.Len(t, mirror.List(), len(DefaultCatalog()))
	assert.Len(t, mirror.ListByCategory(domain.CategoryShoes), 2)
}

func TestProductMirror_ReplaceAllIsNotAMerge(t *testing.T) {
	mirror := NewProductMirror(repository.NewMemoryStateRepository(), testLogger())
	mirror.ReplaceAll([]domain.Product{product(10, "a"), product(11, "b")})

	ids := []int{}
	for _, p := range mirror.List() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int{10, 11}, ids)
	_, ok := mirror.Get(1)
	assert.False(t, ok)
}

func TestProductMirror_ReplaceAllDropsDuplicateIDs(t *testing.T) {
	mirror := NewProductMirror(repository.NewMemoryStateRepository(), testLogger())
	mirror.ReplaceAll([]domain.Product{product(1, "first"), product(1, "second")})

	require.Len(t, mirror.List(), 1)
	p, _ := mirror.Get(1)
	assert.Equal(t, "first", p.Title)
}

func TestProductMirror_UpdateThenDeleteIsIdempotent(t *testing.T) {
	mirror := NewProductMirror(repository.NewMemoryStateRepository(), testLogger())
	mirror.ReplaceAll([]domain.Product{product(1, "a"), product(2, "b")})

	stock := 5
	updated, err := mirror.Update(1, domain.ProductPatch{Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Stock)
	assert.Equal(t, "a", updated.Title)

	assert.True(t, mirror.Delete(1))
	_, ok := mirror.Get(1)
	assert.False(t, ok)

	before := mirror.List()
	assert.False(t, mirror.Delete(1))
	assert.Equal(t, before, mirror.List())
}

func TestProductMirror_UpdateMissing(t *testing.T) {
	mirror := NewProductMirror(repository.NewMemoryStateRepository(), testLogger())
	title := "x"
	_, err := mirror.Update(999, domain.ProductPatch{Title: &title})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductMirror_SetStock(t *testing.T) {
	mirror := NewProductMirror(repository.NewMemoryStateRepository(), testLogger())

	p, err := mirror.SetStock(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock)

	_, err = mirror.SetStock(1, -1)
	assert.ErrorIs(t, err, domain.ErrNegativeStock)
	got, _ := mirror.Get(1)
	assert.Equal(t, 0, got.Stock)
}

func TestProductMirror_AddAssignsUniqueLocalIDs(t *testing.T) {
	mirror := NewProductMirror(repository.NewMemoryStateRepository(), testLogger())
	fixed := time.UnixMilli(1_700_000_000_000)
	mirror.now = func() time.Time { return fixed }

	first := mirror.Add(product(0, "new"))
	second := mirror.Add(product(0, "newer"))
	kept := mirror.Add(product(500, "server id"))
	clash := mirror.Add(product(500, "clash"))

	assert.Equal(t, 1_700_000_000_000, first.ID)
	assert.Equal(t, 1_700_000_000_001, second.ID)
	assert.Equal(t, 500, kept.ID)
	assert.NotEqual(t, 500, clash.ID)

	seen := map[int]bool{}
	for _, p := range mirror.List() {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}
}

func TestProductMirror_StaleRefreshDiscarded(t *testing.T) {
	mirror := NewProductMirror(repository.NewMemoryStateRepository(), testLogger())

	slow := mirror.BeginRefresh()
	fast := mirror.BeginRefresh()
	require.True(t, mirror.ReplaceAllAt(fast, []domain.Product{product(2, "fresh")}))

	assert.False(t, mirror.ReplaceAllAt(slow, []domain.Product{product(1, "stale")}))
	p, ok := mirror.Get(2)
	require.True(t, ok)
	assert.Equal(t, "fresh", p.Title)

	gen := mirror.BeginRefresh()
	mirror.Add(product(0, "admin created"))
	assert.False(t, mirror.ReplaceAllAt(gen, nil))
	assert.Len(t, mirror.List(), 2)
}

func TestProductMirror_OverlappingRefreshesApplyInStartOrder(t *testing.T) {
	mirror := NewProductMirror(repository.NewMemoryStateRepository(), testLogger())

	first := mirror.BeginRefresh()
	second := mirror.BeginRefresh()
	require.True(t, mirror.ReplaceAllAt(first, []domain.Product{product(1, "older")}))
	require.True(t, mirror.ReplaceAllAt(second, []domain.Product{product(1, "newer")}))

	p, ok := mirror.Get(1)
	require.True(t, ok)
	assert.Equal(t, "newer", p.Title)
}

func TestProductMirror_UpsertKeepsServerID(t *testing.T) {
	mirror := NewProductMirror(repository.NewMemoryStateRepository(), testLogger())
	mirror.now = func() time.Time { return time.UnixMilli(1_700_000_000_000) }
	before := len(mirror.List())

	stored := mirror.Upsert(product(3, "server version"))
	assert.Equal(t, 3, stored.ID)
	assert.Len(t, mirror.List(), before)
	p, ok := mirror.Get(3)
	require.True(t, ok)
	assert.Equal(t, "server version", p.Title)

	appended := mirror.Upsert(product(42, "new on server"))
	assert.Equal(t, 42, appended.ID)
	local := mirror.Upsert(product(0, "no id"))
	assert.Equal(t, 1_700_000_000_000, local.ID)
	assert.Len(t, mirror.List(), before+2)
}

func TestProductMirror_PersistsAcrossReload(t *testing.T) {
	store := repository.NewMemoryStateRepository()
	mirror := NewProductMirror(store, testLogger())
	mirror.ReplaceAll([]domain.Product{})

	reloaded := NewProductMirror(store, testLogger())
	assert.Empty(t, reloaded.List())

	mirror.ReplaceAll([]domain.Product{product(3, "c")})
	reloaded = NewProductMirror(store, testLogger())
	require.Len(t, reloaded.List(), 1)
	assert.Equal(t, "c", reloaded.List()[0].Title)
}
