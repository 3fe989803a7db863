package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estore/internal/catalog"
	"estore/internal/services"
)

func TestCatalogServiceFeaturedIsFirstFour(t *testing.T) {
	svc := services.NewCatalogService(catalog.Products(), catalog.Categories())

	featured := svc.Featured(4)
	require.Len(t, featured, 4)
	all := catalog.Products()
	for i := range featured {
		assert.Equal(t, all[i].ID, featured[i].ID)
	}

	// Asking for more than exists is not an error.
	assert.Len(t, svc.Featured(1000), svc.Count())
}

func TestCatalogServiceCategoryBySlug(t *testing.T) {
	svc := services.NewCatalogService(catalog.Products(), catalog.Categories())

	c, ok := svc.CategoryBySlug("home-kitchen")
	require.True(t, ok)
	assert.Equal(t, "Home & Kitchen", c.Name)

	_, ok = svc.CategoryBySlug("no-such-slug")
	assert.False(t, ok)
}

func TestCatalogServiceGetAndAvailability(t *testing.T) {
	svc := services.NewCatalogService(catalog.Products(), catalog.Categories())

	p, ok := svc.Get("hdph-001")
	require.True(t, ok)
	assert.Equal(t, "Wireless Bluetooth Headphones", p.Name)

	a, found := svc.Availability("hdph-001")
	require.True(t, found)
	assert.Equal(t, "IN_STOCK", a.Status)
	assert.Equal(t, 50, a.Qty)

	_, found = svc.Availability("ghost")
	assert.False(t, found)

	_, ok = svc.Get("ghost")
	assert.False(t, ok)
}

func TestCatalogServiceQueryUsesSnapshot(t *testing.T) {
	svc := services.NewCatalogService(catalog.Products(), catalog.Categories())

	got := svc.Query(catalog.FilterSpec{Category: "Sports", Sort: catalog.SortPriceLow})
	require.Len(t, got, 2)
	assert.Equal(t, "yoga-001", got[0].ID)
	assert.Equal(t, "shoes-001", got[1].ID)
}
