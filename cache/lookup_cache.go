package lookup_cache

import (
	"sync"
	"time"

	"github.com/Fletushka-Katalog/fletushka-gateway/models"
)

const TTL = 5 * time.Minute

// ── Category lookup cache ────────────────────────────────────────────────────
// Stores the unfiltered category list fetched from the backend. Filtered or
// paginated listings always go upstream; only the plain lookup is cached.

type categoryEntry struct {
	data      []models.Category
	fetchedAt time.Time
}

var (
	categoryMu    sync.RWMutex
	categoryCache *categoryEntry
)

func GetCategories() ([]models.Category, bool) {
	categoryMu.RLock()
	defer categoryMu.RUnlock()
	if categoryCache != nil && time.Since(categoryCache.fetchedAt) < TTL {
		return categoryCache.data, true
	}
	return nil, false
}

func SetCategories(data []models.Category) {
	categoryMu.Lock()
	defer categoryMu.Unlock()
	categoryCache = &categoryEntry{data: data, fetchedAt: time.Now()}
}

// ── Brand lookup cache ───────────────────────────────────────────────────────

type brandEntry struct {
	data      []models.Brand
	fetchedAt time.Time
}

var (
	brandMu    sync.RWMutex
	brandCache *brandEntry
)

func GetBrands() ([]models.Brand, bool) {
	brandMu.RLock()
	defer brandMu.RUnlock()
	if brandCache != nil && time.Since(brandCache.fetchedAt) < TTL {
		return brandCache.data, true
	}
	return nil, false
}

func SetBrands(data []models.Brand) {
	brandMu.Lock()
	defer brandMu.Unlock()
	brandCache = &brandEntry{data: data, fetchedAt: time.Now()}
}

// ── Invalidation (call on any category/brand mutation) ───────────────────────

func InvalidateCategories() {
	categoryMu.Lock()
	categoryCache = nil
	categoryMu.Unlock()
}

func InvalidateBrands() {
	brandMu.Lock()
	brandCache = nil
	brandMu.Unlock()
}
