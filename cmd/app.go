package cmd

import (
	"fmt"
	"strings"

	"github.com/rantu/rantu-market/internal"
)

// app wires the shared stores the way the storefront pages consume them:
// constructed once per invocation, chat state backed by durable storage,
// catalog/cart/orders seeded in memory.
type app struct {
	paths   internal.DataPaths
	kv      internal.KVStore
	engine  *internal.ChatEngine
	catalog *internal.Catalog
	cart    *internal.Cart
	orders  *internal.Orders
	i18n    *internal.Translator
}

func newApp() (*app, error) {
	paths, err := internal.ResolveDataPaths(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}
	if err := paths.EnsureDataDir(); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	var kv internal.KVStore
	kv, err = internal.OpenSQLiteStore(paths.DatabasePath)
	if err != nil {
		// Chat still works for this run; it just won't survive it.
		internal.LogWarn("Local storage unavailable, continuing in memory: %v", err)
		kv = internal.NewMemoryStore()
	}

	translator, err := internal.NewTranslator(locale)
	if err != nil {
		kv.Close()
		return nil, fmt.Errorf("failed to load locale tables: %w", err)
	}

	catalog := internal.NewCatalog()
	cart := internal.NewCart()
	cart.SeedDemo(catalog)

	return &app{
		paths:   paths,
		kv:      kv,
		engine:  internal.NewChatEngine(internal.NewSessionStore(kv)),
		catalog: catalog,
		cart:    cart,
		orders:  internal.NewOrders(),
		i18n:    translator,
	}, nil
}

func (a *app) Close() {
	if err := a.kv.Close(); err != nil {
		internal.LogWarn("Failed to close local storage: %v", err)
	}
}

// formatRupiah renders a price with dot thousands separators, e.g. "Rp 45.000"
func formatRupiah(amount int64) string {
	digits := fmt.Sprintf("%d", amount)

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return "Rp " + strings.Join(groups, ".")
}
