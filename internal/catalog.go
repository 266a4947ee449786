package internal

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Catalog is the shared product store. Constructed once at startup, seeded
// with the demo inventory, and mutated only through its methods.
type Catalog struct {
	mu       sync.RWMutex
	products []Product
}

// NewCatalog creates a catalog seeded with the demo inventory
func NewCatalog() *Catalog {
	return &Catalog{products: seedProducts()}
}

// NewProduct builds a product with a fresh id
func NewProduct(name, farm string, price int64, unit string) Product {
	return Product{
		ID:    uuid.NewString(),
		Name:  name,
		Farm:  farm,
		Price: price,
		Unit:  unit,
	}
}

// Add prepends a product so the newest listing shows first
func (c *Catalog) Add(p Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append([]Product{p}, c.products...)
}

// Update applies mutate to the product with the given id
func (c *Catalog) Update(id string, mutate func(*Product)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == id {
			mutate(&c.products[i])
			return nil
		}
	}
	return &CatalogError{ProductID: id, Op: "update", Err: fmt.Errorf("product not found")}
}

// Delete removes the product with the given id
func (c *Catalog) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return nil
		}
	}
	return &CatalogError{ProductID: id, Op: "delete", Err: fmt.Errorf("product not found")}
}

// Get returns the product with the given id
func (c *Catalog) Get(id string) (Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// List returns a copy of the catalog in display order
func (c *Catalog) List() []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func seedProducts() []Product {
	return []Product{
		{
			ID: "p-001", Name: "Cabai Merah Keriting", Farm: "Tani Makmur",
			Price: 45000, Unit: "kg", Image: "products/cabai-merah.jpg",
			Rating: 4.8, Reviews: 124, Tags: []string{"Segar", "Grade A"},
			Description: "Cabai merah keriting dipanen subuh, langsung dari kebun di Muaro Jambi.",
		},
		{
			ID: "p-002", Name: "Bawang Merah Brebes", Farm: "Berkah Tani",
			Price: 32000, Unit: "kg", Image: "products/bawang-merah.jpg",
			Rating: 4.6, Reviews: 89, Tags: []string{"Bumbu Dapur"},
			Description: "Bawang merah kualitas super, kering dan tahan simpan.",
		},
		{
			ID: "p-003", Name: "Bayam Segar", Farm: "Kebun Hijau Jambi",
			Price: 2500, Unit: "ikat", Image: "products/bayam.jpg",
			Rating: 4.9, Reviews: 210, Tags: []string{"Segar", "Organik"},
			Description: "Bayam hijau organik, dipanen setiap pagi.",
		},
		{
			ID: "p-004", Name: "Tomat Sayur", Farm: "Tani Makmur",
			Price: 8000, Unit: "kg", Image: "products/tomat.jpg",
			Rating: 4.5, Reviews: 67, Tags: []string{"Segar"},
			Description: "Tomat sayur merah merata, cocok untuk masakan harian.",
		},
		{
			ID: "p-005", Name: "Wortel Berastagi", Farm: "Sumber Rejeki",
			Price: 12000, Unit: "kg", Image: "products/wortel.jpg",
			Rating: 4.7, Reviews: 98, Tags: []string{"Grade A"},
			Description: "Wortel Berastagi manis dan renyah.",
		},
		{
			ID: "p-006", Name: "Beras Premium Jambi", Farm: "Lumbung Padi",
			Price: 14000, Unit: "kg", Image: "products/beras.jpg",
			Rating: 4.8, Reviews: 153, Tags: []string{"Premium"},
			Description: "Beras pulen hasil panen terbaru dari sentra padi Jambi.",
		},
	}
}
