package catalog

// Product satın alınabilir bir kredi paketi.
type Product struct {
	ID         string
	Name       string
	Credits    int
	PriceCents int64
}

// Catalog productID → kredi eşlemesi. Immutable: servislere inject edilir,
// global state yok.
type Catalog struct {
	products map[string]Product
}

func New(products ...Product) *Catalog {
	m := make(map[string]Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &Catalog{products: m}
}

// Default production kataloğu.
func Default() *Catalog {
	return New(
		Product{ID: "pkg.credits10", Name: "10 Credits", Credits: 10, PriceCents: 499},
		Product{ID: "pkg.credits50", Name: "50 Credits", Credits: 50, PriceCents: 1999},
		Product{ID: "pkg.credits100", Name: "100 Credits", Credits: 100, PriceCents: 3499},
	)
}

// Credits bilinmeyen ürün için 0 döner; workflow bunu hard validation
// failure olarak ele alır.
func (c *Catalog) Credits(productID string) int {
	return c.products[productID].Credits
}

func (c *Catalog) Get(productID string) (Product, bool) {
	p, ok := c.products[productID]
	return p, ok
}
