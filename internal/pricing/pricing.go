package pricing

import "errors"

// ErrUnknownOption is returned when an option is not in the catalog. Upstream
// field validation makes this unreachable in practice.
var ErrUnknownOption = errors.New("unknown option")

// Fulfilment options offered on the form. Closed set, fixed at build time.
const (
	OptionOnePlate  = "one-plate"
	OptionTwoLitres = "two-litres"
)

// Catalog maps a fulfilment option to its unit price in whole pounds.
type Catalog map[string]int

// DefaultCatalog returns the current menu.
func DefaultCatalog() Catalog {
	return Catalog{
		OptionOnePlate:  7,
		OptionTwoLitres: 32,
	}
}

// Calculator derives order totals from the catalog.
type Calculator struct {
	catalog Catalog
}

// NewCalculator creates a calculator over the given catalog.
func NewCalculator(catalog Catalog) *Calculator {
	return &Calculator{
		catalog: catalog,
	}
}

// ComputeTotal returns unit price times quantity for the chosen option.
// Amounts are whole pounds, so plain integer arithmetic is exact.
func (c *Calculator) ComputeTotal(option string, quantity int) (int, error) {
	unitPrice, ok := c.catalog[option]
	if !ok {
		return 0, ErrUnknownOption
	}
	return unitPrice * quantity, nil
}
