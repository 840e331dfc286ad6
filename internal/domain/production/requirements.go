package production

import (
	"math"
	"math/big"
)

// Requirements is the flattened demand of one or more projects:
// product name mapped to the total quantity needed.
//
// Products keep the order in which they were first demanded. Solvers iterate
// in this order, so it decides tie-breaks between equal candidates.
//
// Totals are summed as exact rationals and rounded once, so the result does
// not depend on the order in which contributions arrive.
type Requirements struct {
	order      []string
	sums       map[string]*big.Rat
	quantities map[string]float64
}

// NewRequirements creates an empty demand set
func NewRequirements() *Requirements {
	return &Requirements{
		order:      make([]string, 0),
		sums:       make(map[string]*big.Rat),
		quantities: make(map[string]float64),
	}
}

// Add accumulates quantity for a product
func (r *Requirements) Add(product string, quantity float64) {
	sum, exists := r.sums[product]
	if !exists {
		r.order = append(r.order, product)
		sum = new(big.Rat)
		r.sums[product] = sum
	}

	exact := new(big.Rat).SetFloat64(quantity)
	if exact == nil {
		// NaN and infinities have no rational form
		r.quantities[product] += quantity
		return
	}
	sum.Add(sum, exact)
	if current := r.quantities[product]; math.IsNaN(current) || math.IsInf(current, 0) {
		return
	}
	r.quantities[product], _ = sum.Float64()
}

// Quantity returns the total demand for a product (0 if not demanded)
func (r *Requirements) Quantity(product string) float64 {
	return r.quantities[product]
}

// Has returns true if the product is part of the demand
func (r *Requirements) Has(product string) bool {
	_, ok := r.quantities[product]
	return ok
}

// Products returns product names in first-demand order
func (r *Requirements) Products() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of distinct products
func (r *Requirements) Len() int {
	return len(r.order)
}

// AsMap returns a copy of the demand as a plain map
func (r *Requirements) AsMap() map[string]float64 {
	result := make(map[string]float64, len(r.quantities))
	for k, v := range r.quantities {
		result[k] = v
	}
	return result
}
