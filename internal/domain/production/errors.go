package production

import (
	"fmt"
	"strings"
)

// Domain errors for catalog lookups and demand flattening

// ErrUnknownProduct indicates a product has no recipe in the catalog
type ErrUnknownProduct struct {
	Product string
}

func (e *ErrUnknownProduct) Error() string {
	return fmt.Sprintf("unknown product: %s (no recipe in catalog)", e.Product)
}

// ErrUnknownProject indicates a project name is not in the catalog
type ErrUnknownProject struct {
	Project string
}

func (e *ErrUnknownProject) Error() string {
	return fmt.Sprintf("unknown project: %s", e.Project)
}

// ErrUnknownBuilding indicates a recipe references a building that is not in the catalog
type ErrUnknownBuilding struct {
	Building string
	Product  string
}

func (e *ErrUnknownBuilding) Error() string {
	if e.Product == "" {
		return fmt.Sprintf("unknown building %s", e.Building)
	}
	return fmt.Sprintf("unknown building %s referenced by recipe %s", e.Building, e.Product)
}

// ErrCircularRecipe indicates a cycle was detected while expanding ingredients
type ErrCircularRecipe struct {
	Product string
	Chain   []string
}

func (e *ErrCircularRecipe) Error() string {
	return fmt.Sprintf("cyclic recipe detected for %s: %s", e.Product, strings.Join(e.Chain, " -> "))
}

// ErrInvalidRecipe indicates a recipe cannot serve the requested production mode
type ErrInvalidRecipe struct {
	Product string
	Reason  string
}

func (e *ErrInvalidRecipe) Error() string {
	return fmt.Sprintf("invalid recipe %s: %s", e.Product, e.Reason)
}

// ErrDuplicateEntry indicates two catalog records share a name
type ErrDuplicateEntry struct {
	Kind string
	Name string
}

func (e *ErrDuplicateEntry) Error() string {
	return fmt.Sprintf("duplicate %s: %s", e.Kind, e.Name)
}
