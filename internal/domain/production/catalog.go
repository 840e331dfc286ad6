package production

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
)

// Catalog is the read-only lookup of recipes, projects and buildings.
//
// A Catalog is built once and never mutated, so the same instance may be
// shared by any number of concurrent solves.
type Catalog struct {
	recipes        map[string]*Recipe
	projects       map[string]*Project
	buildings      map[string]*Building
	projectOrder   []string
	recipeOrder    []string
	buildingsOrder []string
}

// NewCatalog validates and indexes the given records.
// Every ingredient and building reference must resolve inside the catalog.
func NewCatalog(recipes []Recipe, projects []Project, buildings []Building) (*Catalog, error) {
	validate := validator.New()

	c := &Catalog{
		recipes:   make(map[string]*Recipe, len(recipes)),
		projects:  make(map[string]*Project, len(projects)),
		buildings: make(map[string]*Building, len(buildings)),
	}

	for i := range buildings {
		b := buildings[i]
		if err := validate.Struct(b); err != nil {
			return nil, fmt.Errorf("building %q: %w", b.Name, err)
		}
		if _, exists := c.buildings[b.Name]; exists {
			return nil, &ErrDuplicateEntry{Kind: "building", Name: b.Name}
		}
		c.buildings[b.Name] = &b
		c.buildingsOrder = append(c.buildingsOrder, b.Name)
	}

	for i := range recipes {
		r := cloneRecipe(recipes[i])
		if err := validate.Struct(r); err != nil {
			return nil, &ErrInvalidRecipe{Product: r.Name, Reason: err.Error()}
		}
		if _, exists := c.recipes[r.Name]; exists {
			return nil, &ErrDuplicateEntry{Kind: "recipe", Name: r.Name}
		}
		if _, ok := c.buildings[r.Building]; !ok {
			return nil, &ErrUnknownBuilding{Building: r.Building, Product: r.Name}
		}
		c.recipes[r.Name] = r
		c.recipeOrder = append(c.recipeOrder, r.Name)
	}

	// References are checked after indexing so recipe order does not matter
	for _, name := range c.recipeOrder {
		for _, ingredient := range c.recipes[name].Ingredients {
			if _, ok := c.recipes[ingredient.Name]; !ok {
				return nil, &ErrUnknownProduct{Product: ingredient.Name}
			}
		}
	}

	for i := range projects {
		p := projects[i]
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("project %q: %w", p.Name, err)
		}
		if _, exists := c.projects[p.Name]; exists {
			return nil, &ErrDuplicateEntry{Kind: "project", Name: p.Name}
		}
		for _, req := range p.Requirements {
			if _, ok := c.recipes[req.Name]; !ok {
				return nil, &ErrUnknownProduct{Product: req.Name}
			}
		}
		p.Requirements = append([]Requirement(nil), p.Requirements...)
		c.projects[p.Name] = &p
		c.projectOrder = append(c.projectOrder, p.Name)
	}

	return c, nil
}

func cloneRecipe(r Recipe) *Recipe {
	r.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	return &r
}

// Recipe returns the recipe for a product. The result must not be modified.
func (c *Catalog) Recipe(product string) (*Recipe, error) {
	r, ok := c.recipes[product]
	if !ok {
		return nil, &ErrUnknownProduct{Product: product}
	}
	return r, nil
}

// Project returns a project by name. The result must not be modified.
func (c *Catalog) Project(name string) (*Project, error) {
	p, ok := c.projects[name]
	if !ok {
		return nil, &ErrUnknownProject{Project: name}
	}
	return p, nil
}

// Building returns a building by name. The result must not be modified.
func (c *Catalog) Building(name string) (*Building, error) {
	b, ok := c.buildings[name]
	if !ok {
		return nil, &ErrUnknownBuilding{Building: name}
	}
	return b, nil
}

// Recipes returns all recipes in load order
func (c *Catalog) Recipes() []Recipe {
	result := make([]Recipe, 0, len(c.recipeOrder))
	for _, name := range c.recipeOrder {
		result = append(result, *cloneRecipe(*c.recipes[name]))
	}
	return result
}

// Projects returns all projects in load order
func (c *Catalog) Projects() []Project {
	result := make([]Project, 0, len(c.projectOrder))
	for _, name := range c.projectOrder {
		p := *c.projects[name]
		p.Requirements = append([]Requirement(nil), p.Requirements...)
		result = append(result, p)
	}
	return result
}

// Buildings returns all buildings in load order
func (c *Catalog) Buildings() []Building {
	result := make([]Building, 0, len(c.buildingsOrder))
	for _, name := range c.buildingsOrder {
		result = append(result, *c.buildings[name])
	}
	return result
}

// ProjectNames returns the sorted project names
func (c *Catalog) ProjectNames() []string {
	names := append([]string(nil), c.projectOrder...)
	sort.Strings(names)
	return names
}
