package catalogfile

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/andrescamacho/factory-planner/internal/domain/production"
)

type yamlQuantity struct {
	Name     string  `yaml:"name"`
	Quantity float64 `yaml:"quantity"`
}

type yamlRecipe struct {
	Name        string         `yaml:"name"`
	Ingredients []yamlQuantity `yaml:"ingredients"`
	Produced    float64        `yaml:"produced"`
	Rate        float64        `yaml:"rate"`
	Building    string         `yaml:"building"`
	BuildSteps  int            `yaml:"build_steps"`
}

type yamlProject struct {
	Name         string         `yaml:"name"`
	Requirements []yamlQuantity `yaml:"requirements"`
}

type yamlBuilding struct {
	Name  string  `yaml:"name"`
	Power float64 `yaml:"power"`
}

type yamlGameData struct {
	Recipes   []yamlRecipe   `yaml:"recipes"`
	Projects  []yamlProject  `yaml:"projects"`
	Buildings []yamlBuilding `yaml:"buildings"`
}

// ParseYAML builds a catalog from a YAML document with the same shape as the
// JSON game data. Unknown keys are rejected.
func ParseYAML(data []byte) (*production.Catalog, error) {
	var raw yamlGameData
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse game data: %w", err)
	}

	buildings := make([]production.Building, 0, len(raw.Buildings))
	for _, b := range raw.Buildings {
		buildings = append(buildings, production.Building{Name: b.Name, Power: b.Power})
	}

	recipes := make([]production.Recipe, 0, len(raw.Recipes))
	for _, r := range raw.Recipes {
		ingredients := make([]production.Ingredient, 0, len(r.Ingredients))
		for _, i := range r.Ingredients {
			ingredients = append(ingredients, production.Ingredient{Name: i.Name, Quantity: i.Quantity})
		}
		recipes = append(recipes, production.Recipe{
			Name:        r.Name,
			Ingredients: ingredients,
			Produced:    r.Produced,
			Rate:        r.Rate,
			Building:    r.Building,
			BuildSteps:  r.BuildSteps,
		})
	}

	projects := make([]production.Project, 0, len(raw.Projects))
	for _, p := range raw.Projects {
		requirements := make([]production.Requirement, 0, len(p.Requirements))
		for _, q := range p.Requirements {
			requirements = append(requirements, production.Requirement{Name: q.Name, Quantity: q.Quantity})
		}
		projects = append(projects, production.Project{Name: p.Name, Requirements: requirements})
	}

	return production.NewCatalog(recipes, projects, buildings)
}
