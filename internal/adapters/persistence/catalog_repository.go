package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/factory-planner/internal/domain/production"
)

// ingredientRecord is the JSON shape of an ingredient or requirement column entry
type ingredientRecord struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

// GormCatalogRepository implements CatalogRepository using GORM
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// Load reads every stored record and builds a validated catalog
func (r *GormCatalogRepository) Load(ctx context.Context) (*production.Catalog, error) {
	var buildingModels []BuildingModel
	if err := r.db.WithContext(ctx).Order("position").Find(&buildingModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load buildings: %w", err)
	}

	var recipeModels []RecipeModel
	if err := r.db.WithContext(ctx).Order("position").Find(&recipeModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}

	var projectModels []ProjectModel
	if err := r.db.WithContext(ctx).Order("position").Find(&projectModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	buildings := make([]production.Building, 0, len(buildingModels))
	for _, model := range buildingModels {
		buildings = append(buildings, production.Building{Name: model.Name, Power: model.Power})
	}

	recipes := make([]production.Recipe, 0, len(recipeModels))
	for i := range recipeModels {
		recipe, err := r.recipeModelToEntity(&recipeModels[i])
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}

	projects := make([]production.Project, 0, len(projectModels))
	for i := range projectModels {
		project, err := r.projectModelToEntity(&projectModels[i])
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return production.NewCatalog(recipes, projects, buildings)
}

// Replace swaps the stored catalog for the given one in a single transaction
func (r *GormCatalogRepository) Replace(ctx context.Context, catalog *production.Catalog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&ProjectModel{}, &RecipeModel{}, &BuildingModel{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear catalog: %w", err)
			}
		}

		for i, building := range catalog.Buildings() {
			model := &BuildingModel{Name: building.Name, Power: building.Power, Position: i}
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to store building %s: %w", building.Name, err)
			}
		}

		for i, recipe := range catalog.Recipes() {
			model, err := r.recipeEntityToModel(recipe, i)
			if err != nil {
				return err
			}
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to store recipe %s: %w", recipe.Name, err)
			}
		}

		for i, project := range catalog.Projects() {
			model, err := r.projectEntityToModel(project, i)
			if err != nil {
				return err
			}
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to store project %s: %w", project.Name, err)
			}
		}

		return nil
	})
}

// recipeEntityToModel converts a recipe to its database model
func (r *GormCatalogRepository) recipeEntityToModel(recipe production.Recipe, position int) (*RecipeModel, error) {
	records := make([]ingredientRecord, 0, len(recipe.Ingredients))
	for _, ingredient := range recipe.Ingredients {
		records = append(records, ingredientRecord{Name: ingredient.Name, Quantity: ingredient.Quantity})
	}
	ingredientsJSON, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ingredients of %s: %w", recipe.Name, err)
	}

	return &RecipeModel{
		Name:        recipe.Name,
		Ingredients: string(ingredientsJSON),
		Produced:    recipe.Produced,
		Rate:        recipe.Rate,
		Building:    recipe.Building,
		BuildSteps:  recipe.BuildSteps,
		Position:    position,
	}, nil
}

// recipeModelToEntity converts a database model to a recipe
func (r *GormCatalogRepository) recipeModelToEntity(model *RecipeModel) (production.Recipe, error) {
	var records []ingredientRecord
	if model.Ingredients != "" && model.Ingredients != "null" {
		if err := json.Unmarshal([]byte(model.Ingredients), &records); err != nil {
			return production.Recipe{}, fmt.Errorf("failed to unmarshal ingredients of %s: %w", model.Name, err)
		}
	}

	ingredients := make([]production.Ingredient, 0, len(records))
	for _, record := range records {
		ingredients = append(ingredients, production.Ingredient{Name: record.Name, Quantity: record.Quantity})
	}

	return production.Recipe{
		Name:        model.Name,
		Ingredients: ingredients,
		Produced:    model.Produced,
		Rate:        model.Rate,
		Building:    model.Building,
		BuildSteps:  model.BuildSteps,
	}, nil
}

// projectEntityToModel converts a project to its database model
func (r *GormCatalogRepository) projectEntityToModel(project production.Project, position int) (*ProjectModel, error) {
	records := make([]ingredientRecord, 0, len(project.Requirements))
	for _, req := range project.Requirements {
		records = append(records, ingredientRecord{Name: req.Name, Quantity: req.Quantity})
	}
	requirementsJSON, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal requirements of %s: %w", project.Name, err)
	}

	return &ProjectModel{
		Name:         project.Name,
		Requirements: string(requirementsJSON),
		Position:     position,
	}, nil
}

// projectModelToEntity converts a database model to a project
func (r *GormCatalogRepository) projectModelToEntity(model *ProjectModel) (production.Project, error) {
	var records []ingredientRecord
	if model.Requirements != "" && model.Requirements != "null" {
		if err := json.Unmarshal([]byte(model.Requirements), &records); err != nil {
			return production.Project{}, fmt.Errorf("failed to unmarshal requirements of %s: %w", model.Name, err)
		}
	}

	requirements := make([]production.Requirement, 0, len(records))
	for _, record := range records {
		requirements = append(requirements, production.Requirement{Name: record.Name, Quantity: record.Quantity})
	}

	return production.Project{Name: model.Name, Requirements: requirements}, nil
}
