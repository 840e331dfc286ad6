package steps

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/andrescamacho/factory-planner/internal/application/planning/services"
	"github.com/andrescamacho/factory-planner/internal/domain/planning"
	"github.com/andrescamacho/factory-planner/internal/domain/production"
	"github.com/cucumber/godog"
)

type planningContext struct {
	buildings []production.Building
	recipes   []production.Recipe
	projects  []production.Project

	catalog      *production.Catalog
	requirements *production.Requirements

	constraints planning.FactoryConstraints
	result      *services.SolveResult
	err         error
}

func (pc *planningContext) reset() {
	pc.buildings = nil
	pc.recipes = nil
	pc.projects = nil
	pc.catalog = nil
	pc.requirements = nil
	pc.constraints = planning.NewFactoryConstraints(0, 0)
	pc.result = nil
	pc.err = nil
}

// Given steps

func (pc *planningContext) aBuildingUsingPower(name string, power float64) error {
	pc.buildings = append(pc.buildings, production.Building{Name: name, Power: power})
	return nil
}

func (pc *planningContext) aRecipeMadeInAtPerMinuteWithBuildSteps(name, building string, rate float64, steps int) error {
	pc.recipes = append(pc.recipes, production.Recipe{
		Name:       name,
		Produced:   1,
		Rate:       rate,
		Building:   building,
		BuildSteps: steps,
	})
	return nil
}

func (pc *planningContext) recipeNeedsPerBatch(name string, quantity float64, ingredient string) error {
	recipe, err := pc.findRecipe(name)
	if err != nil {
		return err
	}
	recipe.Ingredients = append(recipe.Ingredients, production.Ingredient{Name: ingredient, Quantity: quantity})
	return nil
}

func (pc *planningContext) recipeYieldsUnitsPerBatch(name string, produced float64) error {
	recipe, err := pc.findRecipe(name)
	if err != nil {
		return err
	}
	recipe.Produced = produced
	return nil
}

func (pc *planningContext) aProjectRequiring(name string, quantity float64, product string) error {
	for i := range pc.projects {
		if pc.projects[i].Name == name {
			pc.projects[i].Requirements = append(pc.projects[i].Requirements, production.Requirement{Name: product, Quantity: quantity})
			return nil
		}
	}
	pc.projects = append(pc.projects, production.Project{
		Name:         name,
		Requirements: []production.Requirement{{Name: product, Quantity: quantity}},
	})
	return nil
}

func (pc *planningContext) findRecipe(name string) (*production.Recipe, error) {
	for i := range pc.recipes {
		if pc.recipes[i].Name == name {
			return &pc.recipes[i], nil
		}
	}
	return nil, fmt.Errorf("recipe %s has not been defined", name)
}

// buildCatalog indexes the defined records once; later steps reuse the result
func (pc *planningContext) buildCatalog() error {
	if pc.catalog != nil {
		return nil
	}
	catalog, err := production.NewCatalog(pc.recipes, pc.projects, pc.buildings)
	if err != nil {
		return err
	}
	pc.catalog = catalog
	return nil
}

// When steps

func (pc *planningContext) iBuildTheCatalog() error {
	pc.err = pc.buildCatalog()
	return nil
}

func (pc *planningContext) iFlattenTheProject(name string) error {
	if err := pc.buildCatalog(); err != nil {
		pc.err = err
		return nil
	}
	project, err := pc.catalog.Project(name)
	if err != nil {
		pc.err = err
		return nil
	}
	pc.requirements, pc.err = production.FlattenProject(pc.catalog, project)
	return nil
}

// Then steps

func (pc *planningContext) theRequirementForShouldBe(product string, expected float64) error {
	if pc.err != nil {
		return fmt.Errorf("expected flattening to succeed, but got error: %v", pc.err)
	}
	if !pc.requirements.Has(product) {
		return fmt.Errorf("expected %s to be required, but it was not", product)
	}
	actual := pc.requirements.Quantity(product)
	if math.Abs(actual-expected) > 1e-9 {
		return fmt.Errorf("expected %s requirement %g, got %g", product, expected, actual)
	}
	return nil
}

func (pc *planningContext) theRequirementsShouldListProducts(count int) error {
	if pc.err != nil {
		return fmt.Errorf("expected flattening to succeed, but got error: %v", pc.err)
	}
	if pc.requirements.Len() != count {
		return fmt.Errorf("expected %d products, got %d (%v)", count, pc.requirements.Len(), pc.requirements.Products())
	}
	return nil
}

func (pc *planningContext) theRequirementsShouldBeOrdered(table *godog.Table) error {
	if pc.err != nil {
		return fmt.Errorf("expected flattening to succeed, but got error: %v", pc.err)
	}
	products := pc.requirements.Products()
	if len(products) != len(table.Rows) {
		return fmt.Errorf("expected %d products, got %v", len(table.Rows), products)
	}
	for i, row := range table.Rows {
		if products[i] != row.Cells[0].Value {
			return fmt.Errorf("expected product %d to be %s, got %s", i, row.Cells[0].Value, products[i])
		}
	}
	return nil
}

func (pc *planningContext) flatteningShouldFailWithACircularRecipeError() error {
	var circular *production.ErrCircularRecipe
	if !errors.As(pc.err, &circular) {
		return fmt.Errorf("expected a circular recipe error, got %v", pc.err)
	}
	return nil
}

func (pc *planningContext) theCatalogShouldBeRejectedWithAnUnknownProductError(product string) error {
	var unknown *production.ErrUnknownProduct
	if !errors.As(pc.err, &unknown) {
		return fmt.Errorf("expected an unknown product error, got %v", pc.err)
	}
	if unknown.Product != product {
		return fmt.Errorf("expected unknown product %s, got %s", product, unknown.Product)
	}
	return nil
}

func (pc *planningContext) theCatalogShouldBeRejectedWithAnUnknownBuildingError(building string) error {
	var unknown *production.ErrUnknownBuilding
	if !errors.As(pc.err, &unknown) {
		return fmt.Errorf("expected an unknown building error, got %v", pc.err)
	}
	if unknown.Building != building {
		return fmt.Errorf("expected unknown building %s, got %s", building, unknown.Building)
	}
	return nil
}

func InitializePlanningScenario(ctx *godog.ScenarioContext) {
	pc := &planningContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		pc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a building "([^"]*)" using ([0-9.]+) power$`, pc.aBuildingUsingPower)
	ctx.Step(`^a recipe "([^"]*)" made in "([^"]*)" at ([0-9.]+) per minute with (\d+) build steps?$`, pc.aRecipeMadeInAtPerMinuteWithBuildSteps)
	ctx.Step(`^recipe "([^"]*)" needs ([0-9.]+) "([^"]*)" per batch$`, pc.recipeNeedsPerBatch)
	ctx.Step(`^recipe "([^"]*)" yields ([0-9.]+) units per batch$`, pc.recipeYieldsUnitsPerBatch)
	ctx.Step(`^a project "([^"]*)" requiring ([0-9.]+) "([^"]*)"$`, pc.aProjectRequiring)
	ctx.Step(`^the conveyor speed is ([0-9.]+) per minute$`, pc.theConveyorSpeedIsPerMinute)
	ctx.Step(`^the time budget is (\d+) seconds$`, pc.theTimeBudgetIsSeconds)
	ctx.Step(`^at most (\d+) "([^"]*)" buildings? (?:is|are) allowed$`, pc.atMostBuildingsAreAllowed)

	// When steps
	ctx.Step(`^I build the catalog$`, pc.iBuildTheCatalog)
	ctx.Step(`^I flatten the project "([^"]*)"$`, pc.iFlattenTheProject)
	ctx.Step(`^I solve "([^"]*)" with the (\w+) solver$`, pc.iSolveWithTheSolver)

	// Then steps
	ctx.Step(`^the requirement for "([^"]*)" should be ([0-9.]+)$`, pc.theRequirementForShouldBe)
	ctx.Step(`^the requirements should list (\d+) products$`, pc.theRequirementsShouldListProducts)
	ctx.Step(`^the requirements should be ordered:$`, pc.theRequirementsShouldBeOrdered)
	ctx.Step(`^flattening should fail with a circular recipe error$`, pc.flatteningShouldFailWithACircularRecipeError)
	ctx.Step(`^the catalog should be rejected with an unknown product error for "([^"]*)"$`, pc.theCatalogShouldBeRejectedWithAnUnknownProductError)
	ctx.Step(`^the catalog should be rejected with an unknown building error for "([^"]*)"$`, pc.theCatalogShouldBeRejectedWithAnUnknownBuildingError)

	ctx.Step(`^the solve should succeed$`, pc.theSolveShouldSucceed)
	ctx.Step(`^the solve should fail because the time budget is missing$`, pc.theSolveShouldFailBecauseTheTimeBudgetIsMissing)
	ctx.Step(`^the solve should fail with an unknown solver error$`, pc.theSolveShouldFailWithAnUnknownSolverError)
	ctx.Step(`^the solver should have run (\d+) iterations?$`, pc.theSolverShouldHaveRunIterations)
	ctx.Step(`^the solver should have produced (\d+) solutions?$`, pc.theSolverShouldHaveProducedSolutions)
	ctx.Step(`^the best solution should assign (\d+) buildings? to "([^"]*)"$`, pc.theBestSolutionShouldAssignBuildingsTo)
	ctx.Step(`^the best solution total time should be (\d+) seconds$`, pc.theBestSolutionTotalTimeShouldBeSeconds)
	ctx.Step(`^the best solution handcrafting time should be (\d+) seconds$`, pc.theBestSolutionHandcraftingTimeShouldBeSeconds)
	ctx.Step(`^the best solution should handcraft "([^"]*)"$`, pc.theBestSolutionShouldHandcraft)
	ctx.Step(`^the total time should never increase between solutions$`, pc.theTotalTimeShouldNeverIncreaseBetweenSolutions)
	ctx.Step(`^every solution should keep handcrafting within the time budget$`, pc.everySolutionShouldKeepHandcraftingWithinTheTimeBudget)
	ctx.Step(`^each solution should use one building fewer than the previous one$`, pc.eachSolutionShouldUseOneBuildingFewerThanThePreviousOne)
}
