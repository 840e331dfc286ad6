package catalogfile

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/andrescamacho/factory-planner/internal/domain/production"
)

// ParseJSON builds a catalog from a game_data.json document:
//
//	{"recipes":   [{"name", "ingredients": [{"name", "quantity"}], "produced", "rate", "building", "build_steps"}],
//	 "projects":  [{"name", "requirements": [{"name", "quantity"}]}],
//	 "buildings": [{"name", "power"}]}
func ParseJSON(data []byte) (*production.Catalog, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("game data is not valid JSON")
	}
	doc := gjson.ParseBytes(data)

	var buildings []production.Building
	doc.Get("buildings").ForEach(func(_, v gjson.Result) bool {
		buildings = append(buildings, production.Building{
			Name:  v.Get("name").String(),
			Power: v.Get("power").Float(),
		})
		return true
	})

	var recipes []production.Recipe
	doc.Get("recipes").ForEach(func(_, v gjson.Result) bool {
		recipes = append(recipes, production.Recipe{
			Name:        v.Get("name").String(),
			Ingredients: readIngredients(v.Get("ingredients")),
			Produced:    v.Get("produced").Float(),
			Rate:        v.Get("rate").Float(),
			Building:    v.Get("building").String(),
			BuildSteps:  int(v.Get("build_steps").Int()),
		})
		return true
	})

	var projects []production.Project
	doc.Get("projects").ForEach(func(_, v gjson.Result) bool {
		var requirements []production.Requirement
		for _, ingredient := range readIngredients(v.Get("requirements")) {
			requirements = append(requirements, production.Requirement(ingredient))
		}
		projects = append(projects, production.Project{
			Name:         v.Get("name").String(),
			Requirements: requirements,
		})
		return true
	})

	return production.NewCatalog(recipes, projects, buildings)
}

func readIngredients(list gjson.Result) []production.Ingredient {
	var ingredients []production.Ingredient
	list.ForEach(func(_, m gjson.Result) bool {
		ingredients = append(ingredients, production.Ingredient{
			Name:     m.Get("name").String(),
			Quantity: m.Get("quantity").Float(),
		})
		return true
	})
	return ingredients
}
