package production

// expansionFrame is one pending product on the flattening stack
type expansionFrame struct {
	product  string
	quantity float64
	path     []string
}

// FlattenProject expands a project's root requirements into the total demand
// for every transitively required product.
//
// Each ingredient contributes batch_quantity * quantity / yield, and
// contributions from different consumers are summed. Expansion stops at
// recipes without ingredients. A product reappearing on its own ingredient
// path fails with ErrCircularRecipe.
func FlattenProject(catalog *Catalog, project *Project) (*Requirements, error) {
	requirements := NewRequirements()
	if err := flattenInto(catalog, project, requirements); err != nil {
		return nil, err
	}
	return requirements, nil
}

// FlattenProjects merges the demand of several projects into one Requirements value
func FlattenProjects(catalog *Catalog, projectNames ...string) (*Requirements, error) {
	requirements := NewRequirements()
	for _, name := range projectNames {
		project, err := catalog.Project(name)
		if err != nil {
			return nil, err
		}
		if err := flattenInto(catalog, project, requirements); err != nil {
			return nil, err
		}
	}
	return requirements, nil
}

func flattenInto(catalog *Catalog, project *Project, requirements *Requirements) error {
	for _, root := range project.Requirements {
		if err := expand(catalog, root.Name, root.Quantity, requirements); err != nil {
			return err
		}
	}
	return nil
}

// expand walks the ingredient tree depth-first with an explicit stack.
// Children are pushed in reverse so products are recorded in recipe order.
func expand(catalog *Catalog, product string, quantity float64, requirements *Requirements) error {
	stack := []expansionFrame{{product: product, quantity: quantity}}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, ancestor := range frame.path {
			if ancestor == frame.product {
				chain := append(append([]string(nil), frame.path...), frame.product)
				return &ErrCircularRecipe{Product: frame.product, Chain: chain}
			}
		}

		recipe, err := catalog.Recipe(frame.product)
		if err != nil {
			return err
		}

		requirements.Add(frame.product, frame.quantity)

		if recipe.IsLeaf() {
			continue
		}

		childPath := append(append(make([]string, 0, len(frame.path)+1), frame.path...), frame.product)
		yield := recipe.Yield()
		for i := len(recipe.Ingredients) - 1; i >= 0; i-- {
			ingredient := recipe.Ingredients[i]
			stack = append(stack, expansionFrame{
				product:  ingredient.Name,
				quantity: ingredient.Quantity * frame.quantity / yield,
				path:     childPath,
			})
		}
	}

	return nil
}
