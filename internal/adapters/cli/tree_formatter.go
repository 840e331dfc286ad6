package cli

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/factory-planner/internal/domain/production"
)

// TreeFormatter renders the ingredient tree of a project
type TreeFormatter struct {
	useColors bool
}

// NewTreeFormatter creates a new tree formatter
func NewTreeFormatter(useColors bool) *TreeFormatter {
	return &TreeFormatter{useColors: useColors}
}

// FormatProject renders every root requirement of a project and its
// ingredients with the quantity needed for the project.
func (f *TreeFormatter) FormatProject(catalog *production.Catalog, project *production.Project) (string, error) {
	// Flattening first rejects cycles and unknown products before recursing
	if _, err := production.FlattenProject(catalog, project); err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString(project.Name + "\n")
	for i, req := range project.Requirements {
		isLast := i == len(project.Requirements)-1
		if err := f.formatNode(&builder, catalog, req.Name, req.Quantity, "", isLast); err != nil {
			return "", err
		}
	}
	return builder.String(), nil
}

// formatNode recursively formats a product and its ingredients
func (f *TreeFormatter) formatNode(builder *strings.Builder, catalog *production.Catalog, product string, quantity float64, prefix string, isLast bool) error {
	recipe, err := catalog.Recipe(product)
	if err != nil {
		return err
	}

	linePrefix := prefix + "├── "
	childPrefix := prefix + "│   "
	if isLast {
		linePrefix = prefix + "└── "
		childPrefix = prefix + "    "
	}

	fmt.Fprintf(builder, "%s%s %s [%s%s%s]%s\n",
		linePrefix,
		formatQuantity(quantity),
		product,
		f.buildingColor(recipe),
		recipe.Building,
		f.colorReset(),
		f.handcraftText(recipe),
	)

	for i, ingredient := range recipe.Ingredients {
		needed := ingredient.Quantity * quantity / recipe.Yield()
		if err := f.formatNode(builder, catalog, ingredient.Name, needed, childPrefix, i == len(recipe.Ingredients)-1); err != nil {
			return err
		}
	}
	return nil
}

// buildingColor returns the ANSI color for a recipe: yellow when it can be handcrafted
func (f *TreeFormatter) buildingColor(recipe *production.Recipe) string {
	if !f.useColors {
		return ""
	}
	if recipe.CanHandcraft() {
		return "\033[33m"
	}
	return "\033[32m"
}

func (f *TreeFormatter) handcraftText(recipe *production.Recipe) string {
	if !recipe.CanHandcraft() {
		return ""
	}
	return fmt.Sprintf(", hand %.1f/min", recipe.HandcraftRate())
}

// colorReset returns ANSI reset code
func (f *TreeFormatter) colorReset() string {
	if !f.useColors {
		return ""
	}
	return "\033[0m"
}

// formatQuantity prints whole quantities without decimals
func formatQuantity(quantity float64) string {
	if quantity == float64(int64(quantity)) {
		return fmt.Sprintf("%d", int64(quantity))
	}
	return fmt.Sprintf("%.2f", quantity)
}
