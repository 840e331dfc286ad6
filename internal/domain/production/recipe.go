package production

// HandcraftSecondsPerStep is the time one manual build step takes.
// It is a calibration constant of the game, not derived from anything else.
const HandcraftSecondsPerStep = 0.45

// Ingredient is one input of a recipe batch
type Ingredient struct {
	Name     string  `validate:"required"`
	Quantity float64 `validate:"gt=0"`
}

// Recipe is the conversion rule producing one batch of a product.
//
// Rate is the number of units one automated building produces per minute.
// BuildSteps is the number of manual build steps for one batch; zero means
// the product cannot be produced by hand.
type Recipe struct {
	Name        string       `validate:"required"`
	Ingredients []Ingredient `validate:"dive"`
	Produced    float64      `validate:"gte=0"`
	Rate        float64      `validate:"gt=0"`
	Building    string       `validate:"required"`
	BuildSteps  int          `validate:"gte=0"`
}

// Yield returns the units produced per batch (defaults to 1)
func (r *Recipe) Yield() float64 {
	if r.Produced <= 0 {
		return 1
	}
	return r.Produced
}

// IsLeaf returns true if the recipe has no ingredients to expand
func (r *Recipe) IsLeaf() bool {
	return len(r.Ingredients) == 0
}

// CanHandcraft returns true if the product may be produced manually
func (r *Recipe) CanHandcraft() bool {
	return r.BuildSteps > 0
}

// HandcraftRate returns units produced per minute by one operator
func (r *Recipe) HandcraftRate() float64 {
	if !r.CanHandcraft() {
		return 0
	}
	return r.Yield() * 60.0 / (HandcraftSecondsPerStep * float64(r.BuildSteps))
}

// HandcraftingEfficiency is the ratio of manual to automated throughput.
// Products that cannot be handcrafted have zero efficiency.
func (r *Recipe) HandcraftingEfficiency() float64 {
	if !r.CanHandcraft() || r.Rate <= 0 {
		return 0
	}
	return r.HandcraftRate() / r.Rate
}

// Building is a production building type
type Building struct {
	Name  string  `validate:"required"`
	Power float64 `validate:"gte=0"`
}

// Requirement is one root demand of a project
type Requirement struct {
	Name     string  `validate:"required"`
	Quantity float64 `validate:"gt=0"`
}

// Project is a named list of root requirements
type Project struct {
	Name         string        `validate:"required"`
	Requirements []Requirement `validate:"dive"`
}
