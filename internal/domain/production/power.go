package production

import "math"

// Fuel conversion factors used for power reports
const (
	BiofuelEnergyPerUnit = 450.0
	BiomassEnergyPerUnit = 180.0
	BiomassPerWood       = 5.0
	LeavesPerBiomass     = 2.0
)

// PowerReport summarizes the energy needed to automate a demand set
type PowerReport struct {
	Energy  int
	Biofuel int
	Biomass int
	Wood    int
	Leaves  int
}

// EnergyRequirement returns the total energy needed to produce every product
// in the demand with automated buildings: power * 60 * quantity / rate.
func EnergyRequirement(catalog *Catalog, requirements *Requirements) (float64, error) {
	energy := 0.0
	for _, product := range requirements.Products() {
		recipe, err := catalog.Recipe(product)
		if err != nil {
			return 0, err
		}
		building, err := catalog.Building(recipe.Building)
		if err != nil {
			return 0, &ErrUnknownBuilding{Building: recipe.Building, Product: product}
		}
		energy += building.Power * 60.0 * requirements.Quantity(product) / recipe.Rate
	}
	return energy, nil
}

// NewPowerReport computes the rounded energy requirement and fuel estimates
func NewPowerReport(catalog *Catalog, requirements *Requirements) (*PowerReport, error) {
	energy, err := EnergyRequirement(catalog, requirements)
	if err != nil {
		return nil, err
	}

	rounded := math.Ceil(energy)
	biomass := math.Ceil(rounded / BiomassEnergyPerUnit)

	return &PowerReport{
		Energy:  int(rounded),
		Biofuel: int(math.Ceil(rounded / BiofuelEnergyPerUnit)),
		Biomass: int(biomass),
		Wood:    int(math.Ceil(biomass / BiomassPerWood)),
		Leaves:  int(math.Ceil(biomass * LeavesPerBiomass)),
	}, nil
}
