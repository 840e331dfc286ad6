package planning

import (
	"fmt"
	"math"

	"github.com/andrescamacho/factory-planner/internal/domain/production"
)

// FactorySolution is one candidate allocation of buildings and manual work.
//
// A solution is owned by the search iteration that created it. Exploring a
// mutation always starts from Clone, so candidates never share maps.
type FactorySolution struct {
	// Name labels the mutation that produced the solution (product or "Start")
	Name string

	Machines               map[string]int
	AutomationTimes        map[string]int
	AutomationProduction   map[string]float64
	HandcraftingTimes      map[string]int
	HandcraftingProduction map[string]float64

	// HandcraftingOrder is the order products were queued for the operator
	HandcraftingOrder []string

	// Derived aggregates, refreshed by ComputeDerivedValues
	AutomationTime   int
	HandcraftingTime int
	TotalTime        int
	MachineCount     int
	CostCount        int
}

// NewFactorySolution creates an empty solution
func NewFactorySolution(name string) *FactorySolution {
	return &FactorySolution{
		Name:                   name,
		Machines:               make(map[string]int),
		AutomationTimes:        make(map[string]int),
		AutomationProduction:   make(map[string]float64),
		HandcraftingTimes:      make(map[string]int),
		HandcraftingProduction: make(map[string]float64),
		HandcraftingOrder:      make([]string, 0),
	}
}

// Clone returns a deep, independent copy
func (s *FactorySolution) Clone() *FactorySolution {
	cpy := &FactorySolution{
		Name:                   s.Name,
		Machines:               make(map[string]int, len(s.Machines)),
		AutomationTimes:        make(map[string]int, len(s.AutomationTimes)),
		AutomationProduction:   make(map[string]float64, len(s.AutomationProduction)),
		HandcraftingTimes:      make(map[string]int, len(s.HandcraftingTimes)),
		HandcraftingProduction: make(map[string]float64, len(s.HandcraftingProduction)),
		HandcraftingOrder:      append(make([]string, 0, len(s.HandcraftingOrder)), s.HandcraftingOrder...),
		AutomationTime:         s.AutomationTime,
		HandcraftingTime:       s.HandcraftingTime,
		TotalTime:              s.TotalTime,
		MachineCount:           s.MachineCount,
		CostCount:              s.CostCount,
	}
	for k, v := range s.Machines {
		cpy.Machines[k] = v
	}
	for k, v := range s.AutomationTimes {
		cpy.AutomationTimes[k] = v
	}
	for k, v := range s.AutomationProduction {
		cpy.AutomationProduction[k] = v
	}
	for k, v := range s.HandcraftingTimes {
		cpy.HandcraftingTimes[k] = v
	}
	for k, v := range s.HandcraftingProduction {
		cpy.HandcraftingProduction[k] = v
	}
	return cpy
}

// EvaluateTimes recomputes every lane from the machine assignment alone.
// Products without machines are handcrafted in full, in demand order.
func (s *FactorySolution) EvaluateTimes(p *Problem) error {
	s.AutomationTimes = make(map[string]int)
	s.AutomationProduction = make(map[string]float64)
	s.HandcraftingTimes = make(map[string]int)
	s.HandcraftingProduction = make(map[string]float64)
	s.HandcraftingOrder = make([]string, 0)

	for _, product := range p.Products() {
		recipe, err := p.Recipe(product)
		if err != nil {
			return err
		}
		quantity := p.Requirements.Quantity(product)

		if time, ok := AutomationTime(s.Machines[product], p.Constraints.CappedRate(recipe), quantity); ok {
			s.AutomationTimes[product] = time
			s.AutomationProduction[product] = quantity
			continue
		}

		if !recipe.CanHandcraft() {
			return &production.ErrInvalidRecipe{Product: product, Reason: "no buildings assigned and no build steps for manual production"}
		}
		s.HandcraftingTimes[product] = HandcraftTime(recipe, quantity)
		s.HandcraftingProduction[product] = quantity
		s.HandcraftingOrder = append(s.HandcraftingOrder, product)
	}

	return s.ComputeDerivedValues(p)
}

// ComputeDerivedValues refreshes the aggregate times and building counts.
// Automated lanes run in parallel (max); manual work is serialized (sum).
func (s *FactorySolution) ComputeDerivedValues(p *Problem) error {
	s.AutomationTime = 0
	for _, t := range s.AutomationTimes {
		if t > s.AutomationTime {
			s.AutomationTime = t
		}
	}

	s.HandcraftingTime = 0
	for _, t := range s.HandcraftingTimes {
		s.HandcraftingTime += t
	}

	s.TotalTime = s.AutomationTime
	if s.HandcraftingTime > s.TotalTime {
		s.TotalTime = s.HandcraftingTime
	}

	s.MachineCount = 0
	s.CostCount = 0
	for product, count := range s.Machines {
		s.MachineCount += count
		recipe, err := p.Recipe(product)
		if err != nil {
			return err
		}
		if recipe.Building == p.Constraints.CostBuilding {
			s.CostCount += count
		}
	}

	return nil
}

// IsBlocker returns true if the product's automated lane sets the total time
func (s *FactorySolution) IsBlocker(product string) bool {
	t, ok := s.AutomationTimes[product]
	return ok && t == s.TotalTime
}

// Blockers returns the bottleneck products in demand order
func (s *FactorySolution) Blockers(p *Problem) []string {
	blockers := make([]string, 0)
	for _, product := range p.Products() {
		if s.IsBlocker(product) {
			blockers = append(blockers, product)
		}
	}
	return blockers
}

// IsHandcrafted returns true if the operator spends time on the product
func (s *FactorySolution) IsHandcrafted(product string) bool {
	return s.HandcraftingTimes[product] > 0
}

// AllocateRemainingHandcrafting spends idle operator time on one product.
//
// The operator starts on the product after finishing the current manual queue
// while the product's buildings keep running. The manual share is the time at
// which both lanes together meet the demand. Returns false when the product
// is not eligible or nothing is left to produce.
func (s *FactorySolution) AllocateRemainingHandcrafting(p *Problem, product string) (bool, error) {
	recipe, err := p.Recipe(product)
	if err != nil {
		return false, err
	}

	leftover := s.AutomationTime - s.HandcraftingTime
	if leftover <= 0 || !recipe.CanHandcraft() || s.IsHandcrafted(product) {
		return false, nil
	}

	machines := s.Machines[product]
	rate := p.Constraints.CappedRate(recipe)
	alreadyProduced := AutomatedOutput(s.HandcraftingTime, machines, rate)
	toProduce := p.Requirements.Quantity(product) - alreadyProduced
	if toProduce <= 0 {
		return false, nil
	}

	handcraftTime := CombinedLaneTime(recipe, machines, rate, toProduce)

	if machines > 0 {
		s.AutomationTimes[product] = s.HandcraftingTime + handcraftTime
		s.AutomationProduction[product] = math.Floor(alreadyProduced + float64(handcraftTime)/60.0*float64(machines)*rate)
	}
	s.HandcraftingTimes[product] = handcraftTime
	s.HandcraftingProduction[product] = HandcraftOutput(recipe, handcraftTime)
	s.HandcraftingOrder = append(s.HandcraftingOrder, product)

	return true, s.ComputeDerivedValues(p)
}

// RemoveMachine takes one building away from a product and shifts the
// shortfall at the time budget onto manual production.
func (s *FactorySolution) RemoveMachine(p *Problem, product string) error {
	if !p.Constraints.HasTimeBudget() {
		return ErrMissingTimeBudget
	}

	recipe, err := p.Recipe(product)
	if err != nil {
		return err
	}
	if !recipe.CanHandcraft() {
		return &production.ErrInvalidRecipe{Product: product, Reason: "no build steps for manual production"}
	}
	if s.Machines[product] <= 0 {
		return fmt.Errorf("no buildings assigned to %s", product)
	}

	budget := p.Constraints.MaxTime
	s.Name = product
	s.Machines[product]--
	machines := s.Machines[product]

	produced := AutomatedOutput(budget, machines, p.Constraints.CappedRate(recipe))
	if machines > 0 {
		s.AutomationTimes[product] = budget
	} else {
		delete(s.AutomationTimes, product)
	}
	s.AutomationProduction[product] = produced

	needed := math.Max(0, math.Ceil(p.Requirements.Quantity(product)-produced))
	s.HandcraftingTimes[product] = HandcraftTime(recipe, needed)
	s.HandcraftingProduction[product] = needed
	if needed > 0 && !containsProduct(s.HandcraftingOrder, product) {
		s.HandcraftingOrder = append(s.HandcraftingOrder, product)
	}

	return s.ComputeDerivedValues(p)
}

func containsProduct(products []string, product string) bool {
	for _, p := range products {
		if p == product {
			return true
		}
	}
	return false
}
