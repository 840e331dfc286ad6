package api

import (
	"time"

	"github.com/andrescamacho/factory-planner/internal/application/planning/types"
	"github.com/andrescamacho/factory-planner/internal/domain/planning"
	"github.com/andrescamacho/factory-planner/internal/domain/production"
	"github.com/andrescamacho/factory-planner/internal/infrastructure/config"
	"github.com/andrescamacho/factory-planner/pkg/utils"
)

// ConstraintsRequest overrides the configured solve constraints
type ConstraintsRequest struct {
	Solver        string         `json:"solver" binding:"omitempty,oneof=incremental downshift"`
	ConveyorSpeed *float64       `json:"conveyor_speed" binding:"omitempty,gt=0"`
	MaxTime       *int           `json:"max_time" binding:"omitempty,min=0"`
	CostBuilding  string         `json:"cost_building"`
	MaxBuildings  map[string]int `json:"max_buildings"`
	Persist       bool           `json:"persist"`
}

func (r ConstraintsRequest) solverOr(fallback string) string {
	if r.Solver != "" {
		return r.Solver
	}
	return fallback
}

func (r ConstraintsRequest) constraints(defaults config.SolverConfig) planning.FactoryConstraints {
	constraints := defaults.Constraints()
	if r.ConveyorSpeed != nil {
		constraints.ConveyorSpeed = *r.ConveyorSpeed
	}
	if r.MaxTime != nil {
		constraints.MaxTime = *r.MaxTime
	}
	if r.CostBuilding != "" {
		constraints.CostBuilding = r.CostBuilding
	}
	for product, limit := range r.MaxBuildings {
		constraints.MaxBuildings[product] = limit
	}
	return constraints
}

// SolveRequest is the body of POST /api/v1/projects/:name/solve
type SolveRequest struct {
	ConstraintsRequest
	// AllSolutions includes every intermediate solution, not only milestones
	AllSolutions bool `json:"all_solutions"`
}

// AnalyzeRequest is the body of POST /api/v1/analyze
type AnalyzeRequest struct {
	ConstraintsRequest
	Projects []string `json:"projects"`
}

// QuantityDTO is one product quantity
type QuantityDTO struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

// ProjectDTO describes one project
type ProjectDTO struct {
	Name         string        `json:"name"`
	Requirements []QuantityDTO `json:"requirements"`
}

// RequirementsDTO is the flattened demand of a project
type RequirementsDTO struct {
	Project      string        `json:"project"`
	Requirements []QuantityDTO `json:"requirements"`
}

// LaneDTO is the assignment of one product in a solution
type LaneDTO struct {
	Product                string  `json:"product"`
	Machines               int     `json:"machines"`
	AutomationTime         int     `json:"automation_time,omitempty"`
	AutomationProduction   float64 `json:"automation_production,omitempty"`
	HandcraftingTime       int     `json:"handcrafting_time,omitempty"`
	HandcraftingProduction float64 `json:"handcrafting_production,omitempty"`
}

// SolutionDTO is one solution of a sequence
type SolutionDTO struct {
	Name              string    `json:"name"`
	TotalTime         int       `json:"total_time"`
	TotalTimeText     string    `json:"total_time_text"`
	AutomationTime    int       `json:"automation_time"`
	HandcraftingTime  int       `json:"handcrafting_time"`
	MachineCount      int       `json:"machine_count"`
	CostCount         int       `json:"cost_count"`
	HandcraftingOrder []string  `json:"handcrafting_order"`
	Lanes             []LaneDTO `json:"lanes"`
}

// SolveDTO is the result of one solve
type SolveDTO struct {
	RunID        string        `json:"run_id,omitempty"`
	Project      string        `json:"project"`
	Solver       string        `json:"solver"`
	Iterations   int           `json:"iterations"`
	Candidates   int           `json:"candidates"`
	DurationMs   int64         `json:"duration_ms"`
	Requirements []QuantityDTO `json:"requirements"`
	Best         *SolutionDTO  `json:"best"`
	Milestones   []SolutionDTO `json:"milestones"`
	Solutions    []SolutionDTO `json:"solutions,omitempty"`
}

// PowerDTO is a power report
type PowerDTO struct {
	Energy  int `json:"energy"`
	Biofuel int `json:"biofuel"`
	Biomass int `json:"biomass"`
	Wood    int `json:"wood"`
	Leaves  int `json:"leaves"`
}

// AnalyzeDTO is the result of a multi-project analysis
type AnalyzeDTO struct {
	Results []SolveDTO `json:"results"`
	Power   PowerDTO   `json:"power"`
}

// SolveRunDTO is one recorded solve
type SolveRunDTO struct {
	ID               string         `json:"id"`
	Project          string         `json:"project"`
	Solver           string         `json:"solver"`
	ConveyorSpeed    float64        `json:"conveyor_speed"`
	MaxTime          int            `json:"max_time"`
	SolutionCount    int            `json:"solution_count"`
	TotalTime        int            `json:"total_time"`
	HandcraftingTime int            `json:"handcrafting_time"`
	MachineCount     int            `json:"machine_count"`
	CostCount        int            `json:"cost_count"`
	Machines         map[string]int `json:"machines"`
	CreatedAt        time.Time      `json:"created_at"`
}

func toProjectDTO(project types.ProjectSummary) ProjectDTO {
	requirements := make([]QuantityDTO, 0, len(project.Requirements))
	for _, req := range project.Requirements {
		requirements = append(requirements, QuantityDTO{Name: req.Name, Quantity: req.Quantity})
	}
	return ProjectDTO{Name: project.Name, Requirements: requirements}
}

func toQuantityDTOs(requirements *production.Requirements) []QuantityDTO {
	result := make([]QuantityDTO, 0, requirements.Len())
	for _, product := range requirements.Products() {
		result = append(result, QuantityDTO{Name: product, Quantity: requirements.Quantity(product)})
	}
	return result
}

func toSolutionDTO(solution *planning.FactorySolution, products []string) SolutionDTO {
	dto := SolutionDTO{
		Name:              solution.Name,
		TotalTime:         solution.TotalTime,
		TotalTimeText:     utils.FormatSeconds(solution.TotalTime),
		AutomationTime:    solution.AutomationTime,
		HandcraftingTime:  solution.HandcraftingTime,
		MachineCount:      solution.MachineCount,
		CostCount:         solution.CostCount,
		HandcraftingOrder: append([]string{}, solution.HandcraftingOrder...),
		Lanes:             make([]LaneDTO, 0, len(products)),
	}
	for _, product := range products {
		dto.Lanes = append(dto.Lanes, LaneDTO{
			Product:                product,
			Machines:               solution.Machines[product],
			AutomationTime:         solution.AutomationTimes[product],
			AutomationProduction:   solution.AutomationProduction[product],
			HandcraftingTime:       solution.HandcraftingTimes[product],
			HandcraftingProduction: solution.HandcraftingProduction[product],
		})
	}
	return dto
}

func toSolveDTO(response *types.SolveProjectResponse, allSolutions bool) SolveDTO {
	products := response.Requirements.Products()
	dto := SolveDTO{
		RunID:        response.RunID,
		Project:      response.Project,
		Solver:       response.Solver,
		Iterations:   response.Iterations,
		Candidates:   response.Candidates,
		DurationMs:   response.Duration.Milliseconds(),
		Requirements: toQuantityDTOs(response.Requirements),
		Milestones:   make([]SolutionDTO, 0, len(response.Milestones)),
	}
	if best := response.Best(); best != nil {
		bestDTO := toSolutionDTO(best, products)
		dto.Best = &bestDTO
	}
	for _, milestone := range response.Milestones {
		dto.Milestones = append(dto.Milestones, toSolutionDTO(milestone, products))
	}
	if allSolutions {
		for _, solution := range response.Solutions {
			dto.Solutions = append(dto.Solutions, toSolutionDTO(solution, products))
		}
	}
	return dto
}

func toPowerDTO(report *production.PowerReport) PowerDTO {
	if report == nil {
		return PowerDTO{}
	}
	return PowerDTO{
		Energy:  report.Energy,
		Biofuel: report.Biofuel,
		Biomass: report.Biomass,
		Wood:    report.Wood,
		Leaves:  report.Leaves,
	}
}

func toSolveRunDTO(run *planning.SolveRun) SolveRunDTO {
	return SolveRunDTO{
		ID:               run.ID,
		Project:          run.Project,
		Solver:           run.Solver,
		ConveyorSpeed:    run.ConveyorSpeed,
		MaxTime:          run.MaxTime,
		SolutionCount:    run.SolutionCount,
		TotalTime:        run.TotalTime,
		HandcraftingTime: run.HandcraftingTime,
		MachineCount:     run.MachineCount,
		CostCount:        run.CostCount,
		Machines:         run.Machines,
		CreatedAt:        run.CreatedAt,
	}
}
