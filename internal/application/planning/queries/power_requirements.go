package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/factory-planner/internal/application/common"
	"github.com/andrescamacho/factory-planner/internal/application/planning/types"
	"github.com/andrescamacho/factory-planner/internal/domain/production"
)

// Type aliases for convenience
type (
	PowerRequirementsQuery    = types.PowerRequirementsQuery
	PowerRequirementsResponse = types.PowerRequirementsResponse
)

// PowerRequirementsHandler handles the PowerRequirements query
type PowerRequirementsHandler struct {
	catalogs production.CatalogSource
}

// NewPowerRequirementsHandler creates a new PowerRequirementsHandler
func NewPowerRequirementsHandler(catalogs production.CatalogSource) *PowerRequirementsHandler {
	return &PowerRequirementsHandler{catalogs: catalogs}
}

// Handle executes the PowerRequirements query
func (h *PowerRequirementsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*PowerRequirementsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *PowerRequirementsQuery")
	}

	catalog, err := h.catalogs.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	projects := query.Projects
	if len(projects) == 0 {
		projects = catalog.ProjectNames()
	}

	requirements, err := production.FlattenProjects(catalog, projects...)
	if err != nil {
		return nil, err
	}

	report, err := production.NewPowerReport(catalog, requirements)
	if err != nil {
		return nil, err
	}

	return &PowerRequirementsResponse{
		Projects: projects,
		Report:   report,
	}, nil
}
