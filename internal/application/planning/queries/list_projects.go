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
	ListProjectsQuery    = types.ListProjectsQuery
	ListProjectsResponse = types.ListProjectsResponse
)

// ListProjectsHandler handles the ListProjects query
type ListProjectsHandler struct {
	catalogs production.CatalogSource
}

// NewListProjectsHandler creates a new ListProjectsHandler
func NewListProjectsHandler(catalogs production.CatalogSource) *ListProjectsHandler {
	return &ListProjectsHandler{catalogs: catalogs}
}

// Handle executes the ListProjects query
func (h *ListProjectsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*ListProjectsQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListProjectsQuery")
	}

	catalog, err := h.catalogs.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	names := catalog.ProjectNames()
	projects := make([]types.ProjectSummary, 0, len(names))
	for _, name := range names {
		project, err := catalog.Project(name)
		if err != nil {
			return nil, err
		}
		projects = append(projects, types.ProjectSummary{
			Name:         project.Name,
			Requirements: append([]production.Requirement(nil), project.Requirements...),
		})
	}

	return &ListProjectsResponse{Projects: projects}, nil
}
