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
	FlattenRequirementsQuery    = types.FlattenRequirementsQuery
	FlattenRequirementsResponse = types.FlattenRequirementsResponse
)

// FlattenRequirementsHandler handles the FlattenRequirements query
type FlattenRequirementsHandler struct {
	catalogs production.CatalogSource
}

// NewFlattenRequirementsHandler creates a new FlattenRequirementsHandler
func NewFlattenRequirementsHandler(catalogs production.CatalogSource) *FlattenRequirementsHandler {
	return &FlattenRequirementsHandler{catalogs: catalogs}
}

// Handle executes the FlattenRequirements query
func (h *FlattenRequirementsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*FlattenRequirementsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *FlattenRequirementsQuery")
	}

	catalog, err := h.catalogs.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	project, err := catalog.Project(query.Project)
	if err != nil {
		return nil, err
	}

	requirements, err := production.FlattenProject(catalog, project)
	if err != nil {
		return nil, err
	}

	return &FlattenRequirementsResponse{
		Project:      query.Project,
		Requirements: requirements,
	}, nil
}
