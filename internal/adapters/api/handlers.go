package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/andrescamacho/factory-planner/internal/application/common"
	"github.com/andrescamacho/factory-planner/internal/application/planning/types"
	"github.com/andrescamacho/factory-planner/internal/domain/planning"
	"github.com/andrescamacho/factory-planner/internal/domain/production"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listProjects(c *gin.Context) {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	response, err := s.mediator.Send(ctx, &types.ListProjectsQuery{})
	if err != nil {
		s.writeError(c, err)
		return
	}

	result := response.(*types.ListProjectsResponse)
	projects := make([]ProjectDTO, 0, len(result.Projects))
	for _, project := range result.Projects {
		projects = append(projects, toProjectDTO(project))
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (s *Server) projectRequirements(c *gin.Context) {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	response, err := s.mediator.Send(ctx, &types.FlattenRequirementsQuery{Project: c.Param("name")})
	if err != nil {
		s.writeError(c, err)
		return
	}

	result := response.(*types.FlattenRequirementsResponse)
	c.JSON(http.StatusOK, RequirementsDTO{
		Project:      result.Project,
		Requirements: toQuantityDTOs(result.Requirements),
	})
}

func (s *Server) solveProject(c *gin.Context) {
	var body SolveRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	response, err := s.mediator.Send(ctx, &types.SolveProjectCommand{
		Project:     c.Param("name"),
		Solver:      body.solverOr(s.solver.Default),
		Constraints: body.constraints(s.solver),
		Persist:     body.Persist,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSolveDTO(response.(*types.SolveProjectResponse), body.AllSolutions))
}

func (s *Server) analyzeProjects(c *gin.Context) {
	var body AnalyzeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	response, err := s.mediator.Send(ctx, &types.AnalyzeProjectsCommand{
		Projects:    body.Projects,
		Solver:      body.solverOr(s.solver.Default),
		Constraints: body.constraints(s.solver),
		Concurrency: s.solver.Concurrency,
		Persist:     body.Persist,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	result := response.(*types.AnalyzeProjectsResponse)
	dto := AnalyzeDTO{
		Results: make([]SolveDTO, 0, len(result.Results)),
		Power:   toPowerDTO(result.Power),
	}
	for _, r := range result.Results {
		dto.Results = append(dto.Results, toSolveDTO(r, false))
	}
	c.JSON(http.StatusOK, dto)
}

func (s *Server) power(c *gin.Context) {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	var projects []string
	for _, value := range c.QueryArray("project") {
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				projects = append(projects, name)
			}
		}
	}

	response, err := s.mediator.Send(ctx, &types.PowerRequirementsQuery{Projects: projects})
	if err != nil {
		s.writeError(c, err)
		return
	}

	result := response.(*types.PowerRequirementsResponse)
	c.JSON(http.StatusOK, gin.H{
		"projects": result.Projects,
		"power":    toPowerDTO(result.Report),
	})
}

func (s *Server) listRuns(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	response, err := s.mediator.Send(ctx, &types.ListSolveRunsQuery{Project: c.Query("project"), Limit: limit})
	if err != nil {
		s.writeError(c, err)
		return
	}

	result := response.(*types.ListSolveRunsResponse)
	runs := make([]SolveRunDTO, 0, len(result.Runs))
	for _, run := range result.Runs {
		runs = append(runs, toSolveRunDTO(run))
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

// writeError maps domain errors to HTTP status codes
func (s *Server) writeError(c *gin.Context, err error) {
	var (
		unknownProject  *production.ErrUnknownProject
		unknownProduct  *production.ErrUnknownProduct
		unknownBuilding *production.ErrUnknownBuilding
		circular        *production.ErrCircularRecipe
		invalidRecipe   *production.ErrInvalidRecipe
		unknownSolver   *planning.ErrUnknownSolver
	)

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &unknownProject), errors.As(err, &unknownProduct), errors.As(err, &unknownBuilding):
		status = http.StatusNotFound
	case errors.As(err, &unknownSolver), errors.Is(err, planning.ErrMissingTimeBudget):
		status = http.StatusBadRequest
	case errors.As(err, &circular), errors.As(err, &invalidRecipe):
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		s.logger.Log(common.LevelError, "Request failed", map[string]interface{}{
			"path":  c.FullPath(),
			"error": err.Error(),
		})
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
