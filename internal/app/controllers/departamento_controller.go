package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"registroacademico/internal/app/models"
	"registroacademico/internal/app/models/dto"
	"registroacademico/internal/app/services"
	"registroacademico/internal/middleware"
	"registroacademico/internal/pkg/apperrors"
)

const departamentoNotFound = "Departamento não encontrado."

// DepartamentoController handles department endpoints
type DepartamentoController struct {
	departamentoService services.DepartamentoService
}

// NewDepartamentoController creates a new DepartamentoController
func NewDepartamentoController(departamentoService services.DepartamentoService) *DepartamentoController {
	return &DepartamentoController{departamentoService: departamentoService}
}

// CreateDepartamento handles department creation
// @Summary Create a new department
// @Tags departamentos
// @Accept json
// @Produce json
// @Param request body dto.DepartamentoRequest true "Department information"
// @Success 201 {object} models.Departamento
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /departamentos [post]
func (c *DepartamentoController) CreateDepartamento(ctx *gin.Context) {
	var req dto.DepartamentoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err.Error()))
		return
	}

	created, err := c.departamentoService.Create(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", fmt.Sprintf("/api/departamentos/%d", created.ID))
	ctx.JSON(http.StatusCreated, created)
}

// GetAllDepartamentos lists all departments ordered by name
// @Summary List departments
// @Tags departamentos
// @Produce json
// @Success 200 {array} models.Departamento
// @Router /departamentos [get]
func (c *DepartamentoController) GetAllDepartamentos(ctx *gin.Context) {
	departamentos, err := c.departamentoService.ListAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if departamentos == nil {
		departamentos = []*models.Departamento{}
	}
	ctx.JSON(http.StatusOK, departamentos)
}

// GetDepartamentoByID retrieves a department by ID
// @Summary Get department by ID
// @Tags departamentos
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} models.Departamento
// @Failure 404 {object} dto.ErrorResponse
// @Router /departamentos/{id} [get]
func (c *DepartamentoController) GetDepartamentoByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", departamentoNotFound)
	if !ok {
		return
	}

	departamento, err := c.departamentoService.FindByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if departamento == nil {
		middleware.HandleAPIError(ctx, apperrors.NewNotFoundError(departamentoNotFound))
		return
	}
	ctx.JSON(http.StatusOK, departamento)
}

// UpdateDepartamento replaces a department's mutable fields
// @Summary Update department
// @Tags departamentos
// @Accept json
// @Produce json
// @Param id path int true "Department ID"
// @Param request body dto.DepartamentoRequest true "Department information"
// @Success 200 {object} models.Departamento
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /departamentos/{id} [put]
func (c *DepartamentoController) UpdateDepartamento(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", departamentoNotFound)
	if !ok {
		return
	}

	var req dto.DepartamentoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err.Error()))
		return
	}

	updated, err := c.departamentoService.Update(ctx, id, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if updated == nil {
		middleware.HandleAPIError(ctx, apperrors.NewNotFoundError(departamentoNotFound))
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteDepartamento removes a department
// @Summary Delete department
// @Tags departamentos
// @Param id path int true "Department ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /departamentos/{id} [delete]
func (c *DepartamentoController) DeleteDepartamento(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", departamentoNotFound)
	if !ok {
		return
	}

	removed, err := c.departamentoService.Delete(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !removed {
		middleware.HandleAPIError(ctx, apperrors.NewNotFoundError(departamentoNotFound))
		return
	}
	ctx.Status(http.StatusNoContent)
}
