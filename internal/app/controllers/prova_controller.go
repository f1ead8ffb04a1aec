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

const provaNotFound = "Prova não encontrada."

// ProvaController handles exam endpoints
type ProvaController struct {
	provaService services.ProvaService
}

// NewProvaController creates a new ProvaController
func NewProvaController(provaService services.ProvaService) *ProvaController {
	return &ProvaController{provaService: provaService}
}

// CreateProva handles exam creation
// @Summary Create a new exam
// @Tags provas
// @Accept json
// @Produce json
// @Param request body dto.ProvaRequest true "Exam information"
// @Success 201 {object} models.Prova
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /provas [post]
func (c *ProvaController) CreateProva(ctx *gin.Context) {
	var req dto.ProvaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err.Error()))
		return
	}

	created, err := c.provaService.Create(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", fmt.Sprintf("/api/provas/%d", created.ID))
	ctx.JSON(http.StatusCreated, created)
}

// GetAllProvas lists all exams, most recent first
// @Summary List exams
// @Tags provas
// @Produce json
// @Success 200 {array} models.Prova
// @Router /provas [get]
func (c *ProvaController) GetAllProvas(ctx *gin.Context) {
	provas, err := c.provaService.ListAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if provas == nil {
		provas = []*models.Prova{}
	}
	ctx.JSON(http.StatusOK, provas)
}

// GetProvaByID retrieves an exam by ID
// @Summary Get exam by ID
// @Tags provas
// @Produce json
// @Param id path int true "Exam ID"
// @Success 200 {object} models.Prova
// @Failure 404 {object} dto.ErrorResponse
// @Router /provas/{id} [get]
func (c *ProvaController) GetProvaByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", provaNotFound)
	if !ok {
		return
	}

	prova, err := c.provaService.FindByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if prova == nil {
		middleware.HandleAPIError(ctx, apperrors.NewNotFoundError(provaNotFound))
		return
	}
	ctx.JSON(http.StatusOK, prova)
}

// UpdateProva replaces an exam's mutable fields
// @Summary Update exam
// @Tags provas
// @Accept json
// @Produce json
// @Param id path int true "Exam ID"
// @Param request body dto.ProvaRequest true "Exam information"
// @Success 200 {object} models.Prova
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /provas/{id} [put]
func (c *ProvaController) UpdateProva(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", provaNotFound)
	if !ok {
		return
	}

	var req dto.ProvaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err.Error()))
		return
	}

	updated, err := c.provaService.Update(ctx, id, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if updated == nil {
		middleware.HandleAPIError(ctx, apperrors.NewNotFoundError(provaNotFound))
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteProva removes an exam
// @Summary Delete exam
// @Tags provas
// @Param id path int true "Exam ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /provas/{id} [delete]
func (c *ProvaController) DeleteProva(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", provaNotFound)
	if !ok {
		return
	}

	removed, err := c.provaService.Delete(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !removed {
		middleware.HandleAPIError(ctx, apperrors.NewNotFoundError(provaNotFound))
		return
	}
	ctx.Status(http.StatusNoContent)
}
