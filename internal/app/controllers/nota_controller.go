package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"registroacademico/internal/app/models"
	"registroacademico/internal/app/models/dto"
	"registroacademico/internal/app/services"
	"registroacademico/internal/middleware"
	"registroacademico/internal/pkg/apperrors"
)

const notaNotFound = "Nota não encontrada."

// NotaController handles grade endpoints. Grades are keyed by the
// (aluno, prova) pair rather than a surrogate id.
type NotaController struct {
	notaService services.NotaService
}

// NewNotaController creates a new NotaController
func NewNotaController(notaService services.NotaService) *NotaController {
	return &NotaController{notaService: notaService}
}

// CreateNota handles grade creation
// @Summary Create a new grade
// @Tags notas
// @Accept json
// @Produce json
// @Param request body dto.NotaCreateRequest true "Grade information"
// @Success 201 {object} models.Nota
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /notas [post]
func (c *NotaController) CreateNota(ctx *gin.Context) {
	var req dto.NotaCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err.Error()))
		return
	}

	created, err := c.notaService.Create(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", fmt.Sprintf("/api/notas/%d/%d", created.AlunoID, created.ProvaID))
	ctx.JSON(http.StatusCreated, created)
}

// GetAllNotas lists grades, optionally filtered by student and/or exam
// @Summary List grades
// @Tags notas
// @Produce json
// @Param alunoId query int false "Filter by student ID"
// @Param provaId query int false "Filter by exam ID"
// @Success 200 {array} models.Nota
// @Failure 400 {object} dto.ErrorResponse
// @Router /notas [get]
func (c *NotaController) GetAllNotas(ctx *gin.Context) {
	alunoID, ok := parseOptionalIDQuery(ctx, "alunoId")
	if !ok {
		return
	}
	provaID, ok := parseOptionalIDQuery(ctx, "provaId")
	if !ok {
		return
	}

	notas, err := c.notaService.ListAll(ctx, alunoID, provaID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if notas == nil {
		notas = []*models.Nota{}
	}
	ctx.JSON(http.StatusOK, notas)
}

// GetNotaByID retrieves a grade by its composite key
// @Summary Get grade by key
// @Tags notas
// @Produce json
// @Param alunoId path int true "Student ID"
// @Param provaId path int true "Exam ID"
// @Success 200 {object} models.Nota
// @Failure 404 {object} dto.ErrorResponse
// @Router /notas/{alunoId}/{provaId} [get]
func (c *NotaController) GetNotaByID(ctx *gin.Context) {
	alunoID, provaID, ok := parseNotaKey(ctx)
	if !ok {
		return
	}

	nota, err := c.notaService.FindByID(ctx, alunoID, provaID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if nota == nil {
		middleware.HandleAPIError(ctx, apperrors.NewNotFoundError(notaNotFound))
		return
	}
	ctx.JSON(http.StatusOK, nota)
}

// UpdateNota replaces a grade's value and note
// @Summary Update grade
// @Tags notas
// @Accept json
// @Produce json
// @Param alunoId path int true "Student ID"
// @Param provaId path int true "Exam ID"
// @Param request body dto.NotaUpdateRequest true "Grade information"
// @Success 200 {object} models.Nota
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /notas/{alunoId}/{provaId} [put]
func (c *NotaController) UpdateNota(ctx *gin.Context) {
	alunoID, provaID, ok := parseNotaKey(ctx)
	if !ok {
		return
	}

	var req dto.NotaUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err.Error()))
		return
	}

	updated, err := c.notaService.Update(ctx, alunoID, provaID, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if updated == nil {
		middleware.HandleAPIError(ctx, apperrors.NewNotFoundError(notaNotFound))
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteNota removes a grade
// @Summary Delete grade
// @Tags notas
// @Param alunoId path int true "Student ID"
// @Param provaId path int true "Exam ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /notas/{alunoId}/{provaId} [delete]
func (c *NotaController) DeleteNota(ctx *gin.Context) {
	alunoID, provaID, ok := parseNotaKey(ctx)
	if !ok {
		return
	}

	removed, err := c.notaService.Delete(ctx, alunoID, provaID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !removed {
		middleware.HandleAPIError(ctx, apperrors.NewNotFoundError(notaNotFound))
		return
	}
	ctx.Status(http.StatusNoContent)
}

func parseNotaKey(ctx *gin.Context) (alunoID, provaID int64, ok bool) {
	alunoID, ok = parseIDParam(ctx, "alunoId", notaNotFound)
	if !ok {
		return 0, 0, false
	}
	provaID, ok = parseIDParam(ctx, "provaId", notaNotFound)
	if !ok {
		return 0, 0, false
	}
	return alunoID, provaID, true
}

// parseOptionalIDQuery reads an optional numeric query parameter, answering
// 400 when a supplied value is not a valid integer.
func parseOptionalIDQuery(ctx *gin.Context, name string) (*int64, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			fmt.Sprintf("Parâmetro %s inválido.", name)))
		return nil, false
	}
	return &value, true
}
