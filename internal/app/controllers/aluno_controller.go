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

const alunoNotFound = "Aluno não encontrado."

// AlunoController handles student endpoints
type AlunoController struct {
	alunoService services.AlunoService
}

// NewAlunoController creates a new AlunoController
func NewAlunoController(alunoService services.AlunoService) *AlunoController {
	return &AlunoController{alunoService: alunoService}
}

// CreateAluno handles student creation
// @Summary Create a new student
// @Tags alunos
// @Accept json
// @Produce json
// @Param request body dto.AlunoRequest true "Student information"
// @Success 201 {object} models.Aluno
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /alunos [post]
func (c *AlunoController) CreateAluno(ctx *gin.Context) {
	var req dto.AlunoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err.Error()))
		return
	}

	created, err := c.alunoService.Create(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", fmt.Sprintf("/api/alunos/%d", created.ID))
	ctx.JSON(http.StatusCreated, created)
}

// GetAllAlunos lists all students ordered by name
// @Summary List students
// @Tags alunos
// @Produce json
// @Success 200 {array} models.Aluno
// @Router /alunos [get]
func (c *AlunoController) GetAllAlunos(ctx *gin.Context) {
	alunos, err := c.alunoService.ListAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if alunos == nil {
		alunos = []*models.Aluno{}
	}
	ctx.JSON(http.StatusOK, alunos)
}

// GetAlunoByID retrieves a student by ID
// @Summary Get student by ID
// @Tags alunos
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.Aluno
// @Failure 404 {object} dto.ErrorResponse
// @Router /alunos/{id} [get]
func (c *AlunoController) GetAlunoByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", alunoNotFound)
	if !ok {
		return
	}

	aluno, err := c.alunoService.FindByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if aluno == nil {
		middleware.HandleAPIError(ctx, apperrors.NewNotFoundError(alunoNotFound))
		return
	}
	ctx.JSON(http.StatusOK, aluno)
}

// UpdateAluno replaces a student's mutable fields
// @Summary Update student
// @Tags alunos
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.AlunoRequest true "Student information"
// @Success 200 {object} models.Aluno
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /alunos/{id} [put]
func (c *AlunoController) UpdateAluno(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", alunoNotFound)
	if !ok {
		return
	}

	var req dto.AlunoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err.Error()))
		return
	}

	updated, err := c.alunoService.Update(ctx, id, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if updated == nil {
		middleware.HandleAPIError(ctx, apperrors.NewNotFoundError(alunoNotFound))
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteAluno removes a student
// @Summary Delete student
// @Tags alunos
// @Param id path int true "Student ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /alunos/{id} [delete]
func (c *AlunoController) DeleteAluno(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", alunoNotFound)
	if !ok {
		return
	}

	removed, err := c.alunoService.Delete(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !removed {
		middleware.HandleAPIError(ctx, apperrors.NewNotFoundError(alunoNotFound))
		return
	}
	ctx.Status(http.StatusNoContent)
}

// parseIDParam reads a numeric path parameter, answering 400 when it is not
// a valid integer. Keys start at 1, so zero and negatives cannot match a row
// and are answered as not-found without touching the service layer.
func parseIDParam(ctx *gin.Context, name, notFoundMessage string) (int64, bool) {
	value, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Identificador inválido."))
		return 0, false
	}
	if value < 1 {
		middleware.HandleAPIError(ctx, apperrors.NewNotFoundError(notFoundMessage))
		return 0, false
	}
	return value, true
}
