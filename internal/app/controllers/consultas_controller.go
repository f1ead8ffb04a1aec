package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"registroacademico/internal/app/services"
	"registroacademico/internal/middleware"
)

// ConsultasController serves the combined aggregate reports
type ConsultasController struct {
	consultasService services.ConsultasService
}

// NewConsultasController creates a new ConsultasController
func NewConsultasController(consultasService services.ConsultasService) *ConsultasController {
	return &ConsultasController{consultasService: consultasService}
}

// GetResumo returns the three aggregate reports in one payload
// @Summary Advanced report summary
// @Tags consultas-avancadas
// @Produce json
// @Success 200 {object} models.ConsultasAvancadasResumo
// @Router /consultas-avancadas [get]
func (c *ConsultasController) GetResumo(ctx *gin.Context) {
	resumo, err := c.consultasService.ObterResumo(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resumo)
}
