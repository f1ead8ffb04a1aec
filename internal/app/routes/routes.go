package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"registroacademico/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	alunoController *controllers.AlunoController,
	departamentoController *controllers.DepartamentoController,
	provaController *controllers.ProvaController,
	notaController *controllers.NotaController,
	consultasController *controllers.ConsultasController,
) {
	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := api.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.GET("/me", authController.Me)
		auth.POST("/logout", authController.Logout)
	}

	alunos := api.Group("/alunos")
	{
		alunos.POST("", alunoController.CreateAluno)
		alunos.GET("", alunoController.GetAllAlunos)
		alunos.GET("/:id", alunoController.GetAlunoByID)
		alunos.PUT("/:id", alunoController.UpdateAluno)
		alunos.DELETE("/:id", alunoController.DeleteAluno)
	}

	departamentos := api.Group("/departamentos")
	{
		departamentos.POST("", departamentoController.CreateDepartamento)
		departamentos.GET("", departamentoController.GetAllDepartamentos)
		departamentos.GET("/:id", departamentoController.GetDepartamentoByID)
		departamentos.PUT("/:id", departamentoController.UpdateDepartamento)
		departamentos.DELETE("/:id", departamentoController.DeleteDepartamento)
	}

	provas := api.Group("/provas")
	{
		provas.POST("", provaController.CreateProva)
		provas.GET("", provaController.GetAllProvas)
		provas.GET("/:id", provaController.GetProvaByID)
		provas.PUT("/:id", provaController.UpdateProva)
		provas.DELETE("/:id", provaController.DeleteProva)
	}

	// Grades are addressed by the (aluno, prova) pair.
	notas := api.Group("/notas")
	{
		notas.POST("", notaController.CreateNota)
		notas.GET("", notaController.GetAllNotas)
		notas.GET("/:alunoId/:provaId", notaController.GetNotaByID)
		notas.PUT("/:alunoId/:provaId", notaController.UpdateNota)
		notas.DELETE("/:alunoId/:provaId", notaController.DeleteNota)
	}

	api.GET("/consultas-avancadas", consultasController.GetResumo)
}
