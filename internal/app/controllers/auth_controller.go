package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"registroacademico/internal/app/models/dto"
	"registroacademico/internal/app/services"
	"registroacademico/internal/middleware"
	"registroacademico/internal/pkg/apperrors"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_id"

// AuthController handles the login, identity and logout endpoints
type AuthController struct {
	authService  services.AuthService
	cookieMaxAge int
}

// NewAuthController creates a new AuthController. cookieMaxAge is the
// session cookie lifetime in seconds.
func NewAuthController(authService services.AuthService, cookieMaxAge int) *AuthController {
	return &AuthController{
		authService:  authService,
		cookieMaxAge: cookieMaxAge,
	}
}

// Login verifies credentials and establishes a session
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.AuthErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err.Error()))
		return
	}

	token, usuario, err := c.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.SetCookie(SessionCookieName, token, c.cookieMaxAge, "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.LoginResponse{
		ID:       usuario.ID,
		Username: usuario.Username,
		Nome:     usuario.Nome,
	})
}

// Me returns the identity attached to the session cookie
// @Summary Current identity
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} dto.AuthErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	token, err := ctx.Cookie(SessionCookieName)
	if err != nil || token == "" {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	usuario, err := c.authService.Me(ctx, token)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MeResponse{ID: usuario.ID, Nome: usuario.Nome})
}

// Logout invalidates the session. Always answers 204, session or not.
// @Summary Log out
// @Tags auth
// @Success 204
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if token, err := ctx.Cookie(SessionCookieName); err == nil {
		c.authService.Logout(ctx, token)
	}
	ctx.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
	ctx.Status(http.StatusNoContent)
}
