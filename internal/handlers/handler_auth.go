package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pingufin/fxdesk/internal/apperrors"
	"github.com/pingufin/fxdesk/internal/core/domain"
	portssvc "github.com/pingufin/fxdesk/internal/core/ports/services"
	"github.com/pingufin/fxdesk/internal/core/services"
	"github.com/pingufin/fxdesk/internal/dto"
	"github.com/pingufin/fxdesk/internal/middleware"
	"github.com/pingufin/fxdesk/internal/platform/config"
	"github.com/pingufin/fxdesk/internal/utils"
)

// authHandler handles authentication requests.
type authHandler struct {
	userService portssvc.UserSvcFacade
	authService portssvc.AuthSvcFacade
	jwtSecret   string
	jwtDuration time.Duration
	jwtIssuer   string
}

func newAuthHandler(us portssvc.UserSvcFacade, as portssvc.AuthSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		userService: us,
		authService: as,
		jwtSecret:   cfg.JWTSecret,
		jwtDuration: cfg.JWTExpiryDuration,
		jwtIssuer:   cfg.JWTIssuer,
	}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, svcs *services.Container) {
	h := newAuthHandler(svcs.User, svcs.Auth, cfg)

	limit := middleware.RateLimit(newLoginLimiter(cfg))

	auth := r.Group("/auth")
	{
		auth.POST("/login", limit, h.login)
	}
}

// login godoc
// @Summary User login
// @Description Authenticates a user by username and password and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	// An unknown user and a wrong password both answer 401; the result message
	// distinguishes them for the client, as the desk UI displays it.
	var user *domain.User
	found, err := h.userService.GetUserByUsername(c.Request.Context(), req.Username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to look up user for login", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Login failed"})
		return
	}
	if err == nil {
		user = found
	}

	result := h.authService.Authenticate(user, req.Password)
	if !result.Success {
		logger.Warn("Authentication failed", slog.String("username", req.Username), slog.String("reason", result.Message))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: result.Message})
		return
	}

	token, err := utils.GenerateJWT(user.UserID, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger.Error("Failed to generate token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Login failed"})
		return
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(h.jwtDuration),
		User:      dto.ToUserResponse(user),
	})
}
