package api

import (
	"net/http"
	"time"

	resdto "arttoy-storefront/internal/handler/dto/response"
	"arttoy-storefront/internal/handler/middleware"
	"arttoy-storefront/internal/pkg/config"
	"arttoy-storefront/internal/pkg/cookie"
	"arttoy-storefront/internal/pkg/errs"
	"arttoy-storefront/internal/usecase"

	reqdto "arttoy-storefront/internal/handler/dto/request"

	"github.com/gin-gonic/gin"
)

// cookie lifetime mirrors the backend token lifetime closely enough; the
// session gate re-checks expiry on every request anyway.
const accessCookieExpiry = 24 * time.Hour

type AuthHandler struct {
	sessionGate usecase.SessionGate
	cookieCfg   config.CookieConfig
}

func NewAuthHandler(sessionGate usecase.SessionGate, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		sessionGate: sessionGate,
		cookieCfg:   cfg.Cookie,
	}
}

// @Summary User login
// @Description Forward credentials to the backend and establish a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	token, role, err := h.sessionGate.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		case errs.Is(err, usecase.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Authentication service is unavailable",
			})
		}
		return
	}

	cookie.SetAccessTokenCookie(c, h.cookieCfg, token, accessCookieExpiry)

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: token,
		Role:        role.String(),
	})
}

// @Summary User logout
// @Description Drop the session cookie and the cached role
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, ok := middleware.GetToken(c); ok {
		h.sessionGate.Logout(token)
	}
	cookie.ClearAccessTokenCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current session
// @Description Role behind the current credential
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.MeResponse{Role: role.String()})
}
