package accounts

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"causematch-backend/internal/shared/auth"
	"causematch-backend/internal/shared/server/middleware"
	"causematch-backend/internal/shared/server/respond"
)

const cookieMaxAge = int(auth.TokenLifetime / time.Second)

// Handler wires HTTP handlers to the account service.
type Handler struct {
	Svc          *Service
	SecureCookie bool
}

// NewHandler constructs a Handler. secureCookie should be true in production
// so the session cookie is only sent over TLS.
func NewHandler(svc *Service, secureCookie bool) *Handler {
	return &Handler{Svc: svc, SecureCookie: secureCookie}
}

// RegisterRoutes attaches auth routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register", h.register)
	rg.POST("/auth/login", h.login)
	rg.POST("/auth/logout", h.logout)
	rg.GET("/auth/me", h.me)
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid request body", nil)
		return
	}

	user, err := h.Svc.Register(c.Request.Context(), req.Username, req.Email, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, err.Error(), nil)
		case errors.Is(err, ErrAlreadyExists):
			respond.Error(c, http.StatusConflict, respond.CodeConflict, "username or email already taken", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to register", nil)
		}
		return
	}

	token, err := auth.Sign(user.ID, user.Email)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to issue session", nil)
		return
	}
	h.setAuthCookie(c, token)

	respond.JSON(c, http.StatusCreated, gin.H{"user": user.Public(), "token": token})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid request body", nil)
		return
	}

	user, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			respond.Error(c, http.StatusUnauthorized, respond.CodeUnauthorized, "invalid email or password", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to log in", nil)
		return
	}

	token, err := auth.Sign(user.ID, user.Email)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to issue session", nil)
		return
	}
	h.setAuthCookie(c, token)

	respond.OK(c, gin.H{"user": user.Public(), "token": token})
}

func (h *Handler) logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", h.SecureCookie, true)
	respond.OK(c, gin.H{"success": true})
}

func (h *Handler) me(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	user, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusUnauthorized, respond.CodeUnauthorized, "account no longer exists", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to load account", nil)
		return
	}

	respond.OK(c, gin.H{"user": user.Public()})
}

func (h *Handler) setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, token, cookieMaxAge, "/", "", h.SecureCookie, true)
}
