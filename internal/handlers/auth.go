package handlers

import (
	"errors"
	"net/http"
	"time"

	"sgc/internal/auth"
	"sgc/internal/dto"
	"sgc/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	auth         *auth.Authenticator
	cookieMaxAge int
	secureCookie bool
}

// NewAuthHandler returns a new AuthHandler. ttl sets the session cookie lifetime.
func NewAuthHandler(a *auth.Authenticator, ttl time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{auth: a, cookieMaxAge: int(ttl.Seconds()), secureCookie: secureCookie}
}

// LoginForm godoc
// @Summary      Login form descriptor
// @Tags         auth
// @Produce      json
// @Param        status   query  string  false  "status passthrough"
// @Param        message  query  string  false  "message passthrough"
// @Success      200  {object}  dto.LoginForm
// @Router       /auth/login [get]
func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, dto.LoginForm{
		Action:  "/api/v1/auth/login",
		Fields:  []string{"username", "password"},
		Status:  c.Query("status"),
		Message: c.Query("message"),
	})
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failure(c, http.StatusBadRequest, msgFormatoInvalido, err.Error())
		return
	}
	id, token, err := h.auth.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrAuthFailed) {
			metrics.ObserveLogin("rejected")
			failure(c, http.StatusUnauthorized, "CredencialesInvalidas", "invalid username or password")
			return
		}
		metrics.ObserveLogin("error")
		log.Error().Err(err).Msg("login failed")
		failure(c, http.StatusInternalServerError, msgErrorInterno, "")
		return
	}
	metrics.ObserveLogin("success")
	c.SetCookie(auth.SessionCookieName, token, h.cookieMaxAge, "/", "", h.secureCookie, true)
	success(c, http.StatusOK, "SesionIniciada", gin.H{"user": id})
}

// Logout godoc
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(auth.SessionCookieName)
	if err == nil && token != "" {
		if err := h.auth.EndSession(c.Request.Context(), token); err != nil {
			log.Warn().Err(err).Msg("end session failed")
		}
	}
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", h.secureCookie, true)
	success(c, http.StatusOK, "SesionCerrada", nil)
}

// Me godoc
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  domain.Identity
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	id, _ := auth.IdentityFromContext(c)
	c.JSON(http.StatusOK, id)
}
