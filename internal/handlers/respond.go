package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"sgc/internal/middleware"
	"sgc/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	statusSuccess = "success"
	statusError   = "error"

	msgFormatoInvalido = "FormatoInvalido"
	msgErrorInterno    = "ErrorInterno"
)

func success(c *gin.Context, code int, message string, extra gin.H) {
	body := gin.H{"status": statusSuccess, "message": message}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(code, body)
}

func failure(c *gin.Context, code int, message string, detail string) {
	body := gin.H{"status": statusError, "message": message}
	if detail != "" {
		body["error"] = detail
	}
	c.JSON(code, body)
}

// failFromService maps service errors onto responses. notFound is the message
// code for ErrNotFound on this route.
func failFromService(c *gin.Context, err error, notFound string) {
	var pe *service.PersistenceError
	switch {
	case errors.Is(err, service.ErrNotFound):
		failure(c, http.StatusNotFound, notFound, "")
	case errors.Is(err, service.ErrUsuarioExiste):
		failure(c, http.StatusConflict, "UsuarioExiste", err.Error())
	case errors.Is(err, service.ErrRangoFechas):
		failure(c, http.StatusBadRequest, "RangoFechasInvalido", err.Error())
	case errors.Is(err, service.ErrInvalidInput):
		failure(c, http.StatusBadRequest, msgFormatoInvalido, err.Error())
	case errors.As(err, &pe):
		log.Error().Err(err).Str("request_id", c.GetString(middleware.RequestIDKey)).Str("op", pe.Op).Msg("store fault")
		failure(c, http.StatusInternalServerError, msgErrorInterno, "")
	default:
		log.Error().Err(err).Str("request_id", c.GetString(middleware.RequestIDKey)).Msg("unexpected error")
		failure(c, http.StatusInternalServerError, msgErrorInterno, "")
	}
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		failure(c, http.StatusBadRequest, "IDContratoInvalido", "invalid id")
		return 0, false
	}
	return id, true
}
