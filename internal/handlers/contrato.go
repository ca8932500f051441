package handlers

import (
	"net/http"

	"sgc/internal/auth"
	dom "sgc/internal/domain"
	"sgc/internal/dto"
	"sgc/internal/metrics"
	"sgc/internal/service"

	"github.com/gin-gonic/gin"
)

type ContratoHandler struct {
	svc *service.ContratoService
}

func NewContratoHandler(svc *service.ContratoService) *ContratoHandler {
	return &ContratoHandler{svc: svc}
}

// List godoc
// @Summary      List the caller's contratos
// @Tags         contratos
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ListContratosResponse
// @Failure      500  {object}  map[string]string
// @Router       /contratos [get]
func (h *ContratoHandler) List(c *gin.Context) {
	id, _ := auth.IdentityFromContext(c)
	list, err := h.svc.ListByOwner(c.Request.Context(), id.Username)
	if err != nil {
		failFromService(c, err, "")
		return
	}
	out := make([]dto.ContratoResponse, len(list))
	for i := range list {
		out[i] = contratoToResponse(list[i])
	}
	c.JSON(http.StatusOK, dto.ListContratosResponse{Items: out})
}

// GetByID godoc
// @Summary      Get a contrato by ID
// @Tags         contratos
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Contrato ID"
// @Success      200  {object}  dto.ContratoResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /contratos/{id} [get]
func (h *ContratoHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ct, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		failFromService(c, err, "ContratoNoEncontrado")
		return
	}
	c.JSON(http.StatusOK, contratoToResponse(ct))
}

// Create godoc
// @Summary      Create a contrato owned by the caller
// @Tags         contratos
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.ContratoRequest  true  "Contrato"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Router       /contratos [post]
func (h *ContratoHandler) Create(c *gin.Context) {
	ct, ok := bindContrato(c)
	if !ok {
		return
	}
	owner, _ := auth.IdentityFromContext(c)
	ct.UsuarioUsername = owner.Username

	newID, err := h.svc.Create(c.Request.Context(), ct)
	if err != nil {
		failFromService(c, err, "")
		return
	}
	metrics.ContratoCreated()
	success(c, http.StatusCreated, "ContratoCreado", gin.H{"id": newID})
}

// Update godoc
// @Summary      Replace a contrato
// @Tags         contratos
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "Contrato ID"
// @Param        body  body      dto.ContratoRequest  true  "Contrato"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /contratos/{id} [put]
func (h *ContratoHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ct, ok := bindContrato(c)
	if !ok {
		return
	}
	ct.ID = id
	if ct.UsuarioUsername == "" {
		owner, _ := auth.IdentityFromContext(c)
		ct.UsuarioUsername = owner.Username
	}
	if err := h.svc.Update(c.Request.Context(), ct); err != nil {
		failFromService(c, err, "ContratoNoEncontrado")
		return
	}
	success(c, http.StatusOK, "ContratoActualizado", nil)
}

// Delete godoc
// @Summary      Delete a contrato
// @Tags         contratos
// @Produce      json
// @Security     CookieAuth
// @Param        id   path  int  true  "Contrato ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /contratos/{id} [delete]
func (h *ContratoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		failFromService(c, err, "ContratoNoEncontrado")
		return
	}
	success(c, http.StatusOK, "ContratoEliminado", nil)
}

func bindContrato(c *gin.Context) (dom.Contrato, bool) {
	var req dto.ContratoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failure(c, http.StatusBadRequest, msgFormatoInvalido, err.Error())
		return dom.Contrato{}, false
	}
	if field := req.MissingFecha(); field != "" {
		failure(c, http.StatusBadRequest, msgFormatoInvalido, field+" is required")
		return dom.Contrato{}, false
	}
	if !req.MontoValido() {
		failure(c, http.StatusBadRequest, msgFormatoInvalido, "monto: at most 12 integer digits and 2 decimals")
		return dom.Contrato{}, false
	}
	return dom.Contrato{
		FechaFirma:       req.FechaFirma.Time(),
		FechaInicio:      req.FechaInicio.Time(),
		FechaFin:         req.FechaFin.Time(),
		Empresa:          req.Empresa,
		Empleado:         req.Empleado,
		Funciones:        req.Funciones,
		Monto:            req.Monto,
		FrecuenciaDePago: req.FrecuenciaDePago,
		UsuarioUsername:  req.UsuarioUsername,
	}, true
}

func contratoToResponse(c dom.Contrato) dto.ContratoResponse {
	return dto.ContratoResponse{
		ID:               c.ID,
		FechaFirma:       dto.NewFecha(c.FechaFirma),
		FechaInicio:      dto.NewFecha(c.FechaInicio),
		FechaFin:         dto.NewFecha(c.FechaFin),
		Empresa:          c.Empresa,
		Empleado:         c.Empleado,
		Funciones:        c.Funciones,
		Monto:            c.Monto,
		FrecuenciaDePago: c.FrecuenciaDePago,
		UsuarioUsername:  c.UsuarioUsername,
	}
}
