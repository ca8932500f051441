package handlers

import (
	"net/http"

	dom "sgc/internal/domain"
	"sgc/internal/dto"
	"sgc/internal/service"

	"github.com/gin-gonic/gin"
)

type UsuarioHandler struct {
	svc *service.UsuarioService
}

func NewUsuarioHandler(svc *service.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{svc: svc}
}

// List godoc
// @Summary      List usuarios
// @Tags         usuarios
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ListUsuariosResponse
// @Failure      500  {object}  map[string]string
// @Router       /usuarios [get]
func (h *UsuarioHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		failFromService(c, err, "")
		return
	}
	out := make([]dto.UsuarioResponse, len(list))
	for i := range list {
		out[i] = usuarioToResponse(list[i])
	}
	c.JSON(http.StatusOK, dto.ListUsuariosResponse{Items: out})
}

// Get godoc
// @Summary      Get a usuario
// @Tags         usuarios
// @Produce      json
// @Security     CookieAuth
// @Param        username  path  string  true  "Username"
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      404  {object}  map[string]string
// @Router       /usuarios/{username} [get]
func (h *UsuarioHandler) Get(c *gin.Context) {
	u, err := h.svc.FindByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		failFromService(c, err, "UsuarioNoEncontrado")
		return
	}
	c.JSON(http.StatusOK, usuarioToResponse(u))
}

// Create godoc
// @Summary      Create a usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body  dto.CreateUsuarioRequest  true  "Usuario"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /usuarios [post]
func (h *UsuarioHandler) Create(c *gin.Context) {
	var req dto.CreateUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failure(c, http.StatusBadRequest, msgFormatoInvalido, err.Error())
		return
	}
	u := dom.Usuario{Username: req.Username, Password: req.Password, Nombre: req.Nombre, Email: req.Email}
	if err := h.svc.Create(c.Request.Context(), u); err != nil {
		failFromService(c, err, "")
		return
	}
	success(c, http.StatusCreated, "UsuarioCreado", gin.H{"username": u.Username})
}

// Update godoc
// @Summary      Update a usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        username  path  string  true  "Username"
// @Param        body  body  dto.UpdateUsuarioRequest  true  "New values"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /usuarios/{username} [put]
func (h *UsuarioHandler) Update(c *gin.Context) {
	var req dto.UpdateUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failure(c, http.StatusBadRequest, msgFormatoInvalido, err.Error())
		return
	}
	u := dom.Usuario{Username: c.Param("username"), Password: req.Password, Nombre: req.Nombre, Email: req.Email}
	if err := h.svc.Update(c.Request.Context(), u); err != nil {
		failFromService(c, err, "UsuarioNoEncontrado")
		return
	}
	success(c, http.StatusOK, "UsuarioActualizado", nil)
}

// Delete godoc
// @Summary      Delete a usuario
// @Tags         usuarios
// @Produce      json
// @Security     CookieAuth
// @Param        username  path  string  true  "Username"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /usuarios/{username} [delete]
func (h *UsuarioHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("username")); err != nil {
		failFromService(c, err, "UsuarioNoEncontrado")
		return
	}
	success(c, http.StatusOK, "UsuarioEliminado", nil)
}

func usuarioToResponse(u dom.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{Username: u.Username, Nombre: u.Nombre, Email: u.Email}
}
