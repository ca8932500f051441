package dto

import "github.com/shopspring/decimal"

// ContratoRequest is the JSON body for POST /contratos and PUT /contratos/:id.
// UsuarioUsername is ignored on create, where the owner is the session identity.
// On update an empty value keeps the session identity as owner.
type ContratoRequest struct {
	FechaFirma       Fecha           `json:"fecha_firma"`
	FechaInicio      Fecha           `json:"fecha_inicio"`
	FechaFin         Fecha           `json:"fecha_fin"`
	Empresa          string          `json:"empresa" binding:"required,max=150"`
	Empleado         string          `json:"empleado" binding:"required,max=150"`
	Funciones        string          `json:"funciones" binding:"max=2000"`
	Monto            decimal.Decimal `json:"monto"`
	FrecuenciaDePago string          `json:"frecuencia_de_pago" binding:"max=50"`
	UsuarioUsername  string          `json:"usuario_username" binding:"max=50"`
}

// montoLimit is the first amount that no longer fits NUMERIC(14, 2).
var montoLimit = decimal.New(1, 12)

// MontoValido reports whether Monto fits NUMERIC(14, 2) without rounding.
func (r ContratoRequest) MontoValido() bool {
	return r.Monto.Equal(r.Monto.Round(2)) && r.Monto.Abs().LessThan(montoLimit)
}

// MissingFecha returns the name of the first absent date field, or "".
func (r ContratoRequest) MissingFecha() string {
	switch {
	case r.FechaFirma.IsZero():
		return "fecha_firma"
	case r.FechaInicio.IsZero():
		return "fecha_inicio"
	case r.FechaFin.IsZero():
		return "fecha_fin"
	}
	return ""
}

type ContratoResponse struct {
	ID               int64           `json:"id"`
	FechaFirma       Fecha           `json:"fecha_firma"`
	FechaInicio      Fecha           `json:"fecha_inicio"`
	FechaFin         Fecha           `json:"fecha_fin"`
	Empresa          string          `json:"empresa"`
	Empleado         string          `json:"empleado"`
	Funciones        string          `json:"funciones"`
	Monto            decimal.Decimal `json:"monto"`
	FrecuenciaDePago string          `json:"frecuencia_de_pago"`
	UsuarioUsername  string          `json:"usuario_username"`
}

type ListContratosResponse struct {
	Items []ContratoResponse `json:"items"`
}
