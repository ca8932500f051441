package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contrato is a contract managed by a Usuario.
// Dates are calendar dates stored as UTC midnight.
// UsuarioUsername references Usuario.Username without ownership: deleting the
// user does not remove the contract unless the cascade policy is enabled.
type Contrato struct {
	ID               int64
	FechaFirma       time.Time
	FechaInicio      time.Time
	FechaFin         time.Time
	Empresa          string
	Empleado         string
	Funciones        string
	Monto            decimal.Decimal
	FrecuenciaDePago string
	UsuarioUsername  string
}

// RangoValido reports whether FechaInicio is not after FechaFin.
func (c Contrato) RangoValido() bool {
	return !c.FechaInicio.After(c.FechaFin)
}
