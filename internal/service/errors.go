package service

import (
	"errors"
	"fmt"

	"sgc/internal/repo"

	"github.com/jackc/pgx/v5"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrUsuarioExiste      = errors.New("usuario already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrRangoFechas        = errors.New("fecha_inicio is after fecha_fin")
	ErrInvalidInput       = errors.New("invalid input")
)

// PersistenceError reports a store fault, as opposed to a missing record.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// storeErr maps repo absence signals to ErrNotFound and wraps everything else.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, repo.ErrNoRowsAffected) {
		return ErrNotFound
	}
	return &PersistenceError{Op: op, Err: err}
}
