package service

import (
	"context"
	"strings"

	dom "sgc/internal/domain"
	"sgc/internal/repo"

	"github.com/rs/zerolog/log"
)

// ContratoService owns the contrato lifecycle and its date-range rule.
type ContratoService struct {
	repo repo.ContratoRepo
}

func NewContratoService(r repo.ContratoRepo) *ContratoService {
	return &ContratoService{repo: r}
}

// Create validates c and returns the id assigned by the store.
func (s *ContratoService) Create(ctx context.Context, c dom.Contrato) (int64, error) {
	if err := validateContrato(&c); err != nil {
		return 0, err
	}
	id, err := s.repo.Create(ctx, c)
	if err != nil {
		log.Error().Err(err).Str("owner", c.UsuarioUsername).Msg("create contrato failed")
		return 0, &PersistenceError{Op: "create contrato", Err: err}
	}
	return id, nil
}

func (s *ContratoService) FindByID(ctx context.Context, id int64) (dom.Contrato, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dom.Contrato{}, storeErr("get contrato", err)
	}
	return c, nil
}

func (s *ContratoService) List(ctx context.Context) ([]dom.Contrato, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeErr("list contratos", err)
	}
	return list, nil
}

// ListByOwner returns only the contratos whose owner is username.
func (s *ContratoService) ListByOwner(ctx context.Context, username string) ([]dom.Contrato, error) {
	list, err := s.repo.ListByUsuario(ctx, username)
	if err != nil {
		return nil, storeErr("list contratos by owner", err)
	}
	return list, nil
}

// Update replaces every field of the contrato c.ID, owner included.
func (s *ContratoService) Update(ctx context.Context, c dom.Contrato) error {
	if err := validateContrato(&c); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return storeErr("update contrato", err)
	}
	return nil
}

func (s *ContratoService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeErr("delete contrato", err)
	}
	return nil
}

// DeleteByOwner implements ContratoCleaner.
func (s *ContratoService) DeleteByOwner(ctx context.Context, username string) (int64, error) {
	n, err := s.repo.DeleteByUsuario(ctx, username)
	if err != nil {
		return 0, storeErr("delete contratos by owner", err)
	}
	return n, nil
}

func validateContrato(c *dom.Contrato) error {
	c.Empresa = strings.TrimSpace(c.Empresa)
	c.Empleado = strings.TrimSpace(c.Empleado)
	if !c.RangoValido() {
		return ErrRangoFechas
	}
	if strings.TrimSpace(c.UsuarioUsername) == "" {
		return ErrInvalidInput
	}
	return nil
}
