package service

import (
	"context"
	"errors"
	"strings"

	dom "sgc/internal/domain"
	"sgc/internal/repo"
	"sgc/internal/utils"

	"github.com/rs/zerolog/log"
)

// ContratoCleaner removes the contratos owned by a usuario.
type ContratoCleaner interface {
	DeleteByOwner(ctx context.Context, username string) (int64, error)
}

// UsuarioService owns the usuario lifecycle and credential checks.
type UsuarioService struct {
	repo      repo.UsuarioRepo
	passwords PasswordVerifier
	cascade   ContratoCleaner
}

// NewUsuarioService returns a new UsuarioService. A nil verifier means PlainVerifier.
func NewUsuarioService(r repo.UsuarioRepo, pw PasswordVerifier) *UsuarioService {
	if pw == nil {
		pw = PlainVerifier{}
	}
	return &UsuarioService{repo: r, passwords: pw}
}

// CascadeTo makes Delete remove the usuario's contratos first.
// Without it, contratos keep a dangling owner reference.
func (s *UsuarioService) CascadeTo(c ContratoCleaner) {
	s.cascade = c
}

// Create stores u unless its username is already taken. The username is
// stored exactly as given; a blank one is rejected.
func (s *UsuarioService) Create(ctx context.Context, u dom.Usuario) error {
	if strings.TrimSpace(u.Username) == "" {
		return ErrInvalidInput
	}
	_, err := s.repo.GetByUsername(ctx, u.Username)
	switch err = storeErr("get usuario", err); {
	case err == nil:
		return ErrUsuarioExiste
	case !errors.Is(err, ErrNotFound):
		log.Error().Err(err).Str("username", u.Username).Msg("usuario existence check failed")
		return err
	}

	hashed, err := s.passwords.Hash(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	if err := s.repo.Create(ctx, u); err != nil {
		// Lost a race with a concurrent create of the same username.
		if utils.IsPGUniqueViolation(err) {
			return ErrUsuarioExiste
		}
		log.Error().Err(err).Str("username", u.Username).Msg("create usuario failed")
		return storeErr("create usuario", err)
	}
	return nil
}

func (s *UsuarioService) FindByUsername(ctx context.Context, username string) (dom.Usuario, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return dom.Usuario{}, storeErr("get usuario", err)
	}
	return u, nil
}

func (s *UsuarioService) List(ctx context.Context) ([]dom.Usuario, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeErr("list usuarios", err)
	}
	return list, nil
}

// Update overwrites password, nombre and email of the usuario named by u.Username.
func (s *UsuarioService) Update(ctx context.Context, u dom.Usuario) error {
	hashed, err := s.passwords.Hash(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	if err := s.repo.Update(ctx, u); err != nil {
		return storeErr("update usuario", err)
	}
	return nil
}

func (s *UsuarioService) Delete(ctx context.Context, username string) error {
	if s.cascade != nil {
		if _, err := s.FindByUsername(ctx, username); err != nil {
			return err
		}
		n, err := s.cascade.DeleteByOwner(ctx, username)
		if err != nil {
			return err
		}
		log.Info().Str("username", username).Int64("contratos", n).Msg("cascaded contrato delete")
	}
	if err := s.repo.Delete(ctx, username); err != nil {
		return storeErr("delete usuario", err)
	}
	return nil
}

// ValidateCredentials returns the usuario if it exists and the verifier
// accepts password against the stored one.
func (s *UsuarioService) ValidateCredentials(ctx context.Context, username, password string) (dom.Usuario, error) {
	u, err := s.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return dom.Usuario{}, ErrInvalidCredentials
		}
		return dom.Usuario{}, err
	}
	if !s.passwords.Verify(u.Password, password) {
		return dom.Usuario{}, ErrInvalidCredentials
	}
	return u, nil
}
