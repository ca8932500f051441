package repo

import (
	"context"
	"fmt"

	dom "sgc/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UsuarioRepo provides usuario persistence.
type UsuarioRepo interface {
	Create(ctx context.Context, u dom.Usuario) error
	GetByUsername(ctx context.Context, username string) (dom.Usuario, error)
	List(ctx context.Context) ([]dom.Usuario, error)
	Update(ctx context.Context, u dom.Usuario) error
	Delete(ctx context.Context, username string) error
}

// PGUsuarioRepo implements UsuarioRepo with Postgres.
type PGUsuarioRepo struct {
	db *pgxpool.Pool
}

// NewPGUsuarioRepo returns a new PGUsuarioRepo.
func NewPGUsuarioRepo(db *pgxpool.Pool) *PGUsuarioRepo {
	return &PGUsuarioRepo{db: db}
}

// Create inserts a new usuario.
func (r *PGUsuarioRepo) Create(ctx context.Context, u dom.Usuario) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO usuario (username, password, nombre, email) VALUES ($1, $2, $3, $4)`,
		u.Username, u.Password, u.Nombre, u.Email,
	)
	if err != nil {
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByUsername returns the usuario by username, or pgx.ErrNoRows.
func (r *PGUsuarioRepo) GetByUsername(ctx context.Context, username string) (dom.Usuario, error) {
	var u dom.Usuario
	err := r.db.QueryRow(ctx,
		`SELECT username, password, nombre, email FROM usuario WHERE username = $1`,
		username,
	).Scan(&u.Username, &u.Password, &u.Nombre, &u.Email)
	return u, err
}

func (r *PGUsuarioRepo) List(ctx context.Context) ([]dom.Usuario, error) {
	rows, err := r.db.Query(ctx, `SELECT username, password, nombre, email FROM usuario ORDER BY username`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	list := []dom.Usuario{}
	for rows.Next() {
		var u dom.Usuario
		if err := rows.Scan(&u.Username, &u.Password, &u.Nombre, &u.Email); err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Update overwrites password, nombre and email. The username is only the lookup key.
func (r *PGUsuarioRepo) Update(ctx context.Context, u dom.Usuario) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE usuario SET password = $2, nombre = $3, email = $4 WHERE username = $1`,
		u.Username, u.Password, u.Nombre, u.Email,
	)
	if err != nil {
		return fmt.Errorf("update usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func (r *PGUsuarioRepo) Delete(ctx context.Context, username string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM usuario WHERE username = $1`, username)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
