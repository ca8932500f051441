package repo

import (
	"context"
	"fmt"

	dom "sgc/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContratoRepo interface {
	Create(ctx context.Context, c dom.Contrato) (int64, error)
	GetByID(ctx context.Context, id int64) (dom.Contrato, error)
	List(ctx context.Context) ([]dom.Contrato, error)
	ListByUsuario(ctx context.Context, username string) ([]dom.Contrato, error)
	Update(ctx context.Context, c dom.Contrato) error
	Delete(ctx context.Context, id int64) error
	DeleteByUsuario(ctx context.Context, username string) (int64, error)
}

const contratoColumns = `id, fecha_firma, fecha_inicio, fecha_fin, empresa, empleado, funciones, monto, frecuencia_de_pago, usuario_username`

type PGContratoRepo struct {
	db *pgxpool.Pool
}

func NewPGContratoRepo(db *pgxpool.Pool) *PGContratoRepo {
	return &PGContratoRepo{db: db}
}

// Create inserts c and returns the id generated by the store.
func (r *PGContratoRepo) Create(ctx context.Context, c dom.Contrato) (int64, error) {
	query := `
		INSERT INTO contrato (fecha_firma, fecha_inicio, fecha_fin, empresa, empleado, funciones, monto, frecuencia_de_pago, usuario_username)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	var id int64
	err := r.db.QueryRow(ctx, query,
		c.FechaFirma, c.FechaInicio, c.FechaFin, c.Empresa, c.Empleado, c.Funciones,
		c.Monto, c.FrecuenciaDePago, c.UsuarioUsername,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert contrato: %w", err)
	}
	return id, nil
}

// GetByID returns the contrato or pgx.ErrNoRows.
func (r *PGContratoRepo) GetByID(ctx context.Context, id int64) (dom.Contrato, error) {
	row := r.db.QueryRow(ctx, `SELECT `+contratoColumns+` FROM contrato WHERE id = $1`, id)
	return scanContrato(row)
}

func (r *PGContratoRepo) List(ctx context.Context) ([]dom.Contrato, error) {
	rows, err := r.db.Query(ctx, `SELECT `+contratoColumns+` FROM contrato ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collectContratos(rows)
}

func (r *PGContratoRepo) ListByUsuario(ctx context.Context, username string) ([]dom.Contrato, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+contratoColumns+` FROM contrato WHERE usuario_username = $1 ORDER BY id`, username)
	if err != nil {
		return nil, err
	}
	return collectContratos(rows)
}

// Update replaces every column of the contrato identified by c.ID, owner included.
func (r *PGContratoRepo) Update(ctx context.Context, c dom.Contrato) error {
	query := `
		UPDATE contrato SET fecha_firma = $2, fecha_inicio = $3, fecha_fin = $4, empresa = $5, empleado = $6,
			funciones = $7, monto = $8, frecuencia_de_pago = $9, usuario_username = $10
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		c.ID, c.FechaFirma, c.FechaInicio, c.FechaFin, c.Empresa, c.Empleado, c.Funciones,
		c.Monto, c.FrecuenciaDePago, c.UsuarioUsername,
	)
	if err != nil {
		return fmt.Errorf("update contrato: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func (r *PGContratoRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM contrato WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contrato: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// DeleteByUsuario removes every contrato owned by username and returns how many were removed.
func (r *PGContratoRepo) DeleteByUsuario(ctx context.Context, username string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM contrato WHERE usuario_username = $1`, username)
	if err != nil {
		return 0, fmt.Errorf("delete contratos of %s: %w", username, err)
	}
	return tag.RowsAffected(), nil
}

func scanContrato(row pgx.Row) (dom.Contrato, error) {
	var c dom.Contrato
	err := row.Scan(&c.ID, &c.FechaFirma, &c.FechaInicio, &c.FechaFin, &c.Empresa, &c.Empleado,
		&c.Funciones, &c.Monto, &c.FrecuenciaDePago, &c.UsuarioUsername)
	return c, err
}

func collectContratos(rows pgx.Rows) ([]dom.Contrato, error) {
	defer rows.Close()
	list := []dom.Contrato{}
	for rows.Next() {
		c, err := scanContrato(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
