package service

import (
	"context"
	"sort"

	dom "sgc/internal/domain"
	"sgc/internal/repo"

	"github.com/jackc/pgx/v5"
)

// In-memory repository stubs.

type stubUsuarioRepo struct {
	users map[string]dom.Usuario
	// createErr, when set, is returned by Create instead of storing.
	createErr error
	// fault, when set, is returned by every call.
	fault error
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{users: make(map[string]dom.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u dom.Usuario) error {
	if r.fault != nil {
		return r.fault
	}
	if r.createErr != nil {
		return r.createErr
	}
	r.users[u.Username] = u
	return nil
}

func (r *stubUsuarioRepo) GetByUsername(_ context.Context, username string) (dom.Usuario, error) {
	if r.fault != nil {
		return dom.Usuario{}, r.fault
	}
	u, ok := r.users[username]
	if !ok {
		return dom.Usuario{}, pgx.ErrNoRows
	}
	return u, nil
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]dom.Usuario, error) {
	if r.fault != nil {
		return nil, r.fault
	}
	list := make([]dom.Usuario, 0, len(r.users))
	for _, u := range r.users {
		list = append(list, u)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Username < list[j].Username })
	return list, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u dom.Usuario) error {
	if r.fault != nil {
		return r.fault
	}
	if _, ok := r.users[u.Username]; !ok {
		return repo.ErrNoRowsAffected
	}
	r.users[u.Username] = u
	return nil
}

func (r *stubUsuarioRepo) Delete(_ context.Context, username string) error {
	if r.fault != nil {
		return r.fault
	}
	if _, ok := r.users[username]; !ok {
		return repo.ErrNoRowsAffected
	}
	delete(r.users, username)
	return nil
}

type stubContratoRepo struct {
	rows   map[int64]dom.Contrato
	nextID int64
	fault  error
}

func newStubContratoRepo() *stubContratoRepo {
	return &stubContratoRepo{rows: make(map[int64]dom.Contrato)}
}

func (r *stubContratoRepo) Create(_ context.Context, c dom.Contrato) (int64, error) {
	if r.fault != nil {
		return 0, r.fault
	}
	r.nextID++
	c.ID = r.nextID
	r.rows[c.ID] = c
	return c.ID, nil
}

func (r *stubContratoRepo) GetByID(_ context.Context, id int64) (dom.Contrato, error) {
	if r.fault != nil {
		return dom.Contrato{}, r.fault
	}
	c, ok := r.rows[id]
	if !ok {
		return dom.Contrato{}, pgx.ErrNoRows
	}
	return c, nil
}

func (r *stubContratoRepo) List(ctx context.Context) ([]dom.Contrato, error) {
	return r.filter(func(dom.Contrato) bool { return true })
}

func (r *stubContratoRepo) ListByUsuario(_ context.Context, username string) ([]dom.Contrato, error) {
	return r.filter(func(c dom.Contrato) bool { return c.UsuarioUsername == username })
}

func (r *stubContratoRepo) Update(_ context.Context, c dom.Contrato) error {
	if r.fault != nil {
		return r.fault
	}
	if _, ok := r.rows[c.ID]; !ok {
		return repo.ErrNoRowsAffected
	}
	r.rows[c.ID] = c
	return nil
}

func (r *stubContratoRepo) Delete(_ context.Context, id int64) error {
	if r.fault != nil {
		return r.fault
	}
	if _, ok := r.rows[id]; !ok {
		return repo.ErrNoRowsAffected
	}
	delete(r.rows, id)
	return nil
}

func (r *stubContratoRepo) DeleteByUsuario(_ context.Context, username string) (int64, error) {
	if r.fault != nil {
		return 0, r.fault
	}
	var n int64
	for id, c := range r.rows {
		if c.UsuarioUsername == username {
			delete(r.rows, id)
			n++
		}
	}
	return n, nil
}

func (r *stubContratoRepo) filter(keep func(dom.Contrato) bool) ([]dom.Contrato, error) {
	if r.fault != nil {
		return nil, r.fault
	}
	list := []dom.Contrato{}
	for _, c := range r.rows {
		if keep(c) {
			list = append(list, c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}
