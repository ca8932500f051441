package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	dom "sgc/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleContrato(owner string) dom.Contrato {
	return dom.Contrato{
		FechaFirma:       day(2024, 1, 10),
		FechaInicio:      day(2024, 2, 1),
		FechaFin:         day(2024, 12, 31),
		Empresa:          "Acme",
		Empleado:         "Juan Perez",
		Funciones:        "Desarrollo",
		Monto:            decimal.RequireFromString("1500.50"),
		FrecuenciaDePago: "Mensual",
		UsuarioUsername:  owner,
	}
}

// assertSameContrato compares field by field; decimals compare by value.
func assertSameContrato(t *testing.T, want, got dom.Contrato) {
	t.Helper()
	assert.Equal(t, want.ID, got.ID)
	assert.True(t, want.FechaFirma.Equal(got.FechaFirma), "fecha_firma %s != %s", want.FechaFirma, got.FechaFirma)
	assert.True(t, want.FechaInicio.Equal(got.FechaInicio), "fecha_inicio %s != %s", want.FechaInicio, got.FechaInicio)
	assert.True(t, want.FechaFin.Equal(got.FechaFin), "fecha_fin %s != %s", want.FechaFin, got.FechaFin)
	assert.Equal(t, want.Empresa, got.Empresa)
	assert.Equal(t, want.Empleado, got.Empleado)
	assert.Equal(t, want.Funciones, got.Funciones)
	assert.True(t, want.Monto.Equal(got.Monto), "monto %s != %s", want.Monto, got.Monto)
	assert.Equal(t, want.FrecuenciaDePago, got.FrecuenciaDePago)
	assert.Equal(t, want.UsuarioUsername, got.UsuarioUsername)
}

func TestPGContratoRepo_CreateGet(t *testing.T) {
	r := NewPGContratoRepo(testPool(t))
	ctx := context.Background()

	c := sampleContrato("alice")
	id1, err := r.Create(ctx, c)
	require.NoError(t, err)
	id2, err := r.Create(ctx, sampleContrato("bob"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), id1)
	assert.Greater(t, id2, id1)

	got, err := r.GetByID(ctx, id1)
	require.NoError(t, err)
	c.ID = id1
	assertSameContrato(t, c, got)
	assert.Equal(t, time.UTC, got.FechaInicio.Location())
}

func TestPGContratoRepo_List(t *testing.T) {
	r := NewPGContratoRepo(testPool(t))
	ctx := context.Background()
	for _, owner := range []string{"alice", "bob", "alice"} {
		_, err := r.Create(ctx, sampleContrato(owner))
		require.NoError(t, err)
	}

	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i := range all {
		assert.Equal(t, int64(i+1), all[i].ID)
	}

	mine, err := r.ListByUsuario(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, []int64{1, 3}, []int64{mine[0].ID, mine[1].ID})

	none, err := r.ListByUsuario(ctx, "carol")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPGContratoRepo_UpdateDelete(t *testing.T) {
	r := NewPGContratoRepo(testPool(t))
	ctx := context.Background()
	id, err := r.Create(ctx, sampleContrato("alice"))
	require.NoError(t, err)

	upd := sampleContrato("bob")
	upd.ID = id
	upd.Empresa = "Globex"
	upd.FechaFin = day(2025, 6, 30)
	upd.Monto = decimal.RequireFromString("999999999999.99")
	require.NoError(t, r.Update(ctx, upd))

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assertSameContrato(t, upd, got)

	require.NoError(t, r.Delete(ctx, id))
	_, err = r.GetByID(ctx, id)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestPGContratoRepo_MissingRows(t *testing.T) {
	r := NewPGContratoRepo(testPool(t))
	ctx := context.Background()

	_, err := r.GetByID(ctx, 42)
	assert.ErrorIs(t, err, pgx.ErrNoRows)

	c := sampleContrato("alice")
	c.ID = 42
	err = r.Update(ctx, c)
	assert.ErrorIs(t, err, ErrNoRowsAffected)
	assert.False(t, errors.Is(err, pgx.ErrNoRows))

	err = r.Delete(ctx, 42)
	assert.ErrorIs(t, err, ErrNoRowsAffected)
	assert.False(t, errors.Is(err, pgx.ErrNoRows))
}

func TestPGContratoRepo_DeleteByUsuario(t *testing.T) {
	r := NewPGContratoRepo(testPool(t))
	ctx := context.Background()
	for _, owner := range []string{"alice", "bob", "alice"} {
		_, err := r.Create(ctx, sampleContrato(owner))
		require.NoError(t, err)
	}

	n, err := r.DeleteByUsuario(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = r.DeleteByUsuario(ctx, "alice")
	require.NoError(t, err)
	assert.Zero(t, n)

	left, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "bob", left[0].UsuarioUsername)
}

func TestPGContratoRepo_OwnerNeedNotExist(t *testing.T) {
	r := NewPGContratoRepo(testPool(t))
	_, err := r.Create(context.Background(), sampleContrato("ghost"))
	assert.NoError(t, err, "usuario_username has no foreign key")
}
