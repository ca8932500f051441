package service

import (
	"context"
	"errors"
	"testing"

	dom "sgc/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alice = dom.Usuario{Username: "alice", Password: "pw1", Nombre: "Alice A", Email: "a@x.com"}

type recordingCleaner struct {
	calls []string
}

func (r *recordingCleaner) DeleteByOwner(_ context.Context, username string) (int64, error) {
	r.calls = append(r.calls, username)
	return 2, nil
}

func TestUsuarioCreate_TwiceYieldsAlreadyExists(t *testing.T) {
	svc := NewUsuarioService(newStubUsuarioRepo(), nil)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, alice))
	err := svc.Create(ctx, alice)
	assert.ErrorIs(t, err, ErrUsuarioExiste)
}

func TestUsuarioCreate_EmptyUsername(t *testing.T) {
	svc := NewUsuarioService(newStubUsuarioRepo(), nil)
	err := svc.Create(context.Background(), dom.Usuario{Username: "   ", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUsuarioCreate_KeepsUsernameAsGiven(t *testing.T) {
	svc := NewUsuarioService(newStubUsuarioRepo(), nil)
	ctx := context.Background()
	carl := dom.Usuario{Username: " carl ", Password: "pw"}
	require.NoError(t, svc.Create(ctx, carl))

	got, err := svc.FindByUsername(ctx, " carl ")
	require.NoError(t, err)
	assert.Equal(t, " carl ", got.Username)
	_, err = svc.FindByUsername(ctx, "carl")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.ValidateCredentials(ctx, " carl ", "pw")
	assert.NoError(t, err)
	require.NoError(t, svc.Update(ctx, dom.Usuario{Username: " carl ", Password: "pw2"}))
	require.NoError(t, svc.Delete(ctx, " carl "))
}

func TestUsuarioCreate_UniqueViolationRace(t *testing.T) {
	r := newStubUsuarioRepo()
	r.createErr = &pgconn.PgError{Code: "23505"}
	svc := NewUsuarioService(r, nil)

	err := svc.Create(context.Background(), alice)
	assert.ErrorIs(t, err, ErrUsuarioExiste)
}

func TestUsuarioCreate_StoreFaultIsPersistenceError(t *testing.T) {
	r := newStubUsuarioRepo()
	r.fault = errors.New("connection refused")
	svc := NewUsuarioService(r, nil)

	err := svc.Create(context.Background(), alice)
	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestUsuarioUpdate_RoundTrip(t *testing.T) {
	svc := NewUsuarioService(newStubUsuarioRepo(), nil)
	ctx := context.Background()
	require.NoError(t, svc.Create(ctx, alice))

	updated := dom.Usuario{Username: "alice", Password: "pw2", Nombre: "Alice B", Email: "b@x.com"}
	require.NoError(t, svc.Update(ctx, updated))

	got, err := svc.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUsuarioUpdate_NotFound(t *testing.T) {
	svc := NewUsuarioService(newStubUsuarioRepo(), nil)
	err := svc.Update(context.Background(), alice)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUsuarioDelete_ThenFindIsNotFound(t *testing.T) {
	svc := NewUsuarioService(newStubUsuarioRepo(), nil)
	ctx := context.Background()
	require.NoError(t, svc.Create(ctx, alice))

	require.NoError(t, svc.Delete(ctx, "alice"))
	_, err := svc.FindByUsername(ctx, "alice")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "alice"), ErrNotFound)
}

func TestUsuarioDelete_KeepPolicyLeavesContratos(t *testing.T) {
	svc := NewUsuarioService(newStubUsuarioRepo(), nil)
	ctx := context.Background()
	require.NoError(t, svc.Create(ctx, alice))

	contratos := newStubContratoRepo()
	ledger := NewContratoService(contratos)
	_, err := ledger.Create(ctx, contratoFor("alice", "2024-01-01", "2024-06-01"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "alice"))
	left, err := ledger.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, left, 1, "contratos keep a dangling owner")
}

func TestUsuarioDelete_CascadePolicy(t *testing.T) {
	svc := NewUsuarioService(newStubUsuarioRepo(), nil)
	cleaner := &recordingCleaner{}
	svc.CascadeTo(cleaner)
	ctx := context.Background()
	require.NoError(t, svc.Create(ctx, alice))

	require.NoError(t, svc.Delete(ctx, "alice"))
	assert.Equal(t, []string{"alice"}, cleaner.calls)

	// Unknown users are rejected before anything is removed.
	assert.ErrorIs(t, svc.Delete(ctx, "bob"), ErrNotFound)
	assert.Equal(t, []string{"alice"}, cleaner.calls)
}

func TestUsuarioList_OrderedByUsername(t *testing.T) {
	svc := NewUsuarioService(newStubUsuarioRepo(), nil)
	ctx := context.Background()
	for _, name := range []string{"carol", "alice", "bob"} {
		require.NoError(t, svc.Create(ctx, dom.Usuario{Username: name, Password: "x"}))
	}
	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "alice", list[0].Username)
	assert.Equal(t, "carol", list[2].Username)
}

func TestValidateCredentials(t *testing.T) {
	svc := NewUsuarioService(newStubUsuarioRepo(), nil)
	ctx := context.Background()
	require.NoError(t, svc.Create(ctx, alice))

	cases := []struct {
		name     string
		username string
		password string
		ok       bool
	}{
		{"exact match", "alice", "pw1", true},
		{"wrong password", "alice", "wrong", false},
		{"case sensitive", "alice", "PW1", false},
		{"no trimming", "alice", "pw1 ", false},
		{"unknown user", "bob", "pw1", false},
		{"empty password", "alice", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := svc.ValidateCredentials(ctx, tc.username, tc.password)
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, alice, u)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestValidateCredentials_EmptyStoredPassword(t *testing.T) {
	svc := NewUsuarioService(newStubUsuarioRepo(), nil)
	ctx := context.Background()
	eve := dom.Usuario{Username: "eve", Password: ""}
	require.NoError(t, svc.Create(ctx, eve))

	u, err := svc.ValidateCredentials(ctx, "eve", "")
	require.NoError(t, err)
	assert.Equal(t, eve, u)
	_, err = svc.ValidateCredentials(ctx, "eve", " ")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.ValidateCredentials(ctx, "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateCredentials_StoreFaultIsNotAuthFailure(t *testing.T) {
	r := newStubUsuarioRepo()
	r.fault = errors.New("timeout")
	svc := NewUsuarioService(r, nil)

	_, err := svc.ValidateCredentials(context.Background(), "alice", "pw1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateCredentials_Bcrypt(t *testing.T) {
	r := newStubUsuarioRepo()
	svc := NewUsuarioService(r, BcryptVerifier{Cost: 4})
	ctx := context.Background()
	require.NoError(t, svc.Create(ctx, alice))

	assert.NotEqual(t, "pw1", r.users["alice"].Password, "password is stored hashed")
	_, err := svc.ValidateCredentials(ctx, "alice", "pw1")
	assert.NoError(t, err)
	_, err = svc.ValidateCredentials(ctx, "alice", "pw2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestNewPasswordVerifier(t *testing.T) {
	v, err := NewPasswordVerifier("")
	require.NoError(t, err)
	assert.IsType(t, PlainVerifier{}, v)

	v, err = NewPasswordVerifier(PasswordModeBcrypt)
	require.NoError(t, err)
	assert.IsType(t, BcryptVerifier{}, v)

	_, err = NewPasswordVerifier("md5")
	assert.Error(t, err)
}
