package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bravo-menu-api/internal/application/dto"
)

type fakeMigrator struct {
	up      int
	down    int
	version int64
}

func (f *fakeMigrator) Up(context.Context) error { f.up++; return nil }
func (f *fakeMigrator) Down(_ context.Context, steps int) error {
	f.down += steps
	return nil
}
func (f *fakeMigrator) Status(context.Context) (int64, error) { return f.version, nil }

type fakePlans struct {
	swept   int64
	granted map[string]int
	revoked []string
	failing bool
}

func (f *fakePlans) Sweep(context.Context) (int64, error) { return f.swept, nil }

func (f *fakePlans) Grant(_ context.Context, id string, days int) (*dto.TransitionResponse, error) {
	if f.granted == nil {
		f.granted = map[string]int{}
	}
	f.granted[id] = days
	tr := &dto.TransitionResponse{State: "committed"}
	if f.failing {
		tr.State = "rolled_back"
		tr.Error = "sin conexión"
	}
	return tr, nil
}

func (f *fakePlans) Revoke(_ context.Context, id string) (*dto.TransitionResponse, error) {
	if id == "missing" {
		return nil, errors.New("recurso no encontrado")
	}
	f.revoked = append(f.revoked, id)
	return &dto.TransitionResponse{State: "committed"}, nil
}

func run(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMigrateCommands(t *testing.T) {
	m := &fakeMigrator{version: 1}
	app := &App{Migrator: m, Plans: &fakePlans{}}

	_, err := run(t, app, "migrate", "up")
	require.NoError(t, err)
	assert.Equal(t, 1, m.up)

	_, err = run(t, app, "migrate", "down", "--steps", "2")
	require.NoError(t, err)
	assert.Equal(t, 2, m.down)

	_, err = run(t, app, "migrate", "down", "--steps", "0")
	assert.Error(t, err)

	out, err := run(t, app, "migrate", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "versión: 1")
}

func TestPlansReconcile(t *testing.T) {
	out, err := run(t, &App{Plans: &fakePlans{swept: 3}}, "plans", "reconcile")
	require.NoError(t, err)
	assert.Contains(t, out, "3 negocio(s) degradado(s)")
}

func TestPlansGrantRevoke(t *testing.T) {
	p := &fakePlans{}
	app := &App{Plans: p}

	out, err := run(t, app, "plans", "grant", "b1", "--days", "15")
	require.NoError(t, err)
	assert.Equal(t, 15, p.granted["b1"])
	assert.Contains(t, out, `"state": "committed"`)

	_, err = run(t, app, "plans", "grant")
	assert.Error(t, err, "falta el id")

	_, err = run(t, app, "plans", "revoke", "b1")
	require.NoError(t, err)
	assert.Equal(t, []string{"b1"}, p.revoked)

	_, err = run(t, app, "plans", "revoke", "missing")
	assert.Error(t, err)
}

func TestPlansGrant_Revertida_Error(t *testing.T) {
	out, err := run(t, &App{Plans: &fakePlans{failing: true}}, "plans", "grant", "b1")
	require.Error(t, err)
	assert.Contains(t, out, `"state": "rolled_back"`)
}
