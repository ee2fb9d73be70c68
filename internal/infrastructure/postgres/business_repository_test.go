package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bravo-menu-api/internal/domain"
)

// recordingQuerier guarda la última sentencia y responde con valores fijos.
type recordingQuerier struct {
	sql  string
	args []any
	tag  pgconn.CommandTag
	row  pgx.Row
}

func (q *recordingQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.sql, q.args = sql, args
	return q.tag, nil
}

func (q *recordingQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.sql, q.args = sql, args
	return nil, pgx.ErrNoRows
}

func (q *recordingQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sql, q.args = sql, args
	return q.row
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

func compact(sql string) string {
	return strings.Join(strings.Fields(sql), " ")
}

func TestDowngradeExpired_EscrituraCondicional(t *testing.T) {
	q := &recordingQuerier{tag: pgconn.NewCommandTag("UPDATE 2")}
	repo := NewBusinessRepository(q)
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	n, err := repo.DowngradeExpired(context.Background(), []string{"a", "b"}, now)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	sql := compact(q.sql)
	assert.Contains(t, sql, "SET plan = 'FREE', plan_expires_at = NULL")
	assert.Contains(t, sql, "WHERE id = ANY($1::uuid[]) AND plan = 'PRO' AND plan_expires_at < $2",
		"una renovación concurrente deja plan_expires_at en el futuro y la fila no se toca")
	assert.Equal(t, []any{[]string{"a", "b"}, now}, q.args)
}

func TestDowngradeExpired_SinIDsNoEscribe(t *testing.T) {
	q := &recordingQuerier{}
	n, err := NewBusinessRepository(q).DowngradeExpired(context.Background(), nil, time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, q.sql)
}

func TestAddRating_PromedioEnLaMismaSentencia(t *testing.T) {
	q := &recordingQuerier{row: errRow{err: pgx.ErrNoRows}}
	_, _, err := NewBusinessRepository(q).AddRating(context.Background(), "x", 4)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	sql := compact(q.sql)
	assert.Contains(t, sql, "ratings_sum = ratings_sum + $2")
	assert.Contains(t, sql, "average_rating = (ratings_sum + $2)::float8 / (ratings_count + 1)")
	assert.Contains(t, sql, "RETURNING average_rating, ratings_count")
	assert.Equal(t, []any{"x", 4}, q.args)
}
