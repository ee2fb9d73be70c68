package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// patchBuilder arma un UPDATE solo con las columnas presentes. $1 queda reservado para el id.
type patchBuilder struct {
	sets []string
	args []any
}

func newPatch(id string) *patchBuilder {
	return &patchBuilder{args: []any{id}}
}

func (p *patchBuilder) set(column string, value any) {
	p.args = append(p.args, value)
	p.sets = append(p.sets, fmt.Sprintf("%s = $%d", column, len(p.args)))
}

func (p *patchBuilder) empty() bool {
	return len(p.sets) == 0
}

// sql devuelve la sentencia; touch agrega updated_at = now().
func (p *patchBuilder) sql(table string, touch bool) string {
	sets := p.sets
	if touch {
		sets = append(append([]string(nil), sets...), "updated_at = now()")
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = $1", table, strings.Join(sets, ", "))
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
