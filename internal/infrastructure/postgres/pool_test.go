package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupIPv4_Literal(t *testing.T) {
	ip, err := lookupIPv4(context.Background(), "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", ip)

	_, err = lookupIPv4(context.Background(), "::1")
	assert.Error(t, err)
}

func TestPatchBuilder(t *testing.T) {
	p := newPatch("id-1")
	assert.True(t, p.empty())

	p.set("name", "Bravo")
	p.set("is_visible", false)
	assert.False(t, p.empty())
	assert.Equal(t, "UPDATE products SET name = $2, is_visible = $3, updated_at = now() WHERE id = $1", p.sql("products", true))
	assert.Equal(t, "UPDATE banners SET name = $2, is_visible = $3 WHERE id = $1", p.sql("banners", false))
	assert.Equal(t, []any{"id-1", "Bravo", false}, p.args)
}

func TestNullString(t *testing.T) {
	assert.Nil(t, nullString(""))
	assert.Equal(t, "x", derefString(nullString("x")))
	assert.Equal(t, "", derefString(nil))
}
