package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelect_WithEqAndContains(t *testing.T) {
	query, args, err := Select("id", "name").From("teams").
		Where(
			Eq("is_active", true),
			Contains("stadium", "tad"),
		).
		OrderBy("id").
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "SELECT id, name FROM teams WHERE is_active = $1 AND stadium LIKE $2 ORDER BY id", query)
	require.Equal(t, []any{true, "%tad%"}, args)
}

func TestSelect_NoConditions(t *testing.T) {
	query, args, err := Select("*").From("players").ToSQL()
	require.NoError(t, err)
	require.Equal(t, "SELECT * FROM players", query)
	require.Empty(t, args)
}

func TestSelect_MissingTable(t *testing.T) {
	_, _, err := Select("id").ToSQL()
	require.Error(t, err)
}

func TestInsert_WithReturning(t *testing.T) {
	query, args, err := InsertInto("teams").
		Columns("name", "country").
		Values("Sevilla FC", "Spain").
		Suffix("RETURNING id").
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "INSERT INTO teams (name, country) VALUES ($1, $2) RETURNING id", query)
	require.Equal(t, []any{"Sevilla FC", "Spain"}, args)
}

func TestInsert_ValueCountMismatch(t *testing.T) {
	_, _, err := InsertInto("teams").Columns("name", "country").Values("Sevilla FC").ToSQL()
	require.Error(t, err)
}

func TestUpdate_WithWhereAndSuffix(t *testing.T) {
	query, args, err := Update("teams").
		Set("name", "Real Betis").
		Set("is_active", false).
		Where(Eq("id", int64(7)), Eq("is_active", true)).
		Suffix("RETURNING id, name").
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "UPDATE teams SET name = $1, is_active = $2 WHERE id = $3 AND is_active = $4 RETURNING id, name", query)
	require.Equal(t, []any{"Real Betis", false, int64(7), true}, args)
}

func TestUpdate_RequiresSets(t *testing.T) {
	_, _, err := Update("teams").Where(Eq("id", 1)).ToSQL()
	require.Error(t, err)
}
