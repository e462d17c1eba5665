package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
)

// Bootstrap DDL applied on startup. Idempotent; cmd/migration owns the
// canonical migration history for deployed environments.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS teams (
    id        BIGSERIAL PRIMARY KEY,
    name      VARCHAR(30) NOT NULL,
    country   VARCHAR(20) NOT NULL,
    city      VARCHAR(20) NOT NULL,
    stadium   VARCHAR(30) NOT NULL,
    color     VARCHAR(20) NOT NULL,
    coach     VARCHAR(30) NOT NULL,
    is_active BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE INDEX IF NOT EXISTS idx_teams_name ON teams (name);
CREATE INDEX IF NOT EXISTS idx_teams_country ON teams (country);
CREATE INDEX IF NOT EXISTS idx_teams_city ON teams (city);

CREATE TABLE IF NOT EXISTS players (
    id          BIGSERIAL PRIMARY KEY,
    firstname   VARCHAR(30) NOT NULL,
    lastname    VARCHAR(30) NOT NULL,
    birthdate   DATE NOT NULL,
    height      DOUBLE PRECISION NOT NULL,
    nationality VARCHAR(30) NOT NULL,
    position    VARCHAR(20) NOT NULL,
    dorsal      INTEGER NOT NULL,
    team_id     BIGINT NOT NULL REFERENCES teams (id),
    is_active   BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE INDEX IF NOT EXISTS idx_players_firstname ON players (firstname);
CREATE INDEX IF NOT EXISTS idx_players_lastname ON players (lastname);
CREATE INDEX IF NOT EXISTS idx_players_team_id ON players (team_id);
`

// EnsureSchema creates the teams and players tables when absent.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return crerr.Wrap(err, "ensure schema")
	}

	return nil
}
