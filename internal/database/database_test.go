package database

import (
	"database/sql"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesTables(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "")
	require.NoError(t, err, "InitDB should not return an error")
	defer teardown()

	for _, table := range []string{"players", "matches"} {
		var name string
		err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "Querying for %s table should not produce an error", table)
		assert.Equal(t, table, name)
	}
}

func TestInitDB_EnforcesConstraints(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "")
	require.NoError(t, err)
	defer teardown()

	_, err = db.Exec(`INSERT INTO players (id, name) VALUES (1, 'Alice'), (2, 'Bob')`)
	require.NoError(t, err)

	t.Run("rejects winner equal to loser", func(t *testing.T) {
		_, err := db.Exec(`INSERT INTO matches (winner_player_id, loser_player_id, winner_champion, loser_champion, match_date)
			VALUES (1, 1, 'Ahri', 'Zed', '2024-01-01')`)
		assert.Error(t, err)
	})

	t.Run("rejects unknown players", func(t *testing.T) {
		_, err := db.Exec(`INSERT INTO matches (winner_player_id, loser_player_id, winner_champion, loser_champion, match_date)
			VALUES (1, 99, 'Ahri', 'Zed', '2024-01-01')`)
		assert.Error(t, err)
	})

	t.Run("defaults approved to true", func(t *testing.T) {
		_, err := db.Exec(`INSERT INTO matches (winner_player_id, loser_player_id, winner_champion, loser_champion, match_date)
			VALUES (1, 2, 'Ahri', 'Zed', '2024-01-01')`)
		require.NoError(t, err)

		var approved bool
		require.NoError(t, db.QueryRow(`SELECT approved FROM matches LIMIT 1`).Scan(&approved))
		assert.True(t, approved)
	})
}

func TestInitDB_IsIdempotent(t *testing.T) {
	path := t.TempDir() + "/ranking.db"

	_, teardown, err := InitDB(path, "", "")
	require.NoError(t, err)
	teardown()

	db, teardown, err := InitDB(path, "", "")
	require.NoError(t, err)
	defer teardown()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM players`).Scan(&count))
	assert.Zero(t, count)
}

func TestDialectFor(t *testing.T) {
	assert.Equal(t, goose.DialectSQLite3, dialectFor(""), "local database")
	assert.Equal(t, goose.DialectSQLite3, dialectFor("libsql://x1-ranking.turso.io"), "turso primary")
}

func TestRunMigrations_WithSelectedDialect(t *testing.T) {
	db, err := sql.Open("sqlite3", localDSN(":memory:"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	require.NoError(t, runMigrations(db, dialectFor("libsql://x1-ranking.turso.io")))

	var name string
	require.NoError(t, db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='matches'").Scan(&name))
	assert.Equal(t, "matches", name)
}
