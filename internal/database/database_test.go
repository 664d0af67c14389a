package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thunderfc/clubsync/internal/database"
)

func TestInitDBCreatesSchema(t *testing.T) {
	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	defer teardown()

	for _, table := range []string{"players", "games", "news", "team_statistics", "team_branding"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestInitDBIsRerunnable(t *testing.T) {
	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	teardown()

	// Migrations are versioned; opening a second database runs them cleanly.
	db, teardown, err = database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	defer teardown()

	_, err = db.Exec("INSERT INTO players (id, name, position) VALUES ('p1', 'Test', 'Forward')")
	assert.NoError(t, err)
}
