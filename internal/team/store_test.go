package team_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thunderfc/clubsync/internal/changefeed"
	"github.com/thunderfc/clubsync/internal/database"
	"github.com/thunderfc/clubsync/internal/team"
)

// setupTestStore creates a temporary in-memory SQLite database for testing.
func setupTestStore(t *testing.T) (team.TeamStore, *changefeed.MockFeed, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)

	feed := changefeed.NewMock()
	store := team.New(db, feed)
	return store, feed, db, dbTeardown
}

func TestInsertAndGetPlayersOrderedByGoals(t *testing.T) {
	store, _, _, teardown := setupTestStore(t)
	defer teardown()
	ctx := context.Background()

	_, err := store.InsertPlayer(ctx, team.NewPlayer{Name: "Striker", Position: "Forward"})
	require.NoError(t, err)
	id, err := store.InsertPlayer(ctx, team.NewPlayer{Name: "Keeper", Position: "Goalkeeper"})
	require.NoError(t, err)

	// New players start with zeroed counters.
	players, err := store.GetPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, 0, players[0].Goals)

	err = store.UpdatePlayer(ctx, id, team.PlayerUpdate{Goals: intPtr(7)})
	require.NoError(t, err)

	players, err = store.GetPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Keeper", players[0].Name)
	assert.Equal(t, 7, players[0].Goals)
}

func TestUpdatePlayerUnknownID(t *testing.T) {
	store, _, _, teardown := setupTestStore(t)
	defer teardown()

	err := store.UpdatePlayer(context.Background(), "missing", team.PlayerUpdate{Goals: intPtr(1)})
	assert.Error(t, err)
}

func TestGamesOrderedByDateWithMOTMJoin(t *testing.T) {
	store, _, _, teardown := setupTestStore(t)
	defer teardown()
	ctx := context.Background()

	playerID, err := store.InsertPlayer(ctx, team.NewPlayer{Name: "Sarah Williams", Position: "Midfielder"})
	require.NoError(t, err)

	oldID, err := store.InsertGame(ctx, team.NewGame{Date: "2024-05-20", Opponent: "Athletic Club", IsHome: true})
	require.NoError(t, err)
	_, err = store.InsertGame(ctx, team.NewGame{Date: "2024-06-05", Opponent: "City United", IsHome: true})
	require.NoError(t, err)

	err = store.UpdateGame(ctx, oldID, team.GameUpdate{
		Status:       statusPtr(team.GameCompleted),
		HomeScore:    intPtr(4),
		AwayScore:    intPtr(0),
		MOTMPlayerID: &playerID,
	})
	require.NoError(t, err)

	games, err := store.GetGames(ctx)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "City United", games[0].Opponent)
	assert.Equal(t, "Athletic Club", games[1].Opponent)

	// The MOTM weak reference resolves to the player's name in the same fetch.
	require.NotNil(t, games[1].MOTMName)
	assert.Equal(t, "Sarah Williams", *games[1].MOTMName)
	require.NotNil(t, games[1].HomeScore)
	assert.Equal(t, 4, *games[1].HomeScore)

	// The upcoming fixture has no scores and no MOTM.
	assert.Nil(t, games[0].HomeScore)
	assert.Nil(t, games[0].MOTMName)
	assert.Equal(t, team.GameUpcoming, games[0].Status)
}

func TestNewsOrderedByPublishedAtAndImmutableTimestamp(t *testing.T) {
	store, _, db, teardown := setupTestStore(t)
	defer teardown()
	ctx := context.Background()

	firstID, err := store.InsertNews(ctx, team.NewNewsArticle{Title: "Older", Author: "Mike Stevens", Category: team.CategoryMatchResult})
	require.NoError(t, err)
	// Push the first article into the past; inserts always stamp "now".
	_, err = db.Exec("UPDATE news SET published_at = published_at - 3600 WHERE id = ?", firstID)
	require.NoError(t, err)

	_, err = store.InsertNews(ctx, team.NewNewsArticle{Title: "Newer", Author: "Lisa Parker", Category: team.CategoryPlayerNews})
	require.NoError(t, err)

	articles, err := store.GetNews(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "Newer", articles[0].Title)
	assert.Greater(t, articles[0].PublishedAt, articles[1].PublishedAt)
}

func TestUnknownEnumValuesAreCoerced(t *testing.T) {
	store, _, db, teardown := setupTestStore(t)
	defer teardown()
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO games (id, date, opponent, status) VALUES ('g1', '2024-01-01', 'X', 'postponed')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO news (id, title, author, category, published_at) VALUES ('n1', 'T', 'A', 'gossip', 1)`)
	require.NoError(t, err)

	games, err := store.GetGames(ctx)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, team.GameUpcoming, games[0].Status)

	articles, err := store.GetNews(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, team.CategoryTeamUpdate, articles[0].Category)
}

func TestHalfRecordedScoreReadsAsUnplayed(t *testing.T) {
	store, _, db, teardown := setupTestStore(t)
	defer teardown()

	_, err := db.Exec(`INSERT INTO games (id, date, opponent, status, home_score) VALUES ('g1', '2024-01-01', 'X', 'completed', 2)`)
	require.NoError(t, err)

	games, err := store.GetGames(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Nil(t, games[0].HomeScore)
	assert.Nil(t, games[0].AwayScore)
}

func TestSingletonReads(t *testing.T) {
	store, _, db, teardown := setupTestStore(t)
	defer teardown()
	ctx := context.Background()

	// Nothing seeded yet: both singletons read as nil, not as an error.
	ts, err := store.GetTeamStats(ctx)
	require.NoError(t, err)
	assert.Nil(t, ts)
	tb, err := store.GetTeamBranding(ctx)
	require.NoError(t, err)
	assert.Nil(t, tb)

	_, err = db.Exec(`INSERT INTO team_statistics (id, matches_played, wins, draws, losses, goals_for, goals_against, goal_difference, points)
		VALUES ('ts1', 3, 2, 0, 1, 8, 3, 5, 6)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO team_branding (id, team_name) VALUES ('tb1', 'Thunder FC')`)
	require.NoError(t, err)

	ts, err = store.GetTeamStats(ctx)
	require.NoError(t, err)
	require.NotNil(t, ts)
	assert.Equal(t, 2, ts.Wins)

	tb, err = store.GetTeamBranding(ctx)
	require.NoError(t, err)
	require.NotNil(t, tb)
	assert.Equal(t, "Thunder FC", tb.TeamName)
	assert.Nil(t, tb.LogoURL)

	err = store.SetBrandingLogo(ctx, "tb1", "http://localhost:8080/logos/logo.png")
	require.NoError(t, err)
	tb, err = store.GetTeamBranding(ctx)
	require.NoError(t, err)
	require.NotNil(t, tb.LogoURL)
	assert.Equal(t, "http://localhost:8080/logos/logo.png", *tb.LogoURL)
}

func TestWritesPublishChangeEvents(t *testing.T) {
	store, feed, _, teardown := setupTestStore(t)
	defer teardown()
	ctx := context.Background()

	_, err := store.InsertPlayer(ctx, team.NewPlayer{Name: "P", Position: "Forward"})
	require.NoError(t, err)
	require.Len(t, feed.PublishCalls, 1)
	assert.Equal(t, changefeed.CollectionPlayers, feed.PublishCalls[0].Collection)
	assert.Equal(t, "insert", feed.PublishCalls[0].Op)

	id, err := store.InsertGame(ctx, team.NewGame{Date: "2024-01-01", Opponent: "X"})
	require.NoError(t, err)
	err = store.UpdateGame(ctx, id, team.GameUpdate{Status: statusPtr(team.GameCancelled)})
	require.NoError(t, err)

	require.Len(t, feed.PublishCalls, 3)
	assert.Equal(t, changefeed.CollectionGames, feed.PublishCalls[2].Collection)
	assert.Equal(t, "update", feed.PublishCalls[2].Op)
}

func intPtr(v int) *int                            { return &v }
func statusPtr(s team.GameStatus) *team.GameStatus { return &s }
