package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thunderfc/clubsync/internal/stats"
	"github.com/thunderfc/clubsync/internal/team"
)

func intPtr(v int) *int { return &v }

func completedGame(id, date string, isHome bool, homeScore, awayScore int) team.Game {
	return team.Game{
		ID:        id,
		Date:      date,
		Opponent:  "Test FC",
		IsHome:    isHome,
		HomeScore: intPtr(homeScore),
		AwayScore: intPtr(awayScore),
		Status:    team.GameCompleted,
	}
}

func TestMatchResultPerspective(t *testing.T) {
	home := completedGame("g1", "2024-01-10", true, 3, 1)
	result := stats.MatchResult(home)
	require.NotNil(t, result)
	assert.Equal(t, stats.Win, *result)

	// Same scoreline seen from the away side is a loss.
	away := completedGame("g2", "2024-01-10", false, 3, 1)
	result = stats.MatchResult(away)
	require.NotNil(t, result)
	assert.Equal(t, stats.Loss, *result)

	drawn := completedGame("g3", "2024-01-10", true, 2, 2)
	result = stats.MatchResult(drawn)
	require.NotNil(t, result)
	assert.Equal(t, stats.Draw, *result)
}

func TestMatchResultRequiresCompletedWithScores(t *testing.T) {
	upcoming := team.Game{ID: "g1", Date: "2024-01-10", Status: team.GameUpcoming}
	assert.Nil(t, stats.MatchResult(upcoming))

	cancelled := completedGame("g2", "2024-01-10", true, 1, 0)
	cancelled.Status = team.GameCancelled
	assert.Nil(t, stats.MatchResult(cancelled))

	halfRecorded := completedGame("g3", "2024-01-10", true, 1, 0)
	halfRecorded.AwayScore = nil
	assert.Nil(t, stats.MatchResult(halfRecorded))
}

func TestRecentMatchesFiltersSortsAndLimits(t *testing.T) {
	games := []team.Game{
		completedGame("g1", "2024-05-20", true, 4, 0),
		{ID: "g2", Date: "2024-06-10", Status: team.GameUpcoming},
		completedGame("g3", "2024-06-05", true, 3, 1),
		completedGame("g4", "2024-05-28", false, 1, 2),
		completedGame("g5", "2024-04-01", true, 0, 0),
	}

	recent := stats.RecentMatches(games, 3)
	require.Len(t, recent, 3)
	assert.Equal(t, "g3", recent[0].ID)
	assert.Equal(t, "g4", recent[1].ID)
	assert.Equal(t, "g1", recent[2].ID)

	// Away perspective: the score string reads ours-theirs.
	assert.Equal(t, "2-1", recent[1].Score)
	assert.Equal(t, stats.Win, recent[1].Result)
	assert.Equal(t, "3-1", recent[0].Score)

	// Pure: a second call on the same input yields the same output and the
	// input order is untouched.
	again := stats.RecentMatches(games, 3)
	assert.Equal(t, recent, again)
	assert.Equal(t, "g1", games[0].ID)
}

func TestRecentMatchesShortInput(t *testing.T) {
	games := []team.Game{completedGame("g1", "2024-05-20", true, 1, 0)}
	assert.Len(t, stats.RecentMatches(games, 3), 1)
	assert.Empty(t, stats.RecentMatches(nil, 3))
}

func TestSummarizeDerivedFallback(t *testing.T) {
	players := []team.Player{
		{ID: "p1", Name: "One", Goals: 5},
		{ID: "p2", Name: "Two", Goals: 3},
	}
	games := []team.Game{completedGame("g1", "2024-01-10", true, 1, 1)}

	summary := stats.Summarize(nil, games, players)
	assert.Equal(t, stats.SourceDerived, summary.Source)
	assert.Equal(t, 0, summary.Wins)
	assert.Equal(t, 1, summary.Draws)
	assert.Equal(t, 0, summary.Losses)
	assert.Equal(t, 8, summary.TotalGoals)
	assert.Equal(t, 2, summary.TotalPlayers)
	assert.Equal(t, 1, summary.TotalMatches)
	assert.Equal(t, 1, summary.Points)
}

func TestSummarizeAggregateIsAuthoritative(t *testing.T) {
	teamStats := &team.TeamStatistics{
		ID:            "ts1",
		MatchesPlayed: 10,
		Wins:          6,
		Draws:         2,
		Losses:        2,
		GoalsFor:      20,
		GoalsAgainst:  9,
		// Stored column deliberately disagrees with goals_for-goals_against.
		GoalDifference: 99,
		Points:         20,
	}
	players := []team.Player{{ID: "p1", Goals: 12}}

	summary := stats.Summarize(teamStats, nil, players)
	assert.Equal(t, stats.SourceAggregate, summary.Source)
	assert.Equal(t, 10, summary.TotalMatches)
	assert.Equal(t, 6, summary.Wins)
	assert.Equal(t, 11, summary.GoalDifference)
	assert.Equal(t, 1, summary.TotalPlayers)
	assert.Equal(t, 20, summary.TotalGoals)
}
