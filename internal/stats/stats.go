// Package stats derives aggregate statistics and per-match results from
// raw rows. Everything here is pure: no I/O, no mutation of inputs.
package stats

import (
	"fmt"
	"sort"

	"github.com/thunderfc/clubsync/internal/team"
)

// Result is the outcome of a game from our perspective.
type Result string

const (
	Win  Result = "W"
	Draw Result = "D"
	Loss Result = "L"
)

// SummarySource records which variant of the aggregate logic produced a
// Summary.
type SummarySource string

const (
	// SourceAggregate means the externally maintained team_statistics row
	// was projected. This is the authoritative mode whenever the row exists.
	SourceAggregate SummarySource = "aggregate"
	// SourceDerived means the numbers were recomputed client-side from raw
	// game and player rows because no aggregate row was available.
	SourceDerived SummarySource = "derived"
)

// RecentMatch is one entry of the recent-form strip.
type RecentMatch struct {
	ID       string `json:"id"`
	Opponent string `json:"opponent"`
	Score    string `json:"score"`
	Result   Result `json:"result"`
	Date     string `json:"date"`
}

// Summary is the headline aggregate shown to consumers.
type Summary struct {
	TotalMatches   int           `json:"total_matches"`
	Wins           int           `json:"wins"`
	Draws          int           `json:"draws"`
	Losses         int           `json:"losses"`
	GoalsFor       int           `json:"goals_for"`
	GoalsAgainst   int           `json:"goals_against"`
	GoalDifference int           `json:"goal_difference"`
	Points         int           `json:"points"`
	TotalPlayers   int           `json:"total_players"`
	TotalGoals     int           `json:"total_goals"`
	Source         SummarySource `json:"source"`
}

// MatchResult computes the game's outcome from our perspective. It returns
// nil unless the game is completed with both scores present, so an
// upcoming or half-recorded game can never render as a result.
func MatchResult(game team.Game) *Result {
	if game.Status != team.GameCompleted || game.HomeScore == nil || game.AwayScore == nil {
		return nil
	}

	ourScore, theirScore := perspective(game)
	var result Result
	switch {
	case ourScore > theirScore:
		result = Win
	case ourScore < theirScore:
		result = Loss
	default:
		result = Draw
	}
	return &result
}

func perspective(game team.Game) (ours, theirs int) {
	if game.IsHome {
		return *game.HomeScore, *game.AwayScore
	}
	return *game.AwayScore, *game.HomeScore
}

// RecentMatches returns the last n completed games, newest first. The
// input slice is never mutated; calling twice with the same input yields
// the same output.
func RecentMatches(games []team.Game, n int) []RecentMatch {
	completed := make([]team.Game, 0, len(games))
	for _, g := range games {
		if MatchResult(g) != nil {
			completed = append(completed, g)
		}
	}

	sort.SliceStable(completed, func(i, j int) bool {
		// Dates are ISO yyyy-mm-dd, so lexicographic order is date order.
		return completed[i].Date > completed[j].Date
	})

	if n > len(completed) {
		n = len(completed)
	}
	recent := make([]RecentMatch, 0, n)
	for _, g := range completed[:n] {
		ours, theirs := perspective(g)
		recent = append(recent, RecentMatch{
			ID:       g.ID,
			Opponent: g.Opponent,
			Score:    fmt.Sprintf("%d-%d", ours, theirs),
			Result:   *MatchResult(g),
			Date:     g.Date,
		})
	}
	return recent
}

// Summarize produces the headline aggregate. When the externally
// maintained team_statistics row is present it is authoritative, with goal
// difference recomputed from goals_for and goals_against rather than
// trusted from the stored column. Without it, wins/draws/losses and goal
// totals are derived from the raw game rows, and total goals from summing
// player goals.
func Summarize(teamStats *team.TeamStatistics, games []team.Game, players []team.Player) Summary {
	if teamStats != nil {
		return Summary{
			TotalMatches:   teamStats.MatchesPlayed,
			Wins:           teamStats.Wins,
			Draws:          teamStats.Draws,
			Losses:         teamStats.Losses,
			GoalsFor:       teamStats.GoalsFor,
			GoalsAgainst:   teamStats.GoalsAgainst,
			GoalDifference: teamStats.GoalsFor - teamStats.GoalsAgainst,
			Points:         teamStats.Points,
			TotalPlayers:   len(players),
			TotalGoals:     teamStats.GoalsFor,
			Source:         SourceAggregate,
		}
	}

	summary := Summary{
		TotalPlayers: len(players),
		Source:       SourceDerived,
	}
	for _, g := range games {
		result := MatchResult(g)
		if result == nil {
			continue
		}
		ours, theirs := perspective(g)
		summary.TotalMatches++
		summary.GoalsFor += ours
		summary.GoalsAgainst += theirs
		switch *result {
		case Win:
			summary.Wins++
			summary.Points += 3
		case Draw:
			summary.Draws++
			summary.Points++
		case Loss:
			summary.Losses++
		}
	}
	summary.GoalDifference = summary.GoalsFor - summary.GoalsAgainst
	for _, p := range players {
		summary.TotalGoals += p.Goals
	}
	return summary
}
