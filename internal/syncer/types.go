package syncer

import (
	"sync"

	"github.com/thunderfc/clubsync/internal/changefeed"
	"github.com/thunderfc/clubsync/internal/logostore"
	"github.com/thunderfc/clubsync/internal/metrics"
	"github.com/thunderfc/clubsync/internal/notifier"
	"github.com/thunderfc/clubsync/internal/stats"
	"github.com/thunderfc/clubsync/internal/team"
)

// Syncer keeps an in-memory view of the team dataset continuously
// synchronized with the remote store. All subscription state is scoped to
// the instance, never package-wide, so independent instances do not
// interfere.
type Syncer struct {
	store        team.TeamStore
	feed         changefeed.Subscriber
	notifier     notifier.Notifier
	metrics      metrics.Metrics
	logos        logostore.Store
	logoMaxBytes int64

	mu           sync.Mutex
	players      []team.Player
	games        []team.Game
	news         []team.NewsArticle
	teamStats    *team.TeamStatistics
	teamBranding *team.TeamBranding
	summary      stats.Summary
	recent       []stats.RecentMatch
	loading      bool

	// armed guards subscription arming: re-activation without an
	// intervening Deactivate must never open a second set of channels.
	armed bool
	subs  []*changefeed.Subscription

	// generation is bumped on every Deactivate. A fetch that resolves
	// carrying an older generation commits nothing.
	generation uint64
}

// Snapshot is the consumer-facing view: current collections, derived
// aggregates and the loading flag. It is a copy; mutating it has no effect
// on the live state.
type Snapshot struct {
	Players       []team.Player        `json:"players"`
	Games         []team.Game          `json:"games"`
	News          []team.NewsArticle   `json:"news"`
	TeamStats     *team.TeamStatistics `json:"team_stats,omitempty"`
	TeamBranding  *team.TeamBranding   `json:"team_branding,omitempty"`
	Stats         stats.Summary        `json:"stats"`
	RecentMatches []stats.RecentMatch  `json:"recent_matches"`
	Loading       bool                 `json:"loading"`
}

// MutationKind selects the entity a mutation targets.
type MutationKind string

const (
	KindPlayer MutationKind = "player"
	KindGame   MutationKind = "game"
	KindNews   MutationKind = "news"
	KindLogo   MutationKind = "logo"
)

// MutationOp selects the operation.
type MutationOp string

const (
	OpInsert MutationOp = "insert"
	OpUpdate MutationOp = "update"
)

type mutationKey struct {
	Kind MutationKind
	Op   MutationOp
}

// refreshTargets declares which collections are re-fetched after each
// successful mutation. The explicit re-fetch closes the window where the
// caller's own view would be stale before the change-feed notification
// lands. A game update also refreshes team statistics, since completing a
// game moves the aggregate.
var refreshTargets = map[mutationKey][]changefeed.Collection{
	{KindPlayer, OpInsert}: {changefeed.CollectionPlayers},
	{KindPlayer, OpUpdate}: {changefeed.CollectionPlayers},
	{KindGame, OpInsert}:   {changefeed.CollectionGames},
	{KindGame, OpUpdate}:   {changefeed.CollectionGames, changefeed.CollectionTeamStats},
	{KindNews, OpInsert}:   {changefeed.CollectionNews},
	{KindLogo, OpUpdate}:   {changefeed.CollectionTeamBranding},
}

// PlayerPatch is the payload for a player update.
type PlayerPatch struct {
	ID     string            `json:"id"`
	Fields team.PlayerUpdate `json:"fields"`
}

// GamePatch is the payload for a game update.
type GamePatch struct {
	ID     string          `json:"id"`
	Fields team.GameUpdate `json:"fields"`
}

// LogoUpload is the payload for a logo mutation. Validation happens before
// any byte leaves the process.
type LogoUpload struct {
	Data        []byte `json:"data"`
	ContentType string `json:"content_type"`
}
