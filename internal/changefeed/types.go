package changefeed

import "context"

// Collection identifies one of the five logical entity sets kept in sync.
type Collection string

const (
	CollectionPlayers      Collection = "players"
	CollectionGames        Collection = "games"
	CollectionNews         Collection = "news"
	CollectionTeamStats    Collection = "team_statistics"
	CollectionTeamBranding Collection = "team_branding"
)

// Collections lists every collection, in fetch order.
var Collections = []Collection{
	CollectionPlayers,
	CollectionGames,
	CollectionNews,
	CollectionTeamStats,
	CollectionTeamBranding,
}

// Event is the envelope published on a collection's topic. It deliberately
// carries no row data: consumers react by re-fetching the whole collection,
// never by applying a partial patch.
type Event struct {
	Collection string `msgpack:"collection"`
	Op         string `msgpack:"op"`
	At         int64  `msgpack:"at"`
}

// Subscription is an open live-update channel for one collection. It is
// exclusively owned by the activation that opened it.
type Subscription struct {
	ID         string
	Collection Collection

	cancel context.CancelFunc
	done   chan struct{}
}
