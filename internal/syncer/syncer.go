package syncer

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/thunderfc/clubsync/internal/changefeed"
	"github.com/thunderfc/clubsync/internal/logostore"
	"github.com/thunderfc/clubsync/internal/metrics"
	"github.com/thunderfc/clubsync/internal/notifier"
	"github.com/thunderfc/clubsync/internal/stats"
	"github.com/thunderfc/clubsync/internal/team"
)

// New creates a new Syncer. It performs no I/O until Activate.
func New(store team.TeamStore, feed changefeed.Subscriber, notif notifier.Notifier, metricsSvc metrics.Metrics, logos logostore.Store, logoMaxBytes int64) *Syncer {
	return &Syncer{
		store:        store,
		feed:         feed,
		notifier:     notif,
		metrics:      metricsSvc,
		logos:        logos,
		logoMaxBytes: logoMaxBytes,
		loading:      true,
	}
}

// Activate performs the initial fan-out load of all five collections and
// arms exactly one change-feed subscription per collection. Calling it
// again without an intervening Deactivate re-loads but does not re-arm.
// A load failure is returned (and surfaced via the notifier) but leaves
// the Syncer usable with whatever state it has.
func (s *Syncer) Activate(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	gen := s.generation
	s.mu.Unlock()

	log.Info("Activating sync, fetching all collections")
	errs := s.fetchAll(ctx, gen)

	s.mu.Lock()
	if gen == s.generation {
		s.loading = false
	}
	s.mu.Unlock()

	if len(errs) > 0 {
		s.notifier.SendError("Failed to load data")
	}

	s.arm(ctx)
	return errors.Join(errs...)
}

// fetchAll fetches every collection concurrently and waits for all of them.
func (s *Syncer) fetchAll(ctx context.Context, gen uint64) []error {
	results := make(chan error, len(changefeed.Collections))
	for _, collection := range changefeed.Collections {
		go func(c changefeed.Collection) {
			results <- s.refresh(ctx, gen, c)
		}(collection)
	}

	var errs []error
	for range changefeed.Collections {
		if err := <-results; err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func (s *Syncer) arm(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.armed {
		log.Debug("Change feed already armed, skipping")
		return
	}

	for _, collection := range changefeed.Collections {
		c := collection
		sub, err := s.feed.Subscribe(ctx, c, func() { s.onRemoteChange(c) })
		if err != nil {
			log.Error("Failed to subscribe to change feed", "error", err, "collection", c)
			continue
		}
		s.subs = append(s.subs, sub)
	}
	s.armed = true
}

// onRemoteChange reacts to a change-feed notification by re-fetching the
// whole collection; the notification carries no payload and no partial
// patch is ever applied. Game changes also refresh the aggregate row.
func (s *Syncer) onRemoteChange(collection changefeed.Collection) {
	s.metrics.IncChangeEvent(string(collection))

	s.mu.Lock()
	gen := s.generation
	s.mu.Unlock()

	ctx := context.Background()
	if err := s.refresh(ctx, gen, collection); err != nil {
		return
	}
	if collection == changefeed.CollectionGames {
		s.refresh(ctx, gen, changefeed.CollectionTeamStats)
	}
}

// refresh fetches one collection and commits it, unless the Syncer has
// moved to a newer generation since the fetch began; a late result for a
// detached session is discarded. Whichever fetch commits last wins, which
// is sound because fetches are idempotent reads of the remote state.
func (s *Syncer) refresh(ctx context.Context, gen uint64, collection changefeed.Collection) error {
	s.metrics.IncFetch(string(collection))

	var commit func()
	var err error
	switch collection {
	case changefeed.CollectionPlayers:
		var players []team.Player
		if players, err = s.store.GetPlayers(ctx); err == nil {
			commit = func() { s.players = players }
		}
	case changefeed.CollectionGames:
		var games []team.Game
		if games, err = s.store.GetGames(ctx); err == nil {
			commit = func() { s.games = games }
		}
	case changefeed.CollectionNews:
		var news []team.NewsArticle
		if news, err = s.store.GetNews(ctx); err == nil {
			commit = func() { s.news = news }
		}
	case changefeed.CollectionTeamStats:
		var teamStats *team.TeamStatistics
		if teamStats, err = s.store.GetTeamStats(ctx); err == nil {
			commit = func() { s.teamStats = teamStats }
		}
	case changefeed.CollectionTeamBranding:
		var branding *team.TeamBranding
		if branding, err = s.store.GetTeamBranding(ctx); err == nil {
			commit = func() { s.teamBranding = branding }
		}
	default:
		err = fmt.Errorf("unknown collection %q", collection)
	}

	if err != nil {
		log.Error("Failed to fetch collection", "error", err, "collection", collection)
		s.metrics.IncFetchError(string(collection))
		s.notifier.SendError("Failed to fetch " + string(collection))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		log.Debug("Discarding stale fetch result", "collection", collection)
		return nil
	}
	commit()
	s.summary = stats.Summarize(s.teamStats, s.games, s.players)
	s.recent = stats.RecentMatches(s.games, 3)
	return nil
}

// Snapshot returns a copy of the current state. Before the first Activate
// completes it is empty with Loading set, never undefined.
func (s *Syncer) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Players:       append([]team.Player(nil), s.players...),
		Games:         append([]team.Game(nil), s.games...),
		News:          append([]team.NewsArticle(nil), s.news...),
		Stats:         s.summary,
		RecentMatches: append([]stats.RecentMatch(nil), s.recent...),
		Loading:       s.loading,
	}
	if s.teamStats != nil {
		ts := *s.teamStats
		snap.TeamStats = &ts
	}
	if s.teamBranding != nil {
		tb := *s.teamBranding
		snap.TeamBranding = &tb
	}
	return snap
}

// Mutate writes through the remote store and re-fetches the affected
// collections before returning, so the caller's next Snapshot reflects the
// write without waiting for the change feed. It reports the outcome as a
// boolean and via the notifier; it never panics and nothing propagates to
// the caller as an error.
func (s *Syncer) Mutate(ctx context.Context, kind MutationKind, op MutationOp, payload any) bool {
	key := mutationKey{Kind: kind, Op: op}
	targets, ok := refreshTargets[key]
	if !ok {
		log.Error("Unsupported mutation", "kind", kind, "op", op)
		s.metrics.IncMutationFailure(string(kind))
		s.notifier.SendError(fmt.Sprintf("Unsupported mutation %s/%s", kind, op))
		return false
	}

	err := s.apply(ctx, key, payload)
	if err != nil {
		log.Error("Mutation failed", "error", err, "kind", kind, "op", op)
		s.metrics.IncMutationFailure(string(kind))
		s.notifier.SendError(failureMessage(key))
		return false
	}

	s.metrics.IncMutationSuccess(string(kind))
	s.notifier.SendSuccess(successMessage(key))

	s.mu.Lock()
	gen := s.generation
	s.mu.Unlock()
	for _, collection := range targets {
		s.refresh(ctx, gen, collection)
	}
	return true
}

func (s *Syncer) apply(ctx context.Context, key mutationKey, payload any) error {
	switch key {
	case mutationKey{KindPlayer, OpInsert}:
		player, ok := payload.(team.NewPlayer)
		if !ok {
			return badPayload(key, payload)
		}
		_, err := s.store.InsertPlayer(ctx, player)
		return err
	case mutationKey{KindPlayer, OpUpdate}:
		patch, ok := payload.(PlayerPatch)
		if !ok {
			return badPayload(key, payload)
		}
		return s.store.UpdatePlayer(ctx, patch.ID, patch.Fields)
	case mutationKey{KindGame, OpInsert}:
		game, ok := payload.(team.NewGame)
		if !ok {
			return badPayload(key, payload)
		}
		_, err := s.store.InsertGame(ctx, game)
		return err
	case mutationKey{KindGame, OpUpdate}:
		patch, ok := payload.(GamePatch)
		if !ok {
			return badPayload(key, payload)
		}
		return s.store.UpdateGame(ctx, patch.ID, patch.Fields)
	case mutationKey{KindNews, OpInsert}:
		article, ok := payload.(team.NewNewsArticle)
		if !ok {
			return badPayload(key, payload)
		}
		_, err := s.store.InsertNews(ctx, article)
		return err
	case mutationKey{KindLogo, OpUpdate}:
		upload, ok := payload.(LogoUpload)
		if !ok {
			return badPayload(key, payload)
		}
		return s.uploadLogo(ctx, upload)
	default:
		return fmt.Errorf("unsupported mutation %s/%s", key.Kind, key.Op)
	}
}

func (s *Syncer) uploadLogo(ctx context.Context, upload LogoUpload) error {
	if err := logostore.Validate(upload.Data, upload.ContentType, s.logoMaxBytes); err != nil {
		s.metrics.IncUploadRejected()
		return err
	}

	s.mu.Lock()
	branding := s.teamBranding
	s.mu.Unlock()
	if branding == nil {
		return errors.New("no team branding row loaded")
	}

	url, err := s.logos.Upload(ctx, logostore.FileName(upload.ContentType), upload.Data, upload.ContentType)
	if err != nil {
		return err
	}
	return s.store.SetBrandingLogo(ctx, branding.ID, url)
}

// Deactivate tears down every subscription opened by this activation
// exactly once and invalidates in-flight fetches. It is an idempotent
// no-op when already deactivated.
func (s *Syncer) Deactivate() {
	s.mu.Lock()
	s.generation++
	if !s.armed {
		s.mu.Unlock()
		return
	}
	subs := s.subs
	s.subs = nil
	s.armed = false
	s.mu.Unlock()

	for _, sub := range subs {
		s.feed.Unsubscribe(sub)
	}
	log.Info("Sync deactivated", "closed_subscriptions", len(subs))
}

func badPayload(key mutationKey, payload any) error {
	return fmt.Errorf("unexpected payload type %T for %s/%s", payload, key.Kind, key.Op)
}

func successMessage(key mutationKey) string {
	switch key {
	case mutationKey{KindPlayer, OpInsert}:
		return "Player added successfully"
	case mutationKey{KindPlayer, OpUpdate}:
		return "Player updated successfully"
	case mutationKey{KindGame, OpInsert}:
		return "Game added successfully"
	case mutationKey{KindGame, OpUpdate}:
		return "Game updated successfully"
	case mutationKey{KindNews, OpInsert}:
		return "News article added successfully"
	case mutationKey{KindLogo, OpUpdate}:
		return "Team logo updated successfully"
	}
	return "Operation completed"
}

func failureMessage(key mutationKey) string {
	switch key {
	case mutationKey{KindPlayer, OpInsert}:
		return "Failed to add player"
	case mutationKey{KindPlayer, OpUpdate}:
		return "Failed to update player"
	case mutationKey{KindGame, OpInsert}:
		return "Failed to add game"
	case mutationKey{KindGame, OpUpdate}:
		return "Failed to update game"
	case mutationKey{KindNews, OpInsert}:
		return "Failed to add news article"
	case mutationKey{KindLogo, OpUpdate}:
		return "Failed to upload logo"
	}
	return "Operation failed"
}
