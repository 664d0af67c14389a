package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/thunderfc/clubsync/internal/syncer"
	"github.com/thunderfc/clubsync/internal/team"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// SnapshotHandler returns the full synchronized view: collections, derived
// stats and the loading flag.
func (s *Server) SnapshotHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, s.Syncer.Snapshot())
	}
}

// RecentMatchesHandler returns the recent-form strip from the current
// snapshot.
func (s *Server) RecentMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, s.Syncer.Snapshot().RecentMatches)
	}
}

func (s *Server) AddPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var player team.NewPlayer
		if !decodeBody(w, r, &player) {
			return
		}
		s.respondMutation(w, r, syncer.KindPlayer, syncer.OpInsert, player)
	}
}

func (s *Server) UpdatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields team.PlayerUpdate
		if !decodeBody(w, r, &fields) {
			return
		}
		patch := syncer.PlayerPatch{ID: r.PathValue("id"), Fields: fields}
		s.respondMutation(w, r, syncer.KindPlayer, syncer.OpUpdate, patch)
	}
}

func (s *Server) AddGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var game team.NewGame
		if !decodeBody(w, r, &game) {
			return
		}
		s.respondMutation(w, r, syncer.KindGame, syncer.OpInsert, game)
	}
}

func (s *Server) UpdateGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields team.GameUpdate
		if !decodeBody(w, r, &fields) {
			return
		}
		patch := syncer.GamePatch{ID: r.PathValue("id"), Fields: fields}
		s.respondMutation(w, r, syncer.KindGame, syncer.OpUpdate, patch)
	}
}

func (s *Server) AddNewsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var article team.NewNewsArticle
		if !decodeBody(w, r, &article) {
			return
		}
		s.respondMutation(w, r, syncer.KindNews, syncer.OpInsert, article)
	}
}

// UploadLogoHandler accepts a multipart upload under the "logo" field. The
// size and content-type checks happen inside the mutation, before any
// storage I/O.
func (s *Server) UploadLogoHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("logo")
		if err != nil {
			http.Error(w, "Missing 'logo' form field", http.StatusBadRequest)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			log.Error("Failed to read uploaded logo", "error", err)
			http.Error(w, "Failed to read upload", http.StatusBadRequest)
			return
		}

		upload := syncer.LogoUpload{
			Data:        data,
			ContentType: header.Header.Get("Content-Type"),
		}
		s.respondMutation(w, r, syncer.KindLogo, syncer.OpUpdate, upload)
	}
}

// respondMutation funnels every write through the syncer's single mutation
// path and maps the boolean outcome onto the response. Details of a
// failure surface through the notifier, not the HTTP body.
func (s *Server) respondMutation(w http.ResponseWriter, r *http.Request, kind syncer.MutationKind, op syncer.MutationOp, payload any) {
	ok := s.Syncer.Mutate(r.Context(), kind, op, payload)
	if !ok {
		writeJSONStatus(w, http.StatusUnprocessableEntity, map[string]bool{"success": false})
		return
	}
	writeJSON(w, map[string]bool{"success": true})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Error("Failed to decode request body", "error", err)
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, payload any) {
	writeJSONStatus(w, http.StatusOK, payload)
}

func writeJSONStatus(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}
