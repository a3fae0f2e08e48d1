// Package server exposes an Engine over HTTP so that games can be played against it
// from a browser or any other JSON client.
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorgonia/tictac"
	"github.com/gorgonia/tictac/game"
	"github.com/gorgonia/tictac/game/ttt"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const maxBody = 4 * 1024

var (
	ErrNotFound = errors.New("game not found")
	ErrNotYours = errors.New("not the human's turn")
)

// Server holds the games in progress. Every game is played against the same Engine.
type Server struct {
	// mu guards games and every call into engine: the value store inserts on read.
	mu     sync.Mutex
	engine *tictac.Engine
	games  map[uuid.UUID]*session

	logger zerolog.Logger
}

type session struct {
	id    uuid.UUID
	state ttt.State
	human game.Player
	last  game.Single // the engine's last reply
}

// NewServer constructs a Server around a trained engine.
func NewServer(engine *tictac.Engine, logger zerolog.Logger) *Server {
	return &Server{
		engine: engine,
		games:  make(map[uuid.UUID]*session),
		logger: logger,
	}
}

// Routes builds the HTTP router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/games", s.handleCreateGame)
		r.Get("/games/{gameID}", s.handleGetGame)
		r.Delete("/games/{gameID}", s.handleDeleteGame)
		r.Post("/games/{gameID}/moves", s.handleMove)
		r.Post("/games/{gameID}/reset", s.handleReset)
	})
	return r
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EngineFirst bool `json:"engine_first"`
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && err != io.EOF {
		s.writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	sess := &session{id: uuid.New(), human: game.Cross}
	if payload.EngineFirst {
		sess.human = game.Nought
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.start(sess); err != nil {
		s.respondError(w, err)
		return
	}
	s.games[sess.id] = sess
	s.logger.Info().Str("game", sess.id.String()).Stringer("human", sess.human).Msg("game created")
	s.writeJSON(w, http.StatusCreated, viewOf(sess))
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.lookup(r)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, viewOf(sess))
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.lookup(r)
	if err != nil {
		s.respondError(w, err)
		return
	}
	delete(s.games, sess.id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.lookup(r)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if err := s.start(sess); err != nil {
		s.respondError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, viewOf(sess))
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Cell *int `json:"cell"`
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Cell == nil {
		s.writeError(w, http.StatusBadRequest, "invalid move payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.lookup(r)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if err := s.move(sess, game.Single(*payload.Cell)); err != nil {
		s.respondError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, viewOf(sess))
}

// start resets a session to the empty board and lets the engine open if it plays Cross.
func (s *Server) start(sess *session) error {
	sess.state = ttt.Initial()
	sess.last = game.NoCell
	if sess.human == game.Cross {
		return nil
	}
	return s.reply(sess)
}

// move plays the human's cell, then the engine's reply if the game goes on.
func (s *Server) move(sess *session, cell game.Single) error {
	if ended, _ := sess.state.Ended(); ended {
		return errors.Wrapf(ttt.ErrGameOver, "game %v", sess.id)
	}
	if sess.state.ToMove() != sess.human {
		return ErrNotYours
	}
	next, err := sess.state.Play(cell)
	if err != nil {
		return err
	}
	sess.state = next
	sess.last = game.NoCell
	if ended, winner := next.Ended(); ended {
		s.engine.Conclude(next)
		s.logger.Info().Str("game", sess.id.String()).Stringer("winner", winner).Msg("game over")
		return nil
	}
	return s.reply(sess)
}

func (s *Server) reply(sess *session) error {
	next, err := s.engine.Reply(sess.state)
	if err != nil {
		return err
	}
	sess.last = ttt.Diff(sess.state, next)
	sess.state = next
	if ended, winner := next.Ended(); ended {
		s.logger.Info().Str("game", sess.id.String()).Stringer("winner", winner).Msg("game over")
	}
	return nil
}

func (s *Server) lookup(r *http.Request) (*session, error) {
	raw := chi.URLParam(r, "gameID")
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(ErrNotFound, "invalid game ID %q", raw)
	}
	sess, ok := s.games[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "game %v", id)
	}
	return sess, nil
}

func (s *Server) respondError(w http.ResponseWriter, err error) {
	switch errors.Cause(err) {
	case ErrNotFound:
		s.writeError(w, http.StatusNotFound, err.Error())
	case ttt.ErrGameOver, ErrNotYours:
		s.writeError(w, http.StatusConflict, err.Error())
	case ttt.ErrOccupied, ttt.ErrOutOfRange:
		s.writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error().Err(err).Msg("request failed")
		s.writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}
