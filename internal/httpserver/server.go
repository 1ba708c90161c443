// internal/httpserver/server.go
//
// HTTP server wiring for the Word Scramble backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Round endpoints: POST /round/new, then (token required) GET /round,
//     PUT /round/input, POST /round/submit, POST /round/restart.
//   - Daily endpoints: mounted under /daily (routes_daily.go).
//
// Notes:
//   - A round token (JWT, token.go) identifies the round; clients send it as a
//     bearer token or via the round cookie set on creation.
//   - Rejected words are a normal game outcome: 200 with status "rejected" and
//     the reason's title/message, not an HTTP error.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/apps/go-server/internal/dictionary"
	"github.com/robalobadob/wordscramble/apps/go-server/internal/game"
	"github.com/robalobadob/wordscramble/apps/go-server/internal/store"
	"github.com/robalobadob/wordscramble/apps/go-server/internal/words"
)

// Options tunes the server. Zero values fall back to development defaults.
type Options struct {
	ClientOrigin   string
	JWTSecret      string
	TokenTTL       time.Duration
	SecureCookies  bool
	DailySalt      string
	RequestTimeout time.Duration
	DictionaryKind string           // reported by /debug/words
	Now            func() time.Time // clock for tokens and daily rounds
}

// Server bundles router, round store, root word catalog and dictionary.
type Server struct {
	r       *chi.Mux
	store   store.Store
	catalog words.Catalog
	oracle  dictionary.Oracle
	tokens  *roundTokens
	opts    Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, catalog words.Catalog, oracle dictionary.Oracle, opts Options) *Server {
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	if opts.JWTSecret == "" {
		opts.JWTSecret = "dev_secret_change_me"
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	if opts.DictionaryKind == "" {
		opts.DictionaryKind = "custom"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Server{
		r:       chi.NewRouter(),
		store:   st,
		catalog: catalog,
		oracle:  oracle,
		tokens:  &roundTokens{secret: []byte(opts.JWTSecret), ttl: opts.TokenTTL, now: opts.Now},
		opts:    opts,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(hlog.NewHandler(log.Logger))
	s.r.Use(requestIDField)
	s.r.Use(hlog.AccessHandler(accessLog))
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(opts.RequestTimeout))
	s.r.Use(jsonContentType)
	s.r.Use(cors(opts.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service": "wordscramble-go",
			"endpoints": []string{
				"/health", "POST /round/new", "GET /round", "PUT /round/input",
				"POST /round/submit", "POST /round/restart", "GET /daily", "POST /daily/new",
			},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"rootWords":  s.catalog.Len(),
			"dictionary": s.opts.DictionaryKind,
			"rounds":     s.store.Len(),
		})
	})

	// --- rounds ---
	s.r.Post("/round/new", s.handleNewRound)
	s.r.Group(func(r chi.Router) {
		r.Use(s.requireRound)
		r.Get("/round", s.handleGetRound)
		r.Put("/round/input", s.handleSetInput)
		r.Post("/round/submit", s.handleSubmit)
		r.Post("/round/restart", s.handleRestart)
	})

	s.mountDaily(s.r)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Handler exposes the router (useful for tests and custom http.Server setups).
func (s *Server) Handler() http.Handler { return s.r }

// ------------------------------ views --------------------------------------

type usedWordView struct {
	Word   string `json:"word"`
	Length int    `json:"length"`
}

type roundView struct {
	RoundID      string         `json:"roundId"`
	RootWord     string         `json:"rootWord"`
	PendingInput string         `json:"pendingInput"`
	UsedWords    []usedWordView `json:"usedWords"`
	Score        int            `json:"score"`
	StartedAt    time.Time      `json:"startedAt"`
}

func newRoundView(sess *game.Session) roundView {
	used := sess.UsedWords()
	v := roundView{
		RoundID:      sess.ID,
		RootWord:     sess.RootWord,
		PendingInput: sess.PendingInput,
		UsedWords:    make([]usedWordView, 0, len(used)),
		Score:        sess.Score(),
		StartedAt:    sess.StartedAt,
	}
	for _, w := range used {
		v.UsedWords = append(v.UsedWords, usedWordView{Word: w, Length: len([]rune(w))})
	}
	return v
}

type reasonView struct {
	Code    game.Reason `json:"code"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
}

// ------------------------------ ROUND --------------------------------------

// newRoundRes is returned whenever a round starts.
type newRoundRes struct {
	Token string    `json:"token"`
	Date  string    `json:"date,omitempty"` // daily rounds only
	Round roundView `json:"round"`
}

// handleNewRound starts a round with a random root word.
func (s *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	s.startRound(w, r, game.StartRound(s.catalog), "")
}

// startRound saves sess, issues its token and writes newRoundRes.
func (s *Server) startRound(w http.ResponseWriter, r *http.Request, sess *game.Session, date string) {
	if err := s.store.Save(r.Context(), sess); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("save round")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := s.tokens.sign(sess.ID)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("sign round token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	setRoundCookie(w, tok, exp, s.opts.SecureCookies)
	hlog.FromRequest(r).Info().Str("roundId", sess.ID).Str("rootWord", sess.RootWord).Msg("round started")
	writeJSON(w, http.StatusOK, newRoundRes{Token: tok, Date: date, Round: newRoundView(sess)})
}

// handleGetRound returns the current round state.
func (s *Server) handleGetRound(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), roundID(r))
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newRoundView(sess))
}

type inputReq struct {
	Text string `json:"text"`
}

// handleSetInput replaces the round's pending input.
func (s *Server) handleSetInput(w http.ResponseWriter, r *http.Request) {
	var req inputReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	var view roundView
	err := s.store.Update(r.Context(), roundID(r), func(sess *game.Session) error {
		sess.SetInput(req.Text)
		view = newRoundView(sess)
		return nil
	})
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// submitReq is the body of POST /round/submit. Without Word, the pending
// input is submitted; with Word, it first replaces the pending input.
type submitReq struct {
	Word *string `json:"word"`
}

type submitRes struct {
	Status string      `json:"status"` // accepted | ignored | rejected
	Word   string      `json:"word,omitempty"`
	Reason *reasonView `json:"reason,omitempty"`
	Round  roundView   `json:"round"`
}

// handleSubmit runs a submission against the round.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var (
		res  game.Result
		view roundView
	)
	err := s.store.Update(r.Context(), roundID(r), func(sess *game.Session) error {
		if req.Word != nil {
			sess.SetInput(*req.Word)
		}
		var err error
		res, err = sess.SubmitPending(s.oracle)
		view = newRoundView(sess)
		return err
	})

	var rej *game.Rejection
	switch {
	case errors.As(err, &rej):
		hlog.FromRequest(r).Debug().Str("word", rej.Word).Str("reason", string(rej.Reason)).Msg("word rejected")
		writeJSON(w, http.StatusOK, submitRes{
			Status: "rejected",
			Word:   rej.Word,
			Reason: &reasonView{Code: rej.Reason, Title: rej.Reason.Title(), Message: rej.Reason.Message()},
			Round:  view,
		})
	case err != nil:
		s.storeError(w, r, err)
	case res.Ignored:
		writeJSON(w, http.StatusOK, submitRes{Status: "ignored", Round: view})
	default:
		hlog.FromRequest(r).Debug().Str("word", res.Word).Msg("word accepted")
		writeJSON(w, http.StatusOK, submitRes{Status: "accepted", Word: res.Word, Round: view})
	}
}

// handleRestart discards the current round and starts a new random one.
func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), roundID(r)); err != nil {
		s.storeError(w, r, err)
		return
	}
	s.startRound(w, r, game.StartRound(s.catalog), "")
}

// storeError maps store failures to HTTP errors.
func (s *Server) storeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "round_not_found")
		return
	}
	hlog.FromRequest(r).Error().Err(err).Msg("round store")
	writeError(w, http.StatusInternalServerError, "store_error")
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
