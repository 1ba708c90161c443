// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily round.
// Exposes two endpoints under /daily:
//   - GET  /daily     → today's date key and root word
//   - POST /daily/new → start a round on today's root word
//
// The root word is deterministic per UTC date and DAILY_SALT, so every player
// gets the same word on the same day. Daily rounds are otherwise ordinary
// rounds: same token, same endpoints, nothing persisted.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordscramble/apps/go-server/internal/daily"
	"github.com/robalobadob/wordscramble/apps/go-server/internal/game"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", s.handleDailyInfo)
		r.Post("/new", s.handleDailyNew)
	})
}

// today returns today's date key and root word.
func (s *Server) today() (date, rootWord string) {
	now := s.opts.Now()
	return daily.DateKey(now), s.catalog.ForDate(now, s.opts.DailySalt)
}

type dailyInfoRes struct {
	Date     string `json:"date"`
	RootWord string `json:"rootWord"`
}

func (s *Server) handleDailyInfo(w http.ResponseWriter, r *http.Request) {
	date, root := s.today()
	writeJSON(w, http.StatusOK, dailyInfoRes{Date: date, RootWord: root})
}

func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	date, root := s.today()
	s.startRound(w, r, game.StartRoundWith(root), date)
}
