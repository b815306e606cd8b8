/* handlers.go
 * GET page handlers. Every page re-reads fresh state through pageData; POST
 * handlers live in auth_handlers.go and admin_handlers.go and always answer
 * with a redirect.
 */

package web

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"leaguehub/league"
	"leaguehub/model"
)

// redirect is the one response shape every POST handler uses.
func redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusFound)
}

// redirectError redirects to page with a human-readable message in the
// error query parameter.
func redirectError(w http.ResponseWriter, r *http.Request, page, msg string) {
	redirect(w, r, page+"?error="+url.QueryEscape(msg))
}

func (s *Server) HomeHandler(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "index", "home", nil)
}

// MarketHandler lists verified players. An optional q parameter fuzzy-filters
// the cards by player name.
func (s *Server) MarketHandler(w http.ResponseWriter, r *http.Request) {
	verified, err := s.store.ListVerifiedPlayers(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if q := r.URL.Query().Get("q"); q != "" {
		verified = filterPlayers(q, verified)
	}
	s.renderPage(w, r, "market", "market", func(d *pageData) {
		d.Players = verified
	})
}

func filterPlayers(q string, players []model.Player) []model.Player {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(q, names)
	matched := make([]model.Player, 0, len(ranks))
	for _, rank := range ranks {
		matched = append(matched, players[rank.OriginalIndex])
	}
	return matched
}

func (s *Server) MatchesHandler(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "matches", "matches", nil)
}

func (s *Server) MatchDetailHandler(w http.ResponseWriter, r *http.Request) {
	match, err := s.store.GetMatch(r.Context(), chi.URLParam(r, "matchID"))
	if err != nil {
		redirect(w, r, "/matches")
		return
	}
	s.renderPage(w, r, "match-details", "matches", func(d *pageData) {
		d.Match = match
	})
}

func (s *Server) MetricsHandler(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "metrics", "metrics", nil)
}

func (s *Server) LeagueRecordsHandler(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "league-records", "records", nil)
}

func (s *Server) InfoHandler(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "info", "info", nil)
}

// TeamDetailHandler shows a single team addressed by group id and position.
func (s *Server) TeamDetailHandler(w http.ResponseWriter, r *http.Request) {
	group, err := s.store.GetGroup(r.Context(), chi.URLParam(r, "groupID"))
	if err != nil {
		redirectError(w, r, "/metrics", "Team not found")
		return
	}
	idx, ok := league.ParseIndex(chi.URLParam(r, "teamIndex"))
	if !ok {
		redirectError(w, r, "/metrics", "Team not found")
		return
	}
	team := group.TeamAt(idx)
	if team == nil {
		redirectError(w, r, "/metrics", "Team not found")
		return
	}
	s.renderPage(w, r, "team-details", "metrics", func(d *pageData) {
		d.Group = group
		d.Team = team
	})
}

func (s *Server) AdminLoginHandler(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "admin-login", "admin", nil)
}

// AdminHandler renders the dashboard. The requireAdmin middleware has
// already vetted the session.
func (s *Server) AdminHandler(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "admin", "admin", nil)
}

func (s *Server) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	if s.playerID(r) == "" {
		redirectError(w, r, "/market", "Please login first")
		return
	}
	s.renderPage(w, r, "profile", "profile", nil)
}
