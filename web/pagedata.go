package web

import (
	"net/http"

	"go.uber.org/zap"

	"leaguehub/model"
)

// pageData is the read model every page template renders from. It is
// assembled explicitly per request; nothing is cached between requests.
type pageData struct {
	Page         string
	Players      []model.Player
	Matches      []model.Match
	Groups       []model.Group
	LiveLink     string
	Leaderboards model.Leaderboards
	Records      []model.Record
	Stories      []model.Story
	IsAdmin      bool
	User         *model.Player
	Error        string

	// Page-specific extras
	Match *model.Match
	Group *model.Group
	Team  *model.Team
}

// pageData re-reads fresh state from the store for a page render. The error
// banner comes from the redirect query parameter.
func (s *Server) pageData(r *http.Request, page string) (*pageData, error) {
	ctx := r.Context()

	info, err := s.store.GetInfo(ctx)
	if err != nil {
		return nil, err
	}
	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := s.store.ListMatches(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := s.store.ListGroups(ctx)
	if err != nil {
		return nil, err
	}

	data := &pageData{
		Page:         page,
		Players:      players,
		Matches:      matches,
		Groups:       groups,
		LiveLink:     info.LiveLink,
		Leaderboards: info.Leaderboards,
		Records:      info.Records,
		Stories:      info.Stories,
		IsAdmin:      s.isAdmin(r),
		Error:        r.URL.Query().Get("error"),
	}

	if id := s.playerID(r); id != "" {
		user, err := s.store.GetPlayer(ctx, id)
		if err == nil {
			data.User = user
		}
	}

	return data, nil
}

// renderPage renders a page template, falling back to a bare 500 when the
// read model cannot be assembled.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, template, page string, customize func(*pageData)) {
	data, err := s.pageData(r, page)
	if err != nil {
		s.log.Error("failed to assemble page data", zap.String("page", page), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if customize != nil {
		customize(data)
	}
	s.render.HTML(w, http.StatusOK, template, data)
}
