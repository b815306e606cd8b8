/* admin_handlers.go
 * Admin mutation handlers. All of them sit behind requireAdmin and answer
 * with a redirect to /admin. Out-of-range positional parameters are silent
 * no-ops: the group or info document is simply written back unchanged, or
 * not written at all, and the client still lands on the success page.
 */

package web

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"leaguehub/apperr"
	"leaguehub/league"
	"leaguehub/model"
)

// atoiOrZero mirrors the old site's parseInt(x) || 0 for counter fields.
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func (s *Server) AdminLiveHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/admin", "Invalid form submission")
		return
	}
	if err := s.store.SetLiveLink(r.Context(), r.PostForm.Get("link")); err != nil {
		redirectError(w, r, "/admin", apperr.Message(err))
		return
	}
	redirect(w, r, "/admin")
}

// --- Matches ---

func (s *Server) AdminAddMatchHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/admin", "Invalid form submission")
		return
	}
	match := model.Match{
		TeamA:  r.PostForm.Get("teamA"),
		TeamB:  r.PostForm.Get("teamB"),
		LogoA:  r.PostForm.Get("logoA"),
		LogoB:  r.PostForm.Get("logoB"),
		Time:   r.PostForm.Get("time"),
		Tags:   r.PostForm.Get("tags"),
		IsLive: r.PostForm.Get("isLive") == "true",
	}
	if err := s.store.CreateMatch(r.Context(), match); err != nil {
		redirectError(w, r, "/admin", apperr.Message(err))
		return
	}
	redirect(w, r, "/admin")
}

// AdminUpdateMatchDetailsHandler completes a match. The per-side player rows
// arrive as parallel form arrays, one slice per column.
func (s *Server) AdminUpdateMatchDetailsHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/admin", "Invalid form submission")
		return
	}
	details := model.MatchDetails{
		ScoreA:  r.PostForm.Get("scoreA"),
		ScoreB:  r.PostForm.Get("scoreB"),
		MVP:     r.PostForm.Get("mvp"),
		Summary: r.PostForm.Get("summary"),
		TeamAPlayers: zipPerformances(
			r.PostForm["teamAPlayer"],
			r.PostForm["teamAType"],
			r.PostForm["teamAMainValue"],
			r.PostForm["teamAAssists"],
		),
		TeamBPlayers: zipPerformances(
			r.PostForm["teamBPlayer"],
			r.PostForm["teamBType"],
			r.PostForm["teamBMainValue"],
			r.PostForm["teamBAssists"],
		),
	}
	if err := s.store.CompleteMatch(r.Context(), r.PostForm.Get("matchId"), details); err != nil {
		redirectError(w, r, "/admin", apperr.Message(err))
		return
	}
	redirect(w, r, "/admin")
}

// zipPerformances pairs up the parallel columns row by row. Missing cells in
// the shorter columns come through empty rather than dropping the row.
func zipPerformances(names, types, values, assists []string) []model.PlayerPerformance {
	at := func(col []string, i int) string {
		if i < len(col) {
			return col[i]
		}
		return ""
	}
	rows := make([]model.PlayerPerformance, 0, len(names))
	for i, name := range names {
		if name == "" {
			continue
		}
		rows = append(rows, model.PlayerPerformance{
			Name:    name,
			Type:    at(types, i),
			Value:   at(values, i),
			Assists: at(assists, i),
		})
	}
	return rows
}

func (s *Server) AdminDeleteMatchHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/admin", "Invalid form submission")
		return
	}
	if err := s.store.DeleteMatch(r.Context(), r.PostForm.Get("matchId")); err != nil {
		redirectError(w, r, "/admin", apperr.Message(err))
		return
	}
	redirect(w, r, "/admin")
}

// --- Players ---

func (s *Server) AdminApprovePlayerHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/admin", "Invalid form submission")
		return
	}
	if err := s.store.ApprovePlayer(r.Context(), r.PostForm.Get("playerId"), r.PostForm.Get("cardImage")); err != nil {
		redirectError(w, r, "/admin", apperr.Message(err))
		return
	}
	redirect(w, r, "/admin")
}

func (s *Server) AdminUpdateMarketPlayerHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/admin", "Invalid form submission")
		return
	}
	update := model.StatsUpdate{
		Goals:     atoiOrZero(r.PostForm.Get("goals")),
		Assists:   atoiOrZero(r.PostForm.Get("assists")),
		Saves:     atoiOrZero(r.PostForm.Get("saves")),
		MVPs:      atoiOrZero(r.PostForm.Get("mvps")),
		Bio:       r.PostForm.Get("bio"),
		CardImage: r.PostForm.Get("cardImage"),
	}
	if err := s.store.UpdatePlayerStats(r.Context(), r.PostForm.Get("username"), update); err != nil {
		redirectError(w, r, "/admin", apperr.Message(err))
		return
	}
	redirect(w, r, "/admin")
}

func (s *Server) AdminDeletePlayerHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/admin", "Invalid form submission")
		return
	}
	if err := s.store.DeletePlayer(r.Context(), r.PostForm.Get("playerId")); err != nil {
		redirectError(w, r, "/admin", apperr.Message(err))
		return
	}
	redirect(w, r, "/admin")
}

// --- Groups, teams, rosters ---

func (s *Server) AdminAddGroupHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/admin", "Invalid form submission")
		return
	}
	if err := s.store.CreateGroup(r.Context(), r.PostForm.Get("name")); err != nil {
		redirectError(w, r, "/admin", apperr.Message(err))
		return
	}
	redirect(w, r, "/admin")
}

func (s *Server) AdminDeleteGroupHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/admin", "Invalid form submission")
		return
	}
	if err := s.store.DeleteGroup(r.Context(), r.PostForm.Get("groupId")); err != nil {
		redirectError(w, r, "/admin", apperr.Message(err))
		return
	}
	redirect(w, r, "/admin")
}

// withGroup loads a group, applies a mutation, and writes the whole document
// back when anything changed. A missing group is a silent no-op like any
// other out-of-range reference.
func (s *Server) withGroup(w http.ResponseWriter, r *http.Request, groupID string, mutate func(*model.Group) bool) {
	group, err := s.store.GetGroup(r.Context(), groupID)
	if err != nil {
		redirect(w, r, "/admin")
		return
	}
	if mutate(group) {
		if err := s.store.ReplaceGroup(r.Context(), *group); err != nil {
			s.log.Error("group write-back failed", zap.String("group", groupID), zap.Error(err))
			redirectError(w, r, "/admin", apperr.Message(err))
			return
		}
	}
	redirect(w, r, "/admin")
}

func (s *Server) AdminUpdateTeamHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/admin", "Invalid form submission")
		return
	}
	upsert := league.TeamUpsert{
		Name:   r.PostForm.Get("teamName"),
		Logo:   r.PostForm.Get("logo"),
		MP:     atoiOrZero(r.PostForm.Get("mp")),
		Wins:   atoiOrZero(r.PostForm.Get("wins")),
		Losses: atoiOrZero(r.PostForm.Get("loses")),
		Points: atoiOrZero(r.PostForm.Get("pts")),
	}
	s.withGroup(w, r, r.PostForm.Get("groupId"), func(g *model.Group) bool {
		return league.UpsertTeam(g, r.PostForm.Get("teamIndex"), upsert)
	})
}

func (s *Server) AdminDeleteTeamHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/admin", "Invalid form submission")
		return
	}
	s.withGroup(w, r, r.PostForm.Get("groupId"), func(g *model.Group) bool {
		return league.RemoveTeam(g, r.PostForm.Get("teamIndex"))
	})
}

func (s *Server) AdminAddToRosterHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/admin", "Invalid form submission")
		return
	}
	// Resolve the player first; an unknown name must not mutate anything.
	player, err := s.store.FindPlayerByName(r.Context(), r.PostForm.Get("playerName"))
	if err != nil {
		redirectError(w, r, "/admin", "Player not found")
		return
	}
	isManager := r.PostForm.Get("isManager") == "true"
	s.withGroup(w, r, r.PostForm.Get("groupId"), func(g *model.Group) bool {
		// The canonical spelling from the players collection goes on the
		// roster, not the form input.
		return league.AddRosterEntry(g, r.PostForm.Get("teamIndex"), player.Name, isManager)
	})
}

func (s *Server) AdminDeleteFromRosterHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/admin", "Invalid form submission")
		return
	}
	s.withGroup(w, r, r.PostForm.Get("groupId"), func(g *model.Group) bool {
		return league.RemoveRosterEntry(g, r.PostForm.Get("teamIndex"), r.PostForm.Get("playerIndex"))
	})
}

// --- Info singleton: stories, records, leaderboards ---

// withInfo loads the singleton, applies a mutation, and writes the whole
// document back when anything changed.
func (s *Server) withInfo(w http.ResponseWriter, r *http.Request, mutate func(*model.Info) bool) {
	info, err := s.store.GetInfo(r.Context())
	if err != nil {
		redirectError(w, r, "/admin", apperr.Message(err))
		return
	}
	if mutate(info) {
		if err := s.store.ReplaceInfo(r.Context(), *info); err != nil {
			s.log.Error("info write-back failed", zap.Error(err))
			redirectError(w, r, "/admin", apperr.Message(err))
			return
		}
	}
	redirect(w, r, "/admin")
}

func (s *Server) AdminAddStoryHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/admin", "Invalid form submission")
		return
	}
	s.withInfo(w, r, func(info *model.Info) bool {
		league.AddStory(info,
			r.PostForm.Get("title"),
			r.PostForm.Get("body"),
			r.PostForm.Get("image"),
			s.clock.Now(),
		)
		return true
	})
}

func (s *Server) AdminDeleteStoryHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/admin", "Invalid form submission")
		return
	}
	s.withInfo(w, r, func(info *model.Info) bool {
		return league.RemoveStory(info, r.PostForm.Get("storyIndex"))
	})
}

func (s *Server) AdminAddRecordHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/admin", "Invalid form submission")
		return
	}
	s.withInfo(w, r, func(info *model.Info) bool {
		league.AddRecord(info,
			r.PostForm.Get("title"),
			r.PostForm.Get("holder"),
			r.PostForm.Get("value"),
			s.clock.Now(),
		)
		return true
	})
}

func (s *Server) AdminDeleteRecordHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/admin", "Invalid form submission")
		return
	}
	s.withInfo(w, r, func(info *model.Info) bool {
		return league.RemoveRecordByID(info, r.PostForm.Get("recordId"))
	})
}

func (s *Server) AdminUpdateStatHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/admin", "Invalid form submission")
		return
	}
	value := atoiOrZero(r.PostForm.Get("value"))
	s.withInfo(w, r, func(info *model.Info) bool {
		return league.UpsertLeaderboardEntry(info,
			r.PostForm.Get("type"),
			r.PostForm.Get("statIndex"),
			r.PostForm.Get("playerName"),
			value,
		)
	})
}

func (s *Server) AdminDeleteStatHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/admin", "Invalid form submission")
		return
	}
	s.withInfo(w, r, func(info *model.Info) bool {
		return league.RemoveLeaderboardEntry(info, r.PostForm.Get("type"), r.PostForm.Get("index"))
	})
}
