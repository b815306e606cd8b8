package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) routes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	// Pages
	r.Get("/", s.HomeHandler)
	r.Get("/market", s.MarketHandler)
	r.Get("/matches", s.MatchesHandler)
	r.Get("/match/{matchID}", s.MatchDetailHandler)
	r.Get("/metrics", s.MetricsHandler)
	r.Get("/league-records", s.LeagueRecordsHandler)
	r.Get("/info", s.InfoHandler)
	r.Get("/team/{groupID}/{teamIndex}", s.TeamDetailHandler)

	// Player auth and self-service
	r.Post("/register", s.RegisterHandler)
	r.Post("/login", s.LoginHandler)
	r.Get("/logout", s.LogoutHandler)
	r.Get("/profile", s.ProfileHandler)
	r.Post("/profile/update", s.ProfileUpdateHandler)
	r.Post("/profile/delete", s.ProfileDeleteHandler)

	// Admin login sits outside the gate; the POST is rate limited.
	r.Get("/admin-login", s.AdminLoginHandler)
	r.Post("/admin-login", s.AdminLoginPostHandler)

	// Every route below requires the admin session flag, the GET dashboard
	// included. The gate lives on the subrouter so no mutation can be added
	// without passing through it.
	r.Route("/admin", func(r chi.Router) {
		r.Use(s.requireAdmin)

		r.Get("/", s.AdminHandler)

		r.Post("/live", s.AdminLiveHandler)
		r.Post("/add-match", s.AdminAddMatchHandler)
		r.Post("/update-match-details", s.AdminUpdateMatchDetailsHandler)
		r.Post("/delete-match", s.AdminDeleteMatchHandler)

		r.Post("/approve-player", s.AdminApprovePlayerHandler)
		r.Post("/update-market-player", s.AdminUpdateMarketPlayerHandler)
		r.Post("/delete-player", s.AdminDeletePlayerHandler)

		r.Post("/add-group", s.AdminAddGroupHandler)
		r.Post("/delete-group", s.AdminDeleteGroupHandler)
		r.Post("/update-team", s.AdminUpdateTeamHandler)
		r.Post("/delete-team", s.AdminDeleteTeamHandler)
		r.Post("/add-to-roster", s.AdminAddToRosterHandler)
		r.Post("/delete-from-roster", s.AdminDeleteFromRosterHandler)

		r.Post("/add-story", s.AdminAddStoryHandler)
		r.Post("/delete-story", s.AdminDeleteStoryHandler)
		r.Post("/add-record", s.AdminAddRecordHandler)
		r.Post("/delete-record", s.AdminDeleteRecordHandler)
		r.Post("/update-stat", s.AdminUpdateStatHandler)
		r.Post("/delete-stat", s.AdminDeleteStatHandler)
	})

	return r
}

// requireAdmin redirects to the login page unless the session carries the
// admin flag.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.isAdmin(r) {
			http.Redirect(w, r, "/admin-login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
