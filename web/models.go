package web

import (
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/itbasis/go-clock"
	"github.com/unrolled/render"
	"go.uber.org/zap"

	"leaguehub/store"
)

// Config holds the configuration for the web server.
type Config struct {
	Addr          string
	AdminKey      string
	SessionSecret string
	Store         store.Interface
	Log           *zap.Logger
	Clock         clock.Clock
}

// Server handles all page and form requests.
type Server struct {
	addr     string
	store    store.Interface
	render   *render.Render
	sessions *sessions.CookieStore
	log      *zap.Logger
	clock    clock.Clock
	validate *validator.Validate
	adminKey string
	limiter  *ipLimiter
}
