/* server.go
 * Server construction and the blocking Start function. Templates are
 * embedded so the binary is self-contained.
 */

package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-andiamo/splitter"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/itbasis/go-clock"
	"github.com/unrolled/render"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

//go:embed templates
var templates embed.FS

// tagSplitter splits the free-text match tag field on commas, keeping quoted
// tags that themselves contain commas intact.
var tagSplitter = mustTagSplitter()

func mustTagSplitter() splitter.Splitter {
	s, err := splitter.NewSplitter(',', splitter.DoubleQuotes)
	if err != nil {
		panic(err)
	}
	return s
}

// NewServer wires the handler dependencies together.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if cfg.AdminKey == "" {
		return nil, fmt.Errorf("admin key cannot be empty")
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}

	s := &Server{
		addr:     cfg.Addr,
		store:    cfg.Store,
		render:   newRender(),
		sessions: sessions.NewCookieStore([]byte(cfg.SessionSecret)),
		log:      cfg.Log,
		clock:    cfg.Clock,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		adminKey: cfg.AdminKey,
		// 1 login attempt per 2s per IP, bursts of 5.
		limiter: newIPLimiter(rate.Every(2*time.Second), 5),
	}
	return s, nil
}

// Start runs the HTTP server until the shutdown channel closes.
func (s *Server) Start(shutdown chan struct{}, wg *sync.WaitGroup) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		defer wg.Done()

		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			s.log.Error("error shutting down server", zap.Error(err))
		}
	}()

	s.log.Info("web server listening", zap.String("addr", s.addr))
	err := srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func newRender() *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"tags": parseTags,
			},
		},
	})
}

// parseTags turns the raw match tag string into a list for rendering.
func parseTags(raw string) []string {
	parts, err := tagSplitter.Split(raw)
	if err != nil {
		return nil
	}
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), `"`)
		if p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
