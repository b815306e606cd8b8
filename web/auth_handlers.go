/* auth_handlers.go
 * Registration, login, logout and player self-service. Passwords are stored
 * as bcrypt hashes; rows carried over from the old site hold plaintext,
 * which login accepts once and immediately re-hashes.
 */

package web

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"leaguehub/apperr"
	"leaguehub/model"
)

type registerForm struct {
	Name     string `validate:"required,min=2,max=32"`
	Password string `validate:"required,min=4"`
}

func (s *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/market", "Invalid form submission")
		return
	}

	form := registerForm{
		Name:     strings.TrimSpace(r.PostForm.Get("name")),
		Password: r.PostForm.Get("password"),
	}
	if err := s.validate.Struct(form); err != nil {
		redirectError(w, r, "/market", "Name and password are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		redirectError(w, r, "/market", "Registration failed")
		return
	}

	player := model.Player{
		Name:     form.Name,
		Discord:  r.PostForm.Get("discord"),
		Password: string(hash),
		Position: model.DefaultPosition,
	}
	if pos := r.PostForm.Get("position"); pos != "" {
		player.Position = pos
	}
	player.Country = r.PostForm.Get("country")
	player.Timezone = r.PostForm.Get("timezone")
	player.Experience = r.PostForm.Get("experience")
	player.Bio = r.PostForm.Get("bio")

	created, err := s.store.CreatePlayer(r.Context(), player)
	if err != nil {
		redirectError(w, r, "/market", apperr.Message(err))
		return
	}

	s.setPlayerID(w, r, created.ID.Hex())
	redirect(w, r, "/profile")
}

func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/market", "Invalid form submission")
		return
	}
	username := strings.TrimSpace(r.PostForm.Get("username"))
	password := r.PostForm.Get("password")

	player, err := s.store.FindPlayerByName(r.Context(), username)
	if err != nil {
		redirectError(w, r, "/market", "Invalid username or password")
		return
	}

	ok, legacy := verifyPassword(player.Password, password)
	if !ok {
		redirectError(w, r, "/market", "Invalid username or password")
		return
	}
	if legacy {
		// Migrate the plaintext credential now that we hold the password.
		if hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost); err == nil {
			if err := s.store.UpdatePlayerPassword(r.Context(), player.ID.Hex(), string(hash)); err != nil {
				s.log.Warn("failed to re-hash legacy password", zap.Error(err))
			}
		}
	}

	s.setPlayerID(w, r, player.ID.Hex())
	redirect(w, r, "/profile")
}

// verifyPassword checks a supplied password against the stored credential.
// legacy reports that the stored value was plaintext and should be re-hashed.
func verifyPassword(stored, supplied string) (ok bool, legacy bool) {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil, false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1, true
}

func (s *Server) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	s.destroySession(w, r)
	redirect(w, r, "/")
}

func (s *Server) ProfileUpdateHandler(w http.ResponseWriter, r *http.Request) {
	id := s.playerID(r)
	if id == "" {
		redirectError(w, r, "/market", "Please login first")
		return
	}
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/profile", "Update failed")
		return
	}

	update := model.ProfileUpdate{
		Name:       strings.TrimSpace(r.PostForm.Get("name")),
		Discord:    r.PostForm.Get("discord"),
		Bio:        r.PostForm.Get("bio"),
		Experience: r.PostForm.Get("experience"),
		Position:   r.PostForm.Get("position"),
		Country:    r.PostForm.Get("country"),
		Timezone:   r.PostForm.Get("timezone"),
	}
	if err := s.store.UpdateProfile(r.Context(), id, update); err != nil {
		redirectError(w, r, "/profile", "Update failed")
		return
	}
	redirect(w, r, "/profile")
}

func (s *Server) ProfileDeleteHandler(w http.ResponseWriter, r *http.Request) {
	id := s.playerID(r)
	if id == "" {
		redirect(w, r, "/market")
		return
	}
	if err := s.store.DeletePlayer(r.Context(), id); err != nil {
		redirectError(w, r, "/profile", "Delete failed")
		return
	}
	s.destroySession(w, r)
	redirectError(w, r, "/market", "Account deleted successfully")
}

// AdminLoginPostHandler elevates the session when the shared key matches.
// Attempts are rate limited per IP.
func (s *Server) AdminLoginPostHandler(w http.ResponseWriter, r *http.Request) {
	if !s.limiter.allow(r.RemoteAddr) {
		s.log.Warn("admin login throttled", zap.String("ip", r.RemoteAddr))
		redirectError(w, r, "/admin-login", "Too many attempts, slow down")
		return
	}
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/admin-login", "Invalid form submission")
		return
	}
	if subtle.ConstantTimeCompare([]byte(r.PostForm.Get("password")), []byte(s.adminKey)) != 1 {
		s.log.Warn("admin login rejected", zap.String("ip", r.RemoteAddr))
		redirectError(w, r, "/admin-login", "WRONG KEY!")
		return
	}
	s.setAdmin(w, r)
	redirect(w, r, "/admin")
}
