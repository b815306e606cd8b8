package web

import (
	"net/http"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	sessionName     = "leaguehub"
	sessionPlayerID = "playerID"
	sessionIsAdmin  = "isAdmin"
)

func (s *Server) session(r *http.Request) *sessions.Session {
	// An undecodable cookie yields a fresh session, which is all we need.
	sess, _ := s.sessions.Get(r, sessionName)
	return sess
}

func (s *Server) playerID(r *http.Request) string {
	if id, ok := s.session(r).Values[sessionPlayerID].(string); ok {
		return id
	}
	return ""
}

func (s *Server) isAdmin(r *http.Request) bool {
	admin, _ := s.session(r).Values[sessionIsAdmin].(bool)
	return admin
}

func (s *Server) setPlayerID(w http.ResponseWriter, r *http.Request, id string) {
	sess := s.session(r)
	sess.Values[sessionPlayerID] = id
	if err := sess.Save(r, w); err != nil {
		s.log.Error("failed to save session", zap.Error(err))
	}
}

func (s *Server) setAdmin(w http.ResponseWriter, r *http.Request) {
	sess := s.session(r)
	sess.Values[sessionIsAdmin] = true
	if err := sess.Save(r, w); err != nil {
		s.log.Error("failed to save session", zap.Error(err))
	}
}

// destroySession expires the cookie, logging the visitor out of both the
// player and admin roles.
func (s *Server) destroySession(w http.ResponseWriter, r *http.Request) {
	sess := s.session(r)
	sess.Options.MaxAge = -1
	sess.Values = map[interface{}]interface{}{}
	if err := sess.Save(r, w); err != nil {
		s.log.Error("failed to destroy session", zap.Error(err))
	}
}
