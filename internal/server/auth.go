package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const sessionCookie = "streamrent_session"

// sessionManager is the boundary login check: one operator credential, an
// in-process table of opaque session tokens. Everything behind /api/v1 is
// gated on it.
type sessionManager struct {
	mu     sync.Mutex
	ttl    time.Duration
	tokens map[string]time.Time
}

func newSessionManager(ttl time.Duration) *sessionManager {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &sessionManager{
		ttl:    ttl,
		tokens: make(map[string]time.Time),
	}
}

func (m *sessionManager) issue() string {
	token := uuid.NewString()
	m.mu.Lock()
	m.tokens[token] = time.Now().Add(m.ttl)
	m.mu.Unlock()
	return token
}

func (m *sessionManager) valid(token string) bool {
	if token == "" {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	expiry, ok := m.tokens[token]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(m.tokens, token)
		return false
	}
	return true
}

func (m *sessionManager) revoke(token string) {
	m.mu.Lock()
	delete(m.tokens, token)
	m.mu.Unlock()
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if req.Username != s.cfg.AdminUser || s.cfg.AdminPasswordHash == "" {
		AbortWithError(c, ErrUnauthorized)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(req.Password)); err != nil {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	token := s.sessions.issue()
	c.SetCookie(sessionCookie, token, int(s.sessions.ttl.Seconds()), "/", "", s.cfg.AuthCookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"token": token}})
}

func (s *Server) Logout(c *gin.Context) {
	if token, err := c.Cookie(sessionCookie); err == nil {
		s.sessions.revoke(token)
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", s.cfg.AuthCookieSecure, true)
	c.Status(http.StatusNoContent)
}

func (s *Server) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(sessionCookie)
		if token == "" {
			if auth := c.GetHeader("Authorization"); len(auth) > 7 && auth[:7] == "Bearer " {
				token = auth[7:]
			}
		}
		if !s.sessions.valid(token) {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		c.Next()
	}
}
