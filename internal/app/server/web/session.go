package web

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/csrf"
	"golang.org/x/exp/slog"

	"dayadmin/internal/domain/session"
)

const (
	sessionCookie = "dayadmin_session"
	themeCookie   = "dayadmin_theme"
	sessionMaxAge = 7 * 24 * 60 * 60
)

type tokenKey struct{}

func (s *Server) token(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (s *Server) setSessionCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.SecureCookies,
		MaxAge:   maxAge,
		SameSite: http.SameSiteLaxMode,
	})
}

// RequireAuth пускает только с открытой сессией, иначе отправляет на /login
func (s *Server) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := s.token(r)
		sess, err := s.sessions.Current(r.Context(), token)
		if err != nil {
			if !errors.Is(err, session.ErrNotAuthenticated) {
				s.log.Error("Failed to load session", slog.Any("error", err))
			}
			if token != "" {
				if errors.Is(err, session.ErrNotAuthenticated) {
					s.workspaces.Drop(session.HashToken(token))
				}
				s.setSessionCookie(w, "", -1)
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := session.WithSession(r.Context(), sess)
		ctx = context.WithValue(ctx, tokenKey{}, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	if _, err := s.sessions.Current(r.Context(), s.token(r)); err == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.render(w, http.StatusOK, "login.html", s.page(r, "Вход", "login", nil))
}

func (s *Server) HandleLogin(w http.ResponseWriter, r *http.Request) {
	token, err := s.sessions.Login(r.Context(), r.FormValue("key"))
	if err != nil {
		status := http.StatusInternalServerError
		msg := "Не удалось открыть сессию"
		if errors.Is(err, session.ErrEmptyCredential) {
			status = http.StatusBadRequest
			msg = "Введите ключ API"
		} else {
			s.log.Error("Failed to open session", slog.Any("error", err))
		}
		p := s.page(r, "Вход", "login", nil)
		p.Error = msg
		s.render(w, status, "login.html", p)
		return
	}

	// предыдущая сессия этого браузера закрывается после успешного входа
	if old := s.token(r); old != "" {
		if sess, err := s.sessions.Current(r.Context(), old); err == nil {
			s.workspaces.Drop(sess.ID)
		}
		if err := s.sessions.Logout(r.Context(), old); err != nil {
			s.log.Warn("Failed to close previous session", slog.Any("error", err))
		}
	}

	s.setSessionCookie(w, token, sessionMaxAge)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) HandleLogout(w http.ResponseWriter, r *http.Request) {
	s.logout(w, r)
	http.Redirect(w, r, withFlash("/login", "message", "Вы вышли"), http.StatusSeeOther)
}

// logout закрывает сессию запроса и забывает ее редакторы
func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := session.FromContext(r.Context()); ok {
		s.workspaces.Drop(sess.ID)
	}
	token, _ := r.Context().Value(tokenKey{}).(string)
	if token == "" {
		token = s.token(r)
	}
	if err := s.sessions.Logout(r.Context(), token); err != nil {
		s.log.Warn("Failed to close session", slog.Any("error", err))
	}
	s.setSessionCookie(w, "", -1)
}

// HandleTheme переключает светлую и темную тему
func (s *Server) HandleTheme(w http.ResponseWriter, r *http.Request) {
	next := "dark"
	if theme(r) == "dark" {
		next = "light"
	}
	http.SetCookie(w, &http.Cookie{
		Name:     themeCookie,
		Value:    next,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		Secure:   s.opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	back := r.FormValue("back")
	if !strings.HasPrefix(back, "/") || strings.HasPrefix(back, "//") {
		back = "/"
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (s *Server) HandleCSRFError(w http.ResponseWriter, r *http.Request) {
	s.log.Warn("CSRF check failed", slog.String("path", r.URL.Path), slog.Any("reason", csrf.FailureReason(r)))
	http.Error(w, "Forbidden - CSRF token invalid", http.StatusForbidden)
}

func theme(r *http.Request) string {
	if c, err := r.Cookie(themeCookie); err == nil && c.Value == "dark" {
		return "dark"
	}
	return "light"
}
