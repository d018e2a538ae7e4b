package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"golang.org/x/exp/slog"

	"dayadmin/internal/domain/media"
	"dayadmin/internal/domain/session"
)

type ExecuteTemplateFunc func(wr io.Writer, name string, data any) error

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static/*
var staticFiles embed.FS

const maxUpload = 32 << 20

var errBadIndex = errors.New("неверный номер записи")

// ParseTemplates разбирает встроенные шаблоны страниц
func ParseTemplates() (ExecuteTemplateFunc, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"inc":     func(i int) int { return i + 1 },
		"dec":     func(i int) int { return i - 1 },
		"preview": previewURL,
	}).ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl.ExecuteTemplate, nil
}

// previewURL пропускает только ссылки http(s) и встроенные изображения
func previewURL(s string) template.URL {
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "data:image/") {
		return template.URL(s)
	}
	return ""
}

type Options struct {
	SecureCookies bool
	CSRFKey       []byte
	LoginLimit    int
}

// Server - HTML панель: оболочка и пять маршрутов
type Server struct {
	sessions   session.Servicer
	workspaces *Workspaces
	tmplFunc   ExecuteTemplateFunc
	assets     http.FileSystem
	opts       Options
	log        *slog.Logger
}

func NewServer(sessions session.Servicer, workspaces *Workspaces, tmplFunc ExecuteTemplateFunc, opts Options, log *slog.Logger) *Server {
	static, _ := fs.Sub(staticFiles, "static")
	if opts.LoginLimit <= 0 {
		opts.LoginLimit = 5
	}
	return &Server{
		sessions:   sessions,
		workspaces: workspaces,
		tmplFunc:   tmplFunc,
		assets:     http.FS(static),
		opts:       opts,
		log:        log.With(slog.String("component", "dashboard")),
	}
}

// pageData - общие данные оболочки
type pageData struct {
	Title         string
	Active        string
	Theme         string
	Message       string
	Error         string
	CSRF          template.HTML
	Authenticated bool
	Data          any
}

func (s *Server) page(r *http.Request, title, active string, data any) pageData {
	_, authenticated := session.FromContext(r.Context())
	return pageData{
		Title:         title,
		Active:        active,
		Theme:         theme(r),
		Message:       r.URL.Query().Get("message"),
		Error:         r.URL.Query().Get("error"),
		CSRF:          csrf.TemplateField(r),
		Authenticated: authenticated,
		Data:          data,
	}
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmplFunc(w, name, data); err != nil {
		s.log.Error("Failed to render template", slog.String("template", name), slog.Any("error", err))
	}
}

// finish завершает действие редиректом с уведомлением.
// Отклоненный ключ закрывает сессию.
func (s *Server) finish(w http.ResponseWriter, r *http.Request, back, message string, err error) {
	switch {
	case err == nil:
		http.Redirect(w, r, withFlash(back, "message", message), http.StatusSeeOther)
	case isSessionError(err):
		s.logout(w, r)
		http.Redirect(w, r, withFlash("/login", "error", "Ключ отклонен сервером, войдите заново"), http.StatusSeeOther)
	default:
		s.log.Warn("action failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		http.Redirect(w, r, withFlash(back, "error", err.Error()), http.StatusSeeOther)
	}
}

func withFlash(path, key, value string) string {
	if value == "" {
		return path
	}
	q := url.Values{}
	q.Set(key, value)
	return path + "?" + q.Encode()
}

func index(r *http.Request) (int, error) {
	i, err := strconv.Atoi(chi.URLParam(r, "i"))
	if err != nil || i < 0 {
		return 0, errBadIndex
	}
	return i, nil
}

// readFile читает файл из multipart формы. Отсутствующий файл не ошибка.
func readFile(r *http.Request, field string) (*media.File, error) {
	f, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUpload))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return media.NewFile(header.Filename, data), nil
}

// uploaded читает обязательное изображение из поля image
func uploaded(r *http.Request) (*media.File, error) {
	if err := r.ParseMultipartForm(maxUpload); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	file, err := readFile(r, "image")
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, media.ErrEmptyFile
	}
	return file, nil
}

func isSessionError(err error) bool {
	return errors.Is(err, session.ErrUnauthorized) || errors.Is(err, session.ErrNotAuthenticated)
}
