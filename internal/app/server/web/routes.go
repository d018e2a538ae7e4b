package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/gorilla/csrf"
)

// Register добавляет маршруты панели на роутер
func (s *Server) Register(r chi.Router) {
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(s.assets)))

	r.Group(func(r chi.Router) {
		r.Use(RequestLogger(s.log))
		if !s.opts.SecureCookies {
			r.Use(plaintext)
		}
		r.Use(csrf.Protect(
			s.opts.CSRFKey,
			csrf.Secure(s.opts.SecureCookies),
			csrf.Path("/"),
			csrf.FieldName("csrf_token"),
			csrf.ErrorHandler(http.HandlerFunc(s.HandleCSRFError)),
		))

		r.Get("/login", s.HandleLoginPage)
		r.With(httprate.LimitByIP(s.opts.LoginLimit, time.Minute)).Post("/login", s.HandleLogin)
		r.Post("/theme", s.HandleTheme)

		r.Group(func(r chi.Router) {
			r.Use(s.RequireAuth)
			r.Post("/logout", s.HandleLogout)

			r.Get("/", s.HandleTemplates)
			r.Post("/templates", s.HandleCreateTemplate)

			r.Get("/form-control", s.HandleFormControl)
			r.Post("/form-control", s.HandleFormEdit)
			r.Post("/form-control/fields", s.HandleFormAddField)
			r.Post("/form-control/fields/{i}/toggle", s.HandleFormToggle)
			r.Post("/form-control/options/{i}/select", s.HandleFormSelect)
			r.Post("/form-control/save", s.HandleFormSave)
			r.Post("/form-control/reload", s.HandleFormReload)

			r.Get("/carousel-control", s.HandleCarousel)
			r.Post("/carousel-control/add", s.HandleSlideAdd)
			r.Post("/carousel-control/save", s.HandleSlidesSave)
			r.Post("/carousel-control/reload", s.HandleSlidesReload)
			r.Post("/carousel-control/{i}", s.HandleSlideEdit)
			r.Post("/carousel-control/{i}/image", s.HandleSlideImage)
			r.Post("/carousel-control/{i}/remove", s.HandleSlideRemove)

			r.Get("/event-control", s.HandleEvents)
			r.Post("/event-control/add", s.HandleEventAdd)
			r.Post("/event-control/save", s.HandleEventsSave)
			r.Post("/event-control/reload", s.HandleEventsReload)
			r.Post("/event-control/{i}", s.HandleEventEdit)
			r.Post("/event-control/{i}/image", s.HandleEventImage)
			r.Post("/event-control/{i}/delete", s.HandleEventDelete)
		})
	})
}

// plaintext помечает запрос как HTTP без TLS, иначе csrf требует Referer с https
func plaintext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
	})
}
