package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"dayadmin/internal/app/workspace"
	"dayadmin/internal/domain/media"
	"dayadmin/internal/domain/session"
	"dayadmin/internal/domain/template"
)

type templateView struct {
	template.Template
	Preview string
	Kind    media.Kind
}

type templatesPage struct {
	Items      []templateView
	Page       int
	TotalPages int
	Total      int
}

func (s *Server) HandleTemplates(w http.ResponseWriter, r *http.Request) {
	n, _ := strconv.Atoi(r.URL.Query().Get("page"))

	var data templatesPage
	err := s.workspaces.Run(r.Context(), sessionID(r), func(ctx context.Context, ws *workspace.Workspace) error {
		page, err := ws.Templates.Page(ctx, n)
		if err != nil {
			return err
		}
		data = templatesPage{Page: page.Page, TotalPages: page.TotalPages, Total: page.Total}
		for _, t := range page.Items {
			data.Items = append(data.Items, templateView{
				Template: t,
				Preview:  ws.Templates.Preview(t),
				Kind:     media.KindOf(t.File),
			})
		}
		return nil
	})
	s.renderScreen(w, r, err, "templates.html", s.page(r, "Шаблоны", "templates", data))
}

func (s *Server) HandleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUpload); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		s.finish(w, r, "/", "", err)
		return
	}
	file, err := readFile(r, "file")
	if err != nil {
		s.finish(w, r, "/", "", err)
		return
	}

	draft := template.Draft{
		Name:            r.FormValue("name"),
		RadioButtonText: r.FormValue("radioButtonText"),
		NameX:           r.FormValue("nameX"),
		NameY:           r.FormValue("nameY"),
		DateTimeX:       r.FormValue("dateTimeX"),
		DateTimeY:       r.FormValue("dateTimeY"),
		File:            file,
	}

	err = s.workspaces.Run(r.Context(), sessionID(r), func(ctx context.Context, ws *workspace.Workspace) error {
		return ws.Templates.Create(ctx, draft)
	})
	s.finish(w, r, "/", "Шаблон создан", err)
}

func sessionID(r *http.Request) string {
	if sess, ok := session.FromContext(r.Context()); ok {
		return sess.ID
	}
	return ""
}
