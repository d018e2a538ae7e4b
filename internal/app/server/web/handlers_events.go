package web

import (
	"context"
	"net/http"

	"dayadmin/internal/app/workspace"
	"dayadmin/internal/domain/event"
)

const eventsPath = "/event-control"

func (s *Server) HandleEvents(w http.ResponseWriter, r *http.Request) {
	var drafts []event.Draft
	err := s.workspaces.Screen(r.Context(), sessionID(r), workspace.ScreenEvents, func(_ context.Context, ws *workspace.Workspace) error {
		drafts = ws.Events.Drafts()
		return nil
	})
	s.renderScreen(w, r, err, "events.html", s.page(r, "События", "events", drafts))
}

func (s *Server) HandleEventAdd(w http.ResponseWriter, r *http.Request) {
	s.eventAction(w, r, "Событие добавлено", func(_ context.Context, ed *event.Editor) error {
		ed.AddLocal()
		return nil
	})
}

func (s *Server) HandleEventEdit(w http.ResponseWriter, r *http.Request) {
	s.eventAction(w, r, "", func(_ context.Context, ed *event.Editor) error {
		i, err := index(r)
		if err != nil {
			return err
		}
		values := []struct {
			field event.Field
			value string
		}{
			{event.FieldHeading, r.FormValue("heading")},
			{event.FieldSubHeading, r.FormValue("subHeading")},
			{event.FieldDate, r.FormValue("date")},
			{event.FieldTime, r.FormValue("time")},
		}
		for _, v := range values {
			if err := ed.Edit(i, v.field, v.value); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Server) HandleEventImage(w http.ResponseWriter, r *http.Request) {
	s.eventAction(w, r, "Изображение будет загружено при сохранении", func(_ context.Context, ed *event.Editor) error {
		i, err := index(r)
		if err != nil {
			return err
		}
		file, err := uploaded(r)
		if err != nil {
			return err
		}
		return ed.AttachImage(i, file)
	})
}

// HandleEventDelete удаляет событие сразу, без отдельного сохранения
func (s *Server) HandleEventDelete(w http.ResponseWriter, r *http.Request) {
	s.eventAction(w, r, "Событие удалено", func(ctx context.Context, ed *event.Editor) error {
		i, err := index(r)
		if err != nil {
			return err
		}
		return ed.Delete(ctx, i)
	})
}

func (s *Server) HandleEventsSave(w http.ResponseWriter, r *http.Request) {
	s.eventAction(w, r, "События сохранены", func(ctx context.Context, ed *event.Editor) error {
		return ed.Save(ctx)
	})
}

func (s *Server) HandleEventsReload(w http.ResponseWriter, r *http.Request) {
	s.eventAction(w, r, "События перечитаны", func(ctx context.Context, ed *event.Editor) error {
		return ed.Load(ctx)
	})
}

func (s *Server) eventAction(w http.ResponseWriter, r *http.Request, message string, fn func(ctx context.Context, ed *event.Editor) error) {
	err := s.workspaces.Screen(r.Context(), sessionID(r), workspace.ScreenEvents, func(ctx context.Context, ws *workspace.Workspace) error {
		return fn(ctx, ws.Events)
	})
	s.finish(w, r, eventsPath, message, err)
}
