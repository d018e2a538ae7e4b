package web

import (
	"context"
	"net/http"

	"golang.org/x/exp/slog"

	"dayadmin/internal/app/workspace"
	"dayadmin/internal/domain/formcontrol"
)

const formPath = "/form-control"

func (s *Server) HandleFormControl(w http.ResponseWriter, r *http.Request) {
	var draft formcontrol.Draft
	err := s.workspaces.Screen(r.Context(), sessionID(r), workspace.ScreenForm, func(_ context.Context, ws *workspace.Workspace) error {
		draft = ws.Form.Draft()
		return nil
	})
	s.renderScreen(w, r, err, "form.html", s.page(r, "Форма", "form", draft))
}

// HandleFormEdit применяет текстовые поля формы локально
func (s *Server) HandleFormEdit(w http.ResponseWriter, r *http.Request) {
	s.formAction(w, r, "Изменения применены, не забудьте сохранить", func(_ context.Context, ed *formcontrol.Editor) error {
		for _, f := range []formcontrol.Field{
			formcontrol.FieldFormTitle,
			formcontrol.FieldOpenerText,
			formcontrol.FieldSubmitText,
			formcontrol.FieldSubmitColor,
		} {
			if err := ed.Edit(f, r.FormValue(string(f))); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Server) HandleFormAddField(w http.ResponseWriter, r *http.Request) {
	s.formAction(w, r, "Поле добавлено", func(_ context.Context, ed *formcontrol.Editor) error {
		return ed.AddField(r.FormValue("label"))
	})
}

func (s *Server) HandleFormToggle(w http.ResponseWriter, r *http.Request) {
	s.formAction(w, r, "", func(_ context.Context, ed *formcontrol.Editor) error {
		i, err := index(r)
		if err != nil {
			return err
		}
		return ed.ToggleField(i)
	})
}

func (s *Server) HandleFormSelect(w http.ResponseWriter, r *http.Request) {
	s.formAction(w, r, "", func(_ context.Context, ed *formcontrol.Editor) error {
		i, err := index(r)
		if err != nil {
			return err
		}
		return ed.SelectOption(i)
	})
}

func (s *Server) HandleFormSave(w http.ResponseWriter, r *http.Request) {
	s.formAction(w, r, "Форма сохранена", func(ctx context.Context, ed *formcontrol.Editor) error {
		return ed.Save(ctx)
	})
}

func (s *Server) HandleFormReload(w http.ResponseWriter, r *http.Request) {
	s.formAction(w, r, "Форма перечитана", func(ctx context.Context, ed *formcontrol.Editor) error {
		return ed.Load(ctx)
	})
}

func (s *Server) formAction(w http.ResponseWriter, r *http.Request, message string, fn func(ctx context.Context, ed *formcontrol.Editor) error) {
	err := s.workspaces.Screen(r.Context(), sessionID(r), workspace.ScreenForm, func(ctx context.Context, ws *workspace.Workspace) error {
		return fn(ctx, ws.Form)
	})
	s.finish(w, r, formPath, message, err)
}

// renderScreen показывает экран даже при ошибке загрузки, ошибка уходит в уведомление
func (s *Server) renderScreen(w http.ResponseWriter, r *http.Request, err error, name string, p pageData) {
	if err != nil {
		if isSessionError(err) {
			s.finish(w, r, "/", "", err)
			return
		}
		s.log.Warn("screen not loaded", slog.String("page", name), slog.Any("error", err))
		p.Error = "Не удалось загрузить данные: " + err.Error()
	}
	s.render(w, http.StatusOK, name, p)
}
