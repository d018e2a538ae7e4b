package web

import (
	"context"
	"net/http"
	"strconv"

	"dayadmin/internal/app/workspace"
	"dayadmin/internal/domain/slide"
)

const carouselPath = "/carousel-control"

func (s *Server) HandleCarousel(w http.ResponseWriter, r *http.Request) {
	var drafts []slide.Draft
	err := s.workspaces.Screen(r.Context(), sessionID(r), workspace.ScreenSlides, func(_ context.Context, ws *workspace.Workspace) error {
		drafts = ws.Slides.Drafts()
		return nil
	})
	s.renderScreen(w, r, err, "carousel.html", s.page(r, "Карусель", "carousel", drafts))
}

func (s *Server) HandleSlideAdd(w http.ResponseWriter, r *http.Request) {
	s.slideAction(w, r, "Слайд добавлен", func(_ context.Context, ed *slide.Editor) error {
		ed.AddLocal()
		return nil
	})
}

// HandleSlideEdit применяет все поля карточки слайда
func (s *Server) HandleSlideEdit(w http.ResponseWriter, r *http.Request) {
	s.slideAction(w, r, "", func(_ context.Context, ed *slide.Editor) error {
		i, err := index(r)
		if err != nil {
			return err
		}
		values := []struct {
			field slide.Field
			value string
		}{
			{slide.FieldHeading, r.FormValue("heading")},
			{slide.FieldSubHeading, r.FormValue("subHeading")},
			{slide.FieldImageCaption, r.FormValue("imageCaption")},
			{slide.FieldShowButton, strconv.FormatBool(r.FormValue("showButton") != "")},
			{slide.FieldButtonText, r.FormValue("buttonText")},
			{slide.FieldButtonLink, r.FormValue("buttonLink")},
			{slide.FieldAlign, r.FormValue("align")},
		}
		for _, v := range values {
			if err := ed.Edit(i, v.field, v.value); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Server) HandleSlideImage(w http.ResponseWriter, r *http.Request) {
	s.slideAction(w, r, "Изображение будет загружено при сохранении", func(_ context.Context, ed *slide.Editor) error {
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

func (s *Server) HandleSlideRemove(w http.ResponseWriter, r *http.Request) {
	s.slideAction(w, r, "Слайд убран из списка", func(_ context.Context, ed *slide.Editor) error {
		i, err := index(r)
		if err != nil {
			return err
		}
		return ed.RemoveLocal(i)
	})
}

func (s *Server) HandleSlidesSave(w http.ResponseWriter, r *http.Request) {
	s.slideAction(w, r, "Слайды сохранены", func(ctx context.Context, ed *slide.Editor) error {
		return ed.Save(ctx)
	})
}

func (s *Server) HandleSlidesReload(w http.ResponseWriter, r *http.Request) {
	s.slideAction(w, r, "Слайды перечитаны", func(ctx context.Context, ed *slide.Editor) error {
		return ed.Load(ctx)
	})
}

func (s *Server) slideAction(w http.ResponseWriter, r *http.Request, message string, fn func(ctx context.Context, ed *slide.Editor) error) {
	err := s.workspaces.Screen(r.Context(), sessionID(r), workspace.ScreenSlides, func(ctx context.Context, ws *workspace.Workspace) error {
		return fn(ctx, ws.Slides)
	})
	s.finish(w, r, carouselPath, message, err)
}
