package slides

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"dayadmin/internal/domain/batch"
	"dayadmin/internal/domain/media"
	"dayadmin/internal/domain/session"
	"dayadmin/internal/domain/slide"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]slide.Slide, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]slide.Slide), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, s slide.Slide) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockRepository) Update(ctx context.Context, s slide.Slide) error {
	return m.Called(ctx, s).Error(0)
}

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, file *media.File) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}

var remoteSlides = []slide.Slide{
	{ID: "s1", Heading: "First", Image: "one.jpg", Order: 0, Align: slide.AlignLeft},
	{ID: "s2", Heading: "Second", Image: "two.jpg", Order: 1, Align: slide.AlignRight},
}

func setup(t *testing.T) (*Handler, *MockRepository, *MockUploader) {
	t.Helper()
	repo := new(MockRepository)
	up := new(MockUploader)

	h := NewHandler(func() (Editor, error) {
		runner := batch.NewRunner(batch.Concurrent, 2, slog.Default())
		return slide.NewEditor(repo, up, runner, media.NewURLs("https://api.test"), slog.Default()), nil
	}, slog.Default(), huma.Middlewares{})
	return h, repo, up
}

func status(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_list(t *testing.T) {
	h, repo, _ := setup(t)
	repo.On("List", mock.Anything).Return(remoteSlides, nil)

	out, err := h.list(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, out.Body, 2)
	assert.Equal(t, "https://api.test/static/one.jpg", out.Body[0].Preview)
}

func TestHandler_list_Unauthorized(t *testing.T) {
	h, repo, _ := setup(t)
	repo.On("List", mock.Anything).Return(nil, session.ErrUnauthorized)

	_, err := h.list(context.Background(), nil)

	assert.Equal(t, http.StatusUnauthorized, status(t, err))
}

func TestHandler_update_ReordersAndCreates(t *testing.T) {
	h, repo, up := setup(t)
	repo.On("List", mock.Anything).Return(remoteSlides, nil)
	png := []byte("png")
	up.On("Upload", mock.Anything, mock.MatchedBy(func(f *media.File) bool { return f.Name == "new.png" })).
		Return("stored.png", nil)

	repo.On("Update", mock.Anything, mock.MatchedBy(func(s slide.Slide) bool {
		return s.ID == "s2" && s.Order == 0 && s.Image == "two.jpg" && s.Heading == "Second"
	})).Return(nil).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(s slide.Slide) bool {
		return s.ID == "" && s.Order == 1 && s.Image == "stored.png" && s.Align == slide.AlignLeft
	})).Return(nil).Once()

	_, err := h.update(context.Background(), &updateInput{Body: updateRequest{Items: []item{
		{ID: "s2", Heading: "Second", Align: "right"},
		{Heading: "Brand new", ShowButton: true, Image: &file{Name: "new.png", Data: png}},
	}}})

	require.NoError(t, err)
	repo.AssertExpectations(t)
	// s1 не удален на удаленном API
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.MatchedBy(func(s slide.Slide) bool { return s.ID == "s1" }))
}

func TestHandler_update_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		items []item
	}{
		{"empty list", nil},
		{"unknown id", []item{{ID: "s9", Heading: "x"}}},
		{"bad align", []item{{ID: "s1", Heading: "x", Align: "center"}}},
		{"empty image", []item{{ID: "s1", Heading: "x", Image: &file{Name: "a.png"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, repo, _ := setup(t)
			repo.On("List", mock.Anything).Return(remoteSlides, nil)

			_, err := h.update(context.Background(), &updateInput{Body: updateRequest{Items: tt.items}})

			assert.Equal(t, http.StatusBadRequest, status(t, err))
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_update_UploadFailure(t *testing.T) {
	h, repo, up := setup(t)
	repo.On("List", mock.Anything).Return(remoteSlides, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	up.On("Upload", mock.Anything, mock.Anything).Return("", errors.New("disk full"))

	_, err := h.update(context.Background(), &updateInput{Body: updateRequest{Items: []item{
		{ID: "s1", Heading: "First"},
		{ID: "s2", Heading: "Second", Image: &file{Name: "b.png", Data: []byte("b")}},
	}}})

	assert.Equal(t, http.StatusInternalServerError, status(t, err))
	repo.AssertCalled(t, "Update", mock.Anything, mock.MatchedBy(func(s slide.Slide) bool { return s.ID == "s1" }))
}
