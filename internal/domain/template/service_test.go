package template

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"dayadmin/internal/domain/media"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Template, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Template), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, t Template) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, file *media.File) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}

func newService(repo *MockRepository, up *MockUploader) *Service {
	return NewService(repo, up, media.NewURLs("https://api.test"), 6, slog.Default())
}

func validDraft() Draft {
	return Draft{
		Name:            "Birthday",
		RadioButtonText: "Birthday card",
		NameX:           "120",
		NameY:           "45.5",
		DateTimeX:       "",
		DateTimeY:       "300",
		File:            &media.File{Name: "card.png", ContentType: "image/png", Data: []byte{1, 2}},
	}
}

func TestService_List_FiltersAndReverses(t *testing.T) {
	repo := new(MockRepository)
	s := newService(repo, new(MockUploader))

	repo.On("List", mock.Anything).Return([]Template{
		{ID: "1", Name: "a", RadioButtonText: "A", File: "a.png"},
		{ID: "2", Name: "", RadioButtonText: "B", File: "b.png"},
		{ID: "3", Name: "c", RadioButtonText: "C", File: ""},
		{ID: "4", Name: "d", RadioButtonText: "D", File: "d.pdf"},
	}, nil)

	list, err := s.List(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "4", list[0].ID)
	assert.Equal(t, "1", list[1].ID)
}

func TestService_List_Error(t *testing.T) {
	repo := new(MockRepository)
	s := newService(repo, new(MockUploader))
	repo.On("List", mock.Anything).Return(nil, errors.New("network down"))

	_, err := s.List(context.Background())
	assert.ErrorContains(t, err, "network down")
}

func TestService_Page(t *testing.T) {
	repo := new(MockRepository)
	s := newService(repo, new(MockUploader))

	var all []Template
	for i := 0; i < 14; i++ {
		all = append(all, Template{ID: fmt.Sprint(i), Name: "n", RadioButtonText: "r", File: "f.png"})
	}
	repo.On("List", mock.Anything).Return(all, nil)

	p, err := s.Page(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 14, p.Total)
	require.Len(t, p.Items, 2)
	// список развернут: последняя страница содержит самые старые записи
	assert.Equal(t, "1", p.Items[0].ID)
	assert.Equal(t, "0", p.Items[1].ID)
}

func TestPaginate(t *testing.T) {
	list := make([]Template, 7)

	tests := []struct {
		name      string
		list      []Template
		page      int
		wantPage  int
		wantItems int
		wantPages int
	}{
		{name: "first page", list: list, page: 1, wantPage: 1, wantItems: 6, wantPages: 2},
		{name: "last page", list: list, page: 2, wantPage: 2, wantItems: 1, wantPages: 2},
		{name: "page above range", list: list, page: 9, wantPage: 2, wantItems: 1, wantPages: 2},
		{name: "page below range", list: list, page: 0, wantPage: 1, wantItems: 6, wantPages: 2},
		{name: "empty list", list: nil, page: 1, wantPage: 1, wantItems: 0, wantPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(tt.list, tt.page, 6)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Len(t, p.Items, tt.wantItems)
			assert.Equal(t, tt.wantPages, p.TotalPages)
		})
	}
}

func TestService_Create(t *testing.T) {
	repo := new(MockRepository)
	up := new(MockUploader)
	s := newService(repo, up)
	d := validDraft()

	up.On("Upload", mock.Anything, d.File).Return("stored-card.png", nil)
	repo.On("Create", mock.Anything, Template{
		Name:               "Birthday",
		RadioButtonText:    "Birthday card",
		File:               "stored-card.png",
		NameCoordinate:     Coordinate{X: 120, Y: 45.5},
		DateTimeCoordinate: Coordinate{X: 0, Y: 300},
	}).Return(nil)

	err := s.Create(context.Background(), d)

	require.NoError(t, err)
	up.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *Draft)
		wantErr error
	}{
		{name: "missing name", mutate: func(d *Draft) { d.Name = " " }, wantErr: ErrMissingFields},
		{name: "missing radio text", mutate: func(d *Draft) { d.RadioButtonText = "" }, wantErr: ErrMissingFields},
		{name: "missing file", mutate: func(d *Draft) { d.File = nil }, wantErr: ErrMissingFields},
		{name: "bad coordinate", mutate: func(d *Draft) { d.NameX = "left" }, wantErr: ErrInvalidCoordinate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			up := new(MockUploader)
			s := newService(repo, up)
			d := validDraft()
			tt.mutate(&d)

			err := s.Create(context.Background(), d)

			assert.ErrorIs(t, err, tt.wantErr)
			up.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Create_UploadFailures(t *testing.T) {
	t.Run("upload error", func(t *testing.T) {
		repo := new(MockRepository)
		up := new(MockUploader)
		s := newService(repo, up)
		up.On("Upload", mock.Anything, mock.Anything).Return("", errors.New("413"))

		err := s.Create(context.Background(), validDraft())

		assert.ErrorContains(t, err, "413")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("empty filename", func(t *testing.T) {
		repo := new(MockRepository)
		up := new(MockUploader)
		s := newService(repo, up)
		up.On("Upload", mock.Anything, mock.Anything).Return("", nil)

		err := s.Create(context.Background(), validDraft())

		assert.ErrorIs(t, err, media.ErrEmptyFilename)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestService_Preview(t *testing.T) {
	s := newService(new(MockRepository), new(MockUploader))

	assert.Equal(t, "https://api.test/static/a.pdf", s.Preview(Template{File: "a.pdf"}))
	assert.Equal(t, "https://api.test/templates/a.jpg", s.Preview(Template{File: "a.jpg"}))
}
