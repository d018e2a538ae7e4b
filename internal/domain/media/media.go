package media

import (
	"context"
	"encoding/base64"
	"errors"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

var (
	ErrEmptyFile     = errors.New("file is empty")
	ErrEmptyFilename = errors.New("upload returned no filename")
)

// Kind - тип файла для предпросмотра
type Kind string

const (
	KindImage Kind = "image"
	KindPDF   Kind = "pdf"
	KindOther Kind = "other"
)

// File - выбранный оператором файл, который еще не загружен на сервер
type File struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

// NewFile определяет Content-Type по расширению, а при неудаче по содержимому
func NewFile(name string, data []byte) *File {
	ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	if ct == "" && len(data) > 0 {
		ct = http.DetectContentType(data)
	}
	if ct == "" {
		ct = "application/octet-stream"
	}
	return &File{Name: filepath.Base(name), ContentType: ct, Data: data}
}

// Validate проверяет, что файл можно отправить
func (f *File) Validate() error {
	if f == nil || len(f.Data) == 0 || f.Name == "" {
		return ErrEmptyFile
	}
	return nil
}

// Kind классифицирует файл для предпросмотра
func (f *File) Kind() Kind {
	return kindOf(f.ContentType)
}

// KindOf классифицирует сохраненный файл по расширению имени
func KindOf(name string) Kind {
	return kindOf(mime.TypeByExtension(strings.ToLower(filepath.Ext(name))))
}

func kindOf(contentType string) Kind {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return KindImage
	case contentType == "application/pdf":
		return KindPDF
	default:
		return KindOther
	}
}

// DataURL - локальный предпросмотр файла до загрузки
func (f *File) DataURL() string {
	return "data:" + f.ContentType + ";base64," + base64.StdEncoding.EncodeToString(f.Data)
}

// Uploader загружает файл на удаленный сервер и возвращает сохраненное имя
type Uploader interface {
	Upload(ctx context.Context, file *File) (string, error)
}

// URLs строит ссылки предпросмотра на файлы удаленного сервера
type URLs struct {
	base string
}

// NewURLs создает построитель ссылок от базового адреса API
func NewURLs(baseURL string) URLs {
	return URLs{base: strings.TrimRight(baseURL, "/")}
}

// Static возвращает ссылку /static/<name>, пустую для пустого имени
func (u URLs) Static(name string) string {
	if name == "" {
		return ""
	}
	return u.base + "/static/" + name
}

// Template возвращает ссылку на файл шаблона: PDF лежат в /static, картинки в /templates
func (u URLs) Template(name string) string {
	if name == "" {
		return ""
	}
	if IsPDF(name) {
		return u.Static(name)
	}
	return u.base + "/templates/" + name
}

// IsPDF проверяет расширение имени файла
func IsPDF(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".pdf")
}
