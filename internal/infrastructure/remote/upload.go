package remote

import (
	"context"

	"dayadmin/internal/domain/media"
)

const (
	templateUploadPath = "/upload/template"
	localUploadPath    = "/upload/local"
)

// Uploader загружает файлы в одно из хранилищ удаленного API
type Uploader struct {
	c    *Client
	path string
}

// NewTemplateUploader - хранилище файлов шаблонов
func NewTemplateUploader(c *Client) *Uploader {
	return &Uploader{c: c, path: templateUploadPath}
}

// NewLocalUploader - хранилище изображений слайдов и событий
func NewLocalUploader(c *Client) *Uploader {
	return &Uploader{c: c, path: localUploadPath}
}

// Upload возвращает имя, под которым сервер сохранил файл
func (u *Uploader) Upload(ctx context.Context, file *media.File) (string, error) {
	resp, err := u.c.doUpload(ctx, u.path, file)
	if err != nil {
		return "", err
	}

	var uploadResp struct {
		Filename string `json:"filename"`
	}
	if err := u.c.parseResponse(resp, &uploadResp); err != nil {
		return "", err
	}
	if uploadResp.Filename == "" {
		return "", media.ErrEmptyFilename
	}
	return uploadResp.Filename, nil
}
