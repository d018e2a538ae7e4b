package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"reflect"
	"time"

	"golang.org/x/exp/slog"

	"dayadmin/internal/config"
	"dayadmin/internal/domain/media"
	"dayadmin/internal/domain/session"
)

var ErrStatus = errors.New("remote api error")

const (
	apiKeyHeader = "x-api-key"
	apiPrefix    = "/day-template"
	userAgent    = "dayadmin/1.0"
)

// Client - HTTP-клиент удаленного API контента. Секрет берется из сессии в контексте.
type Client struct {
	client  *http.Client
	baseURL string
	log     *slog.Logger
}

func NewClient(cfg config.Remote, log *slog.Logger) *Client {
	client := &http.Client{
		Timeout: cfg.RequestTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &Client{
		client:  client,
		baseURL: cfg.BaseURL,
		log:     log.With(slog.String("component", "remote")),
	}
}

// URLs - адреса предпросмотра загруженных файлов
func (c *Client) URLs() media.URLs {
	return media.NewURLs(c.baseURL)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := c.newRequest(ctx, method, path, reqBody)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req)
}

// doUpload отправляет файл полем "file" в multipart-форме
func (c *Client) doUpload(ctx context.Context, path string, file *media.File) (*http.Response, error) {
	if err := file.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, file.Name))
	h.Set("Content-Type", file.ContentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("create multipart part: %w", err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, fmt.Errorf("write multipart part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.send(req)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	key, err := session.CredentialFromContext(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(apiKeyHeader, key)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) send(req *http.Request) (*http.Response, error) {
	c.log.Debug("sending request",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
	)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	return resp, nil
}

// parseResponse разбирает ответ. Тело успешного ответа, которое не удалось
// разобрать, считается пустым.
func (c *Client) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.log.Debug("response received",
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(body)),
	)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", session.ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode >= 400:
		var errResp struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil {
			if msg := firstNonEmpty(errResp.Error, errResp.Message); msg != "" {
				return fmt.Errorf("%w: status %d: %s", ErrStatus, resp.StatusCode, msg)
			}
		}
		return fmt.Errorf("%w: status %d", ErrStatus, resp.StatusCode)
	}

	if result == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		c.log.Debug("malformed response body treated as empty", slog.Any("error", err))
		reflect.ValueOf(result).Elem().SetZero()
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
