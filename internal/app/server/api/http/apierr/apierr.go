package apierr

import (
	"errors"
	"net/url"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"dayadmin/internal/domain/batch"
	"dayadmin/internal/domain/event"
	"dayadmin/internal/domain/formcontrol"
	"dayadmin/internal/domain/media"
	"dayadmin/internal/domain/session"
	"dayadmin/internal/domain/slide"
	"dayadmin/internal/domain/template"
	"dayadmin/internal/infrastructure/remote"
)

// ошибки ввода оператора
var invalid = []error{
	template.ErrMissingFields,
	template.ErrInvalidCoordinate,
	formcontrol.ErrUnknownField,
	formcontrol.ErrInvalidColor,
	formcontrol.ErrEmptyLabel,
	formcontrol.ErrDuplicateField,
	formcontrol.ErrIndexOutOfRange,
	slide.ErrUnknownField,
	slide.ErrInvalidValue,
	slide.ErrInvalidAlign,
	slide.ErrIndexOutOfRange,
	slide.ErrLastSlide,
	event.ErrUnknownField,
	event.ErrInvalidDateTime,
	event.ErrIndexOutOfRange,
	media.ErrEmptyFile,
	session.ErrEmptyCredential,
}

// From переводит доменную ошибку в ответ huma
func From(log *slog.Logger, err error) error {
	var urlErr *url.Error

	switch {
	case err == nil:
		return nil
	case errors.Is(err, session.ErrNotAuthenticated), errors.Is(err, session.ErrUnauthorized):
		return huma.Error401Unauthorized("Unauthorized", err)
	case errors.Is(err, batch.ErrSaveInProgress):
		return huma.Error409Conflict("Save already in progress", err)
	case isInvalid(err):
		return huma.Error400BadRequest(err.Error(), err)
	case errors.Is(err, batch.ErrReload),
		errors.Is(err, remote.ErrStatus),
		errors.Is(err, media.ErrEmptyFilename),
		errors.As(err, &urlErr):
		log.Warn("remote API failed", slog.Any("error", err))
		return huma.Error502BadGateway(err.Error(), err)
	}

	log.Error("request failed", slog.Any("error", err))
	return huma.Error500InternalServerError("Internal error")
}

func isInvalid(err error) bool {
	for _, target := range invalid {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
