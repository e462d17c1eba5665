package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/openfooty/roster-api/internal/platform/logging"
	"github.com/openfooty/roster-api/internal/usecase"
)

// detailResponse is the error envelope: {"detail": <string or list>}.
type detailResponse struct {
	Detail any `json:"detail"`
}

// fieldError is one entry of a validation detail list.
type fieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		http.Error(w, `{"detail":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

func writeFieldErrors(w http.ResponseWriter, errs []fieldError) {
	writeJSON(w, http.StatusUnprocessableEntity, detailResponse{Detail: errs})
}

// writeError maps usecase errors onto the HTTP error contract. Anything
// unrecognized is a storage or programming failure and answers 500.
func writeError(ctx context.Context, w http.ResponseWriter, logger *logging.Logger, err error) {
	var notFound *usecase.NotFoundError

	switch {
	case errors.As(err, &notFound):
		writeDetail(w, http.StatusNotFound, notFound.Error())
	case errors.Is(err, usecase.ErrUnauthorized):
		writeDetail(w, http.StatusUnauthorized, "User not authorized")
	case errors.Is(err, usecase.ErrInvalidInput):
		writeDetail(w, http.StatusUnprocessableEntity, invalidInputDetail(err))
	default:
		span := trace.SpanFromContext(ctx)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.ErrorContext(ctx, "request failed", "error", err)
		writeDetail(w, http.StatusInternalServerError, "internal server error")
	}
}

func invalidInputDetail(err error) string {
	return strings.TrimPrefix(err.Error(), usecase.ErrInvalidInput.Error()+": ")
}
