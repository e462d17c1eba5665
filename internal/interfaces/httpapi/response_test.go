package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openfooty/roster-api/internal/platform/logging"
	"github.com/openfooty/roster-api/internal/usecase"
)

func TestWriteError_Mapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "not found",
			err:        &usecase.NotFoundError{Resource: "Team"},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"detail":"Team not found"}`,
		},
		{
			name:       "unauthorized",
			err:        fmt.Errorf("%w: user not authorized", usecase.ErrUnauthorized),
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"detail":"User not authorized"}`,
		},
		{
			name:       "invalid input",
			err:        fmt.Errorf("%w: team name is required", usecase.ErrInvalidInput),
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"detail":"team name is required"}`,
		},
		{
			name:       "unknown",
			err:        fmt.Errorf("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"internal server error"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, logging.NewNop(), tc.err)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
			if got := rec.Body.String(); got != tc.wantBody+"\n" && got != tc.wantBody {
				t.Fatalf("unexpected body: %q", got)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Fatalf("unexpected content type: %q", ct)
			}
		})
	}
}

func TestStatusRecorder_KeepsFirstStatus(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}

	rec.WriteHeader(http.StatusNotFound)
	rec.WriteHeader(http.StatusInternalServerError)

	if rec.status != http.StatusNotFound {
		t.Fatalf("expected first status to win, got %d", rec.status)
	}
}
