package httpapi

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/openfooty/roster-api/internal/platform/logging"
	"github.com/openfooty/roster-api/internal/usecase"
)

// Handler holds the HTTP handlers for every endpoint of the service.
type Handler struct {
	auth     *usecase.AuthService
	teams    *usecase.TeamService
	players  *usecase.PlayerService
	logger   *logging.Logger
	validate *validator.Validate
}

func NewHandler(
	auth *usecase.AuthService,
	teams *usecase.TeamService,
	players *usecase.PlayerService,
	logger *logging.Logger,
) *Handler {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		auth:     auth,
		teams:    teams,
		players:  players,
		logger:   logger,
		validate: validate,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeBody parses the request body into dst and runs struct validation.
// On failure it writes the 422 response itself and reports false.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst); err != nil {
		writeFieldErrors(w, []fieldError{{
			Loc:  []string{"body"},
			Msg:  err.Error(),
			Type: "value_error.jsondecode",
		}})
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		var invalid validator.ValidationErrors
		if !errors.As(err, &invalid) {
			writeDetail(w, http.StatusInternalServerError, "internal server error")
			return false
		}

		errs := make([]fieldError, 0, len(invalid))
		for _, fe := range invalid {
			errs = append(errs, fieldErrorFrom(fe))
		}
		writeFieldErrors(w, errs)
		return false
	}

	return true
}

func fieldErrorFrom(fe validator.FieldError) fieldError {
	loc := []string{"body", fe.Field()}
	switch fe.Tag() {
	case "required":
		return fieldError{Loc: loc, Msg: "field required", Type: "value_error.missing"}
	case "max":
		return fieldError{
			Loc:  loc,
			Msg:  "ensure this value has at most " + fe.Param() + " characters",
			Type: "value_error.any_str.max_length",
		}
	case "min":
		return fieldError{
			Loc:  loc,
			Msg:  "ensure this value has at least " + fe.Param() + " characters",
			Type: "value_error.any_str.min_length",
		}
	case "gt":
		return fieldError{
			Loc:  loc,
			Msg:  "ensure this value is greater than " + fe.Param(),
			Type: "value_error.number.not_gt",
		}
	case "datetime":
		return fieldError{Loc: loc, Msg: "invalid date format", Type: "value_error.date"}
	default:
		return fieldError{Loc: loc, Msg: "invalid value", Type: "value_error"}
	}
}

// pathID extracts a positive integer path parameter. On failure it writes
// the 422 response itself and reports false.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeFieldErrors(w, []fieldError{{
			Loc:  []string{"path", name},
			Msg:  "value is not a valid integer",
			Type: "type_error.integer",
		}})
		return 0, false
	}

	return id, true
}
