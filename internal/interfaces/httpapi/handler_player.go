package httpapi

import (
	"net/http"
	"time"

	"github.com/openfooty/roster-api/internal/domain/player"
)

// birthdateLayout is the wire format for player birthdates.
const birthdateLayout = "2006-01-02"

type playerCreateRequest struct {
	Firstname   string   `json:"firstname" validate:"required,min=2,max=30"`
	Lastname    string   `json:"lastname" validate:"required,min=5,max=30"`
	Birthdate   string   `json:"birthdate" validate:"required,datetime=2006-01-02"`
	Height      *float64 `json:"height" validate:"required,gt=0"`
	Nationality string   `json:"nationality" validate:"required,max=30"`
	Position    string   `json:"position" validate:"required,max=20"`
	Dorsal      *int     `json:"dorsal" validate:"required"`
	TeamID      *int64   `json:"team_id" validate:"required,gt=0"`
}

type playerUpdateRequest struct {
	Firstname   *string  `json:"firstname" validate:"omitempty,min=2,max=30"`
	Lastname    *string  `json:"lastname" validate:"omitempty,min=5,max=30"`
	Birthdate   *string  `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	Height      *float64 `json:"height" validate:"omitempty,gt=0"`
	Nationality *string  `json:"nationality" validate:"omitempty,max=30"`
	Position    *string  `json:"position" validate:"omitempty,max=20"`
	Dorsal      *int     `json:"dorsal"`
	TeamID      *int64   `json:"team_id" validate:"omitempty,gt=0"`
}

// playerDTO exposes is_active, unlike teamDTO; the relationship read on
// /teams/{id}/players/ can return inactive players.
type playerDTO struct {
	ID          int64   `json:"id"`
	Firstname   string  `json:"firstname"`
	Lastname    string  `json:"lastname"`
	Birthdate   string  `json:"birthdate"`
	Height      float64 `json:"height"`
	Nationality string  `json:"nationality"`
	Position    string  `json:"position"`
	Dorsal      int     `json:"dorsal"`
	TeamID      int64   `json:"team_id"`
	IsActive    bool    `json:"is_active"`
}

func toPlayerDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:          p.ID,
		Firstname:   p.Firstname,
		Lastname:    p.Lastname,
		Birthdate:   p.Birthdate.Format(birthdateLayout),
		Height:      p.Height,
		Nationality: p.Nationality,
		Position:    p.Position,
		Dorsal:      p.Dorsal,
		TeamID:      p.TeamID,
		IsActive:    p.IsActive,
	}
}

func toPlayerDTOs(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toPlayerDTO(item))
	}
	return out
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.CreatePlayer")
	defer span.End()

	var req playerCreateRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	birthdate, err := time.Parse(birthdateLayout, req.Birthdate)
	if err != nil {
		writeFieldErrors(w, []fieldError{{
			Loc:  []string{"body", "birthdate"},
			Msg:  "invalid date format",
			Type: "value_error.date",
		}})
		return
	}

	created, err := h.players.Create(ctx, player.Player{
		Firstname:   req.Firstname,
		Lastname:    req.Lastname,
		Birthdate:   birthdate,
		Height:      *req.Height,
		Nationality: req.Nationality,
		Position:    req.Position,
		Dorsal:      *req.Dorsal,
		TeamID:      *req.TeamID,
	})
	if err != nil {
		writeError(ctx, w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPlayerDTO(created))
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.ListPlayers")
	defer span.End()

	query := r.URL.Query()
	items, err := h.players.List(ctx, player.Filter{
		Firstname:   query.Get("firstname"),
		Lastname:    query.Get("lastname"),
		Nationality: query.Get("nationality"),
		Position:    query.Get("position"),
	})
	if err != nil {
		writeError(ctx, w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlayerDTOs(items))
}

func (h *Handler) GetPlayerByID(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.GetPlayerByID")
	defer span.End()

	id, ok := h.pathID(w, r, "playerID")
	if !ok {
		return
	}

	item, err := h.players.GetByID(ctx, id)
	if err != nil {
		writeError(ctx, w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlayerDTO(item))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.UpdatePlayer")
	defer span.End()

	id, ok := h.pathID(w, r, "playerID")
	if !ok {
		return
	}

	var req playerUpdateRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	upd := player.Update{
		Firstname:   req.Firstname,
		Lastname:    req.Lastname,
		Height:      req.Height,
		Nationality: req.Nationality,
		Position:    req.Position,
		Dorsal:      req.Dorsal,
		TeamID:      req.TeamID,
	}
	if req.Birthdate != nil {
		birthdate, err := time.Parse(birthdateLayout, *req.Birthdate)
		if err != nil {
			writeFieldErrors(w, []fieldError{{
				Loc:  []string{"body", "birthdate"},
				Msg:  "invalid date format",
				Type: "value_error.date",
			}})
			return
		}
		upd.Birthdate = &birthdate
	}

	updated, err := h.players.Update(ctx, id, upd)
	if err != nil {
		writeError(ctx, w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlayerDTO(updated))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.DeletePlayer")
	defer span.End()

	id, ok := h.pathID(w, r, "playerID")
	if !ok {
		return
	}

	deleted, err := h.players.SoftDelete(ctx, id)
	if err != nil {
		writeError(ctx, w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlayerDTO(deleted))
}
