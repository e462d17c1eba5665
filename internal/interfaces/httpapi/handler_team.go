package httpapi

import (
	"net/http"

	"github.com/openfooty/roster-api/internal/domain/team"
)

type teamCreateRequest struct {
	Name    string `json:"name" validate:"required,max=30"`
	Country string `json:"country" validate:"required,max=20"`
	City    string `json:"city" validate:"required,max=20"`
	Stadium string `json:"stadium" validate:"required,max=30"`
	Color   string `json:"color" validate:"required,max=20"`
	Coach   string `json:"coach" validate:"required,max=30"`
}

type teamUpdateRequest struct {
	Name    *string `json:"name" validate:"omitempty,max=30"`
	Country *string `json:"country" validate:"omitempty,max=20"`
	City    *string `json:"city" validate:"omitempty,max=20"`
	Stadium *string `json:"stadium" validate:"omitempty,max=30"`
	Color   *string `json:"color" validate:"omitempty,max=20"`
	Coach   *string `json:"coach" validate:"omitempty,max=30"`
}

// teamDTO deliberately has no is_active field; deactivated teams simply
// vanish from reads.
type teamDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	City    string `json:"city"`
	Stadium string `json:"stadium"`
	Color   string `json:"color"`
	Coach   string `json:"coach"`
}

func toTeamDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:      t.ID,
		Name:    t.Name,
		Country: t.Country,
		City:    t.City,
		Stadium: t.Stadium,
		Color:   t.Color,
		Coach:   t.Coach,
	}
}

func toTeamDTOs(items []team.Team) []teamDTO {
	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toTeamDTO(item))
	}
	return out
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.CreateTeam")
	defer span.End()

	var req teamCreateRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	created, err := h.teams.Create(ctx, team.Team{
		Name:    req.Name,
		Country: req.Country,
		City:    req.City,
		Stadium: req.Stadium,
		Color:   req.Color,
		Coach:   req.Coach,
	})
	if err != nil {
		writeError(ctx, w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTeamDTO(created))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.ListTeams")
	defer span.End()

	query := r.URL.Query()
	items, err := h.teams.List(ctx, team.Filter{
		Name:    query.Get("name"),
		Country: query.Get("country"),
		City:    query.Get("city"),
		Stadium: query.Get("stadium"),
		Color:   query.Get("color"),
		Coach:   query.Get("coach"),
	})
	if err != nil {
		writeError(ctx, w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toTeamDTOs(items))
}

func (h *Handler) GetTeamByID(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.GetTeamByID")
	defer span.End()

	id, ok := h.pathID(w, r, "teamID")
	if !ok {
		return
	}

	item, err := h.teams.GetByID(ctx, id)
	if err != nil {
		writeError(ctx, w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toTeamDTO(item))
}

func (h *Handler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.ListTeamPlayers")
	defer span.End()

	id, ok := h.pathID(w, r, "teamID")
	if !ok {
		return
	}

	items, err := h.teams.ListPlayersByTeam(ctx, id)
	if err != nil {
		writeError(ctx, w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlayerDTOs(items))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.UpdateTeam")
	defer span.End()

	id, ok := h.pathID(w, r, "teamID")
	if !ok {
		return
	}

	var req teamUpdateRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	updated, err := h.teams.Update(ctx, id, team.Update{
		Name:    req.Name,
		Country: req.Country,
		City:    req.City,
		Stadium: req.Stadium,
		Color:   req.Color,
		Coach:   req.Coach,
	})
	if err != nil {
		writeError(ctx, w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toTeamDTO(updated))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.DeleteTeam")
	defer span.End()

	id, ok := h.pathID(w, r, "teamID")
	if !ok {
		return
	}

	deleted, err := h.teams.SoftDelete(ctx, id)
	if err != nil {
		writeError(ctx, w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toTeamDTO(deleted))
}
