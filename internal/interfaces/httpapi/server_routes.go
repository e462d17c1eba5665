package httpapi

import "net/http"

// registerRoutes wires the route table. Collection and item paths require a
// trailing slash; the {$} suffix makes the mux enforce it.
func (h *Handler) registerRoutes(mux *http.ServeMux) {
	requireAuth := RequireAuth(h.auth)

	mux.HandleFunc("GET /healthz", h.Healthz)
	mux.HandleFunc("POST /auth/login", h.Login)

	mux.Handle("POST /teams/{$}", requireAuth(http.HandlerFunc(h.CreateTeam)))
	mux.HandleFunc("GET /teams/{$}", h.ListTeams)
	mux.HandleFunc("GET /teams/{teamID}/{$}", h.GetTeamByID)
	mux.HandleFunc("GET /teams/{teamID}/players/{$}", h.ListTeamPlayers)
	mux.Handle("PATCH /teams/{teamID}/{$}", requireAuth(http.HandlerFunc(h.UpdateTeam)))
	mux.Handle("DELETE /teams/{teamID}/{$}", requireAuth(http.HandlerFunc(h.DeleteTeam)))

	mux.Handle("POST /players/{$}", requireAuth(http.HandlerFunc(h.CreatePlayer)))
	mux.HandleFunc("GET /players/{$}", h.ListPlayers)
	mux.HandleFunc("GET /players/{playerID}/{$}", h.GetPlayerByID)
	mux.Handle("PATCH /players/{playerID}/{$}", requireAuth(http.HandlerFunc(h.UpdatePlayer)))
	mux.Handle("DELETE /players/{playerID}/{$}", requireAuth(http.HandlerFunc(h.DeletePlayer)))
}
