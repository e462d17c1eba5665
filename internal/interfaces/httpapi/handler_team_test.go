package httpapi_test

import (
	"net/http"
	"testing"
)

func validTeamBody() map[string]any {
	return map[string]any{
		"name":    "Atletico Nacional",
		"country": "Colombia",
		"city":    "Medellin",
		"stadium": "Atanasio Girardot",
		"color":   "Green",
		"coach":   "Alfredo Arias",
	}
}

func createTeam(t *testing.T, router http.Handler, token string, body map[string]any) map[string]any {
	t.Helper()

	rec := doRequest(t, router, http.MethodPost, "/teams/", token, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create team: status=%d body=%s", rec.Code, rec.Body.String())
	}

	var created map[string]any
	decodeBody(t, rec, &created)

	return created
}

func TestCreateTeam(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router)

	created := createTeam(t, router, token, validTeamBody())
	if created["id"] == nil || created["name"] != "Atletico Nacional" {
		t.Fatalf("unexpected created team: %+v", created)
	}
	if _, exists := created["is_active"]; exists {
		t.Fatalf("team response must not expose is_active: %+v", created)
	}
}

func TestCreateTeam_MissingField(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router)

	body := validTeamBody()
	delete(body, "coach")

	rec := doRequest(t, router, http.MethodPost, "/teams/", token, body)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Detail []struct {
			Loc []string `json:"loc"`
			Msg string   `json:"msg"`
		} `json:"detail"`
	}
	decodeBody(t, rec, &resp)
	if len(resp.Detail) != 1 || resp.Detail[0].Msg != "field required" {
		t.Fatalf("unexpected detail: %+v", resp.Detail)
	}
	if resp.Detail[0].Loc[1] != "coach" {
		t.Fatalf("unexpected loc: %v", resp.Detail[0].Loc)
	}
}

func TestCreateTeam_FieldTooLong(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router)

	body := validTeamBody()
	body["country"] = "a country name that is way over twenty characters"

	rec := doRequest(t, router, http.MethodPost, "/teams/", token, body)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGetTeam_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/teams/42/", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp struct {
		Detail string `json:"detail"`
	}
	decodeBody(t, rec, &resp)
	if resp.Detail != "Team not found" {
		t.Fatalf("unexpected detail: %q", resp.Detail)
	}
}

func TestGetTeam_BadID(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/teams/abc/", "", nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for non-integer id, got %d", rec.Code)
	}
}

func TestListTeams_SubstringFilter(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router)

	createTeam(t, router, token, validTeamBody())
	second := validTeamBody()
	second["name"] = "Junior"
	second["stadium"] = "Metropolitano"
	createTeam(t, router, token, second)

	rec := doRequest(t, router, http.MethodGet, "/teams/?stadium=tan", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list teams: status=%d", rec.Code)
	}

	var items []map[string]any
	decodeBody(t, rec, &items)
	if len(items) != 1 || items[0]["stadium"] != "Atanasio Girardot" {
		t.Fatalf("unexpected filter result: %+v", items)
	}
}

func TestUpdateTeam_Partial(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router)

	created := createTeam(t, router, token, validTeamBody())
	id := created["id"]

	rec := doRequest(t, router, http.MethodPatch, teamPath(id), token, map[string]any{
		"coach": "Juan Carlos Osorio",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update team: status=%d body=%s", rec.Code, rec.Body.String())
	}

	var updated map[string]any
	decodeBody(t, rec, &updated)
	if updated["coach"] != "Juan Carlos Osorio" {
		t.Fatalf("coach not updated: %+v", updated)
	}
	if updated["name"] != "Atletico Nacional" {
		t.Fatalf("untouched field changed: %+v", updated)
	}
}

func TestDeleteTeam_ThenGone(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router)

	created := createTeam(t, router, token, validTeamBody())
	path := teamPath(created["id"])

	rec := doRequest(t, router, http.MethodDelete, path, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete team: status=%d body=%s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodGet, path, "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodDelete, path, token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on double delete, got %d", rec.Code)
	}
}

func teamPath(id any) string {
	return "/teams/" + jsonNumber(id) + "/"
}
