package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/lexigraph/backend/internal/server/middleware"
	"github.com/lexigraph/backend/internal/session"
)

type testValidator struct {
	validator *validator.Validate
}

func (tv *testValidator) Validate(i any) error {
	return tv.validator.Struct(i)
}

func newTestContext(method, target, body string, registry *session.Registry) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	cc := &middleware.AppContext{
		Context: c,
		App:     &middleware.App{Sessions: registry},
	}
	return cc, rec
}

func TestIngestGenerationsDropsNonStringEntries(t *testing.T) {
	registry := session.NewRegistry(session.NewRegistryParams{})
	s, err := registry.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	body := `{"generations": ["the cat sat", 42, null, {"nope": true}, "the dog sat"]}`
	c, rec := newTestContext(http.MethodPost, "/api/sessions/"+s.ID+"/generations", body, registry)
	c.(*middleware.AppContext).SetParamNames("id")
	c.(*middleware.AppContext).SetParamValues(s.ID)

	if err := IngestGenerationsHandler(c); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Result struct {
			Words []struct {
				Word        string `json:"word"`
				Count       int    `json:"count"`
				WordIndices []int  `json:"wordIndices"`
			} `json:"words"`
			TotalGenerations int `json:"totalGenerations"`
		} `json:"result"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	// Only the two string entries survive the boundary.
	if resp.Result.TotalGenerations != 2 {
		t.Errorf("totalGenerations = %d, want 2", resp.Result.TotalGenerations)
	}
	if len(resp.Result.Words) != 3 {
		t.Errorf("got %d words, want 3 (cat, dog, sat)", len(resp.Result.Words))
	}
}

func TestIngestGenerationsUnknownSession(t *testing.T) {
	registry := session.NewRegistry(session.NewRegistryParams{})

	c, rec := newTestContext(http.MethodPost, "/api/sessions/missing/generations", `{"generations": []}`, registry)
	c.(*middleware.AppContext).SetParamNames("id")
	c.(*middleware.AppContext).SetParamValues("missing")

	if err := IngestGenerationsHandler(c); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestGetStatsRendersUndefinedAverageAsNull(t *testing.T) {
	registry := session.NewRegistry(session.NewRegistryParams{})
	s, err := registry.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	c, rec := newTestContext(http.MethodGet, "/api/sessions/"+s.ID+"/stats", "", registry)
	c.(*middleware.AppContext).SetParamNames("id")
	c.(*middleware.AppContext).SetParamValues(s.ID)

	if err := GetStatsHandler(c); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Stats struct {
			Generations               int      `json:"generations"`
			AverageWordsPerGeneration *float64 `json:"averageWordsPerGeneration"`
		} `json:"stats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Stats.Generations != 0 {
		t.Errorf("generations = %d, want 0", resp.Stats.Generations)
	}
	if resp.Stats.AverageWordsPerGeneration != nil {
		t.Errorf("averageWordsPerGeneration = %v, want null", *resp.Stats.AverageWordsPerGeneration)
	}
}

func TestGetGraphEndToEnd(t *testing.T) {
	registry := session.NewRegistry(session.NewRegistryParams{})
	s, err := registry.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	ingest, rec := newTestContext(
		http.MethodPost,
		"/api/sessions/"+s.ID+"/generations",
		`{"generations": ["the cat sat", "the dog sat"]}`,
		registry,
	)
	ingest.(*middleware.AppContext).SetParamNames("id")
	ingest.(*middleware.AppContext).SetParamValues(s.ID)
	if err := IngestGenerationsHandler(ingest); err != nil {
		t.Fatalf("ingest handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("ingest status = %d, want 200", rec.Code)
	}

	c, rec := newTestContext(http.MethodGet, "/api/sessions/"+s.ID+"/graph?min_frequency=1", "", registry)
	c.(*middleware.AppContext).SetParamNames("id")
	c.(*middleware.AppContext).SetParamValues(s.ID)

	if err := GetGraphHandler(c); err != nil {
		t.Fatalf("graph handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("graph status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Graph struct {
			Nodes []struct {
				Word     string   `json:"word"`
				Children []string `json:"children"`
				IsRoot   bool     `json:"is_root"`
			} `json:"nodes"`
			Links []struct {
				Source string `json:"source"`
				Target string `json:"target"`
				Weight int    `json:"weight"`
			} `json:"links"`
			TotalWords  int `json:"total_words"`
			UniqueWords int `json:"unique_words"`
		} `json:"graph"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Graph.Nodes) != 3 {
		t.Errorf("got %d nodes, want 3", len(resp.Graph.Nodes))
	}
	if len(resp.Graph.Links) != 2 {
		t.Errorf("got %d links, want 2", len(resp.Graph.Links))
	}
	if resp.Graph.TotalWords != 4 || resp.Graph.UniqueWords != 3 {
		t.Errorf("totals = (%d, %d), want (4, 3)", resp.Graph.TotalWords, resp.Graph.UniqueWords)
	}
}

func TestSessionLifecycle(t *testing.T) {
	registry := session.NewRegistry(session.NewRegistryParams{})

	c, rec := newTestContext(http.MethodPost, "/api/sessions", "", registry)
	if err := CreateSessionHandler(c); err != nil {
		t.Fatalf("create handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("create status = %d, want 200", rec.Code)
	}

	var created struct {
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.SessionID == "" {
		t.Fatal("create returned empty session_id")
	}

	c, rec = newTestContext(http.MethodDelete, "/api/sessions/"+created.SessionID, "", registry)
	c.(*middleware.AppContext).SetParamNames("id")
	c.(*middleware.AppContext).SetParamValues(created.SessionID)
	if err := DeleteSessionHandler(c); err != nil {
		t.Fatalf("delete handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("delete status = %d, want 200", rec.Code)
	}

	if registry.Count() != 0 {
		t.Errorf("registry count = %d after delete, want 0", registry.Count())
	}
}
