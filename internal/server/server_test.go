package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitford/labelguard/internal/catalog"
	"github.com/mwhitford/labelguard/internal/common"
	"github.com/mwhitford/labelguard/internal/engine"
	"github.com/mwhitford/labelguard/internal/model"
)

// mockStore is an in-memory scan store for handler tests.
type mockStore struct {
	scans map[string]*model.ScanRecord
	order []string
	err   error
}

func newMockStore() *mockStore {
	return &mockStore{scans: make(map[string]*model.ScanRecord)}
}

func (m *mockStore) SaveScan(_ context.Context, scan *model.ScanRecord) error {
	if m.err != nil {
		return m.err
	}
	m.scans[scan.ID] = scan
	m.order = append(m.order, scan.ID)
	return nil
}

func (m *mockStore) GetScan(_ context.Context, id string) (*model.ScanRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	scan, ok := m.scans[id]
	if !ok {
		return nil, fmt.Errorf("scan %s: %w", id, common.ErrNotFound)
	}
	return scan, nil
}

func (m *mockStore) ListScans(_ context.Context, limit int) ([]*model.ScanRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var scans []*model.ScanRecord
	for i := len(m.order) - 1; i >= 0 && (limit <= 0 || len(scans) < limit); i-- {
		scans = append(scans, m.scans[m.order[i]])
	}
	return scans, nil
}

func (m *mockStore) Close() error { return nil }

func newTestServer(store *mockStore) *Server {
	cat := catalog.New()
	var s *Server
	if store == nil {
		s = New(engine.New(cat), cat, nil)
	} else {
		s = New(engine.New(cat), cat, store)
	}
	return s
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, catalog.Version, body["catalog_version"])
}

func TestHandleCheck(t *testing.T) {
	store := newMockStore()
	srv := newTestServer(store)

	payload := CheckRequest{
		Text:          "Wooden Train Set\nManufactured by: Acme Toys Inc.\nWARNING: Choking hazard - small parts.",
		Category:      "Toys",
		Jurisdictions: []string{"USA"},
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/check", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CheckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Report)
	assert.Equal(t, "Wooden Train Set", resp.Report.ProductName)
	assert.NotEmpty(t, resp.RiskLevel)

	// The scan was persisted under the returned ID.
	require.NotEmpty(t, resp.ScanID)
	saved, ok := store.scans[resp.ScanID]
	require.True(t, ok)
	assert.Equal(t, model.CategoryToys, saved.Category)
	assert.Equal(t, resp.Report.ComplianceScore, saved.Score)
}

func TestHandleCheck_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown category", body: `{"text":"x","category":"Electronics","jurisdictions":["USA"]}`},
		{name: "unknown jurisdiction", body: `{"text":"x","category":"Toys","jurisdictions":["France"]}`},
		{name: "no jurisdictions", body: `{"text":"x","category":"Toys","jurisdictions":[]}`},
		{name: "malformed body", body: `{`},
	}

	srv := newTestServer(newMockStore())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/check", bytes.NewReader([]byte(tt.body))))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleCheck_StoreFailureStillReturnsReport(t *testing.T) {
	store := newMockStore()
	store.err = fmt.Errorf("disk full")
	srv := newTestServer(store)

	body := `{"text":"x","category":"Toys","jurisdictions":["USA"]}`
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/check", bytes.NewReader([]byte(body))))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CheckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Report)
	assert.Empty(t, resp.ScanID)
}

func TestHandleListRules(t *testing.T) {
	srv := newTestServer(nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rules?category=Toys&jurisdiction=UK", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp RulesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, catalog.Version, resp.CatalogVersion)
	assert.NotEmpty(t, resp.Rules)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rules?category=Nope&jurisdiction=UK", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleScans(t *testing.T) {
	store := newMockStore()
	srv := newTestServer(store)

	// Seed via the check endpoint.
	body := `{"text":"Wooden Train Set","category":"Toys","jurisdictions":["USA"]}`
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/check", bytes.NewReader([]byte(body))))
	require.Equal(t, http.StatusOK, rec.Code)

	var checkResp CheckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &checkResp))

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/scans", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var listResp ScansResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResp))
	require.Len(t, listResp.Scans, 1)
	assert.Equal(t, checkResp.ScanID, listResp.Scans[0].ID)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/scans/"+checkResp.ScanID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/scans/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleListScans_BadLimit(t *testing.T) {
	srv := newTestServer(newMockStore())

	for _, limit := range []string{"abc", "0", "-1"} {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/scans?limit="+limit, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", limit)
	}
}

func TestScansEndpointsWithoutStore(t *testing.T) {
	srv := newTestServer(nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/scans", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
