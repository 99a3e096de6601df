// Package server exposes the compliance engine over a small REST API.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/mwhitford/labelguard/internal/catalog"
	"github.com/mwhitford/labelguard/internal/common"
	"github.com/mwhitford/labelguard/internal/engine"
	"github.com/mwhitford/labelguard/internal/model"
	"github.com/mwhitford/labelguard/internal/service"
)

// Server wires the compliance engine, rule catalog and scan store into an
// HTTP API.
type Server struct {
	engine  *engine.Engine
	catalog *catalog.Catalog
	store   service.ScanStore
	router  *chi.Mux
	now     func() time.Time
}

// New creates a server. The store may be nil, in which case checks are not
// persisted and the scan endpoints return 404.
func New(eng *engine.Engine, cat *catalog.Catalog, store service.ScanStore) *Server {
	s := &Server{
		engine:  eng,
		catalog: cat,
		store:   store,
		now:     func() time.Time { return time.Now().UTC() },
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/api/v1/health", s.handleHealth)
	r.Post("/api/v1/check", s.handleCheck)
	r.Get("/api/v1/rules", s.handleListRules)

	r.Route("/api/v1/scans", func(r chi.Router) {
		r.Get("/", s.handleListScans)
		r.Get("/{scanID}", s.handleGetScan)
	})

	s.router = r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status":          "ok",
		"catalog_version": catalog.Version,
	})
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	checkReq := req.toModel()
	report, err := s.engine.Check(checkReq)
	if err != nil {
		s.respondEngineError(w, err)
		return
	}

	risk := s.engine.Risk(report.ComplianceScore)

	resp := CheckResponse{
		Report:    report,
		RiskLevel: string(risk),
	}

	if s.store != nil {
		scan := &model.ScanRecord{
			ID:            uuid.NewString(),
			CreatedAt:     s.now(),
			Category:      checkReq.Category,
			Jurisdictions: checkReq.Jurisdictions,
			Text:          checkReq.Text,
			Score:         report.ComplianceScore,
			RiskLevel:     string(risk),
			Report:        report,
		}
		if err := s.store.SaveScan(r.Context(), scan); err != nil {
			// The check itself succeeded; log and return the report anyway.
			common.LogError(err, "failed to persist scan", common.Fields{"scan_id": scan.ID})
		} else {
			resp.ScanID = scan.ID
		}
	}

	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListRules(w http.ResponseWriter, r *http.Request) {
	category := model.Category(r.URL.Query().Get("category"))
	jurisdiction := model.Jurisdiction(r.URL.Query().Get("jurisdiction"))

	rules, err := s.catalog.RulesFor(category, jurisdiction)
	if err != nil {
		s.respondEngineError(w, err)
		return
	}

	resp := RulesResponse{
		CatalogVersion: catalog.Version,
		Rules:          make([]RuleSummary, 0, len(rules)),
	}
	for _, rule := range rules {
		resp.Rules = append(resp.Rules, RuleSummary{
			ID:          rule.ID,
			Severity:    string(rule.Severity),
			Description: rule.Description,
		})
	}

	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListScans(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.respondError(w, http.StatusNotFound, "scan persistence is not enabled")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			s.respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	scans, err := s.store.ListScans(r.Context(), limit)
	if err != nil {
		s.respondInternalError(w, err, "failed to list scans")
		return
	}

	s.respondJSON(w, http.StatusOK, ScansResponse{Scans: toScanSummaries(scans)})
}

func (s *Server) handleGetScan(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.respondError(w, http.StatusNotFound, "scan persistence is not enabled")
		return
	}

	scan, err := s.store.GetScan(r.Context(), chi.URLParam(r, "scanID"))
	if errors.Is(err, common.ErrNotFound) {
		s.respondError(w, http.StatusNotFound, "scan not found")
		return
	}
	if err != nil {
		s.respondInternalError(w, err, "failed to get scan")
		return
	}

	s.respondJSON(w, http.StatusOK, scan)
}

// respondEngineError maps validation errors to 400 and everything else to 500.
func (s *Server) respondEngineError(w http.ResponseWriter, err error) {
	if common.IsValidation(err) {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.respondInternalError(w, err, "compliance check failed")
}

func (s *Server) respondInternalError(w http.ResponseWriter, err error, msg string) {
	common.LogError(err, msg, nil)
	s.respondError(w, http.StatusInternalServerError, msg)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
