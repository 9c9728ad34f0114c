package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/naijatax/paye/internal/compare"
	"github.com/naijatax/paye/internal/domain"
	"github.com/naijatax/paye/internal/grossup"
	"github.com/naijatax/paye/internal/output"
	"go.uber.org/zap"
)

// BandsResponse is the active band table with display labels
type BandsResponse struct {
	Regime     string           `json:"regime"`
	Rules      domain.PAYERules `json:"rules"`
	Labels     []string         `json:"labels"`
	Disclaimer string           `json:"disclaimer"`
}

// CalculateResponse wraps one report with the regime disclaimer
type CalculateResponse struct {
	Report     *domain.TaxReport `json:"report"`
	Disclaimer string            `json:"disclaimer"`
}

// CompareRequest carries the declarations to compare inline
type CompareRequest struct {
	Declarations []domain.IncomeInput `json:"declarations"`
	Base         string               `json:"base"`
	Alternatives []string             `json:"alternatives,omitempty"`
	Templates    []string             `json:"templates,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleBands(w http.ResponseWriter, _ *http.Request) {
	labels := make([]string, 0, len(s.rules.Bands))
	for _, b := range s.rules.Bands {
		labels = append(labels, output.BandLabel(domain.TaxBandBreakdown{BandWidth: b.Width, Rate: b.Rate}))
	}
	writeJSON(w, http.StatusOK, BandsResponse{
		Regime:     output.RegimeHeadline(s.rules),
		Rules:      s.rules,
		Labels:     labels,
		Disclaimer: output.Disclaimer(s.rules),
	})
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var in domain.IncomeInput
	if !s.decode(w, r, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		s.reject(w, "validation", http.StatusBadRequest, "invalid_input", err.Error())
		return
	}

	report, err := s.engine.Run(r.Context(), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.metrics.ObserveCalculation(string(report.Category), report.Result.AnnualTax.InexactFloat64())

	writeJSON(w, http.StatusOK, CalculateResponse{Report: report, Disclaimer: output.Disclaimer(s.rules)})
}

func (s *Server) handleGrossUp(w http.ResponseWriter, r *http.Request) {
	var req grossup.Request
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Template.Validate(); err != nil {
		s.reject(w, "validation", http.StatusBadRequest, "invalid_input", err.Error())
		return
	}

	result, err := s.solver.Solve(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.metrics.ObserveGrossUp(result.Iterations)

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Base == "" {
		s.reject(w, "validation", http.StatusBadRequest, "invalid_input", "base is required")
		return
	}
	for _, d := range req.Declarations {
		if err := d.Validate(); err != nil {
			s.reject(w, "validation", http.StatusBadRequest, "invalid_input", fmt.Sprintf("declaration %q: %v", d.Name, err))
			return
		}
	}

	cfg := &domain.Configuration{Declarations: req.Declarations}
	set, err := s.compare.Compare(r.Context(), cfg, compare.CompareOptions{
		BaseName:     req.Base,
		Alternatives: req.Alternatives,
		Templates:    req.Templates,
	})
	if err != nil {
		if status, code := statusFor(err); status != http.StatusInternalServerError {
			s.reject(w, code, status, code, err.Error())
			return
		}
		s.reject(w, "compare", http.StatusBadRequest, "invalid_comparison", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, set)
}

// decode reads a single JSON document and rejects unknown fields
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.reject(w, "too_large", http.StatusRequestEntityTooLarge, "request_too_large", "request body too large")
			return false
		}
		s.reject(w, "malformed", http.StatusBadRequest, "invalid_request", "invalid JSON: "+err.Error())
		return false
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		s.reject(w, "malformed", http.StatusBadRequest, "invalid_request", "request body must contain a single JSON object")
		return false
	}
	return true
}

func (s *Server) reject(w http.ResponseWriter, reason string, status int, code, desc string) {
	s.metrics.IncrementRejection(reason)
	writeJSONError(w, status, code, desc)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("calculation failed", zap.String("path", r.URL.Path), zap.Error(err))
		writeJSONError(w, status, code, "calculation failed")
		return
	}
	s.reject(w, code, status, code, err.Error())
}
