package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"marketdata-service/internal/application"
	"marketdata-service/internal/domain"
)

// Server exposes the persisted run artifacts read-only. It never mutates
// them; the scraper and auditor own the files.
type Server struct {
	datasets application.DatasetStore
	reports  application.ReportStore
}

func NewServer(datasets application.DatasetStore, reports application.ReportStore) *Server {
	return &Server{datasets: datasets, reports: reports}
}

type ratesResponse struct {
	LastUpdate string             `json:"last_update"`
	Rates      map[string]float64 `json:"rates"`
}

type rateResponse struct {
	Code       string  `json:"code"`
	Rate       float64 `json:"rate"`
	LastUpdate string  `json:"last_update"`
}

func (s *Server) GetMarket(w http.ResponseWriter, r *http.Request) {
	ds, err := s.datasets.ReadDataset(r.Context())
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ds)
}

func (s *Server) GetRates(w http.ResponseWriter, r *http.Request) {
	ds, err := s.datasets.ReadDataset(r.Context())
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ratesResponse{LastUpdate: ds.LastUpdate, Rates: ds.Rates})
}

func (s *Server) GetRate(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(chi.URLParam(r, "code"))
	ds, err := s.datasets.ReadDataset(r.Context())
	if err != nil {
		storeError(w, err)
		return
	}
	rate, ok := ds.Rates[code]
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, rateResponse{Code: code, Rate: rate, LastUpdate: ds.LastUpdate})
}

func (s *Server) GetAudit(w http.ResponseWriter, r *http.Request) {
	rep, err := s.reports.ReadReport(r.Context())
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) ready(ctx context.Context) error {
	_, err := s.datasets.ReadDataset(ctx)
	return err
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		notFound(w)
		return
	}
	internalError(w)
}

func notFound(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

func internalError(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
