package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/chenxi-arter/short-drama-api-sub001/pkg/ingest"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/logger"
)

func decodeBodyError() error {
	return &ingest.ValidationError{
		Details: []ingest.FieldError{{Field: "body", Constraint: "must be valid json"}},
	}
}

// IngestSeries accepts one create-shaped record and upserts it. Record-level
// failures still answer 200 with a failed item; only infrastructure faults
// surface as errors.
func (s Server) IngestSeries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		b, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("failed to read request body", zap.Error(err))
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		var rec ingest.SeriesRecord
		if err := json.Unmarshal(b, &rec); err != nil {
			writeResponse(w, http.StatusOK, GenericResponse{
				Response: ingest.NewResponse([]ingest.Item{ingest.FailureItem(rec.ExternalID, decodeBodyError())}),
			})
			return
		}

		item, err := s.ingestor.IngestSeries(r.Context(), rec)
		if err != nil && !ingest.IsItemError(err) {
			log.Error("failed to ingest series", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, errors.New("failed to ingest series"))
			return
		}

		resp := ingest.NormalizeSingle(rec.ExternalID, item, err)
		if err := writeResponse(w, http.StatusOK, GenericResponse{Response: resp}); err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// IngestBatch accepts a list of create-shaped records and processes them in
// order, isolating per-record failures.
func (s Server) IngestBatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		var req ingest.BatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeResponse(w, http.StatusOK, GenericResponse{
				Response: ingest.NewResponse([]ingest.Item{ingest.FailureItem("", decodeBodyError())}),
			})
			return
		}

		resp, err := s.ingestor.IngestBatch(r.Context(), req)
		if err != nil {
			log.Error("failed to ingest batch", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, errors.New("failed to ingest batch"))
			return
		}

		if err := writeResponse(w, http.StatusOK, GenericResponse{Response: resp}); err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// UpdateSeries accepts an update-shaped record. A target that was never
// ingested is the one record-level failure that maps to a status code.
func (s Server) UpdateSeries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		var rec ingest.SeriesUpdateRecord
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			writeResponse(w, http.StatusOK, GenericResponse{
				Response: ingest.NewResponse([]ingest.Item{ingest.FailureItem(rec.ExternalID, decodeBodyError())}),
			})
			return
		}

		item, err := s.ingestor.UpdateSeries(r.Context(), rec)
		if err != nil {
			if errors.Is(err, ingest.ErrSeriesNotFound) {
				writeErrorResponse(w, http.StatusNotFound, err)
				return
			}
			if !ingest.IsItemError(err) {
				log.Error("failed to update series", zap.Error(err))
				writeErrorResponse(w, http.StatusInternalServerError, errors.New("failed to update series"))
				return
			}
		}

		resp := ingest.NormalizeSingle(rec.ExternalID, item, err)
		if err := writeResponse(w, http.StatusOK, GenericResponse{Response: resp}); err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// SeriesProgress reports the derived ingest state for one external id.
func (s Server) SeriesProgress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		externalID := mux.Vars(r)["externalId"]
		progress, err := s.ingestor.Progress(r.Context(), externalID)
		if err != nil {
			if errors.Is(err, ingest.ErrSeriesNotFound) {
				writeErrorResponse(w, http.StatusNotFound, err)
				return
			}
			log.Error("failed to fetch series progress", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, errors.New("failed to fetch series progress"))
			return
		}

		if err := writeResponse(w, http.StatusOK, GenericResponse{Response: progress}); err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}
