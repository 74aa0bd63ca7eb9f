package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/chenxi-arter/short-drama-api-sub001/pkg/ingest"
)

type GenericResponse struct {
	Error    string `json:"error,omitempty"`
	Response any    `json:"response"`
}

// Server houses all dependencies for the ingest endpoints such as loggers, the engine, configurations, etc.
type Server struct {
	baseLogger *zap.SugaredLogger
	ingestor   *ingest.Ingestor
}

// New creates a new ingest server
func New(logger *zap.SugaredLogger, ingestor *ingest.Ingestor) Server {
	return Server{
		baseLogger: logger,
		ingestor:   ingestor,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	return writeResponse(w, status, GenericResponse{
		Error: err.Error(),
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// Serve starts the http server and is a blocking call
func (s Server) Serve(port int) error {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	admin := rtr.PathPrefix("/admin").Subrouter()

	in := admin.PathPrefix("/ingest").Subrouter()

	in.HandleFunc("/series", s.IngestSeries()).Methods(http.MethodPost)
	in.HandleFunc("/series/batch", s.IngestBatch()).Methods(http.MethodPost)
	in.HandleFunc("/series/update", s.UpdateSeries()).Methods(http.MethodPost)
	in.HandleFunc("/series/progress/{externalId}", s.SeriesProgress()).Methods(http.MethodGet)

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
	)(rtr)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: corsHandler,
	}

	go func() {
		s.baseLogger.Info("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}
