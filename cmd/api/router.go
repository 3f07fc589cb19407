package main

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/segmentio/ksuid"
)

const requestIDHeader = "X-Request-Id"

func newRouter(h *handlers) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/generateData", h.generateDataHandler).Methods("GET")
	router.HandleFunc("/exportCSV", h.exportCSVHandler).Methods("GET")
	router.HandleFunc("/applyErrors", h.applyErrorsHandler).Methods("POST")
	router.HandleFunc("/regions", h.regionsHandler).Methods("GET")
	router.HandleFunc("/health", h.healthHandler).Methods("GET")
	router.HandleFunc("/ws", h.wsHandler)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeErrorJson(w, http.StatusNotFound, "Not Found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeErrorJson(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	router.Use(h.requestID, h.logRequests, h.recoverPanics)

	c := cors.New(cors.Options{
		AllowedOrigins:   h.config.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition", requestIDHeader},
		AllowCredentials: true,
	})
	return c.Handler(router)
}

func (h *handlers) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = ksuid.New().String()
			r.Header.Set(requestIDHeader, id)
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func (h *handlers) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		h.log.Debugf("API:: %s %s %s -> %d (%s)", r.Header.Get(requestIDHeader), r.Method, r.URL.RequestURI(), sw.status, time.Since(start))
	})
}

func (h *handlers) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				if v == http.ErrAbortHandler {
					panic(v)
				}
				h.log.Printf("API:: %s panic serving %s: %v", r.Header.Get(requestIDHeader), r.URL.Path, v)
				writeJson(w, http.StatusInternalServerError, map[string]string{"message": "Internal Server Error"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// statusWriter records the response status. It passes Hijack through so
// websocket upgrades work behind it.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *statusWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	w.status = http.StatusSwitchingProtocols
	return hj.Hijack()
}
