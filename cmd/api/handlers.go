package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/JusmeJr93/random-user-gen-backend/config"
	"github.com/JusmeJr93/random-user-gen-backend/export"
	"github.com/JusmeJr93/random-user-gen-backend/generator"
	"github.com/JusmeJr93/random-user-gen-backend/hub"
	"github.com/JusmeJr93/random-user-gen-backend/locale"
	"github.com/JusmeJr93/random-user-gen-backend/logger"
	"github.com/JusmeJr93/random-user-gen-backend/personaldata"
	"github.com/JusmeJr93/random-user-gen-backend/requests"
)

// maxBodyBytes bounds POST /applyErrors bodies.
const maxBodyBytes = 10 << 20

type handlers struct {
	config *config.Config
	log    *logger.Log
	table  *locale.Table
	gen    *generator.Service
	hub    *hub.Hub
}

func (h *handlers) limits() requests.Limits {
	return requests.Limits{MaxBatchSize: h.config.MaxBatchSize, MaxErrors: h.config.MaxErrors}
}

// params coerces the query string; on failure the error response is already
// written.
func (h *handlers) params(w http.ResponseWriter, r *http.Request, name string) (generator.Params, bool) {
	p, err := requests.FromQuery(name, r.URL.Query()).Params(h.limits())
	if err != nil {
		writeErrorJson(w, http.StatusBadRequest, err.Error())
		return p, false
	}
	return p, true
}

func (h *handlers) generateDataHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := h.params(w, r, "generateData")
	if !ok {
		return
	}
	records := h.gen.GeneratePage(p)

	w.Header().Set("Content-Language", h.gen.Profile(p.Region).Tag().String())
	writeJson(w, http.StatusOK, records)
}

func (h *handlers) exportCSVHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := h.params(w, r, "exportCSV")
	if !ok {
		return
	}
	if total := p.Page * p.BatchSize; total > h.config.MaxExportRecords {
		writeErrorJson(w, http.StatusBadRequest, fmt.Sprintf("export of %d records exceeds the limit of %d", total, h.config.MaxExportRecords))
		return
	}
	records := h.gen.GenerateRange(p)

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="data.csv"`)
	w.Header().Set("Content-Language", h.gen.Profile(p.Region).Tag().String())
	if err := export.WriteCSV(w, records); err != nil {
		h.log.Printf("API:: error writing CSV export: %v", err)
	}
}

func (h *handlers) applyErrorsHandler(w http.ResponseWriter, r *http.Request) {
	records, count, err := requests.DecodeApplyErrors(http.MaxBytesReader(w, r.Body, maxBodyBytes), h.limits())
	if err != nil {
		writeErrorJson(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJson(w, http.StatusOK, h.gen.ApplyErrorsToBatch(records, count))
}

func (h *handlers) regionsHandler(w http.ResponseWriter, r *http.Request) {
	writeJson(w, http.StatusOK, h.table.Regions())
}

func (h *handlers) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJson(w, http.StatusOK, map[string]interface{}{"status": "ok", "connections": h.hub.Len()})
}

type pageResponse struct {
	PageNumber int                   `json:"pageNumber,omitempty"`
	Records    []personaldata.Record `json:"records,omitempty"`
	Regions    []locale.Info         `json:"regions,omitempty"`
	Error      string                `json:"error,omitempty"`
}

// handleMessage answers one websocket request.
func (h *handlers) handleMessage(msg []byte) pageResponse {
	req, err := requests.Decode(msg)
	if err != nil {
		return pageResponse{Error: err.Error()}
	}

	switch req.Name {
	case "generateData":
		p, err := req.Params(h.limits())
		if err != nil {
			return pageResponse{Error: err.Error()}
		}
		return pageResponse{PageNumber: p.Page, Records: h.gen.GeneratePage(p)}
	case "regions":
		return pageResponse{Regions: h.table.Regions()}
	}
	return pageResponse{Error: fmt.Sprintf("%v: unknown request %q", requests.ErrInvalidParam, req.Name)}
}

func writeJson(w http.ResponseWriter, statuscode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statuscode)
	json.NewEncoder(w).Encode(v)
}

func writeErrorJson(w http.ResponseWriter, statuscode int, err string) {
	writeJson(w, statuscode, map[string]string{"error": err})
}
