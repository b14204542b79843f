package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
)

// setCORSHeaders sets CORS headers on a response
func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
	w.Header().Set("Access-Control-Max-Age", "3600")
}

// jsonError writes a JSON error response with CORS headers set
func jsonError(w http.ResponseWriter, message string, code int) {
	setCORSHeaders(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// handleIndex serves the HTML interface
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

// handleHealth reports service liveness
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "passbook-recon",
	})
}

// handleScrape extracts payment records from a URL and starts a session
func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	u, err := url.Parse(req.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		jsonError(w, "A valid http or https URL is required", http.StatusBadRequest)
		return
	}

	sessionID, rs, err := s.service.ScrapeURL(req.URL)
	if err != nil {
		if errors.Is(err, ErrTableNotFound) {
			jsonError(w, "No payment data found on the specified page", http.StatusNotFound)
			return
		}
		slog.Error("Error scraping URL", "url", req.URL, "error", err)
		jsonError(w, fmt.Sprintf("Error fetching page: %v", err), http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"session_id":    sessionID,
		"total_records": len(rs.Records),
		"records":       rs.Records,
	})
}

// handleGetSession returns the current records for a session
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	rs, err := s.service.GetResultSet(r.PathValue("id"))
	if err != nil {
		jsonError(w, "Session expired or invalid", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"total_records": len(rs.Records),
		"records":       rs.Records,
	})
}

// handleAddRecord adds a user-supplied row to a session
func (s *Server) handleAddRecord(w http.ResponseWriter, r *http.Request) {
	var req map[string]string
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	fields := make(map[Field]string, len(req))
	for name, value := range req {
		f, err := ParseField(name)
		if err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		fields[f] = value
	}

	rec, err := s.service.AddRow(r.PathValue("id"), fields)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			jsonError(w, "Session expired or invalid", http.StatusNotFound)
			return
		}
		slog.Error("Error adding record", "error", err)
		jsonError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

// handleUpdateRecord applies a single field edit to a record
func (s *Server) handleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	f, err := ParseField(req.Field)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := s.service.UpdateField(r.PathValue("id"), r.PathValue("rowID"), f, req.Value)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			jsonError(w, "Session expired or invalid", http.StatusNotFound)
		case errors.Is(err, ErrNotFound):
			jsonError(w, "Record not found", http.StatusNotFound)
		case errors.Is(err, ErrInvalidEdit):
			jsonError(w, err.Error(), http.StatusBadRequest)
		default:
			slog.Error("Error updating record", "error", err)
			jsonError(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// handleDeleteRecord removes a record from a session
func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	err := s.service.DeleteRow(r.PathValue("id"), r.PathValue("rowID"))
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			jsonError(w, "Session expired or invalid", http.StatusNotFound)
		case errors.Is(err, ErrNotFound):
			jsonError(w, "Record not found", http.StatusNotFound)
		default:
			slog.Error("Error deleting record", "error", err)
			jsonError(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleExport streams the session's records as an XLSX download
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	data, filename, err := s.service.ExportXLSX(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			jsonError(w, "Session expired or invalid", http.StatusNotFound)
			return
		}
		slog.Error("Error exporting session", "error", err)
		jsonError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}
