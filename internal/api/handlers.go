package api

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"contactscraper/internal/scraper"
)

type scrapeRequest struct {
	State      string `json:"state"`
	City       string `json:"city"`
	Profession string `json:"profession"`
	Output     string `json:"output,omitempty"`
}

type runStatusResponse struct {
	ID     string        `json:"id"`
	Status string        `json:"status"`
	Error  string        `json:"error,omitempty"`
	Output string        `json:"output"`
	Stats  scraper.Stats `json:"stats"`
}

type fileInfo struct {
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

type repairRequest struct {
	File string `json:"file"`
}

func (s *Server) handleScrapeRequest(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.State == "" || req.City == "" || req.Profession == "" {
		s.respondWithError(w, http.StatusBadRequest, "state, city and profession are required")
		return
	}

	id := uuid.NewString()
	session := scraper.New(s.cfg, s.metrics, s.logger, req.State, req.City, req.Profession, req.Output)
	rn := &run{session: session, status: "running"}

	s.mu.Lock()
	s.runs[id] = rn
	s.mu.Unlock()

	go func() {
		n, err := session.Run(context.Background())
		rn.mu.Lock()
		defer rn.mu.Unlock()
		if err != nil {
			rn.status = "failed"
			rn.errMsg = err.Error()
			s.logger.Error("run failed", zap.String("id", id), zap.Error(err))
			return
		}
		rn.status = "completed"
		s.logger.Info("run completed", zap.String("id", id), zap.Int("contacts", n))
	}()

	s.respondWithJSON(w, http.StatusAccepted, map[string]string{
		"id":     id,
		"output": session.OutputPath(),
	})
}

func (s *Server) handleRunStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	rn, ok := s.runs[id]
	s.mu.Unlock()
	if !ok {
		s.respondWithError(w, http.StatusNotFound, "run not found")
		return
	}

	rn.mu.Lock()
	resp := runStatusResponse{
		ID:     id,
		Status: rn.status,
		Error:  rn.errMsg,
		Output: rn.session.OutputPath(),
		Stats:  rn.session.Stats(),
	}
	rn.mu.Unlock()

	s.respondWithJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListFiles(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(s.cfg.OutputDir)
	if err != nil {
		if os.IsNotExist(err) {
			s.respondWithJSON(w, http.StatusOK, []fileInfo{})
			return
		}
		s.logger.Error("failed to list output dir", zap.Error(err))
		s.respondWithError(w, http.StatusInternalServerError, "could not list files")
		return
	}

	files := make([]fileInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, fileInfo{Name: e.Name(), Size: info.Size(), Modified: info.ModTime()})
	}
	s.respondWithJSON(w, http.StatusOK, files)
}

func (s *Server) handleRepairRequest(w http.ResponseWriter, r *http.Request) {
	var req repairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.File == "" || strings.Contains(req.File, "..") {
		s.respondWithError(w, http.StatusBadRequest, "file name is required")
		return
	}

	path := filepath.Join(s.cfg.OutputDir, filepath.Base(req.File))
	repaired, err := s.store.Repair(path)
	if err != nil {
		s.logger.Error("repair failed", zap.String("path", path), zap.Error(err))
		s.respondWithError(w, http.StatusInternalServerError, "repair failed")
		return
	}
	s.metrics.RepairedRows.Add(float64(repaired))

	s.respondWithJSON(w, http.StatusOK, map[string]int{"repaired": repaired})
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	s.respondWithJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// --- Helper Functions ---

func (s *Server) respondWithError(w http.ResponseWriter, code int, message string) {
	s.respondWithJSON(w, code, map[string]string{"error": message})
}

func (s *Server) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
