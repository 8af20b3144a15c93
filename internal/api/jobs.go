package api

import (
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	coreerrors "github.com/FocuswithJustin/citerefs/core/errors"
	"github.com/FocuswithJustin/citerefs/internal/logging"
	"github.com/FocuswithJustin/citerefs/internal/validation"
	"github.com/FocuswithJustin/citerefs/scripture"
	"github.com/google/uuid"
)

// JobStatus represents the current state of a job.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCancelled JobStatus = "cancelled"
)

// ScanRequest describes a reference-scan job: inline text or a list of file
// paths to read and search. When both are set, Text is searched and Paths
// is ignored.
type ScanRequest struct {
	Text  string   `json:"text,omitempty"`
	Paths []string `json:"paths,omitempty"`
}

// PassageView is the JSON projection of a scripture.Passage.
type PassageView struct {
	Text string `json:"text"`
}

// FileView is the JSON projection of one file's scan outcome.
type FileView struct {
	Path     string        `json:"path"`
	Passages []PassageView `json:"passages,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// ScanResult is a completed scan job's payload.
type ScanResult struct {
	Passages []PassageView `json:"passages,omitempty"`
	Files    []FileView    `json:"files,omitempty"`
}

// Job represents an asynchronous reference-scan job.
type Job struct {
	ID          string      `json:"id"`
	Status      JobStatus   `json:"status"`
	Progress    int         `json:"progress"`
	Result      *ScanResult `json:"result,omitempty"`
	Error       string      `json:"error,omitempty"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
	CompletedAt string      `json:"completed_at,omitempty"`
	Request     ScanRequest `json:"request"`
}

// JobStore manages scan jobs in memory.
type JobStore struct {
	jobs map[string]*Job
	mu   sync.RWMutex
}

// NewJobStore creates a new job store.
func NewJobStore() *JobStore {
	return &JobStore{jobs: make(map[string]*Job)}
}

var globalJobStore = NewJobStore()

var activeModel = scripture.Standard()

// SetModel changes the BibleModel used to run scan jobs submitted after
// this call.
func SetModel(m *scripture.BibleModel) {
	activeModel = m
}

// Create creates a new job and returns it.
func (s *JobStore) Create(req ScanRequest) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	job := &Job{
		ID:        uuid.New().String(),
		Status:    JobStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
		Request:   req,
	}
	s.jobs[job.ID] = job
	return job
}

// Get retrieves a job by ID, returning a core/errors.NotFoundError (wrapping
// core/errors.ErrNotFound) if no job has that ID.
func (s *JobStore) Get(id string) (*Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, exists := s.jobs[id]
	if !exists {
		return nil, coreerrors.NewNotFound("job", id)
	}
	return job, nil
}

// Update updates a job's status, progress, and outcome.
func (s *JobStore) Update(id string, status JobStatus, progress int, result *ScanResult, errMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, exists := s.jobs[id]
	if !exists {
		return coreerrors.NewNotFound("job", id)
	}

	job.Status = status
	job.Progress = progress
	job.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	if result != nil {
		job.Result = result
	}
	if errMsg != "" {
		job.Error = errMsg
	}
	if status == JobStatusCompleted || status == JobStatusFailed {
		job.CompletedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return nil
}

// List returns all jobs.
func (s *JobStore) List() []*Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	jobs := make([]*Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		jobs = append(jobs, job)
	}
	return jobs
}

func passageViews(stream *scripture.PassageStream) ([]PassageView, error) {
	var views []PassageView
	for {
		p, ok, err := stream.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return views, nil
		}
		views = append(views, PassageView{Text: p.String()})
	}
}

// runJob runs a scan job in the background, reporting progress over
// GlobalHub as it goes.
func runJob(job *Job) {
	go func() {
		globalJobStore.Update(job.ID, JobStatusRunning, 10, nil, "")
		BroadcastProgress("scan", "searching", "scanning for references", 10)

		if job.Request.Text != "" {
			views, err := passageViews(activeModel.Search(job.Request.Text))
			if err != nil {
				globalJobStore.Update(job.ID, JobStatusFailed, 100, nil, err.Error())
				BroadcastError("scan", err.Error())
				return
			}
			result := &ScanResult{Passages: views}
			globalJobStore.Update(job.ID, JobStatusCompleted, 100, result, "")
			BroadcastComplete("scan", "scan complete", map[string]interface{}{"passages": len(views)})
			return
		}

		results := scripture.ScanFiles(context.Background(), activeModel, job.Request.Paths, 0)
		files := make([]FileView, 0, len(results))
		for _, r := range results {
			// Report only the sanitized base name, never the server's full
			// path, to callers of the JSON API.
			name, err := validation.SanitizeFilename(filepath.Base(r.Path))
			if err != nil {
				name = filepath.Base(r.Path)
			}
			fv := FileView{Path: name}
			if r.Err != nil {
				fv.Error = r.Err.Error()
			}
			for _, p := range r.Passages {
				fv.Passages = append(fv.Passages, PassageView{Text: p.String()})
			}
			files = append(files, fv)
		}
		result := &ScanResult{Files: files}
		globalJobStore.Update(job.ID, JobStatusCompleted, 100, result, "")
		BroadcastComplete("scan", "scan complete", map[string]interface{}{"files": len(files)})
	}()
}

// handleJobs handles POST /jobs - create a new scan job.
func handleJobs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "only POST is allowed")
		return
	}

	var req ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}
	if req.Text == "" && len(req.Paths) == 0 {
		err := coreerrors.NewValidation("text", "text or paths is required")
		respondError(w, http.StatusBadRequest, "MISSING_PARAMS", err.Error())
		return
	}

	job := globalJobStore.Create(req)
	runJob(job)
	respond(w, http.StatusCreated, job)
}

// handleJobByID handles GET /jobs/{id} - get job status.
func handleJobByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/jobs/")
	if id == "" {
		respondError(w, http.StatusBadRequest, "MISSING_ID", "job ID is required")
		return
	}
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "only GET is allowed")
		return
	}

	job, err := globalJobStore.Get(id)
	if err != nil {
		if coreerrors.Is(err, coreerrors.ErrNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL", err.Error())
		return
	}
	respond(w, http.StatusOK, job)
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("failed to encode response body", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respond(w, status, errorBody{Code: code, Message: message})
}

// Handler returns the HTTP handler serving the job and WebSocket endpoints.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/jobs", handleJobs)
	mux.HandleFunc("/jobs/", handleJobByID)
	mux.HandleFunc("/ws/search", ServeWS)
	return logging.CombinedMiddleware(mux)
}
