package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	coreerrors "github.com/FocuswithJustin/citerefs/core/errors"
)

func TestJobStoreCreateAndGet(t *testing.T) {
	store := NewJobStore()
	job := store.Create(ScanRequest{Text: "John 3:16"})

	got, err := store.Get(job.ID)
	if err != nil {
		t.Fatalf("expected job to be retrievable by ID: %v", err)
	}
	if got.Status != JobStatusPending {
		t.Errorf("status = %s, want %s", got.Status, JobStatusPending)
	}
}

func TestJobStoreGetMissing(t *testing.T) {
	store := NewJobStore()
	_, err := store.Get("does-not-exist")
	if err == nil {
		t.Fatal("expected no job for unknown ID")
	}
	if !coreerrors.Is(err, coreerrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestJobStoreUpdate(t *testing.T) {
	store := NewJobStore()
	job := store.Create(ScanRequest{Text: "Romans 8:1"})

	result := &ScanResult{Passages: []PassageView{{Text: "Romans 8:1"}}}
	if err := store.Update(job.ID, JobStatusCompleted, 100, result, ""); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, _ := store.Get(job.ID)
	if got.Status != JobStatusCompleted {
		t.Errorf("status = %s, want %s", got.Status, JobStatusCompleted)
	}
	if got.CompletedAt == "" {
		t.Error("expected CompletedAt to be set after completion")
	}
	if len(got.Result.Passages) != 1 {
		t.Errorf("expected 1 passage in result, got %d", len(got.Result.Passages))
	}
}

func TestJobStoreUpdateUnknownJob(t *testing.T) {
	store := NewJobStore()
	err := store.Update("missing", JobStatusFailed, 0, nil, "boom")
	if err == nil {
		t.Fatal("expected an error updating an unknown job")
	}
	if !coreerrors.Is(err, coreerrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestHandleJobByIDNotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/jobs/nonexistent-id", nil)
	w := httptest.NewRecorder()

	handleJobByID(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}

func TestJobStoreList(t *testing.T) {
	store := NewJobStore()
	store.Create(ScanRequest{Text: "a"})
	store.Create(ScanRequest{Text: "b"})

	if got := len(store.List()); got != 2 {
		t.Errorf("List() returned %d jobs, want 2", got)
	}
}

func TestRunJobCompletesWithInlineText(t *testing.T) {
	store := NewJobStore()
	job := store.Create(ScanRequest{Text: "Compare John 3:16 with Romans 8:1."})

	prevStore, prevModel := globalJobStore, activeModel
	globalJobStore = store
	defer func() { globalJobStore, activeModel = prevStore, prevModel }()

	runJob(job)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		got, _ := store.Get(job.ID)
		if got.Status == JobStatusCompleted || got.Status == JobStatusFailed {
			if got.Status != JobStatusCompleted {
				t.Fatalf("job failed: %s", got.Error)
			}
			if got.Result == nil || len(got.Result.Passages) != 2 {
				t.Fatalf("expected 2 passages, got %+v", got.Result)
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("job did not complete in time")
}
