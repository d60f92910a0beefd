package devpost

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const profileHTML = `<!DOCTYPE html>
<html><body>
  <div class="software-entry">Hack A</div>
  <div class="software-entry">Hack B</div>
  <div class="software-entry">Hack C</div>
  <article class="software">Project 1</article>
  <article class="software">Project 2</article>
  <span class="winner">Winner</span>
</body></html>`

func TestProfile_CountsEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(profileHTML))
	}))
	defer srv.Close()

	client := NewClient(WithHTTPClient(srv.Client()))
	stats, err := client.Profile(context.Background(), srv.URL)
	if err != nil {
		t.Fatal(err)
	}

	if stats.HackathonsParticipated != 3 {
		t.Errorf("hackathons = %d, want 3", stats.HackathonsParticipated)
	}
	if stats.ProjectsSubmitted != 2 {
		t.Errorf("projects = %d, want 2", stats.ProjectsSubmitted)
	}
	if stats.Wins != 1 {
		t.Errorf("wins = %d, want 1", stats.Wins)
	}
	// 1/3 = 33.333...% rounds to one decimal.
	if stats.WinRate != 33.3 {
		t.Errorf("win rate = %.1f, want 33.3", stats.WinRate)
	}
}

func TestProfile_NoHackathonsZeroRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body></body></html>"))
	}))
	defer srv.Close()

	client := NewClient(WithHTTPClient(srv.Client()))
	stats, err := client.Profile(context.Background(), srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	if stats.WinRate != 0 {
		t.Errorf("win rate = %.1f, want 0", stats.WinRate)
	}
}

func TestProfile_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(WithHTTPClient(srv.Client()))
	_, err := client.Profile(context.Background(), srv.URL)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestProfile_ServerErrorIsNotNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(WithHTTPClient(srv.Client()))
	_, err := client.Profile(context.Background(), srv.URL)
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("expected generic error, got %v", err)
	}
}
