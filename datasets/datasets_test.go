package datasets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// useTempCache points the package at a fresh cache dir and a test server,
// restoring the defaults when the test ends.
func useTempCache(t *testing.T, handler http.Handler) string {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	SetServer(srv.URL)
	t.Cleanup(func() { SetServer("") })

	dir := t.TempDir()
	SetCacheDir(dir)
	t.Cleanup(func() { SetCacheDir("") })
	return dir
}

func TestFetchDownloadsIntoCache(t *testing.T) {
	var hits int
	dir := useTempCache(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.URL.Path != "/cache/"+TutQuakes {
			t.Errorf("request path = %q, want /cache/%s", r.URL.Path, TutQuakes)
		}
		w.Write([]byte("quake data\n"))
	}))

	path, err := Fetch(context.Background(), TutQuakes)
	if err != nil {
		t.Fatalf("Fetch() = %v", err)
	}
	if want := filepath.Join(dir, TutQuakes); path != want {
		t.Errorf("Fetch() path = %q, want %q", path, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading fetched file: %v", err)
	}
	if string(data) != "quake data\n" {
		t.Errorf("fetched contents = %q", data)
	}
	if hits != 1 {
		t.Errorf("server hits = %d, want 1", hits)
	}
}

func TestFetchCacheHitSkipsNetwork(t *testing.T) {
	var hits int
	_ = useTempCache(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("relief grid"))
	}))

	if _, err := Fetch(context.Background(), TutRelief); err != nil {
		t.Fatalf("first Fetch() = %v", err)
	}
	if _, err := Fetch(context.Background(), TutRelief); err != nil {
		t.Fatalf("second Fetch() = %v", err)
	}
	if hits != 1 {
		t.Errorf("server hits = %d, want 1 (second fetch must use the cache)", hits)
	}
}

func TestFetchUnknownName(t *testing.T) {
	_, err := Fetch(context.Background(), "no_such_file.nc")
	var unknown *UnknownDatasetError
	if !errors.As(err, &unknown) {
		t.Fatalf("Fetch() error = %v, want *UnknownDatasetError", err)
	}
	if unknown.Name != "no_such_file.nc" {
		t.Errorf("UnknownDatasetError.Name = %q", unknown.Name)
	}
}

func TestFetchServerErrorLeavesNoFile(t *testing.T) {
	dir := useTempCache(t, http.NotFoundHandler())

	_, err := Fetch(context.Background(), TutShip)
	if err == nil {
		t.Fatal("Fetch() = nil error, want error on 404")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading cache dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("cache dir has %d entries after failed fetch, want 0", len(entries))
	}
}

func TestFetchCanceledContext(t *testing.T) {
	_ = useTempCache(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("data"))
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Fetch(ctx, TutData); err == nil {
		t.Error("Fetch() with canceled context = nil error, want error")
	}
}
