// Package datasets gives access to the sample data published on the GMT
// data server.
//
// Fetch downloads a file from the server's cache area into a local cache
// directory and returns the local path, so the data is fetched once per
// machine. The tutorial file names are exported as constants:
//
//	path, err := datasets.Fetch(ctx, datasets.TutQuakes)
//	...
//	fig.Plot(path, pygmt.PlotParams{Style: "c0.3c", Color: "red"})
//
// EarthRelief names the global relief grids GMT itself downloads on demand;
// the returned "@" name is passed straight to grid-reading modules.
package datasets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
)

// DefaultServer is the GMT data server mirror downloads come from.
const DefaultServer = "https://oceania.generic-mapping-tools.org"

// Tutorial sample files served from the GMT cache area.
const (
	// TutQuakes is a table of earthquake epicenters near Japan (NGDC).
	TutQuakes = "tut_quakes.ngdc"
	// TutShip is a table of ship bathymetry soundings off Baja California.
	TutShip = "tut_ship.xyz"
	// TutBathymetry is a bathymetry grid off Baja California.
	TutBathymetry = "tut_bathy.nc"
	// TutRelief is a relief grid over Hawaii.
	TutRelief = "tut_relief.nc"
	// TutData is a small mixed data table used in the tutorials.
	TutData = "tut_data.txt"
)

// knownDatasets lists the names Fetch will download.
var knownDatasets = map[string]bool{
	TutQuakes:     true,
	TutShip:       true,
	TutBathymetry: true,
	TutRelief:     true,
	TutData:       true,
}

var (
	mu       sync.Mutex
	server   = DefaultServer
	cacheDir string
)

// SetServer changes the server downloads come from. An empty URL restores
// [DefaultServer]. Tests point this at a local httptest server.
func SetServer(url string) {
	if url == "" {
		url = DefaultServer
	}
	mu.Lock()
	server = url
	mu.Unlock()
}

// SetCacheDir overrides the directory downloaded files are kept in. An
// empty dir restores the default, a "pygmt" directory under the user cache
// directory.
func SetCacheDir(dir string) {
	mu.Lock()
	cacheDir = dir
	mu.Unlock()
}

func serverURL() string {
	mu.Lock()
	defer mu.Unlock()
	return server
}

func cachePath() (string, error) {
	mu.Lock()
	defer mu.Unlock()
	if cacheDir != "" {
		return cacheDir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("datasets: locating user cache dir: %w", err)
	}
	return filepath.Join(base, "pygmt"), nil
}

// UnknownDatasetError is returned by Fetch for a name that is not in the
// known sample-data table.
type UnknownDatasetError struct {
	Name string
}

func (e *UnknownDatasetError) Error() string {
	return fmt.Sprintf("datasets: unknown dataset %q", e.Name)
}

// Fetch returns a local path for a known sample file, downloading it into
// the cache directory on first use. A file already in the cache is returned
// without touching the network. Downloads go through a temporary file and a
// rename, so a failed or canceled download never leaves a partial file
// under the final name.
func Fetch(ctx context.Context, name string) (string, error) {
	if !knownDatasets[name] {
		return "", &UnknownDatasetError{Name: name}
	}
	dir, err := cachePath()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err == nil {
		logger().Debug("dataset cache hit", "name", name, "path", path)
		return path, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("datasets: creating cache dir: %w", err)
	}

	url := serverURL() + "/cache/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("datasets: building request for %s: %w", name, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("datasets: fetching %s: %w", name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("datasets: fetching %s: server returned %s", name, resp.Status)
	}

	tmp, err := os.CreateTemp(dir, name+".download-*")
	if err != nil {
		return "", fmt.Errorf("datasets: creating download file: %w", err)
	}
	n, err := io.Copy(tmp, resp.Body)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("datasets: downloading %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("datasets: finishing download of %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("datasets: placing %s in cache: %w", name, err)
	}
	logger().Info("downloaded dataset", "name", name, "bytes", n)
	return path, nil
}
