package pygmt

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"
)

// ShowVersions writes a report of pygmt and the tools it depends on to w.
// Useful in bug reports. Missing external tools are reported as "not
// found" rather than failing the report.
func ShowVersions(ctx context.Context, w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "pygmt:       %s\n", Version)
	fmt.Fprintf(&b, "go:          %s (%s/%s)\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(&b, "gmt:         %s\n", probeCommand(ctx, []string{"gmt"}, "--version"))
	fmt.Fprintf(&b, "ghostscript: %s\n", probeCommand(ctx, gsBinaries(runtime.GOOS), "--version"))
	_, err := io.WriteString(w, b.String())
	return err
}

// gsBinaries lists GhostScript executable names to try on an OS. Windows
// installs name the console binary by word size.
func gsBinaries(goos string) []string {
	if goos == "windows" {
		return []string{"gswin64c", "gswin32c"}
	}
	return []string{"gs"}
}

// probeCommand runs the first available binary from names with the given
// arguments and returns its trimmed output, or "not found".
func probeCommand(ctx context.Context, names []string, args ...string) string {
	for _, name := range names {
		out, err := exec.CommandContext(ctx, name, args...).Output()
		if err != nil {
			continue
		}
		return strings.TrimSpace(string(out))
	}
	return "not found"
}
