// Command pygmtdemo draws a coastline map with the pygmt bindings.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Chaostremor/pygmt"
)

func main() {
	var (
		region     = flag.String("region", "-90/-70/0/20", "map region west/east/south/north")
		projection = flag.String("projection", "M15c", "map projection and width")
		land       = flag.String("land", "chocolate", "land fill color")
		water      = flag.String("water", "skyblue", "water fill color")
		output     = flag.String("output", "map.png", "output file (extension picks the format)")
		configPath = flag.String("config", "", "optional pygmt YAML config file")
		verbose    = flag.Bool("v", false, "enable debug logging")
		versions   = flag.Bool("versions", false, "print the version report and exit")
	)
	flag.Parse()

	// A .env file can supply GMT_LIBRARY_PATH and friends during development.
	_ = godotenv.Load()

	if *verbose {
		pygmt.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *versions {
		if err := pygmt.ShowVersions(context.Background(), os.Stdout); err != nil {
			log.Fatalf("Failed to report versions: %v", err)
		}
		return
	}

	cfg := pygmt.DefaultConfig()
	if *configPath != "" {
		loaded, err := pygmt.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if err := cfg.FromEnv().Apply(); err != nil {
		log.Fatalf("Failed to apply config: %v", err)
	}

	bounds, err := parseRegion(*region)
	if err != nil {
		log.Fatalf("Bad -region: %v", err)
	}

	fig := pygmt.NewFigure()
	if err := drawMap(fig, bounds, *projection, *land, *water); err != nil {
		log.Fatalf("Failed to draw map: %v", err)
	}

	if err := fig.Savefig(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Map saved to %s\n", *output)
}

func drawMap(fig *pygmt.Figure, region pygmt.Region, projection, land, water string) error {
	err := fig.Coast(pygmt.CoastParams{
		Region:     region,
		Projection: projection,
		Frame:      "af",
		Land:       land,
		Water:      water,
		Resolution: "l",
		Shorelines: "thinnest",
	})
	if err != nil {
		return err
	}
	return fig.Logo(pygmt.LogoParams{Position: "jBR+o0.2c+w2c"})
}

func parseRegion(s string) (pygmt.Region, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 4 && len(parts) != 6 {
		return nil, fmt.Errorf("want west/east/south/north, got %q", s)
	}
	region := make(pygmt.Region, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("component %q is not a number", part)
		}
		region[i] = v
	}
	return region, nil
}
