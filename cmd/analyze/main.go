// Command analyze prints quick, human-readable statistics about board presets.
// For each preset it generates a batch of random boards and summarizes the
// share of zero cells, the number of openings and the click value (minimum
// reveals needed to clear the board). Fixed layouts are analyzed once.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/mcp-training/minesweeper/game/engine"
)

// Stats summarizes the boards generated for one preset
type Stats struct {
	Name         string
	Height       int
	Width        int
	Mines        int
	Games        int
	Fixed        bool
	Density      float64
	ZeroShare    float64
	MeanOpenings float64
	MeanClicks   float64
	MinClicks    int
	MaxClicks    int
	NoOpening    int // boards without a single zero cell
}

func main() {
	cmd := &cli.Command{
		Name:      "analyze",
		Usage:     "Print generator statistics for board presets",
		ArgsUsage: "[config-dir]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "games",
				Value: 500,
				Usage: "Random boards generated per preset",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Value: 1,
				Usage: "Seed for the first board; board i uses seed+i",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			configDir := "configs"
			if cmd.Args().Len() > 0 {
				configDir = cmd.Args().First()
			}

			configs, err := loadConfigs(configDir)
			if err != nil {
				return err
			}

			for _, config := range configs {
				stats, err := analyzeConfig(config, cmd.Int("games"), cmd.Int64("seed"))
				if err != nil {
					fmt.Printf("\n=== %s ===\nError: %v\n", config.Name, err)
					continue
				}
				printStats(os.Stdout, stats)
			}
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// loadConfigs reads every preset in dir, falling back to the built-in presets
// when the directory holds none
func loadConfigs(dir string) ([]*engine.GameConfig, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return engine.Presets(), nil
	}
	sort.Strings(files)

	configs := make([]*engine.GameConfig, 0, len(files))
	for _, file := range files {
		config, err := engine.LoadGameConfig(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(file), err)
		}
		configs = append(configs, config)
	}
	return configs, nil
}

// analyzeConfig generates games boards for config, or parses its fixed layout once
func analyzeConfig(config *engine.GameConfig, games int, seed int64) (Stats, error) {
	stats := Stats{
		Name:    config.Name,
		Height:  config.Height,
		Width:   config.Width,
		Mines:   config.Mines,
		Density: float64(config.Mines) / float64(config.Height*config.Width),
	}

	var boards [][][]int
	if len(config.Layout) > 0 {
		values, _, err := engine.ParseLayout(config.Layout)
		if err != nil {
			return stats, err
		}
		stats.Fixed = true
		boards = append(boards, values)
	} else {
		if games < 1 {
			return stats, fmt.Errorf("games must be positive, got %d", games)
		}
		for i := 0; i < games; i++ {
			rng := rand.New(rand.NewSource(seed + int64(i)))
			values, err := engine.GenerateValues(config.Height, config.Width, config.Mines, rng)
			if err != nil {
				return stats, err
			}
			boards = append(boards, values)
		}
	}

	stats.Games = len(boards)
	var zeroSum, openingSum, clickSum float64
	for i, values := range boards {
		openings := engine.CountOpenings(values)
		clicks := engine.ClickValue(values)

		zeroSum += engine.ZeroFraction(values)
		openingSum += float64(openings)
		clickSum += float64(clicks)

		if openings == 0 {
			stats.NoOpening++
		}
		if i == 0 || clicks < stats.MinClicks {
			stats.MinClicks = clicks
		}
		if clicks > stats.MaxClicks {
			stats.MaxClicks = clicks
		}
	}

	n := float64(stats.Games)
	stats.ZeroShare = zeroSum / n
	stats.MeanOpenings = openingSum / n
	stats.MeanClicks = clickSum / n
	return stats, nil
}

func printStats(w io.Writer, s Stats) {
	fmt.Fprintf(w, "\n=== Analyzing %s ===\n", s.Name)
	fmt.Fprintf(w, "Grid: %d x %d\n", s.Height, s.Width)
	fmt.Fprintf(w, "Mines: %d (density %.1f%%)\n", s.Mines, s.Density*100)
	if s.Fixed {
		fmt.Fprintf(w, "Layout: fixed\n")
	} else {
		fmt.Fprintf(w, "Boards generated: %d\n", s.Games)
	}
	fmt.Fprintf(w, "Zero share: %.1f%%\n", s.ZeroShare*100)
	fmt.Fprintf(w, "Openings: %.2f\n", s.MeanOpenings)
	fmt.Fprintf(w, "Click value: %.2f (min %d, max %d)\n", s.MeanClicks, s.MinClicks, s.MaxClicks)

	if s.NoOpening > 0 {
		fmt.Fprintf(w, "⚠️  WARNING: %d/%d boards have no opening at all\n", s.NoOpening, s.Games)
	} else {
		fmt.Fprintf(w, "✅ Every board has at least one opening\n")
	}
}
