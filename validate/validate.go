// Command validate checks board preset JSON files. It checks:
//   - JSON structure, with unknown keys rejected so typos surface
//   - Dimensions, mine count and tile size
//   - Fixed layouts: consistent rows, only '*' and '.', mine count matching "mines"
//   - Required message keys and the status format
//
// For fixed layouts it also reports the openings: connected regions of zeros
// that a single reveal clears.
//
// Usage: validate [dir]   (default: configs)
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wricardo/mcp-training/minesweeper/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// highDensity is the mine share above which a preset is flagged as punishing
const highDensity = 0.25

func (r *ValidationResult) fail(format string, args ...interface{}) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) info(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// validateConfig loads and validates a single preset file
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}

	var config engine.GameConfig
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&config); err != nil {
		result.fail("Invalid JSON: %v", err)
		return result
	}

	if err := engine.ValidateGameConfig(&config); err != nil {
		result.fail("%s", strings.TrimPrefix(err.Error(), "config validation: "))
		return result
	}

	cells := config.Height * config.Width
	density := float64(config.Mines) / float64(cells)

	result.info("✓ Name: %s", config.Name)
	result.info("✓ Grid: %dx%d", config.Height, config.Width)
	result.info("✓ Mines: %d (%.1f%%)", config.Mines, density*100)
	result.info("✓ Tile size: %.0f", config.EffectiveTileSize())

	if density > highDensity {
		result.info("⚠ Mine density above %.0f%%; most games will need guesses", highDensity*100)
	}

	if len(config.Layout) == 0 {
		result.info("✓ Layout: random (new placement per game)")
		return result
	}

	values, _, err := engine.ParseLayout(config.Layout)
	if err != nil {
		// ValidateGameConfig already parsed it
		result.fail("Layout: %v", err)
		return result
	}

	openings := engine.CountOpenings(values)
	result.info("✓ Layout: fixed")
	result.info("✓ Openings: %d", openings)
	result.info("✓ Click value: %d", engine.ClickValue(values))
	result.info("✓ Zero share: %.1f%%", engine.ZeroFraction(values)*100)
	if openings == 0 && config.Mines > 0 {
		result.info("⚠ No openings; the first reveal never cascades")
	}

	return result
}

// validateDir validates every *.json file in dir and reports whether all passed
func validateDir(dir string) ([]ValidationResult, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("no preset files found in " + dir)
	}

	results := make([]ValidationResult, 0, len(files))
	for _, file := range files {
		results = append(results, validateConfig(file))
	}
	return results, nil
}

// main validates the presets in the given directory, printing a concise
// report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	results, err := validateDir(configDir)
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, result := range results {
		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				fmt.Println("  ❌ " + err)
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
