package main

import (
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/agelife/model"
	"github.com/sheikhrachel/agelife/utils"
)

// buildGeneration0 loads the seed file, or builds a random soup when none is configured
func buildGeneration0(config utils.Config) (*model.Grid, error) {
	if config.SeedFile == "" {
		return model.InterestingPatterns(config.Width, config.Height, config.RandomDensity, config.Seed), nil
	}
	return model.LoadSeedFile(config.SeedFile)
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*model.Grid,
	*model.Stepper,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	grid, err := buildGeneration0(config)
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to build generation 0")
	}

	stepper := model.NewStepper(config.Workers)
	renderer := model.NewTerminalRenderer()
	stats := utils.NewStats()

	return grid, stepper, renderer, stats, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid, stepper *model.Stepper) {
	source := "random soup"
	if config.SeedFile != "" {
		source = config.SeedFile
	}
	fmt.Printf("Seed: %s | Workers: %d | Frame pool: %v\n",
		source, stepper.Workers(), config.UseFramePool)
	fmt.Printf("Viewport: %dx%d cells | Initial living cells: %d\n",
		config.Width, config.Height, grid.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState updates the game state and returns status information
func updateGameState(
	grid *model.Grid,
	history *model.History,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, string, bool) {
	livingCells := grid.CountLivingCells()

	// Update performance stats
	stats.Update(generation, livingCells, grid.CountFresh(), time.Since(lastFrameTime))
	stats.BoundingBoxSize = grid.GetBoundingBoxSize()

	// Check for stagnation before recording the current state
	isStagnant := history.IsStagnant(grid)
	history.UpdateHistory(grid)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	status string,
	stats *utils.Stats,
	lastRestartGen int,
) {
	fmt.Printf("Gen: %d | Living: %d | Fresh: %d | Status: %s | Bounding box: %d cells\n",
		generation, livingCells, stats.FreshCells, status, stats.BoundingBoxSize)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())

	// Show time since last restart
	if generation > lastRestartGen && lastRestartGen > 0 {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the run should restart or stop
func checkRestartConditions(
	livingCells, stagnantCount int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame rebuilds generation 0
func restartGame(config utils.Config) (*model.Grid, error) {
	fmt.Printf("\n🔄 Restarting...\n")
	time.Sleep(1 * time.Second)

	grid, err := buildGeneration0(config)
	if err != nil {
		return nil, errors.Wrap(err, "[restartGame] failed to rebuild generation 0")
	}

	fmt.Printf("✨ Generation 0 reloaded! Living cells: %d\n", grid.CountLivingCells())
	time.Sleep(2 * time.Second)

	return grid, nil
}

// writeSnapshot rasterizes the grid at window size and saves it as a PNG
func writeSnapshot(config utils.Config, grid *model.Grid, cam model.Camera) error {
	frame := model.Render(grid, config.WindowWidth, config.WindowHeight, cam)

	f, err := os.Create(config.Snapshot)
	if err != nil {
		return errors.Wrapf(err, "[writeSnapshot] failed to create file: %+v", config.Snapshot)
	}
	defer f.Close()

	if err = png.Encode(f, frame.ToImage()); err != nil {
		return errors.Wrapf(err, "[writeSnapshot] failed to encode file: %+v", config.Snapshot)
	}
	return nil
}
