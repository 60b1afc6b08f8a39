package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/agelife/model"
	"github.com/sheikhrachel/agelife/ui"
	"github.com/sheikhrachel/agelife/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			log.Fatalf("config: %v", err)
		}
		fmt.Printf("Using default configuration (%s not found)\n", configFile)
		config = utils.DefaultConfig()
	}
	config.Bind(flag.CommandLine)
	flag.Parse()

	if err = config.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// Initialize game; a bad seed aborts before anything is drawn
	grid, stepper, renderer, stats, err := initializeGame(config)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	if config.Renderer == utils.RendererWindow {
		if err = ui.Run(config, grid, stepper); err != nil {
			log.Fatal(err)
		}
		return
	}

	displayGameInfo(config, grid, stepper)
	if err = runTerminal(config, grid, stepper, renderer, stats); err != nil {
		log.Fatal(err)
	}
}

// runTerminal drives the headless loop: draw, report, step, repeat
func runTerminal(
	config utils.Config,
	grid *model.Grid,
	stepper *model.Stepper,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
) error {
	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		cam            = model.NewCamera(int32(config.CenterX), int32(config.CenterY), config.Zoom)
		history        = &model.History{}
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	defer func() {
		if config.Snapshot == "" {
			return
		}
		if err := writeSnapshot(config, grid, cam); err != nil {
			fmt.Println("Error writing snapshot:", err)
		}
	}()

	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				generation, stats.Runtime().Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return nil
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		renderer.Clear()

		livingCells, status, isStagnant := updateGameState(grid, history, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(generation, livingCells, status, stats, lastRestartGen)
		renderer.Display(grid, cam, config.Width, config.Height)

		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			return nil
		}

		if shouldRestart, reason := checkRestartConditions(livingCells, stagnantCount, config); shouldRestart {
			if !config.AutoRestart {
				fmt.Printf("\n🏁 Stopping due to %s\n", reason)
				return nil
			}
			fmt.Printf("🔄 Restarting due to %s...\n", reason)

			next, err := restartGame(config)
			if err != nil {
				return err
			}
			grid = next
			history.Reset()
			lastRestartGen = generation
			stagnantCount = 0
		}

		next, err := grid.NextGeneration(stepper)
		if err != nil {
			return errors.Wrapf(err, "[runTerminal] generation %d", generation)
		}
		grid = next
		generation++

		// Wait before next frame
		time.Sleep(config.FrameRate)
	}
}
