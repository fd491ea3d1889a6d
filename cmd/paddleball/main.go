// paddleball is a paddle-and-ball arcade toy: keep up to five balls in the
// air with a paddle at the bottom of the screen.
//
// Usage:
//
//	paddleball                 - Play with the configured backend
//	paddleball play            - Same, with --backend to override
//	paddleball list            - List display backends
//	paddleball serve           - Start SSH server, one game per session
//	paddleball config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>  - Use a specific config file
//	--seed <value>   - Set RNG seed for reproducible ball velocities
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/paddleball/internal/platform/term"
	_ "github.com/vovakirdan/paddleball/internal/platform/tui"
	_ "github.com/vovakirdan/paddleball/internal/platform/window"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "paddleball",
	Short: "Paddleball - bounce balls off a paddle",
	Long: `Paddleball keeps up to five balls bouncing between three walls and
your paddle. There is no score and no game over; missed balls simply fly
off the bottom of the screen.

Controls (defaults):
  A / Left   - Move paddle left
  D / Right  - Move paddle right
  R          - Spawn a ball (the oldest is dropped past five)
  Esc        - Quit

Examples:
  paddleball
  paddleball play --backend window
  paddleball play --seed 42
  paddleball list
  paddleball serve
  paddleball config --config ./my-paddleball.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagBackend, "backend", "", "Display backend: tui, term, window")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
