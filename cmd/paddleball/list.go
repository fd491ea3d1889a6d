package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddleball/internal/platform/keys"
	"github.com/vovakirdan/paddleball/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List display backends and key bindings",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig("")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Available backends:")
	fmt.Fprintln(out)

	for _, b := range registry.List() {
		marker := " "
		if b.Name == cfg.Display.Backend {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-8s %s\n", marker, b.Name, b.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Controls:", keys.NewKeyMap(cfg.Input.Keys).Describe())
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'paddleball play --backend <name>' to use one.")
	return nil
}
