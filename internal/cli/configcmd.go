package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/k2stream/k2fsr/pkg/config"
)

func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and initialize the configuration",
	}

	cmd.AddCommand(newConfigShowCommand(), newConfigInitCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the active configuration and its field profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := config.NewManager()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			cyan := color.New(color.FgCyan, color.Bold)
			cyan.Printf("Config file: %s\n\n", manager.Path())

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(manager.Get()); err != nil {
				return err
			}

			fmt.Println("\nProfiles:", manager.ProfileNames())
			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration to disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := config.NewManager()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if err := manager.Save(); err != nil {
				return err
			}

			green := color.New(color.FgGreen, color.Bold)
			green.Println("✓ Configuration written")
			fmt.Println("Location:", manager.Path())
			return nil
		},
	}
}
