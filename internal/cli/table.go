package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/k2stream/k2fsr/pkg/crypto/fsra"
)

func NewTableCommand() *cobra.Command {
	var (
		profileName string
		format      string
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Build and dump the alpha lookup table",
		Long: `Build the 256-entry alpha lookup table for a field profile and print it.

The "c" format matches the array initializer layout reference
implementations embed directly; "hex" prints bare words and "json"
emits a machine-readable dump.`,
		Example: `  # Dump the beta table as a C initializer
  k2fsr table

  # Dump the zeta table as JSON
  k2fsr table --profile zeta --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, profile, manager, err := loadProfile(profileName)
			if err != nil {
				return err
			}

			_, table, err := fsra.Build(profile.FieldConfig())
			if err != nil {
				return fmt.Errorf("failed to build table: %w", err)
			}

			switch format {
			case "c":
				newReporter(manager).TableC(fmt.Sprintf("alpha_%s", name), table)
			case "hex":
				newReporter(manager).TableHex(table)
			case "json":
				entries := make([]string, fsra.TableSize)
				for i, entry := range table {
					entries[i] = fmt.Sprintf("0x%08X", entry)
				}
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(map[string]interface{}{
					"profile": name,
					"modulus": fmt.Sprintf("0x%03X", profile.Modulus),
					"entries": entries,
				})
			default:
				return fmt.Errorf("unknown format '%s', expected c, hex, or json", format)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&profileName, "profile", "p", "", "Field profile to use")
	cmd.Flags().StringVarP(&format, "format", "f", "c", "Output format: c, hex, or json")

	return cmd
}
