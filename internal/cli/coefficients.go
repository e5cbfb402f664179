package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/k2stream/k2fsr/pkg/crypto/fsra"
)

func NewCoefficientsCommand() *cobra.Command {
	var profileName string

	cmd := &cobra.Command{
		Use:   "coefficients",
		Short: "Derive the field multipliers for a profile",
		Long: `Derive the four byte-lane multipliers of the alpha table by raising the
field generator to the profile's exponents.`,
		Example: `  # Multipliers of the default (beta) field
  k2fsr coefficients

  # Multipliers of the gamma field as JSON
  k2fsr coefficients --profile gamma --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("json")

			name, profile, manager, err := loadProfile(profileName)
			if err != nil {
				return err
			}

			multipliers, err := fsra.BuildCoefficients(profile.Exponents, profile.Modulus)
			if err != nil {
				return fmt.Errorf("failed to build coefficients: %w", err)
			}

			if outputJSON {
				hexMultipliers := make([]string, len(multipliers))
				for i, m := range multipliers {
					hexMultipliers[i] = fmt.Sprintf("0x%02X", m)
				}
				result := map[string]interface{}{
					"profile":     name,
					"modulus":     fmt.Sprintf("0x%03X", profile.Modulus),
					"exponents":   profile.Exponents,
					"multipliers": hexMultipliers,
				}

				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(result)
			}

			newReporter(manager).Multipliers(name, profile.Exponents, multipliers)
			return nil
		},
	}

	cmd.Flags().StringVarP(&profileName, "profile", "p", "", "Field profile to use")

	return cmd
}
