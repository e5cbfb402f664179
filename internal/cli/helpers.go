package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/k2stream/k2fsr/internal/validation"
	"github.com/k2stream/k2fsr/pkg/config"
	"github.com/k2stream/k2fsr/pkg/crypto/fsra"
	"github.com/k2stream/k2fsr/pkg/report"
)

// loadProfile resolves the field profile named by --profile, falling back to
// the configured default when the flag is empty.
func loadProfile(name string) (string, config.FieldProfile, *config.Manager, error) {
	manager, err := config.NewManager()
	if err != nil {
		return "", config.FieldProfile{}, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if name == "" {
		name = manager.Get().Defaults.Profile
	}

	profile, err := manager.Profile(name)
	if err != nil {
		return "", config.FieldProfile{}, nil, err
	}

	return name, profile, manager, nil
}

// newReporter builds the stdout reporter honouring the configured color
// preference.
func newReporter(manager *config.Manager) *report.Reporter {
	return report.New(os.Stdout, manager.Get().UI.UseColor)
}

// parseSeed parses a register seed given as five comma- or space-separated
// 32-bit hex words.
func parseSeed(spec string) ([fsra.RegisterSize]uint32, error) {
	var seed [fsra.RegisterSize]uint32

	words := strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	if err := validation.ValidateSeedWords(words, fsra.RegisterSize); err != nil {
		return seed, err
	}

	for i, word := range words {
		word = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(word), "0x"), "0X")
		value, err := strconv.ParseUint(word, 16, 32)
		if err != nil {
			return seed, fmt.Errorf("seed word %d: %w", i, err)
		}
		seed[i] = uint32(value)
	}

	return seed, nil
}

// readSeedInteractive reads a seed from the terminal without echoing it.
// Register seeds are key material, so they get the same treatment as a
// passphrase.
func readSeedInteractive() ([fsra.RegisterSize]uint32, error) {
	fmt.Printf("Enter register seed (%d hex words): ", fsra.RegisterSize)

	if term.IsTerminal(int(syscall.Stdin)) {
		seedBytes, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return [fsra.RegisterSize]uint32{}, err
		}
		return parseSeed(string(seedBytes))
	}

	// Fallback for non-terminal
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return [fsra.RegisterSize]uint32{}, err
	}
	return parseSeed(strings.TrimSpace(line))
}

// formatWords renders register words as prefixed hex for JSON output.
func formatWords(words [fsra.RegisterSize]uint32) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = fmt.Sprintf("0x%08X", w)
	}
	return out
}
