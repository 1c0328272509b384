package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mgpai22/captioncut/internal/subtitle"
	"github.com/spf13/cobra"
)

// writes edited captions to --output, or stdout when unset
func writeResult(cmd *cobra.Command, text string) error {
	outputPath, _ := cmd.Flags().GetString("output")

	if outputPath == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(text, "\n"))
		return err
	}

	if err := subtitle.WriteFile(outputPath, text); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	logger.Infow("Wrote captions", "output", absOutput)
	return nil
}

// reads a required timestamp flag and checks that it parses
func timestampFlag(cmd *cobra.Command, name string) (string, int64, error) {
	value, _ := cmd.Flags().GetString(name)
	value = strings.TrimSpace(value)
	if value == "" {
		return "", 0, fmt.Errorf("--%s is required", name)
	}

	ms, err := subtitle.ParseMillis(value)
	if err != nil {
		return "", 0, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return value, ms, nil
}
