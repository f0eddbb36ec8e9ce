package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhichhn93/conversation-intel-agent/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an analysis config file with the default lexicon",
	Long: `Writes the compiled-in sentiment lexicon and threshold values to
~/.config/conversation-intel/analysis.yaml so they can be tuned per
deployment, and registers the file in the tool config.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	dir := configDir()
	analysisPath := filepath.Join(dir, "analysis.yaml")

	if _, err := os.Stat(analysisPath); err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Analysis config already exists at %s\n", analysisPath)
		fmt.Fprint(cmd.OutOrStdout(), "Overwrite? [y/N]: ")

		var answer string
		fmt.Scanln(&answer) //nolint:gosec // interactive CLI input, error not actionable

		if !strings.EqualFold(answer, "y") {
			return nil
		}
	}

	if err := os.MkdirAll(dir, 0750); err != nil { //nolint:gosec // path from XDG_CONFIG_HOME or user home dir
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config.DefaultAnalysis())
	if err != nil {
		return fmt.Errorf("marshaling analysis config: %w", err)
	}

	if err := os.WriteFile(analysisPath, data, 0600); err != nil {
		return fmt.Errorf("writing analysis config: %w", err)
	}

	toolCfg := fmt.Sprintf("analysis_config: %s\n", analysisPath)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(toolCfg), 0600); err != nil {
		return fmt.Errorf("writing tool config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Analysis config written to %s\n", analysisPath)
	return nil
}
