package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhichhn93/conversation-intel-agent/internal/adapter/parser"
	"github.com/abhichhn93/conversation-intel-agent/internal/adapter/renderer"
	"github.com/abhichhn93/conversation-intel-agent/internal/analyzer"
	"github.com/abhichhn93/conversation-intel-agent/internal/app"
	"github.com/abhichhn93/conversation-intel-agent/internal/config"
	"github.com/abhichhn93/conversation-intel-agent/internal/domain"
	"github.com/abhichhn93/conversation-intel-agent/internal/logging"
)

var (
	fromStr     string
	toStr       string
	output      string
	summaryOnly bool
	lexiconPath string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "conversation-intel <transcript.txt>",
	Short: "Derive engagement metrics from a conversation transcript",
	Long: `conversation-intel ingests a timestamped multi-speaker transcript
(one "timestamp | speaker | text" entry per line) and derives engagement
metrics: message counts, word-share dominance, interruptions and rule-based
sentiment. It writes a Markdown report and prints a condensed summary.`,
	Args: cobra.ExactArgs(1),
	RunE: runRoot,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringVar(&fromStr, "from", "", `Start offset filter (format: "HH:MM:SS" or "MM:SS")`)
	rootCmd.Flags().StringVar(&toStr, "to", "", `End offset filter (format: "HH:MM:SS" or "MM:SS")`)
	rootCmd.Flags().StringVarP(&output, "output", "o", "report.md", "Report file")
	rootCmd.Flags().BoolVar(&summaryOnly, "summary-only", false, "Print the console summary without writing a report")
	rootCmd.Flags().StringVar(&lexiconPath, "lexicon", "", "Analysis config file (sentiment lexicon and thresholds)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

func configDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Clean(filepath.Join(configHome, app.ApplicationName))
}

func initConfig() {
	viper.AddConfigPath(configDir())
	viper.SetConfigType("yaml")
	viper.SetConfigName("config")

	viper.SetEnvPrefix("conversation_intel")
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))
	viper.AutomaticEnv()

	// Silently ignore missing config file
	_ = viper.ReadInConfig()

	lvl := logLevel
	if lvl == "" {
		lvl = viper.GetString("log_level")
	}
	if lvl == "" {
		lvl = "info"
	}
	logging.Init(lvl)
}

func runRoot(cmd *cobra.Command, args []string) error {
	transcriptPath := args[0]

	from, err := parseOffset(fromStr)
	if err != nil {
		return fmt.Errorf("parsing --from: %w", err)
	}

	to, err := parseOffset(toStr)
	if err != nil {
		return fmt.Errorf("parsing --to: %w", err)
	}

	analysis, err := loadAnalysis()
	if err != nil {
		return err
	}

	svc := app.NewIntelService(
		&parser.PipeParser{},
		analyzer.New(analysis),
		&renderer.MarkdownRenderer{},
		&renderer.ConsoleRenderer{},
	)

	in, err := os.Open(transcriptPath)
	if err != nil {
		return fmt.Errorf("opening transcript: %w", err)
	}
	defer in.Close()

	var reportW io.Writer
	if !summaryOnly {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating report file: %w", err)
		}
		defer f.Close()
		reportW = f
	}

	if err := svc.Process(in, from, to, reportW, cmd.OutOrStdout()); err != nil {
		return err
	}

	if !summaryOnly {
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", output)
	}
	return nil
}

// loadAnalysis resolves the analysis config: the --lexicon flag wins, then the
// analysis_config key in the viper config, then the compiled-in defaults.
func loadAnalysis() (config.Analysis, error) {
	path := lexiconPath
	if path == "" {
		path = viper.GetString("analysis_config")
	}
	if path == "" {
		return config.DefaultAnalysis(), nil
	}

	analysis, err := config.LoadAnalysis(path)
	if err != nil {
		return config.Analysis{}, fmt.Errorf("loading --lexicon: %w", err)
	}
	return analysis, nil
}

func parseOffset(s string) (*time.Duration, error) {
	if s == "" {
		return nil, nil
	}

	d, ok := domain.ParseClock(s)
	if !ok {
		return nil, fmt.Errorf("unknown offset format: %q (expected HH:MM:SS or MM:SS)", s)
	}
	return &d, nil
}
