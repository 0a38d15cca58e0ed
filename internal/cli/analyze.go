package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Sushil2209/AI--Powered-code-review-Assistant/internal/config"
	"github.com/Sushil2209/AI--Powered-code-review-Assistant/internal/output"
	"github.com/Sushil2209/AI--Powered-code-review-Assistant/internal/providers"
	"github.com/Sushil2209/AI--Powered-code-review-Assistant/internal/redact"
	"github.com/Sushil2209/AI--Powered-code-review-Assistant/internal/review"
	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Shared analyze flags
var (
	flagLanguage    string
	flagCode        string
	flagProvider    string
	flagModel       string
	flagFormat      string
	flagOut         string
	flagFailUnder   int
	flagMaxTokens   int
	flagTemperature float64
	flagGuidelines  string
	flagRedact      bool
	flagQuiet       bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze a code snippet and print the structured review",
	Long: `Analyze sends a single code snippet to the configured LLM provider and
prints the review: score, line-level issues, an optimized rewrite, and a
summary.

The snippet comes from a file argument, from --code, or from stdin when
neither is given (or when the argument is "-"). A recognized file
extension sets the language; otherwise --language applies.`,
	Example: `  reviewassist analyze solution.rs
  reviewassist analyze --code 'let x = 1' --language javascript
  cat main.go | reviewassist analyze --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		runAnalyze(args, cfg)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&flagLanguage, "language", "l", "", "Snippet language (javascript, python, typescript, java, csharp, cpp, go, rust)")
	analyzeCmd.Flags().StringVar(&flagCode, "code", "", "Code snippet passed inline instead of a file or stdin")
	analyzeCmd.Flags().StringVar(&flagProvider, "provider", "", "LLM provider (gemini, anthropic, openai, ollama)")
	analyzeCmd.Flags().StringVar(&flagModel, "model", "", "Model name")
	analyzeCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, markdown)")
	analyzeCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().IntVar(&flagFailUnder, "fail-under", 0, "Exit nonzero when the score is below this threshold")
	analyzeCmd.Flags().IntVar(&flagMaxTokens, "max-tokens", 0, "Maximum response tokens")
	analyzeCmd.Flags().Float64Var(&flagTemperature, "temperature", 0, "Sampling temperature")
	analyzeCmd.Flags().StringVar(&flagGuidelines, "guidelines", "", "Guidelines file path")
	analyzeCmd.Flags().BoolVar(&flagRedact, "redact", false, "Mask likely secrets in the snippet before sending")
	analyzeCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Suppress the progress spinner")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagProvider != "" {
		m["provider"] = flagProvider
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagFailUnder > 0 {
		m["failUnder"] = fmt.Sprintf("%d", flagFailUnder)
	}
	if flagMaxTokens > 0 {
		m["maxTokens"] = fmt.Sprintf("%d", flagMaxTokens)
	}
	if flagTemperature > 0 {
		m["temperature"] = fmt.Sprintf("%g", flagTemperature)
	}
	if flagGuidelines != "" {
		m["guidelinesFile"] = flagGuidelines
	}
	return m
}

func runAnalyze(args []string, cfg config.Config) {
	code, lang, err := resolveInput(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitUsageError
		return
	}

	if flagRedact {
		code = redact.Snippet(code)
	}

	guidelines, err := review.LoadGuidelines(cfg.GuidelinesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	ctx := context.Background()

	client, err := providers.New(ctx, cfg.Provider, cfg.Model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	ctrl := review.NewController(client, review.Options{
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		Guidelines:  guidelines,
	})
	ctrl.Subscribe(progressSpinner(client.Name()))

	st := ctrl.Analyze(ctx, lang, code)

	if st.Phase == review.PhaseFailed {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", st.Err)
		exitCode = failureExitCode(st.Err)
		return
	}

	report := &output.Report{
		Tool:     "reviewassist",
		Version:  version,
		Language: lang,
		Provider: cfg.Provider,
		Model:    cfg.Model,
		Result:   st.Result,
	}
	if err := output.WriteReport(report, cfg.Format, flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	if cfg.FailUnder > 0 && st.Result.Score < cfg.FailUnder {
		color.New(color.FgYellow).Fprintf(os.Stderr, "Score %d is below threshold %d\n", st.Result.Score, cfg.FailUnder)
		exitCode = ExitLowScore
	}
}

// resolveInput picks the snippet source (file, --code, stdin) and the
// language. A recognized file extension wins over any prior language
// selection; otherwise --language applies, defaulting to JavaScript.
func resolveInput(args []string) (string, review.Language, error) {
	lang := review.LangJavaScript
	if flagLanguage != "" {
		l, err := review.ParseLanguage(flagLanguage)
		if err != nil {
			return "", "", err
		}
		lang = l
	}

	if flagCode != "" {
		if len(args) > 0 {
			return "", "", fmt.Errorf("--code and a file argument are mutually exclusive")
		}
		return flagCode, lang, nil
	}

	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		if l, ok := review.LanguageForFile(args[0]); ok {
			lang = l
		}
		return string(data), lang, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), lang, nil
}

// progressSpinner returns a subscriber that shows a spinner on stderr
// while the request is in flight.
func progressSpinner(providerName string) func(review.State) {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = fmt.Sprintf(" waiting on %s...", providerName)
	return func(st review.State) {
		if flagQuiet {
			return
		}
		switch st.Phase {
		case review.PhaseInFlight:
			s.Start()
		case review.PhaseSuccess, review.PhaseFailed:
			s.Stop()
		}
	}
}

// failureExitCode maps a terminal analysis error to a process exit code.
func failureExitCode(aerr *review.AnalysisError) int {
	switch aerr.Kind {
	case review.ErrEmptyInput:
		return ExitUsageError
	case review.ErrTransport:
		if providers.IsAuthError(aerr) {
			return ExitAuthError
		}
		return ExitRuntimeError
	default:
		return ExitRuntimeError
	}
}
