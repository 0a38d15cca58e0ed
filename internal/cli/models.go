package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Sushil2209/AI--Powered-code-review-Assistant/internal/config"
	"github.com/Sushil2209/AI--Powered-code-review-Assistant/internal/providers"
	"github.com/Sushil2209/AI--Powered-code-review-Assistant/internal/schema"
	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Provider and model management",
}

type modelInfo struct {
	Provider string
	Models   []string
}

var knownModels = []modelInfo{
	{
		Provider: "gemini",
		Models: []string{
			"gemini-3-flash-preview",
			"gemini-3-pro-preview",
			"gemini-2.5-flash",
			"gemini-2.5-pro",
		},
	},
	{
		Provider: "anthropic",
		Models: []string{
			"claude-sonnet-4-6",
			"claude-opus-4-6",
			"claude-haiku-4-5",
		},
	},
	{
		Provider: "openai",
		Models: []string{
			"gpt-5.3-codex",
			"gpt-5.2",
			"gpt-4.1-mini",
			"o3-mini",
		},
	},
	{
		Provider: "ollama",
		Models: []string{
			"llama3.3",
			"codellama",
			"qwen2.5-coder",
			"deepseek-coder-v2",
		},
	},
}

var modelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known providers and models",
	Run: func(cmd *cobra.Command, args []string) {
		for _, info := range knownModels {
			fmt.Fprintf(os.Stdout, "%s:\n", info.Provider)
			for _, m := range info.Models {
				fmt.Fprintf(os.Stdout, "  - %s\n", m)
			}
			fmt.Fprintln(os.Stdout)
		}
	},
}

var modelsDoctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Validate provider credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "Checking %s...\n", cfg.Provider)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		p, err := providers.New(ctx, cfg.Provider, cfg.Model)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
			exitCode = ExitAuthError
			return nil
		}

		_, err = p.Generate(ctx, providers.Request{
			SystemPrompt: "Respond with exactly one JSON object: {\"ok\": true}",
			UserPrompt:   "ping",
			Schema:       schema.Review(),
			MaxTokens:    64,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
			if providers.IsAuthError(err) {
				exitCode = ExitAuthError
			} else {
				exitCode = ExitRuntimeError
			}
			return nil
		}

		fmt.Fprintf(os.Stdout, "OK: %s is configured and responding\n", cfg.Provider)
		return nil
	},
}

func init() {
	modelsCmd.AddCommand(modelsListCmd)
	modelsCmd.AddCommand(modelsDoctorCmd)
	modelsDoctorCmd.Flags().StringVar(&flagProvider, "provider", "", "Provider to check")
	modelsDoctorCmd.Flags().StringVar(&flagModel, "model", "", "Model to check")
}
