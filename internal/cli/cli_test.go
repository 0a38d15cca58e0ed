package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Sushil2209/AI--Powered-code-review-Assistant/internal/review"
)

// resetFlags resets all package-level flag variables to their zero values.
func resetFlags() {
	flagLanguage = ""
	flagCode = ""
	flagProvider = ""
	flagModel = ""
	flagFormat = ""
	flagOut = ""
	flagFailUnder = 0
	flagMaxTokens = 0
	flagTemperature = 0
	flagGuidelines = ""
	flagRedact = false
	flagQuiet = false
}

// --- buildOverrides tests ---

func TestBuildOverrides_Empty(t *testing.T) {
	resetFlags()
	m := buildOverrides()
	if len(m) != 0 {
		t.Errorf("buildOverrides() with no flags = %v, want empty map", m)
	}
}

func TestBuildOverrides_AllSet(t *testing.T) {
	resetFlags()
	defer resetFlags()
	flagProvider = "openai"
	flagModel = "gpt-4.1-mini"
	flagFormat = "json"
	flagFailUnder = 70
	flagMaxTokens = 2048
	flagTemperature = 0.5
	flagGuidelines = "team.json"

	m := buildOverrides()
	want := map[string]string{
		"provider":       "openai",
		"model":          "gpt-4.1-mini",
		"format":         "json",
		"failUnder":      "70",
		"maxTokens":      "2048",
		"temperature":    "0.5",
		"guidelinesFile": "team.json",
	}
	if len(m) != len(want) {
		t.Fatalf("buildOverrides() = %v, want %v", m, want)
	}
	for k, v := range want {
		if m[k] != v {
			t.Errorf("buildOverrides()[%q] = %q, want %q", k, m[k], v)
		}
	}
}

// --- resolveInput tests ---

func TestResolveInput_InlineCode(t *testing.T) {
	resetFlags()
	defer resetFlags()
	flagCode = "let x = 1"

	code, lang, err := resolveInput(nil)
	if err != nil {
		t.Fatalf("resolveInput() error = %v", err)
	}
	if code != "let x = 1" {
		t.Errorf("code = %q", code)
	}
	if lang != review.LangJavaScript {
		t.Errorf("lang = %q, want javascript default", lang)
	}
}

func TestResolveInput_LanguageFlag(t *testing.T) {
	resetFlags()
	defer resetFlags()
	flagCode = "x = 1"
	flagLanguage = "py"

	_, lang, err := resolveInput(nil)
	if err != nil {
		t.Fatalf("resolveInput() error = %v", err)
	}
	if lang != review.LangPython {
		t.Errorf("lang = %q, want python", lang)
	}
}

func TestResolveInput_UnknownLanguage(t *testing.T) {
	resetFlags()
	defer resetFlags()
	flagCode = "x"
	flagLanguage = "cobol"

	if _, _, err := resolveInput(nil); err == nil {
		t.Error("resolveInput() with unknown language = nil error, want error")
	}
}

func TestResolveInput_FileExtensionWins(t *testing.T) {
	resetFlags()
	defer resetFlags()
	flagLanguage = "python"

	path := filepath.Join(t.TempDir(), "solution.rs")
	if err := os.WriteFile(path, []byte("fn main() {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	code, lang, err := resolveInput([]string{path})
	if err != nil {
		t.Fatalf("resolveInput() error = %v", err)
	}
	if code != "fn main() {}\n" {
		t.Errorf("code = %q", code)
	}
	if lang != review.LangRust {
		t.Errorf("lang = %q, want rust from .rs extension", lang)
	}
}

func TestResolveInput_UnrecognizedExtensionKeepsSelection(t *testing.T) {
	resetFlags()
	defer resetFlags()
	flagLanguage = "go"

	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("package main\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, lang, err := resolveInput([]string{path})
	if err != nil {
		t.Fatalf("resolveInput() error = %v", err)
	}
	if lang != review.LangGo {
		t.Errorf("lang = %q, want go from --language", lang)
	}
}

func TestResolveInput_CodeAndFileConflict(t *testing.T) {
	resetFlags()
	defer resetFlags()
	flagCode = "x"

	if _, _, err := resolveInput([]string{"main.go"}); err == nil {
		t.Error("resolveInput() with --code and file = nil error, want error")
	}
}

func TestResolveInput_MissingFile(t *testing.T) {
	resetFlags()
	defer resetFlags()

	if _, _, err := resolveInput([]string{filepath.Join(t.TempDir(), "nope.go")}); err == nil {
		t.Error("resolveInput() with missing file = nil error, want error")
	}
}

// --- failureExitCode tests ---

func TestFailureExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  *review.AnalysisError
		want int
	}{
		{"empty input", &review.AnalysisError{Kind: review.ErrEmptyInput}, ExitUsageError},
		{"transport", &review.AnalysisError{Kind: review.ErrTransport, Cause: errors.New("connection refused")}, ExitRuntimeError},
		{"schema violation", &review.AnalysisError{Kind: review.ErrSchemaViolation}, ExitRuntimeError},
		{"unknown", &review.AnalysisError{Kind: review.ErrUnknown}, ExitRuntimeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failureExitCode(tt.err); got != tt.want {
				t.Errorf("failureExitCode(%v) = %d, want %d", tt.err.Kind, got, tt.want)
			}
		})
	}
}
