package review

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Language identifies one of the supported review languages.
type Language string

const (
	LangJavaScript Language = "javascript"
	LangPython     Language = "python"
	LangTypeScript Language = "typescript"
	LangJava       Language = "java"
	LangCSharp     Language = "csharp"
	LangCpp        Language = "cpp"
	LangGo         Language = "go"
	LangRust       Language = "rust"
)

// Languages returns all supported languages in display order.
func Languages() []Language {
	return []Language{
		LangJavaScript, LangPython, LangTypeScript, LangJava,
		LangCSharp, LangCpp, LangGo, LangRust,
	}
}

var displayNames = map[Language]string{
	LangJavaScript: "JavaScript",
	LangPython:     "Python",
	LangTypeScript: "TypeScript",
	LangJava:       "Java",
	LangCSharp:     "C#",
	LangCpp:        "C++",
	LangGo:         "Go",
	LangRust:       "Rust",
}

// Display returns the human-readable name of the language.
func (l Language) Display() string {
	if name, ok := displayNames[l]; ok {
		return name
	}
	return string(l)
}

// Tag returns the identifier used to tag the code block in prompts.
func (l Language) Tag() string { return string(l) }

var languageAliases = map[string]Language{
	"javascript": LangJavaScript,
	"js":         LangJavaScript,
	"python":     LangPython,
	"py":         LangPython,
	"typescript": LangTypeScript,
	"ts":         LangTypeScript,
	"java":       LangJava,
	"csharp":     LangCSharp,
	"c#":         LangCSharp,
	"cs":         LangCSharp,
	"cpp":        LangCpp,
	"c++":        LangCpp,
	"go":         LangGo,
	"golang":     LangGo,
	"rust":       LangRust,
	"rs":         LangRust,
}

// ParseLanguage resolves a user-supplied language name or alias.
func ParseLanguage(s string) (Language, error) {
	if lang, ok := languageAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return lang, nil
	}
	return "", fmt.Errorf("unsupported language: %q (supported: %s)", s, supportedList())
}

func supportedList() string {
	names := make([]string, 0, len(displayNames))
	for _, l := range Languages() {
		names = append(names, string(l))
	}
	return strings.Join(names, ", ")
}

// extLanguage is the fixed extension table for upload-derived language
// inference. Extensions outside this table leave the caller's current
// selection unchanged.
var extLanguage = map[string]Language{
	".js":   LangJavaScript,
	".py":   LangPython,
	".ts":   LangTypeScript,
	".java": LangJava,
	".cs":   LangCSharp,
	".cpp":  LangCpp,
	".go":   LangGo,
	".rs":   LangRust,
}

// LanguageForFile infers the language from a file name's extension.
// The second return value is false for unrecognized extensions.
func LanguageForFile(name string) (Language, bool) {
	lang, ok := extLanguage[strings.ToLower(filepath.Ext(name))]
	return lang, ok
}

// KnownExtensions returns the recognized file extensions, sorted.
func KnownExtensions() []string {
	exts := make([]string, 0, len(extLanguage))
	for ext := range extLanguage {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
