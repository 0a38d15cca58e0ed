package review

import "testing"

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"python", LangPython},
		{"Python", LangPython},
		{"  PYTHON ", LangPython},
		{"js", LangJavaScript},
		{"typescript", LangTypeScript},
		{"c#", LangCSharp},
		{"csharp", LangCSharp},
		{"c++", LangCpp},
		{"cpp", LangCpp},
		{"golang", LangGo},
		{"rust", LangRust},
	}

	for _, tt := range tests {
		got, err := ParseLanguage(tt.in)
		if err != nil {
			t.Errorf("ParseLanguage(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseLanguage_Unsupported(t *testing.T) {
	for _, in := range []string{"cobol", "", "brainfuck"} {
		if _, err := ParseLanguage(in); err == nil {
			t.Errorf("ParseLanguage(%q) should fail", in)
		}
	}
}

func TestLanguageForFile(t *testing.T) {
	tests := []struct {
		name string
		want Language
	}{
		{"main.js", LangJavaScript},
		{"script.py", LangPython},
		{"app.ts", LangTypeScript},
		{"Main.java", LangJava},
		{"Program.cs", LangCSharp},
		{"engine.cpp", LangCpp},
		{"server.go", LangGo},
		{"solution.rs", LangRust},
		{"dir/solution.RS", LangRust},
	}

	for _, tt := range tests {
		got, ok := LanguageForFile(tt.name)
		if !ok {
			t.Errorf("LanguageForFile(%q) not recognized", tt.name)
			continue
		}
		if got != tt.want {
			t.Errorf("LanguageForFile(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestLanguageForFile_Unrecognized(t *testing.T) {
	for _, name := range []string{"notes.txt", "README.md", "Makefile", "archive.tar.gz"} {
		if _, ok := LanguageForFile(name); ok {
			t.Errorf("LanguageForFile(%q) should not be recognized", name)
		}
	}
}

func TestLanguageDisplay(t *testing.T) {
	if got := LangCSharp.Display(); got != "C#" {
		t.Errorf("Display() = %q, want C#", got)
	}
	if got := LangCpp.Display(); got != "C++" {
		t.Errorf("Display() = %q, want C++", got)
	}
	for _, l := range Languages() {
		if l.Display() == "" {
			t.Errorf("language %q has no display name", l)
		}
	}
}
