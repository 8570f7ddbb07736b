package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("OUTPUT_DIR", dir)

	letterPath := filepath.Join(dir, "letter.txt")
	if err := os.WriteFile(letterPath, []byte("First paragraph.\n\nSecond paragraph."), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"render", letterPath, "--company", "Acme", "--name", "Jane Doe"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	want := filepath.Join(dir, "cover_letter_Acme.pdf")
	if got := strings.TrimSpace(out.String()); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("artifact is not a PDF")
	}
}

func TestRenderCommandMissingFile(t *testing.T) {
	t.Setenv("OUTPUT_DIR", t.TempDir())

	rootCmd.SetArgs([]string{"render", filepath.Join(t.TempDir(), "missing.txt")})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected an error for a missing letter file")
	}
}
