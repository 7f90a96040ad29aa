package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeFile is a small helper mirroring the file layout each subcommand
// expects: whitespace-token text files under a fresh temp directory.
func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRunLearnThenClassifyEndToEnd(t *testing.T) {
	dir := t.TempDir()

	attr := "1\nyes \n1\nx discret 2 a b\n"
	learn := "3\na yes\nb yes\na yes\n"
	attrFile := writeFile(t, dir, "attr.txt", attr)
	learnFile := writeFile(t, dir, "learn.txt", learn)
	outFile := filepath.Join(dir, "model.txt")

	if code := run([]string{"l", attrFile, learnFile, outFile}); code != 0 {
		t.Fatalf("learn exit code = %d, want 0", code)
	}

	if _, err := os.Stat(outFile); err != nil {
		t.Fatalf("expected model file to be written: %v", err)
	}

	testFile := writeFile(t, dir, "test.txt", "1\na\n")
	classifyOut := filepath.Join(dir, "predictions.txt")

	if code := run([]string{"c", outFile, testFile, classifyOut}); code != 0 {
		t.Fatalf("classify exit code = %d, want 0", code)
	}

	got, err := os.ReadFile(classifyOut)
	if err != nil {
		t.Fatalf("read predictions: %v", err)
	}
	if strings.TrimSpace(string(got)) != "yes" {
		t.Errorf("predictions = %q, want %q", got, "yes")
	}
}

func TestRunUnknownCommandExitsOne(t *testing.T) {
	if code := run([]string{"bogus"}); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestRunNoArgsExitsOne(t *testing.T) {
	if code := run(nil); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestRunLearnRejectsConflictingFlags(t *testing.T) {
	dir := t.TempDir()
	attrFile := writeFile(t, dir, "attr.txt", "1\nyes \n0\n")
	learnFile := writeFile(t, dir, "learn.txt", "0\n")
	outFile := filepath.Join(dir, "model.txt")

	code := run([]string{"l", "-ndiv", "-nfull", attrFile, learnFile, outFile})
	if code != 1 {
		t.Errorf("exit code = %d, want 1 (usage error)", code)
	}
}

func TestRunRenderMissingModelIsIOError(t *testing.T) {
	dir := t.TempDir()
	code := run([]string{"g", filepath.Join(dir, "nope.model")})
	if code != 1 {
		t.Errorf("exit code = %d, want 1 (io error)", code)
	}
}
