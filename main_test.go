package main

import (
	"os"
	"strings"
	"testing"
)

// runMain runs main with args and returns what it printed to stdout.
func runMain(t *testing.T, args ...string) string {
	t.Helper()
	origArgs := os.Args
	origStdout := os.Stdout
	defer func() {
		os.Args = origArgs
		os.Stdout = origStdout
	}()

	os.Args = append([]string{"orftrie"}, args...)

	// Capture standard output.
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	main()

	w.Close()
	os.Stdout = origStdout

	var outputBuilder strings.Builder
	buf := make([]byte, 1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			outputBuilder.Write(buf[:n])
		}
		if err != nil {
			break
		}
	}
	return outputBuilder.String()
}

func writeGenome(t *testing.T, content string) string {
	t.Helper()
	genomeFile := t.TempDir() + "/genome_test.txt"
	if err := os.WriteFile(genomeFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write genome file: %v", err)
	}
	return genomeFile
}

func TestSearchModeOutput(t *testing.T) {
	// Two lines are concatenated into "ABCABC".
	genomeFile := writeGenome(t, "ABC\nABC\n")

	output := runMain(t, "search", "-f", genomeFile, "--log-level", "error", "BC", "D")

	if !strings.Contains(output, `Sequence "BC" found at positions: [1 4]`) {
		t.Errorf("Expected positions for BC, got output: %s", output)
	}
	if !strings.Contains(output, `Sequence "D" not found.`) {
		t.Errorf("Expected not found message for D, got output: %s", output)
	}
}

func TestFindModeOutput(t *testing.T) {
	genomeFile := writeGenome(t, "AAABBBCCC\n")

	output := runMain(t, "find", "-f", genomeFile, "--log-level", "error", "AAA", "BB")

	for _, want := range []string{"Found 2 substrings", "(0, 4) AAABB", "(0, 5) AAABBB"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}
}
