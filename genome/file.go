// Package genome reads sequence files for indexing.
package genome

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xiles84/orftrie/suffix"
)

// Load reads the sequence stored in filename. See Parse for the format.
func Load(filename string) (string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer file.Close()

	seq, err := Parse(file)
	if err != nil {
		return "", fmt.Errorf("%s: %w", filename, err)
	}
	return seq, nil
}

// Parse reads one sequence from r. Lines are trimmed, upper-cased and
// concatenated; blank lines and FASTA header lines starting with '>' or ';'
// are skipped. A symbol outside the alphabet is reported with its line.
func Parse(r io.Reader) (string, error) {
	var seq strings.Builder
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '>' || line[0] == ';' {
			continue
		}
		line = strings.ToUpper(line)
		if err := suffix.Validate(line); err != nil {
			return "", fmt.Errorf("line %d: %w", lineNum, err)
		}
		seq.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return seq.String(), nil
}
