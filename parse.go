package fillin

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseGridLines builds a grid from its textual rows: '#' for blocked cells,
// '.' for blank cells, 'a'-'z' for pre-filled letters.
func ParseGridLines(lines []string) (*Grid, error) {
	rows := make([][]rune, len(lines))
	for y, line := range lines {
		rows[y] = []rune(line)
		for _, r := range rows[y] {
			if r == CellBlocked || r == CellEmpty {
				continue
			}
			if r < 'a' || r > 'z' {
				return nil, fmt.Errorf("row %d contains invalid cell %q", y, r)
			}
		}
	}
	return NewGrid(rows), nil
}

// ParseWordList reads one word per line, lowercasing and trimming whitespace.
// Blank lines and lines starting with '#' are skipped.
func ParseWordList(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		for _, r := range word {
			if r < 'a' || r > 'z' {
				return nil, fmt.Errorf("word %s contains non-lowercase letter %q", word, r)
			}
		}
		words = append(words, word)
	}
	return words, scanner.Err()
}

// ParsePuzzle reads a whole puzzle: grid rows, then a blank line, then one
// word per line. The word section follows ParseWordList's rules.
func ParsePuzzle(r io.Reader) (*Grid, []string, error) {
	scanner := bufio.NewScanner(r)
	var gridLines []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")
		if line == "" {
			break
		}
		gridLines = append(gridLines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if len(gridLines) == 0 {
		return nil, nil, fmt.Errorf("puzzle has no grid rows")
	}

	grid, err := ParseGridLines(gridLines)
	if err != nil {
		return nil, nil, err
	}

	var rest strings.Builder
	for scanner.Scan() {
		rest.WriteString(scanner.Text())
		rest.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	words, err := ParseWordList(strings.NewReader(rest.String()))
	if err != nil {
		return nil, nil, err
	}
	return grid, words, nil
}
