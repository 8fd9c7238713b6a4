package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/polycut/advanced"
	"github.com/pkg/errors"
)

// Input is "n" on the first line, "k" on the second, then k lines of "i j".
// Blank lines are skipped anywhere.
func readInput(in io.Reader) (n int, cuts []advanced.Cut, err error) {
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	// Next non-blank line, split into fields
	nextLine := func() ([]string, bool) {
		for scanner.Scan() {
			lineNumber++
			fields := strings.Fields(scanner.Text())
			if len(fields) > 0 {
				return fields, true
			}
		}
		return nil, false
	}
	parseInt := func(field string) (int, error) {
		value, err := strconv.Atoi(field)
		if err != nil {
			return 0, errors.Wrapf(err, "line %d", lineNumber)
		}
		return value, nil
	}
	readCount := func(what string) (int, error) {
		fields, ok := nextLine()
		if !ok {
			return 0, errors.Errorf("missing %s", what)
		}
		if len(fields) != 1 {
			return 0, errors.Errorf("line %d: expected %s, got %q", lineNumber, what, strings.Join(fields, " "))
		}
		return parseInt(fields[0])
	}

	n, err = readCount("vertex count")
	if err != nil {
		return 0, nil, err
	}
	k, err := readCount("cut count")
	if err != nil {
		return 0, nil, err
	}
	if k < 0 {
		return 0, nil, errors.Errorf("line %d: negative cut count %d", lineNumber, k)
	}

	cuts = make([]advanced.Cut, 0, k)
	for len(cuts) < k {
		fields, ok := nextLine()
		if !ok {
			return 0, nil, errors.Errorf("expected %d cuts, got %d", k, len(cuts))
		}
		if len(fields) != 2 {
			return 0, nil, errors.Errorf("line %d: expected \"i j\", got %q", lineNumber, strings.Join(fields, " "))
		}
		i, err := parseInt(fields[0])
		if err != nil {
			return 0, nil, err
		}
		j, err := parseInt(fields[1])
		if err != nil {
			return 0, nil, err
		}
		cuts = append(cuts, advanced.Cut{I: i, J: j})
	}

	if fields, ok := nextLine(); ok {
		return 0, nil, errors.Errorf("line %d: unexpected input after %d cuts: %q", lineNumber, k, strings.Join(fields, " "))
	}
	if err := scanner.Err(); err != nil {
		return 0, nil, errors.Wrap(err, "reading input")
	}
	return n, cuts, nil
}
