package pointset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/katalvlaran/tourgeo/geometry"
)

// lineRE matches "<id> <x> <y>" at the start of a line.
var lineRE = regexp.MustCompile(`^\s*(\d+)\s+([-+]?\d+(?:\.\d+)?(?:[eE][-+]?\d+)?)\s+([-+]?\d+(?:\.\d+)?(?:[eE][-+]?\d+)?)`)

// readBufSize bounds how much of a line is matched against lineRE; the
// rest of a longer line is read and discarded.
const readBufSize = 64 * 1024

// Parse reads points from r. Non-matching lines are ignored, including
// lines whose id does not fit in an int; an input with no matching line
// yields an empty set and no error. Lines may be of any length.
//
// Complexity: O(L + n log n) for L input bytes and n points.
func Parse(r io.Reader) (*PointSet, error) {
	m := make(map[Key]geometry.Point)

	br := bufio.NewReaderSize(r, readBufSize)
	for line := 1; ; line++ {
		text, err := readLine(br)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("pointset: read: %w", err)
		}

		sub := lineRE.FindStringSubmatch(text)
		if sub == nil {
			continue
		}
		id, err := strconv.Atoi(sub[1])
		if err != nil {
			continue
		}
		x, err := strconv.ParseFloat(sub[2], 64)
		if err != nil {
			return nil, fmt.Errorf("pointset: line %d: x %q: %w", line, sub[2], err)
		}
		y, err := strconv.ParseFloat(sub[3], 64)
		if err != nil {
			return nil, fmt.Errorf("pointset: line %d: y %q: %w", line, sub[3], err)
		}
		m[Key(id)] = geometry.Point{X: x, Y: y}
	}

	return New(m), nil
}

// readLine returns the first readBufSize bytes of the next line and skips
// the remainder. It returns io.EOF only when no line is left.
func readLine(br *bufio.Reader) (string, error) {
	head, isPrefix, err := br.ReadLine()
	if err != nil {
		return "", err
	}
	text := string(head)
	for isPrefix {
		if _, isPrefix, err = br.ReadLine(); err != nil {
			if err == io.EOF {
				break
			}
			return "", err
		}
	}
	return text, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (*PointSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pointset: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}
