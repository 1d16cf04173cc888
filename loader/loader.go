package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/hamcycle/matrix"
)

// token matches one integer cell.
var token = regexp.MustCompile(`-?\d+`)

// maxLineBytes bounds a single input line (a 10k-vertex row fits comfortably).
const maxLineBytes = 1 << 20

// Parse reads rows from r. Lines without any token are skipped.
//
// Errors: ErrMalformedRow (token overflows int or line too long), ErrNoRows,
// or ErrOpen wrapping the underlying read error.
func Parse(r io.Reader) ([][]int, error) {
	var (
		rows [][]int
		line int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		cells := token.FindAllString(text, -1)
		if len(cells) == 0 {
			continue
		}
		row := make([]int, len(cells))
		for i, c := range cells {
			v, err := strconv.Atoi(c)
			if err != nil {
				return nil, fmt.Errorf("loader: line %d, column %d: %q: %w", line, i+1, c, ErrMalformedRow)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("loader: line %d: %w: %w", line+1, ErrMalformedRow, err)
		}
		return nil, fmt.Errorf("loader: line %d: %w: %w", line+1, ErrOpen, err)
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	return rows, nil
}

// Load parses r and validates the rows with matrix.New.
func Load(r io.Reader) (*matrix.Dense, error) {
	rows, err := Parse(r)
	if err != nil {
		return nil, err
	}

	return matrix.New(rows)
}

// LoadFile opens path and loads it. Open failures wrap ErrOpen.
func LoadFile(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	return Load(f)
}

// Write emits g one row per line, cells separated by a single space.
func Write(w io.Writer, g *matrix.Dense) error {
	if g == nil {
		return matrix.ErrNilMatrix
	}
	bw := bufio.NewWriter(w)
	n := g.Size()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(strconv.Itoa(g.Weight(i, j))); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
