// Package boardio converts between board.Board and the two textual forms
// spec.md section 6 requires: a flat 81-token input format and an
// 11-line human-readable grid, both ported from the original
// implementation's stream operators.
package boardio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tranmh/sudoku-solver/internal/board"
)

// ErrMalformedInput is returned by Parse when the input does not contain
// exactly 81 recognized tokens.
var ErrMalformedInput = errors.New("boardio: malformed input")

// Parse reads 81 whitespace-separated tokens from r, one per cell in
// row-major order. Each token is a single digit '1'..'9' or an
// underscore '_' marking an empty cell; this is the original's charset,
// unchanged. Any other token, or fewer than 81 tokens, is
// ErrMalformedInput.
func Parse(r io.Reader) (board.Board, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var b board.Board
	for i := 0; i < board.CellCount; i++ {
		if !sc.Scan() {
			return board.Board{}, fmt.Errorf("%w: got %d of %d tokens", ErrMalformedInput, i, board.CellCount)
		}
		tok := sc.Text()
		if len(tok) != 1 {
			return board.Board{}, fmt.Errorf("%w: token %q at position %d", ErrMalformedInput, tok, i)
		}
		d, err := tokenToDigit(tok[0])
		if err != nil {
			return board.Board{}, err
		}
		b.Set(i/board.Size, i%board.Size, d)
	}
	return b, nil
}

// ParseString is a convenience wrapper around Parse for an in-memory
// string.
func ParseString(s string) (board.Board, error) {
	return Parse(strings.NewReader(s))
}

func tokenToDigit(c byte) (board.Digit, error) {
	if c == '_' {
		return board.Empty, nil
	}
	if c >= '1' && c <= '9' {
		return board.Digit(c - '0'), nil
	}
	return 0, fmt.Errorf("%w: invalid character %q", ErrMalformedInput, c)
}

const gridTemplate = `
X X X | X X X | X X X
X X X | X X X | X X X
X X X | X X X | X X X
------+-------+------
X X X | X X X | X X X
X X X | X X X | X X X
X X X | X X X | X X X
------+-------+------
X X X | X X X | X X X
X X X | X X X | X X X
X X X | X X X | X X X
`

// Format renders b as the 11-row grid the original implementation prints,
// substituting each 'X' placeholder for the cell's digit in row-major
// order, or '_' for an empty cell. The '|' and divider tokens it adds are
// not part of Parse's input format.
func Format(b board.Board) string {
	var sb strings.Builder
	cells := b.RowMajor()
	next := 0
	for i := 0; i < len(gridTemplate); i++ {
		if gridTemplate[i] == 'X' {
			sb.WriteByte(digitToByte(cells[next]))
			next++
			continue
		}
		sb.WriteByte(gridTemplate[i])
	}
	return sb.String()
}

func digitToByte(d board.Digit) byte {
	if d == board.Empty {
		return '_'
	}
	return byte('0' + int(d))
}
