package handler

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// input reads whitespace-separated tokens the way a terminal user types
// them: several answers may share a line, and free-text answers take the
// rest of the line.
type input struct {
	sc      *bufio.Scanner
	pending []string
}

func newInput(r io.Reader) *input {
	return &input{sc: bufio.NewScanner(r)}
}

func (in *input) token() (string, error) {
	for len(in.pending) == 0 {
		if !in.sc.Scan() {
			if err := in.sc.Err(); err != nil {
				return "", &readError{err: err}
			}
			return "", io.EOF
		}
		in.pending = strings.Fields(in.sc.Text())
	}

	tok := in.pending[0]
	in.pending = in.pending[1:]

	return tok, nil
}

// line returns what is left of the current line, or the next non-empty line.
func (in *input) line() (string, error) {
	if len(in.pending) > 0 {
		rest := strings.Join(in.pending, " ")
		in.pending = nil
		return rest, nil
	}

	for in.sc.Scan() {
		if text := strings.TrimSpace(in.sc.Text()); text != "" {
			return text, nil
		}
	}
	if err := in.sc.Err(); err != nil {
		return "", &readError{err: err}
	}

	return "", io.EOF
}

func (in *input) discardLine() {
	in.pending = nil
}

func (in *input) integer() (int, error) {
	tok, err := in.token()
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &badInputError{value: tok, want: "a whole number"}
	}

	return n, nil
}

func (in *input) money() (decimal.Decimal, error) {
	tok, err := in.token()
	if err != nil {
		return decimal.Zero, err
	}

	d, err := decimal.NewFromString(strings.TrimPrefix(tok, "$"))
	if err != nil {
		return decimal.Zero, &badInputError{value: tok, want: "an amount such as 12.50"}
	}

	return d, nil
}

type badInputError struct {
	value string
	want  string
}

func (e *badInputError) Error() string {
	return strconv.Quote(e.value) + " is not " + e.want
}

// readError means the underlying reader failed; the scanner will not
// recover, so the session has to end.
type readError struct {
	err error
}

func (e *readError) Error() string {
	return "read input: " + e.err.Error()
}

func (e *readError) Unwrap() error {
	return e.err
}
