package id3

import (
	"bufio"
	"io"
	"strconv"
)

// tokenizer reads whitespace-delimited tokens from a stream. Per spec.md
// §6, all file formats are whitespace-delimited tokens with newlines
// insignificant except where explicitly stated, so every reader in this
// package is built on top of this single word scanner rather than
// line-oriented parsing.
type tokenizer struct {
	sc *bufio.Scanner
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)
	return &tokenizer{sc: sc}
}

// next returns the next token, or ("", false) at end of stream.
func (t *tokenizer) next() (string, bool) {
	if !t.sc.Scan() {
		return "", false
	}
	return t.sc.Text(), true
}

// nextString returns the next token or an InvalidInput error if the stream
// is exhausted.
func (t *tokenizer) nextString(op string) (string, error) {
	tok, ok := t.next()
	if !ok {
		return "", invalidInputf(op, "unexpected end of input")
	}
	return tok, nil
}

// nextInt parses the next token as a base-10 integer.
func (t *tokenizer) nextInt(op string) (int, error) {
	tok, err := t.nextString(op)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, invalidInputf(op, "expected integer, got %q: %w", tok, err)
	}
	return v, nil
}
