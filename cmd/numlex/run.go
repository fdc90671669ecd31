package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/coregx/numlex"
	"github.com/coregx/numlex/dfa"
)

var errNoInput = errors.New("no input line")

type cli struct {
	Start     int  `help:"Byte offset in the line to scan from." default:"0"`
	Trace     bool `help:"Log every automaton step to standard error."`
	DumpTable bool `help:"Print the automaton's transition table and exit."`
}

func (c *cli) run(stdin io.Reader, stdout, stderr io.Writer) error {
	if c.DumpTable {
		_, err := io.WriteString(stdout, dfa.Numeric.String())
		return err
	}

	line, err := readLine(bufio.NewReader(stdin))
	if err != nil {
		return err
	}
	if c.Start < 0 || c.Start > len(line) {
		return fmt.Errorf("start offset %d is outside the %d-byte input line", c.Start, len(line))
	}

	var tok numlex.Token
	if c.Trace {
		l := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		tok = numlex.ScanObserved(line, c.Start, func(s numlex.Step) {
			l.Debug("step",
				"pos", s.Pos,
				"byte", fmt.Sprintf("%q", s.Byte),
				"class", s.Class,
				"from", s.From,
				"to", s.To,
				"accept", s.Accept,
			)
		})
		l.Debug("token", "kind", tok.Kind, "start", tok.Start, "len", tok.Len)
	} else {
		tok = numlex.Scan(line, c.Start)
	}

	out := numlex.AppendFormat(make([]byte, 0, len(line)+4), tok, line)
	out = append(out, '\n')
	_, err = stdout.Write(out)
	return err
}

// readLine returns the first line of r without its "\n" or "\r\n"
// terminator. A last line without a terminator counts; no line at all is
// errNoInput.
func readLine(r *bufio.Reader) ([]byte, error) {
	line, err := r.ReadBytes('\n')
	switch {
	case errors.Is(err, io.EOF):
		if len(line) == 0 {
			return nil, errNoInput
		}
	case err != nil:
		return nil, fmt.Errorf("reading input: %w", err)
	}

	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	return line, nil
}
