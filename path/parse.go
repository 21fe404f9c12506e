package path

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jianantian/lyon/point"
)

// Parse reads a subset of SVG path data (the M/m, L/l, Q/q and Z/z commands,
// with implicit command repetition) and returns the corresponding path.
//
// Coordinates may be separated by whitespace or commas. Lowercase commands
// are relative to the current position. Anything outside the supported
// subset is an error.
func Parse(data string) (*Path, error) {
	s := &pathScanner{data: data}
	b := NewBuilder()

	var current point.Point
	var cmd byte
	for {
		s.skipSeparators()
		if s.eof() {
			break
		}

		if c := s.peek(); isCommand(c) {
			cmd = c
			s.pos++
		} else if cmd == 0 {
			return nil, fmt.Errorf("path data must start with a command, got %q", c)
		} else if cmd == 'M' {
			// Implicit repetition of a move-to continues as line-to.
			cmd = 'L'
		} else if cmd == 'm' {
			cmd = 'l'
		} else if cmd == 'Z' || cmd == 'z' {
			return nil, fmt.Errorf("unexpected %q after close command at offset %d", c, s.pos)
		}

		relative := cmd >= 'a'
		switch cmd {
		case 'M', 'm':
			to, err := s.point()
			if err != nil {
				return nil, err
			}
			if relative {
				to = current.Add(to)
			}
			b.MoveTo(to)
			current = to
		case 'L', 'l':
			to, err := s.point()
			if err != nil {
				return nil, err
			}
			if relative {
				to = current.Add(to)
			}
			b.LineTo(to)
			current = to
		case 'Q', 'q':
			ctrl, err := s.point()
			if err != nil {
				return nil, err
			}
			to, err := s.point()
			if err != nil {
				return nil, err
			}
			if relative {
				ctrl = current.Add(ctrl)
				to = current.Add(to)
			}
			b.QuadraticTo(ctrl, to)
			current = to
		case 'Z', 'z':
			b.Close()
		default:
			return nil, fmt.Errorf("unsupported path command %q", cmd)
		}
	}

	return b.Build(), nil
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'Q', 'q', 'Z', 'z':
		return true
	}
	return false
}

type pathScanner struct {
	data string
	pos  int
}

func (s *pathScanner) eof() bool {
	return s.pos >= len(s.data)
}

func (s *pathScanner) peek() byte {
	return s.data[s.pos]
}

func (s *pathScanner) skipSeparators() {
	for !s.eof() {
		switch s.data[s.pos] {
		case ' ', '\t', '\n', '\r', ',':
			s.pos++
		default:
			return
		}
	}
}

func (s *pathScanner) number() (float64, error) {
	s.skipSeparators()
	start := s.pos
	for !s.eof() {
		c := s.data[s.pos]
		if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' ||
			((c == '-' || c == '+') && (s.pos == start || s.data[s.pos-1] == 'e' || s.data[s.pos-1] == 'E')) {
			s.pos++
			continue
		}
		break
	}
	if start == s.pos {
		return 0, fmt.Errorf("expected number at offset %d in %q", start, s.data)
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s.data[start:s.pos]), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s.data[start:s.pos], err)
	}
	return n, nil
}

func (s *pathScanner) point() (point.Point, error) {
	x, err := s.number()
	if err != nil {
		return point.Point{}, err
	}
	y, err := s.number()
	if err != nil {
		return point.Point{}, err
	}
	return point.New(x, y), nil
}
