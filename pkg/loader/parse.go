package loader

import (
	"fmt"
	"strings"

	"github.com/soundprediction/triplo/pkg/factstore"
)

// ParseTupleLine parses one fact line of the .sku format:
//
//	("subject", "relation", "object")
//
// Exactly three quoted strings separated by commas, optionally wrapped
// in one pair of parentheses. Single or double quotes are accepted and
// backslash escapes the next character inside a quoted string. Empty
// fields and any trailing content are rejected. This is a deliberately
// narrow grammar: the line format looks like a tuple literal but is
// never handed to a general expression evaluator.
func ParseTupleLine(line string) (factstore.Fact, error) {
	p := &tupleParser{input: line}
	return p.parse()
}

type tupleParser struct {
	input string
	pos   int
}

func (p *tupleParser) parse() (factstore.Fact, error) {
	p.skipSpace()

	wrapped := false
	if p.peek() == '(' {
		wrapped = true
		p.pos++
	}

	fields := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		if i > 0 {
			p.skipSpace()
			if p.peek() != ',' {
				return factstore.Fact{}, fmt.Errorf("expected ',' at position %d", p.pos)
			}
			p.pos++
		}
		s, err := p.quotedString()
		if err != nil {
			return factstore.Fact{}, err
		}
		if s == "" {
			return factstore.Fact{}, fmt.Errorf("field %d is empty", i+1)
		}
		fields = append(fields, s)
	}

	p.skipSpace()
	if wrapped {
		if p.peek() != ')' {
			return factstore.Fact{}, fmt.Errorf("expected ')' at position %d", p.pos)
		}
		p.pos++
		p.skipSpace()
	}
	// Tolerate a trailing comma, as in a Python single-line tuple dump.
	if p.peek() == ',' {
		p.pos++
		p.skipSpace()
	}
	if p.pos != len(p.input) {
		return factstore.Fact{}, fmt.Errorf("unexpected trailing content at position %d", p.pos)
	}

	return factstore.Fact{Subject: fields[0], Relation: fields[1], Object: fields[2]}, nil
}

func (p *tupleParser) quotedString() (string, error) {
	p.skipSpace()
	quote := p.peek()
	if quote != '"' && quote != '\'' {
		return "", fmt.Errorf("expected quoted string at position %d", p.pos)
	}
	p.pos++

	var b strings.Builder
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		switch c {
		case '\\':
			if p.pos+1 >= len(p.input) {
				return "", fmt.Errorf("dangling escape at position %d", p.pos)
			}
			b.WriteByte(p.input[p.pos+1])
			p.pos += 2
		case quote:
			p.pos++
			return b.String(), nil
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return "", fmt.Errorf("unterminated string starting before position %d", p.pos)
}

func (p *tupleParser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

// peek returns the current byte or 0 at end of input.
func (p *tupleParser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}
