package warehouse

import (
	"errors"
	"fmt"
	"strings"
)

// ErrReadOnly is returned when a statement other than a read is submitted
// through the query tools.
var ErrReadOnly = errors.New("only read-only queries are permitted")

// ensureReadOnly rejects anything that is not a plain read. The decisive
// verb is found after skipping any CTE prologue, since engines accept
// writes behind one (`WITH x AS (...) DELETE ...`). The check is
// keyword-based; defense in depth is expected from the warehouse
// account's own grants.
func ensureReadOnly(query string) error {
	s := &sqlScanner{src: query}

	verb := mainStatementVerb(s)
	switch {
	case verb == "" && strings.TrimSpace(query) == "":
		return fmt.Errorf("%w: empty query", ErrReadOnly)
	case verb == "":
		return fmt.Errorf("%w: statement shape not recognized", ErrReadOnly)
	case verb != "SELECT":
		return fmt.Errorf("%w: statement runs %s", ErrReadOnly, verb)
	}

	// A second statement behind a semicolon would run with the same
	// connection rights as the first; only a trailing terminator is fine.
	for {
		switch s.next() {
		case "":
			return nil
		case ";":
			if s.next() != "" {
				return fmt.Errorf("%w: multiple statements", ErrReadOnly)
			}
			return nil
		}
	}
}

// mainStatementVerb returns the upper-cased keyword that decides what a
// statement does: its first token, or for WITH statements the token
// following the CTE prologue. Returns "" for malformed input.
func mainStatementVerb(s *sqlScanner) string {
	tok := s.next()
	if !strings.EqualFold(tok, "WITH") {
		return strings.ToUpper(tok)
	}

	tok = s.next()
	if strings.EqualFold(tok, "RECURSIVE") {
		tok = s.next()
	}
	// Each round consumes one `name [(columns)] AS [NOT] [MATERIALIZED]
	// (body)` block; the token after the last block is the verb.
	for {
		if !isSQLWord(tok) {
			return ""
		}
		tok = s.next()
		if tok == "(" {
			if !s.skipParens() {
				return ""
			}
			tok = s.next()
		}
		if !strings.EqualFold(tok, "AS") {
			return ""
		}
		tok = s.next()
		if strings.EqualFold(tok, "NOT") {
			tok = s.next()
		}
		if strings.EqualFold(tok, "MATERIALIZED") {
			tok = s.next()
		}
		if tok != "(" {
			return ""
		}
		if !s.skipParens() {
			return ""
		}
		tok = s.next()
		if tok != "," {
			return strings.ToUpper(tok)
		}
		tok = s.next()
	}
}

// isSQLWord reports whether tok can name a CTE: a bare or quoted
// identifier, but not punctuation or a string literal.
func isSQLWord(tok string) bool {
	if tok == "" {
		return false
	}
	switch tok[0] {
	case '(', ')', ',', ';', '\'':
		return false
	}
	return true
}

// sqlScanner splits a SQL statement into the coarse tokens the read-only
// guard needs: words, quoted literals, parentheses, commas and
// semicolons. Whitespace and comments are skipped; quoted literals are
// returned as single tokens so their contents cannot confuse the guard.
type sqlScanner struct {
	src string
	pos int
}

func (s *sqlScanner) next() string {
	s.skipSpaceAndComments()
	if s.pos >= len(s.src) {
		return ""
	}
	switch c := s.src[s.pos]; c {
	case '(', ')', ',', ';':
		s.pos++
		return string(c)
	case '\'', '"', '`':
		start := s.pos
		s.skipQuoted(c)
		return s.src[start:s.pos]
	default:
		start := s.pos
		for s.pos < len(s.src) && !isTokenBoundary(s.src[s.pos]) {
			s.pos++
		}
		return s.src[start:s.pos]
	}
}

func isTokenBoundary(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '(', ')', ',', ';', '\'', '"', '`':
		return true
	}
	return false
}

func (s *sqlScanner) skipSpaceAndComments() {
	for s.pos < len(s.src) {
		switch c := s.src[s.pos]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			s.pos++
		case c == '-' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '-':
			for s.pos < len(s.src) && s.src[s.pos] != '\n' {
				s.pos++
			}
		case c == '/' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '*':
			end := strings.Index(s.src[s.pos+2:], "*/")
			if end < 0 {
				s.pos = len(s.src)
			} else {
				s.pos += end + 4
			}
		default:
			return
		}
	}
}

// skipQuoted consumes a quoted literal, honoring the doubled-quote escape.
func (s *sqlScanner) skipQuoted(q byte) {
	s.pos++
	for s.pos < len(s.src) {
		if s.src[s.pos] == q {
			if s.pos+1 < len(s.src) && s.src[s.pos+1] == q {
				s.pos += 2
				continue
			}
			s.pos++
			return
		}
		s.pos++
	}
}

// skipParens consumes tokens up to the parenthesis matching an already
// consumed opener. Reports whether the matching closer was found.
func (s *sqlScanner) skipParens() bool {
	depth := 1
	for {
		switch s.next() {
		case "":
			return false
		case "(":
			depth++
		case ")":
			depth--
			if depth == 0 {
				return true
			}
		}
	}
}
