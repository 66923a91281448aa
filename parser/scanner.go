package parser

import (
	"strings"
)

type Scanner struct{}

// Scan splits the document into tokens following the lexical rules of the
// selected standard. Every line, including the last, ends with an EOL token.
func (Scanner) Scan(document string, options Options) *Context {
	context := NewContext()

	lines := strings.Split(document, "\n")
	for i, line := range lines {
		s := lineScanner{
			line:     strings.TrimSuffix(line, "\r"),
			number:   i + 1,
			standard: options.Standard,
			caps:     capabilitiesOf(options.Standard),
			tokens:   make([]Token, 0),
		}
		s.scan()
		context.Tokens = append(context.Tokens, s.tokens...)
	}

	return context
}

type lineScanner struct {
	line     string
	number   int
	pos      int
	standard Standard
	caps     capabilities
	tokens   []Token
}

func (s *lineScanner) scan() {
	for s.pos < len(s.line) {
		ch := s.line[s.pos]
		switch {
		case isWhitespace(ch):
			s.pos++
		case ch == ';':
			s.emit(Comment, s.line[s.pos:], s.pos)
			s.pos = len(s.line)
		case ch == ',':
			s.emit(Comma, ",", s.pos)
			s.pos++
		case ch == '.':
			s.scanModifier()
		case isDigit(ch):
			s.scanNumber()
		case isIdentifierStart(ch):
			s.scanIdentifier()
		case ch == '*' && s.caps.modes["*"] && !s.previousEndsOperand():
			s.emit(Mode, "*", s.pos)
			s.pos++
		case ch != '*' && s.caps.modes[string(ch)]:
			s.emit(Mode, string(ch), s.pos)
			s.pos++
		case s.caps.maths[string(ch)]:
			s.scanMaths()
		default:
			s.scanUnknown()
		}
	}

	s.emit(EOL, "\n", len(s.line))
}

func (s *lineScanner) emit(category TokenCategory, lexeme string, index int) {
	s.tokens = append(s.tokens, Token{
		Category: category,
		Lexeme:   lexeme,
		Position: Position{Line: s.number, Char: index + 1},
	})
}

// previousEndsOperand reports whether the last token on this line completes
// an operand value, which makes a following '*' a multiplication.
func (s *lineScanner) previousEndsOperand() bool {
	if len(s.tokens) == 0 {
		return false
	}
	previous := s.tokens[len(s.tokens)-1]
	switch previous.Category {
	case Number, Label:
		return true
	case Maths:
		return previous.Lexeme == ")"
	}
	return false
}

func (s *lineScanner) scanModifier() {
	if s.caps.modifiers {
		rest := s.line[s.pos+1:]
		for _, name := range modifierNames {
			if len(rest) < len(name) || !strings.EqualFold(rest[:len(name)], name) {
				continue
			}
			if len(rest) > len(name) && isIdentifierChar(rest[len(name)]) {
				continue
			}
			s.emit(Modifier, "."+name, s.pos)
			s.pos += len(name) + 1
			return
		}
	}
	s.scanUnknown()
}

func (s *lineScanner) scanNumber() {
	start := s.pos
	for s.pos < len(s.line) && isDigit(s.line[s.pos]) {
		s.pos++
	}
	s.emit(Number, s.line[start:s.pos], start)
}

func (s *lineScanner) scanIdentifier() {
	start := s.pos
	for s.pos < len(s.line) && isIdentifierChar(s.line[s.pos]) {
		s.pos++
	}
	word := s.line[start:s.pos]
	upper := strings.ToUpper(word)

	switch {
	case s.caps.opcodes[upper]:
		s.emit(Opcode, upper, start)
	case s.caps.preprocessor[upper]:
		s.emit(Preprocessor, upper, start)
	case s.caps.maxLabelChars > 0 && len(word) > s.caps.maxLabelChars:
		s.emit(Unknown, word, start)
	default:
		s.emit(Label, word, start)
	}
}

func (s *lineScanner) scanMaths() {
	operator := string(s.line[s.pos])

	if s.standard == ICWS88 {
		precededBySpace := s.pos == 0 || isWhitespace(s.line[s.pos-1])
		followedBySpace := s.pos+1 >= len(s.line) || isWhitespace(s.line[s.pos+1])

		if !precededBySpace && followedBySpace {
			s.emit(Unknown, operator, s.pos)
			s.pos++
			return
		}
		if precededBySpace && !followedBySpace {
			// a detached sign starts a new operand: "-1" becomes "0-1"
			s.emit(Number, "0", s.pos)
		}
	}

	s.emit(Maths, operator, s.pos)
	s.pos++
}

// scanUnknown glues the current character to everything up to the next
// separator so that one bad lexeme yields one diagnostic.
func (s *lineScanner) scanUnknown() {
	start := s.pos
	s.pos++
	for s.pos < len(s.line) {
		ch := s.line[s.pos]
		if isWhitespace(ch) || ch == ',' || ch == ';' {
			break
		}
		s.pos++
	}
	s.emit(Unknown, s.line[start:s.pos], start)
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentifierStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentifierChar(ch byte) bool {
	return isIdentifierStart(ch) || isDigit(ch)
}
