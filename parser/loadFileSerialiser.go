package parser

import (
	"strconv"
	"strings"
)

// LoadFileSerialiser renders tokens as load file text, one instruction per line.
type LoadFileSerialiser struct{}

func (s LoadFileSerialiser) Serialise(tokens []Token) string {
	builder := strings.Builder{}
	for _, line := range splitLines(tokens) {
		builder.WriteString(s.Line(line))
		builder.WriteByte('\n')
	}
	return builder.String()
}

// SerialiseLoadFile prefixes the instructions with their ORG start address.
func (s LoadFileSerialiser) SerialiseLoadFile(loadFile LoadFile) string {
	builder := strings.Builder{}
	builder.WriteString("ORG " + strconv.Itoa(loadFile.Start) + "\n")
	for _, line := range loadFile.Instructions {
		builder.WriteString(s.Line(line))
		builder.WriteByte('\n')
	}
	return builder.String()
}

// Line renders a single instruction.
func (LoadFileSerialiser) Line(line []Token) string {
	builder := strings.Builder{}
	var previous *Token
	for i := range line {
		token := line[i]
		switch token.Category {
		case EOL, Comment:
			continue
		case Comma:
			builder.WriteString(", ")
			previous = &line[i]
			continue
		}

		if previous != nil && separated(*previous, token) {
			builder.WriteByte(' ')
		}
		builder.WriteString(token.Lexeme)
		previous = &line[i]
	}
	return builder.String()
}

// separated reports whether a space goes between two adjacent tokens.
func separated(previous, next Token) bool {
	switch {
	case previous.Category == Comma:
		return false
	case previous.Category == Opcode && next.Category == Modifier:
		return false
	case previous.Category == Mode && next.Category == Number:
		return false
	}
	return true
}
