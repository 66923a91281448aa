package parser

// readLines splits tokens into lines, each ending with its EOL token.
func readLines(tokens []Token) [][]Token {
	lines := make([][]Token, 0)
	stream := NewTokenStream(tokens, nil)
	for !stream.EOF() {
		lines = append(lines, stream.ReadToEOL())
	}
	return lines
}

func joinLines(lines [][]Token) []Token {
	tokens := make([]Token, 0)
	for _, line := range lines {
		tokens = append(tokens, line...)
	}
	return tokens
}

// leadingLabels counts the Label tokens at the start of a line.
func leadingLabels(line []Token) int {
	i := 0
	for i < len(line) && line[i].Category == Label {
		i++
	}
	return i
}

// keyword returns the first non-label token of a line.
func keyword(line []Token) (Token, bool) {
	i := leadingLabels(line)
	if i >= len(line) {
		return Token{}, false
	}
	return line[i], true
}

func isDirective(line []Token, name string) bool {
	token, ok := keyword(line)
	return ok && token.Category == Preprocessor && token.Lexeme == name
}

func isInstruction(line []Token) bool {
	token, ok := keyword(line)
	return ok && token.Category == Opcode
}

func isBlank(line []Token) bool {
	for _, token := range line {
		if token.Category != EOL && token.Category != Comment {
			return false
		}
	}
	return true
}

// repositioned copies tokens, moving them all to position.
func repositioned(tokens []Token, position Position) []Token {
	moved := make([]Token, len(tokens))
	for i, token := range tokens {
		token.Position = position
		moved[i] = token
	}
	return moved
}
