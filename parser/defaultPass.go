package parser

// DefaultPass fills in omitted modes, operands, commas and modifiers so that
// every instruction ends up in the canonical
// "OPCODE.MODIFIER MODE NUMBER, MODE NUMBER" shape. Lines it cannot make
// sense of are left for SyntaxCheck to report.
type DefaultPass struct{}

type instructionParts struct {
	labels   []Token
	opcode   Token
	modifier *Token
	aMode    *Token
	aNumber  *Token
	comma    *Token
	bMode    *Token
	bNumber  *Token
	tail     []Token // trailing comment and EOL
}

func (p DefaultPass) Process(context *Context, options Options) *Context {
	output := make([]Token, 0, len(context.Tokens))

	for _, line := range readLines(context.Tokens) {
		parts, ok := parseInstruction(line)
		if !ok {
			output = append(output, line...)
			continue
		}
		output = append(output, p.complete(parts, options.Standard)...)
	}

	context.Tokens = output
	return context
}

func (DefaultPass) complete(parts instructionParts, standard Standard) []Token {
	isDat := parts.opcode.Lexeme == "DAT"
	defaultMode := "$"
	if isDat && standard != ICWS94Draft {
		defaultMode = "#"
	}

	terminator := parts.opcode.Position
	if len(parts.tail) > 0 {
		terminator = parts.tail[0].Position
	}

	a := []Token{modeOrDefault(parts.aMode, defaultMode, parts.aNumber.Position), *parts.aNumber}
	var b []Token
	var comma *Token

	switch {
	case parts.bNumber == nil && isDat:
		// a lone DAT operand is the B field
		b = a
		a = []Token{
			{Category: Mode, Lexeme: "#", Position: b[0].Position},
			{Category: Number, Lexeme: "0", Position: b[1].Position},
		}
		comma = &Token{Category: Comma, Lexeme: ",", Position: b[1].Position}
	case parts.bNumber == nil:
		b = []Token{
			{Category: Mode, Lexeme: "$", Position: terminator},
			{Category: Number, Lexeme: "0", Position: terminator},
		}
		comma = &Token{Category: Comma, Lexeme: ",", Position: terminator}
	default:
		b = []Token{modeOrDefault(parts.bMode, defaultMode, parts.bNumber.Position), *parts.bNumber}
		comma = parts.comma
		if comma == nil && standard != ICWS94Draft {
			comma = &Token{Category: Comma, Lexeme: ",", Position: b[0].Position}
		}
	}

	modifier := parts.modifier
	if modifier == nil {
		modifier = &Token{
			Category: Modifier,
			Lexeme:   defaultModifier(standard, parts.opcode.Lexeme, a[0].Lexeme, b[0].Lexeme),
			Position: parts.opcode.Position,
		}
	}

	output := make([]Token, 0, len(parts.labels)+8+len(parts.tail))
	output = append(output, parts.labels...)
	output = append(output, parts.opcode, *modifier)
	output = append(output, a...)
	if comma != nil {
		output = append(output, *comma)
	}
	output = append(output, b...)
	return append(output, parts.tail...)
}

func modeOrDefault(mode *Token, defaultMode string, position Position) Token {
	if mode != nil {
		return *mode
	}
	return Token{Category: Mode, Lexeme: defaultMode, Position: position}
}

// defaultModifier derives the modifier an instruction gets when none is written.
func defaultModifier(standard Standard, opcode, aMode, bMode string) string {
	switch opcode {
	case "DAT":
		return ".F"
	case "JMP", "JMZ", "JMN", "DJN", "SPL", "NOP":
		return ".B"
	}

	if aMode == "#" {
		return ".AB"
	}
	if bMode == "#" {
		return ".B"
	}

	switch opcode {
	case "MOV", "CMP", "SEQ", "SNE":
		return ".I"
	case "SLT":
		return ".B"
	case "ADD", "SUB", "MUL", "DIV", "MOD":
		if standard == ICWS86 {
			return ".B"
		}
		return ".F"
	}
	return ".F"
}

// parseInstruction loosely matches
// [labels] OPCODE [MODIFIER] [MODE] NUMBER [,] [[MODE] NUMBER] [COMMENT] EOL.
func parseInstruction(line []Token) (instructionParts, bool) {
	parts := instructionParts{}
	i := leadingLabels(line)
	parts.labels = line[:i]

	if i >= len(line) || line[i].Category != Opcode {
		return parts, false
	}
	parts.opcode = line[i]
	i++

	take := func(category TokenCategory) *Token {
		if i < len(line) && line[i].Category == category {
			token := line[i]
			i++
			return &token
		}
		return nil
	}

	parts.modifier = take(Modifier)
	parts.aMode = take(Mode)
	parts.aNumber = take(Number)
	parts.comma = take(Comma)
	parts.bMode = take(Mode)
	parts.bNumber = take(Number)
	parts.tail = line[i:]

	for _, token := range parts.tail {
		if token.Category != Comment && token.Category != EOL {
			return parts, false
		}
	}

	if parts.aNumber == nil {
		return parts, false
	}
	if (parts.bMode != nil || parts.comma != nil) && parts.bNumber == nil {
		return parts, false
	}
	return parts, true
}
