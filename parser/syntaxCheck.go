package parser

var canonicalInstruction = []TokenCategory{Opcode, Modifier, Mode, Number, Comma, Mode, Number, EOL}

// SyntaxCheck reports the first token of each line that breaks the
// canonical instruction shape.
type SyntaxCheck struct{}

func (SyntaxCheck) Process(context *Context, options Options) *Context {
	for _, line := range readLines(context.Tokens) {
		for i, expected := range canonicalInstruction {
			if i >= len(line) {
				break
			}
			if line[i].Category == Unknown {
				context.AddMessages(Errors.UnknownToken(line[i]))
				break
			}
			if line[i].Category != expected {
				context.AddMessages(Errors.Expected(expected.String(), line[i]))
				break
			}
		}
	}
	return context
}

func isCanonical(line []Token) bool {
	if len(line) != len(canonicalInstruction) {
		return false
	}
	for i, expected := range canonicalInstruction {
		if line[i].Category != expected {
			return false
		}
	}
	return true
}
