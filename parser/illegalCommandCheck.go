package parser

// IllegalCommandCheck rejects instructions the selected standard does not
// define: unknown opcodes, disallowed addressing modes and, since ICWS'86 and
// ICWS'88 have no modifiers, anything other than the implied modifier.
type IllegalCommandCheck struct{}

func (IllegalCommandCheck) Process(context *Context, options Options) *Context {
	caps := capabilitiesOf(options.Standard)

	for _, line := range readLines(context.Tokens) {
		if !isCanonical(line) {
			continue
		}

		opcode, modifier, aMode, bMode := line[0], line[1], line[2], line[5]

		if !caps.legalOpcodes[opcode.Lexeme] {
			context.AddMessages(Errors.IllegalOpcode(opcode, options.Standard))
			continue
		}

		if !caps.modes[aMode.Lexeme] || (caps.aModes != nil && !caps.aModes[opcode.Lexeme][aMode.Lexeme]) {
			context.AddMessages(Errors.IllegalMode(aMode, "A", opcode.Lexeme, options.Standard))
		}
		if !caps.modes[bMode.Lexeme] || (caps.bModes != nil && !caps.bModes[opcode.Lexeme][bMode.Lexeme]) {
			context.AddMessages(Errors.IllegalMode(bMode, "B", opcode.Lexeme, options.Standard))
		}

		if !caps.modifiers && modifier.Lexeme != defaultModifier(options.Standard, opcode.Lexeme, aMode.Lexeme, bMode.Lexeme) {
			context.AddMessages(Errors.IllegalModifier(modifier, opcode.Lexeme, options.Standard))
		}
	}

	return context
}
