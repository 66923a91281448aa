package parser

// PreprocessEmitter substitutes constants, strips EQU, ORG and END lines and
// records the start address expression.
type PreprocessEmitter struct{}

func (e PreprocessEmitter) Process(context *Context, options Options) *Context {
	output := make([]Token, 0, len(context.Tokens))
	orgDefined := false

	for _, line := range readLines(context.Tokens) {
		switch {
		case isDirective(line, "EQU"):
			continue
		case isDirective(line, "ORG"):
			org, target := e.target(line, context.Equs)
			if len(target) == 0 {
				context.AddMessages(Errors.Expected("start address", line[len(line)-1]))
				continue
			}
			if orgDefined {
				context.AddMessages(Warnings.OrgRedefined(org))
			}
			context.Org = target
			orgDefined = true
			continue
		case isDirective(line, "END"):
			end, target := e.target(line, context.Equs)
			if len(target) == 0 {
				continue
			}
			if orgDefined {
				context.AddMessages(Warnings.EndTargetIgnored(end))
				continue
			}
			context.Org = target
			continue
		}

		output = append(output, e.substitute(line, context.Equs)...)
	}

	context.Tokens = output
	return context
}

// target returns the directive token and the expression following it.
func (e PreprocessEmitter) target(line []Token, equs map[string][]Token) (Token, []Token) {
	index := leadingLabels(line)
	directive := line[index]

	expression := make([]Token, 0)
	for _, token := range line[index+1:] {
		if token.Category == EOL {
			break
		}
		expression = append(expression, token)
	}
	return directive, e.substitute(expression, equs)
}

func (PreprocessEmitter) substitute(line []Token, equs map[string][]Token) []Token {
	definitions := 0
	if isInstruction(line) {
		definitions = leadingLabels(line)
	}

	output := make([]Token, 0, len(line))
	for i, token := range line {
		if value, ok := equs[token.Lexeme]; ok && token.Category == Label && i >= definitions {
			output = append(output, repositioned(value, token.Position)...)
			continue
		}
		output = append(output, token)
	}
	return output
}
