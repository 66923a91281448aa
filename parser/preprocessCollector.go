package parser

// PreprocessCollector records "name EQU value" definitions without
// substituting anything.
type PreprocessCollector struct{}

func (PreprocessCollector) Process(context *Context, options Options) *Context {
	for _, line := range readLines(context.Tokens) {
		if !isDirective(line, "EQU") {
			continue
		}

		labels := leadingLabels(line)
		if labels == 0 {
			context.AddMessages(Errors.MissingConstantName(line[0]))
			continue
		}

		value := make([]Token, 0)
		for _, token := range line[labels+1:] {
			if token.Category == EOL || token.Category == Comment {
				break
			}
			value = append(value, token)
		}

		// "a b EQU 1" defines both names
		for _, name := range line[:labels] {
			if _, exists := context.Equs[name.Lexeme]; exists {
				context.AddMessages(Errors.DuplicateConstant(name))
				continue
			}
			context.Equs[name.Lexeme] = value
		}
	}

	return context
}
