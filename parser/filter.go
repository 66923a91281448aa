package parser

// Filter drops comments, blank lines and everything after END.
type Filter struct{}

func (Filter) Process(context *Context, options Options) *Context {
	output := make([]Token, 0, len(context.Tokens))

	for _, line := range readLines(context.Tokens) {
		if isBlank(line) {
			continue
		}

		for _, token := range line {
			if token.Category != Comment {
				output = append(output, token)
			}
		}

		if isDirective(line, "END") {
			break
		}
	}

	context.Tokens = output
	return context
}
