package parser

import (
	"strconv"
)

// LabelEmitter removes label definitions and rewrites label references as
// offsets relative to the referencing instruction.
type LabelEmitter struct{}

func (LabelEmitter) Process(context *Context, options Options) *Context {
	output := make([]Token, 0, len(context.Tokens))
	address := 0

	for _, line := range readLines(context.Tokens) {
		rest := line[leadingLabels(line):]
		if len(rest) == 0 || (len(rest) == 1 && rest[0].Category == EOL) {
			continue
		}

		for _, token := range rest {
			if token.Category != Label {
				output = append(output, token)
				continue
			}

			offset := 0
			if definition, ok := context.Labels[token.Lexeme]; ok {
				offset = options.wrap(definition - address)
			} else {
				context.AddMessages(Errors.UndefinedLabel(token))
			}
			output = append(output, Token{
				Category: Number,
				Lexeme:   strconv.Itoa(offset),
				Position: token.Position,
			})
		}

		if isInstruction(line) {
			address++
		}
	}

	context.Tokens = output
	return context
}
