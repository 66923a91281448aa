package parser

import (
	"strconv"
)

// OrgPass resolves the start address recorded from ORG or END. Labels in the
// start expression are absolute addresses.
type OrgPass struct{}

func (OrgPass) Process(context *Context, options Options) *Context {
	options = options.withDefaults()
	lines := readLines(context.Tokens)

	instructions := make([][]Token, 0, len(lines))
	for _, line := range lines {
		if isInstruction(line) {
			instructions = append(instructions, line)
		}
	}

	context.Start = 0
	if len(context.Org) > 0 {
		expression := make([]Token, 0, len(context.Org))
		for _, token := range context.Org {
			if token.Category != Label {
				expression = append(expression, token)
				continue
			}
			address, ok := context.Labels[token.Lexeme]
			if !ok {
				context.AddMessages(Errors.UndefinedLabel(token))
			}
			expression = append(expression, Token{Category: Number, Lexeme: strconv.Itoa(address), Position: token.Position})
		}

		value, messages := Expression{}.Evaluate(expression)
		context.AddMessages(messages...)

		start := options.wrap(value)
		if len(instructions) > 0 && start >= len(instructions) {
			context.AddMessages(Errors.StartOutOfRange(start, len(instructions), context.Org[0].Position))
			start = 0
		}
		context.Start = start
	}

	if options.MaxLength > 0 && len(instructions) > options.MaxLength {
		first := instructions[options.MaxLength][0]
		context.AddMessages(Warnings.WarriorTooLong(len(instructions), options.MaxLength, first.Position))
	}

	return context
}
