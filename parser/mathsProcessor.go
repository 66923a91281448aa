package parser

import (
	"strconv"
)

// MathsProcessor folds every operand expression into a single Number.
type MathsProcessor struct{}

func (MathsProcessor) Process(context *Context, options Options) *Context {
	output := make([]Token, 0, len(context.Tokens))

	for _, line := range readLines(context.Tokens) {
		if !isInstruction(line) {
			output = append(output, line...)
			continue
		}

		stream := NewTokenStream(line, nil)
		for !stream.EOF() {
			next := stream.Peek()
			if !startsExpression(next) {
				output = append(output, stream.Read())
				continue
			}

			value := Expression{}.Parse(stream)
			output = append(output, Token{
				Category: Number,
				Lexeme:   strconv.Itoa(options.wrap(value)),
				Position: next.Position,
			})
		}
		context.AddMessages(stream.Messages...)
	}

	context.Tokens = output
	return context
}
