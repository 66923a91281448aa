package parser

import (
	"strings"
)

// MetaDataCollector reads the ;name, ;author and ;strategy comments.
type MetaDataCollector struct{}

func (MetaDataCollector) Process(context *Context, options Options) *Context {
	strategy := make([]string, 0)

	for _, token := range context.Tokens {
		if token.Category != Comment {
			continue
		}

		text := strings.TrimSpace(strings.TrimPrefix(token.Lexeme, ";"))
		directive, value, _ := strings.Cut(text, " ")
		value = strings.TrimSpace(value)

		switch strings.ToLower(directive) {
		case "name":
			context.MetaData.Name = value
		case "author":
			context.MetaData.Author = value
		case "strategy":
			strategy = append(strategy, value)
		}
	}

	if len(strategy) > 0 {
		context.MetaData.Strategy = strings.Join(strategy, "\n")
	}
	return context
}
