package parser

import (
	"sort"
)

// PreprocessAnalyser expands constants used inside other constants and
// replaces circular definitions with 0.
type PreprocessAnalyser struct{}

const (
	unvisited = iota
	visiting
	visited
)

func (a PreprocessAnalyser) Process(context *Context, options Options) *Context {
	// sorted so that diagnostics come out in a stable order
	names := make([]string, 0, len(context.Equs))
	for name := range context.Equs {
		names = append(names, name)
	}
	sort.Strings(names)

	cyclic := a.findCycles(context.Equs, names)

	definitions := make(map[string][]Token, len(context.Equs))
	for _, name := range names {
		definitions[name] = context.Equs[name]
		if !cyclic[name] {
			continue
		}
		position := Position{Line: 1, Char: 1}
		if value := context.Equs[name]; len(value) > 0 {
			position = value[0].Position
		}
		context.AddMessages(Errors.CyclicConstant(name, position))
		definitions[name] = []Token{{Category: Number, Lexeme: "0", Position: position}}
	}

	expanded := make(map[string][]Token, len(definitions))
	var expand func(name string) []Token
	expand = func(name string) []Token {
		if value, ok := expanded[name]; ok {
			return value
		}
		value := make([]Token, 0, len(definitions[name]))
		for _, token := range definitions[name] {
			if _, isConstant := definitions[token.Lexeme]; token.Category == Label && isConstant {
				value = append(value, repositioned(expand(token.Lexeme), token.Position)...)
				continue
			}
			value = append(value, token)
		}
		expanded[name] = value
		return value
	}

	for _, name := range names {
		expand(name)
	}

	context.Equs = expanded
	return context
}

// findCycles returns every constant that takes part in a circular definition.
func (PreprocessAnalyser) findCycles(equs map[string][]Token, names []string) map[string]bool {
	state := make(map[string]int, len(equs))
	cyclic := make(map[string]bool)
	path := make([]string, 0)

	var visit func(name string)
	visit = func(name string) {
		switch state[name] {
		case visited:
			return
		case visiting:
			for i := len(path) - 1; i >= 0; i-- {
				cyclic[path[i]] = true
				if path[i] == name {
					break
				}
			}
			return
		}

		state[name] = visiting
		path = append(path, name)
		for _, token := range equs[name] {
			if _, isConstant := equs[token.Lexeme]; token.Category == Label && isConstant {
				visit(token.Lexeme)
			}
		}
		path = path[:len(path)-1]
		state[name] = visited
	}

	for _, name := range names {
		visit(name)
	}
	return cyclic
}
