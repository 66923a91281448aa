package parser

import (
	"strconv"
)

// ForPass expands "[counter] FOR count ... ROF" blocks. Inside a block the
// counter label is replaced by the 1-based iteration number.
type ForPass struct{}

func (p ForPass) Process(context *Context, options Options) *Context {
	options = options.withDefaults()
	lines := readLines(context.Tokens)
	constants := numericConstants(lines)
	limitReported := false

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if isDirective(line, "ROF") {
			rof, _ := keyword(line)
			context.AddMessages(Errors.UnexpectedRof(rof))
			lines = append(lines[:i], lines[i+1:]...)
			i--
			continue
		}
		if !isDirective(line, "FOR") {
			continue
		}

		forToken, _ := keyword(line)
		end := matchingRof(lines, i)
		bodyEnd := end
		if end < 0 {
			context.AddMessages(Errors.MissingRof(forToken))
			end = len(lines) - 1
			bodyEnd = len(lines)
		}
		body := lines[i+1 : bodyEnd]

		count := p.count(line, constants, context)
		expansion := make([][]Token, 0)
		if count > 0 && len(body) > 0 {
			// compared by division so huge counts cannot overflow
			remaining := options.MaxExpansion - (len(lines) - (end - i + 1))
			if count > remaining/len(body) {
				if !limitReported {
					context.AddMessages(Errors.ExpansionLimit(options.MaxExpansion, forToken.Position))
					limitReported = true
				}
			} else {
				counter := ""
				if n := leadingLabels(line); n > 0 {
					counter = line[n-1].Lexeme
				}
				for iteration := 1; iteration <= count; iteration++ {
					for _, bodyLine := range body {
						expansion = append(expansion, substituteCounter(bodyLine, counter, iteration))
					}
				}
			}
		}

		// the expansion is scanned again so nested blocks expand once per copy
		remainder := lines[end+1:]
		replaced := make([][]Token, 0, i+len(expansion)+len(remainder))
		replaced = append(replaced, lines[:i]...)
		replaced = append(replaced, expansion...)
		replaced = append(replaced, remainder...)
		lines = replaced
		i--
	}

	context.Tokens = joinLines(lines)
	return context
}

func (ForPass) count(line []Token, constants map[string][]Token, context *Context) int {
	forIndex := leadingLabels(line)
	expression := make([]Token, 0)
	for _, token := range line[forIndex+1:] {
		if token.Category == Label {
			if value, ok := constants[token.Lexeme]; ok {
				expression = append(expression, repositioned(value, token.Position)...)
				continue
			}
			context.AddMessages(Errors.UndefinedLabel(token))
			expression = append(expression, Token{Category: Number, Lexeme: "0", Position: token.Position})
			continue
		}
		expression = append(expression, token)
	}

	count, messages := Expression{}.Evaluate(expression)
	context.AddMessages(messages...)
	if count <= 0 {
		context.AddMessages(Errors.InvalidIterationCount(count, line[forIndex].Position))
		return 0
	}
	return count
}

// matchingRof returns the index of the ROF closing the FOR at start, or -1.
func matchingRof(lines [][]Token, start int) int {
	depth := 0
	for i := start; i < len(lines); i++ {
		switch {
		case isDirective(lines[i], "FOR"):
			depth++
		case isDirective(lines[i], "ROF"):
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func substituteCounter(line []Token, counter string, iteration int) []Token {
	copied := make([]Token, len(line))
	for i, token := range line {
		if counter != "" && token.Category == Label && token.Lexeme == counter {
			token = Token{Category: Number, Lexeme: strconv.Itoa(iteration), Position: token.Position}
		}
		copied[i] = token
	}
	return copied
}

// numericConstants collects "name EQU expr" definitions made only of numbers
// and operators, which are the only constants usable as FOR counts.
func numericConstants(lines [][]Token) map[string][]Token {
	constants := make(map[string][]Token)
	for _, line := range lines {
		if len(line) < 3 || line[0].Category != Label || !isDirective(line[1:], "EQU") {
			continue
		}
		value := make([]Token, 0)
		numeric := true
		for _, token := range line[2:] {
			if token.Category == EOL {
				break
			}
			if token.Category != Number && token.Category != Maths {
				numeric = false
				break
			}
			value = append(value, token)
		}
		if _, exists := constants[line[0].Lexeme]; numeric && !exists && len(value) > 0 {
			constants[line[0].Lexeme] = value
		}
	}
	return constants
}
