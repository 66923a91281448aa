package parser

import (
	"strconv"
)

type mathsOperator struct {
	name       string
	precedence int
	function   func(left, right int) (int, bool)
}

var mathsOperators = map[string]mathsOperator{
	"+": {
		name:       "add",
		precedence: 1,
		function: func(left, right int) (int, bool) {
			return left + right, true
		},
	},
	"-": {
		name:       "subtract",
		precedence: 1,
		function: func(left, right int) (int, bool) {
			return left - right, true
		},
	},
	"*": {
		name:       "multiply",
		precedence: 2,
		function: func(left, right int) (int, bool) {
			return left * right, true
		},
	},
	"/": {
		name:       "divide",
		precedence: 2,
		function: func(left, right int) (int, bool) {
			if right == 0 {
				return 0, false
			}
			return left / right, true
		},
	},
	"%": {
		name:       "modulo",
		precedence: 2,
		function: func(left, right int) (int, bool) {
			if right == 0 {
				return 0, false
			}
			return left % right, true
		},
	},
}

// Expression evaluates integer arithmetic over Number and Maths tokens.
// Operators of equal precedence associate to the left and division
// truncates toward zero.
type Expression struct{}

// Parse consumes one expression from the stream and returns its value.
// Parsing stops at the first token that cannot continue the expression.
// Problems are recorded on the stream and evaluate as 0.
func (e Expression) Parse(stream *TokenStream) int {
	return e.parseBinary(stream, 1)
}

// Evaluate parses tokens as a single expression; anything left over is an error.
func (e Expression) Evaluate(tokens []Token) (int, []Message) {
	stream := NewTokenStream(tokens, nil)
	value := e.Parse(stream)

	next := stream.Peek()
	if next.Category != EOL {
		stream.Expected("end of expression", next)
	}
	return value, stream.Messages
}

// startsExpression reports whether token can begin an expression.
func startsExpression(token Token) bool {
	if token.Category == Number {
		return true
	}
	return token.Category == Maths && (token.Lexeme == "(" || token.Lexeme == "-" || token.Lexeme == "+")
}

func (e Expression) parseBinary(stream *TokenStream, minPrecedence int) int {
	left := e.parseUnary(stream)

	for {
		next := stream.Peek()
		if next.Category != Maths {
			return left
		}
		operator, ok := mathsOperators[next.Lexeme]
		if !ok || operator.precedence < minPrecedence {
			return left
		}
		stream.Read()

		right := e.parseBinary(stream, operator.precedence+1)
		value, ok := operator.function(left, right)
		if !ok {
			stream.Error(Errors.DivideByZero(next))
		}
		left = value
	}
}

func (e Expression) parseUnary(stream *TokenStream) int {
	next := stream.Peek()
	if next.Category == Maths && (next.Lexeme == "-" || next.Lexeme == "+") {
		stream.Read()
		value := e.parseUnary(stream)
		if next.Lexeme == "-" {
			return -value
		}
		return value
	}
	return e.parsePrimary(stream)
}

func (e Expression) parsePrimary(stream *TokenStream) int {
	next := stream.Peek()

	switch {
	case next.Category == Number:
		stream.Read()
		value, err := strconv.Atoi(next.Lexeme)
		if err != nil {
			stream.Expected("number", next)
			return 0
		}
		return value
	case next.Category == Maths && next.Lexeme == "(":
		stream.Read()
		value := e.parseBinary(stream, 1)
		if closing := stream.Peek(); closing.Category == Maths && closing.Lexeme == ")" {
			stream.Read()
		} else {
			stream.Expected("')'", closing)
		}
		return value
	}

	stream.Expected("number", next)
	return 0
}
