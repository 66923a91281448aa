package parser

import (
	"strconv"
)

// Errors
type parseError struct{}

var Errors parseError

func (parseError) Expected(expected string, got Token) Message {
	return Message{
		Severity: Error,
		Kind:     SyntaxError,
		Text:     "Expected " + expected + ", got " + got.describe(),
		Position: got.Position,
	}
}

func (parseError) UnknownToken(token Token) Message {
	return Message{
		Severity: Error,
		Kind:     LexicalError,
		Text:     "Unrecognised token " + token.describe(),
		Position: token.Position,
	}
}

func (parseError) DuplicateLabel(label Token) Message {
	return Message{
		Severity: Error,
		Kind:     DuplicateError,
		Text:     "Redefinition of label '" + label.Lexeme + "', original definition will be used",
		Position: label.Position,
	}
}

func (parseError) DuplicateConstant(name Token) Message {
	return Message{
		Severity: Error,
		Kind:     DuplicateError,
		Text:     "Redefinition of constant '" + name.Lexeme + "', original definition will be used",
		Position: name.Position,
	}
}

func (parseError) MissingConstantName(equ Token) Message {
	return Message{
		Severity: Error,
		Kind:     SyntaxError,
		Text:     "Expected a label before EQU",
		Position: equ.Position,
	}
}

func (parseError) UndefinedLabel(label Token) Message {
	return Message{
		Severity: Error,
		Kind:     UndefinedError,
		Text:     "Unrecognised label '" + label.Lexeme + "'",
		Position: label.Position,
	}
}

func (parseError) CyclicConstant(name string, position Position) Message {
	return Message{
		Severity: Error,
		Kind:     CyclicError,
		Text:     "Circular reference in the definition of constant '" + name + "'",
		Position: position,
	}
}

func (parseError) DivideByZero(operator Token) Message {
	return Message{
		Severity: Error,
		Kind:     ArithmeticError,
		Text:     "Divide by zero is not allowed",
		Position: operator.Position,
	}
}

func (parseError) InvalidIterationCount(count int, position Position) Message {
	return Message{
		Severity: Error,
		Kind:     ArithmeticError,
		Text:     "FOR count must be a positive integer, got " + strconv.Itoa(count),
		Position: position,
	}
}

func (parseError) MissingRof(forToken Token) Message {
	return Message{
		Severity: Error,
		Kind:     SyntaxError,
		Text:     "Expected ROF to close FOR block",
		Position: forToken.Position,
	}
}

func (parseError) UnexpectedRof(rof Token) Message {
	return Message{
		Severity: Error,
		Kind:     SyntaxError,
		Text:     "ROF without a matching FOR",
		Position: rof.Position,
	}
}

func (parseError) ExpansionLimit(limit int, position Position) Message {
	return Message{
		Severity: Error,
		Kind:     ArithmeticError,
		Text:     "FOR expansion exceeds the limit of " + strconv.Itoa(limit) + " lines",
		Position: position,
	}
}

func (parseError) IllegalOpcode(opcode Token, standard Standard) Message {
	return Message{
		Severity: Error,
		Kind:     IllegalError,
		Text:     "Opcode '" + opcode.Lexeme + "' is not supported under the " + standard.String() + " standard",
		Position: opcode.Position,
	}
}

func (parseError) IllegalModifier(modifier Token, opcode string, standard Standard) Message {
	return Message{
		Severity: Error,
		Kind:     IllegalError,
		Text:     "Modifier '" + modifier.Lexeme + "' is not supported for " + opcode + " under the " + standard.String() + " standard",
		Position: modifier.Position,
	}
}

func (parseError) IllegalMode(mode Token, operand string, opcode string, standard Standard) Message {
	return Message{
		Severity: Error,
		Kind:     IllegalError,
		Text:     "Addressing mode '" + mode.Lexeme + "' is not allowed for the " + operand + " operand of " + opcode + " under the " + standard.String() + " standard",
		Position: mode.Position,
	}
}

func (parseError) StartOutOfRange(start, length int, position Position) Message {
	return Message{
		Severity: Error,
		Kind:     IllegalError,
		Text:     "Start address " + strconv.Itoa(start) + " is outside the warrior (" + strconv.Itoa(length) + " instructions)",
		Position: position,
	}
}

// Warnings
type parseWarning struct{}

var Warnings parseWarning

func (parseWarning) OrgRedefined(org Token) Message {
	return Message{
		Severity: Warning,
		Kind:     DuplicateError,
		Text:     "Redefinition of the start address, the last definition will be used",
		Position: org.Position,
	}
}

func (parseWarning) EndTargetIgnored(end Token) Message {
	return Message{
		Severity: Warning,
		Kind:     DuplicateError,
		Text:     "END start address ignored because ORG is already defined",
		Position: end.Position,
	}
}

func (parseWarning) WarriorTooLong(length, limit int, position Position) Message {
	return Message{
		Severity: Warning,
		Kind:     LimitWarning,
		Text:     "Warrior has " + strconv.Itoa(length) + " instructions, the limit is " + strconv.Itoa(limit),
		Position: position,
	}
}

func (parseWarning) OpcodeExpected(first, second Token) Message {
	return Message{
		Severity: Warning,
		Kind:     SyntaxError,
		Text:     "Expected an opcode after label '" + first.Lexeme + "', got label '" + second.Lexeme + "'",
		Position: first.Position,
	}
}
