package parser_test

import (
	"testing"

	"github.com/corewar/redcode/parser"
)

func evaluate(expression string) (int, []parser.Message) {
	return parser.Expression{}.Evaluate(scan(expression, parser.ICWS94Draft))
}

func TestExpressionValues(t *testing.T) {
	cases := map[string]int{
		"7":         7,
		"1+2*3":     7,
		"(1+2)*3":   9,
		"10-4-3":    3,
		"7/2":       3,
		"-7/2":      -3,
		"7%3":       1,
		"-5":        -5,
		"+5":        5,
		"2*-3":      -6,
		"((2))":     2,
		"100/10/5":  2,
		"1 + 2 * 3": 7,
	}
	for expression, expected := range cases {
		actual, messages := evaluate(expression)
		if len(messages) != 0 {
			t.Errorf("%s: expected no messages, got %v", expression, messages)
			continue
		}
		if actual != expected {
			t.Errorf("%s: expected %d, got %d", expression, expected, actual)
		}
	}
}

func TestExpressionDivideByZero(t *testing.T) {
	for _, expression := range []string{"1/0", "5%(2-2)"} {
		_, messages := evaluate(expression)
		if len(messages) != 1 {
			t.Fatalf("%s: expected 1 message, got %v", expression, messages)
		}
		if messages[0].Kind != parser.ArithmeticError || messages[0].Severity != parser.Error {
			t.Errorf("%s: expected an arithmetic error, got %v", expression, messages[0])
		}
	}
}

func TestExpressionMalformed(t *testing.T) {
	cases := map[string]string{
		"(1+2": "Expected ')', got end of line",
		"1 2":  "Expected end of expression, got '2'",
		"1+":   "Expected number, got end of line",
	}
	for expression, text := range cases {
		_, messages := evaluate(expression)
		if len(messages) == 0 {
			t.Errorf("%s: expected a message", expression)
			continue
		}
		if messages[0].Text != text {
			t.Errorf("%s: expected \"%s\", got \"%s\"", expression, text, messages[0].Text)
		}
	}
}

func TestMathsProcessorWrapsIntoCore(t *testing.T) {
	result, loadFile := compile("MOV 1+2, -1\nADD #8000+3, 2*(3+4)", parser.ICWS94Draft)
	validateResult(t, result, loadFile, "MOV.I $3, $7999\nADD.AB #3, $14\n")

	options := parser.DefaultOptions
	options.CoreSize = 10
	result, loadFile = parser.Compile("MOV -1, 12", options)
	validateResult(t, result, loadFile, "MOV.I $9, $2\n")
}

func TestMathsProcessor88OperatorSpacing(t *testing.T) {
	result, loadFile := compile("MOV 0, -1", parser.ICWS88)
	validateResult(t, result, loadFile, "MOV.I $0, $7999\n")

	result, _ = compile("MOV 0, 1+ 1", parser.ICWS88)
	if len(result.Messages) == 0 {
		t.Errorf("Expected a trailing operator to be rejected under ICWS'88")
	}
}
