package parser_test

import (
	"testing"

	"github.com/corewar/redcode/parser"
)

func TestSyntaxCheckReportsFirstBadToken(t *testing.T) {
	cases := map[string]string{
		"MOV 0 1":    "Expected ',', got '$'",
		"ADD 1, 2 ~": "Expected modifier, got '1'",
		"5":          "Expected opcode, got '5'",
		"MOV":        "Expected modifier, got end of line",
	}
	for document, text := range cases {
		result, _ := compile(document, parser.ICWS94Draft)
		syntax := messagesOfKind(result.Messages, parser.SyntaxError)
		if len(syntax) != 1 {
			t.Errorf("%q: expected 1 syntax error, got %v", document, result.Messages)
			continue
		}
		if syntax[0].Text != text {
			t.Errorf("%q: expected \"%s\", got \"%s\"", document, text, syntax[0].Text)
		}
	}
}

func TestSyntaxCheckOneMessagePerLine(t *testing.T) {
	result, _ := compile("~ ~ ~\nMOV 0, 1\n@ @", parser.ICWS94Draft)
	if len(result.Messages) != 2 {
		t.Fatalf("Expected 2 errors, got %v", result.Messages)
	}
	if result.Messages[0].Position.Line != 1 || result.Messages[1].Position.Line != 3 {
		t.Errorf("Expected errors on lines 1 and 3, got %v", result.Messages)
	}
	if result.Messages[0].Kind != parser.LexicalError || result.Messages[1].Kind != parser.SyntaxError {
		t.Errorf("Expected a lexical then a syntax error, got %v", result.Messages)
	}
}

func TestSyntaxCheckReportsUnknownTokens(t *testing.T) {
	cases := []struct {
		document string
		standard parser.Standard
		text     string
		position parser.Position
	}{
		{"MOV.AB 0, 1", parser.ICWS88, "Unrecognised token '.AB'", parser.Position{Line: 1, Char: 4}},
		{"MOV 0, 1\ntoolonglabel MOV 0, 1", parser.ICWS86, "Unrecognised token 'toolonglabel'", parser.Position{Line: 2, Char: 1}},
		{"MOV ~ 0, 1", parser.ICWS94Draft, "Unrecognised token '~'", parser.Position{Line: 1, Char: 5}},
	}
	for _, c := range cases {
		result, _ := compile(c.document, c.standard)
		if len(result.Messages) != 1 {
			t.Errorf("%q: expected 1 message, got %v", c.document, result.Messages)
			continue
		}
		message := result.Messages[0]
		if message.Kind != parser.LexicalError {
			t.Errorf("%q: expected a lexical error, got %s", c.document, message.Kind)
		}
		if message.Text != c.text {
			t.Errorf("%q: expected \"%s\", got \"%s\"", c.document, c.text, message.Text)
		}
		if message.Position != c.position {
			t.Errorf("%q: expected position %v, got %v", c.document, c.position, message.Position)
		}
	}
}

func TestIllegalModes88(t *testing.T) {
	cases := []struct {
		document string
		errors   int
	}{
		{"MOV 0, 1", 0},
		{"DAT 0, 1", 0},
		{"DAT <0, #1", 0},
		{"MOV #0, 1", 0},
		{"MOV 0, #1", 1},
		{"JMP #0", 1},
		{"DAT $0, $1", 2},
		{"SPL @0, #1", 0},
	}
	for _, c := range cases {
		result, _ := compile(c.document, parser.ICWS88)
		illegal := messagesOfKind(result.Messages, parser.IllegalError)
		if len(illegal) != c.errors {
			t.Errorf("%q: expected %d illegal mode errors, got %v", c.document, c.errors, result.Messages)
		}
		if len(illegal) != len(result.Messages) {
			t.Errorf("%q: expected only illegal mode errors, got %v", c.document, result.Messages)
		}
	}
}

func TestIllegalModesBefore94(t *testing.T) {
	for _, standard := range []parser.Standard{parser.ICWS86, parser.ICWS88} {
		result, _ := compile("MOV }0, *1", standard)
		if !result.Failed(false) {
			t.Errorf("Expected ICWS'94 modes to be rejected under %s", standard)
		}
	}
}

func TestIllegalOpcodes(t *testing.T) {
	cases := []struct {
		opcode   string
		standard parser.Standard
		legal    bool
	}{
		{"SEQ", parser.ICWS86, false},
		{"SNE", parser.ICWS86, false},
		{"NOP", parser.ICWS86, false},
		{"SEQ", parser.ICWS88, false},
		{"NOP", parser.ICWS88, false},
		{"SEQ", parser.ICWS94Draft, true},
		{"SNE", parser.ICWS94Draft, true},
		{"NOP", parser.ICWS94Draft, true},
	}
	for _, c := range cases {
		result, _ := compile(c.opcode+" 0, 1", c.standard)
		illegal := messagesOfKind(result.Messages, parser.IllegalError)
		if c.legal && len(illegal) != 0 {
			t.Errorf("%s under %s: expected no errors, got %v", c.opcode, c.standard, illegal)
		}
		if !c.legal && len(illegal) != 1 {
			t.Errorf("%s under %s: expected 1 error, got %v", c.opcode, c.standard, illegal)
		}
	}
}

func TestIllegalModifierBefore94(t *testing.T) {
	context := parser.NewContext()
	context.Tokens = []parser.Token{
		{Category: parser.Opcode, Lexeme: "MOV", Position: parser.Position{Line: 1, Char: 1}},
		{Category: parser.Modifier, Lexeme: ".AB", Position: parser.Position{Line: 1, Char: 4}},
		{Category: parser.Mode, Lexeme: "$", Position: parser.Position{Line: 1, Char: 8}},
		{Category: parser.Number, Lexeme: "0", Position: parser.Position{Line: 1, Char: 9}},
		{Category: parser.Comma, Lexeme: ",", Position: parser.Position{Line: 1, Char: 10}},
		{Category: parser.Mode, Lexeme: "$", Position: parser.Position{Line: 1, Char: 12}},
		{Category: parser.Number, Lexeme: "1", Position: parser.Position{Line: 1, Char: 13}},
		{Category: parser.EOL, Lexeme: "\n", Position: parser.Position{Line: 1, Char: 14}},
	}
	options := parser.DefaultOptions
	options.Standard = parser.ICWS88

	actual := parser.IllegalCommandCheck{}.Process(context, options)
	if len(actual.Messages) != 1 {
		t.Fatalf("Expected 1 message, got %v", actual.Messages)
	}
	if actual.Messages[0].Position.Char != 4 {
		t.Errorf("Expected the modifier to be reported, got char %d", actual.Messages[0].Position.Char)
	}
}

func TestModifiersAllowedUnder94(t *testing.T) {
	result, loadFile := compile("MOV.AB #0, 1\nADD.X $1, @2\nDJN.BA <1, >2", parser.ICWS94Draft)
	validateResult(t, result, loadFile, "MOV.AB #0, $1\nADD.X $1, @2\nDJN.BA <1, >2\n")
}
