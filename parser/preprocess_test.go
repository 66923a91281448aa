package parser_test

import (
	"reflect"
	"testing"

	"github.com/corewar/redcode/parser"
)

func TestPreprocessChainedConstants(t *testing.T) {
	result, loadFile := compile("a EQU b+1\nb EQU 2\nDAT a", parser.ICWS94Draft)
	validateResult(t, result, loadFile, "DAT.F #0, $3\n")
}

func TestPreprocessSubstitutesTokens(t *testing.T) {
	// constants are pasted in, not evaluated first
	result, loadFile := compile("a EQU 1+1\nDAT a*2", parser.ICWS94Draft)
	validateResult(t, result, loadFile, "DAT.F #0, $3\n")
}

func TestPreprocessMultipleNames(t *testing.T) {
	result, loadFile := compile("a b EQU 3\nDAT a, b", parser.ICWS94Draft)
	validateResult(t, result, loadFile, "DAT.F $3, $3\n")
}

func TestPreprocessConstantCanHoldModes(t *testing.T) {
	result, loadFile := compile("bomb EQU #0\nMOV bomb, @2", parser.ICWS94Draft)
	validateResult(t, result, loadFile, "MOV.AB #0, @2\n")
}

func TestPreprocessCycles(t *testing.T) {
	result, loadFile := compile("a EQU b\nb EQU a\nc EQU c+1\nDAT a, c", parser.ICWS94Draft)

	cyclic := messagesOfKind(result.Messages, parser.CyclicError)
	if len(cyclic) != 3 {
		t.Fatalf("Expected 3 cyclic errors, got %v", result.Messages)
	}
	expected := []string{
		"Circular reference in the definition of constant 'a'",
		"Circular reference in the definition of constant 'b'",
		"Circular reference in the definition of constant 'c'",
	}
	for i, text := range expected {
		if cyclic[i].Text != text {
			t.Errorf("Expected \"%s\", got \"%s\"", text, cyclic[i].Text)
		}
	}
	if loadFile != "DAT.F $0, $0\n" {
		t.Errorf("Expected cyclic constants to become 0, got %q", loadFile)
	}
}

func TestPreprocessDependsOnCycle(t *testing.T) {
	result, loadFile := compile("a EQU b\nb EQU b\nc EQU a+5\nDAT c", parser.ICWS94Draft)
	if len(messagesOfKind(result.Messages, parser.CyclicError)) != 1 {
		t.Errorf("Expected only b to be cyclic, got %v", result.Messages)
	}
	if loadFile != "DAT.F #0, $5\n" {
		t.Errorf("Unexpected load file %q", loadFile)
	}
}

func TestPreprocessDuplicateConstant(t *testing.T) {
	result, loadFile := compile("a EQU 1\na EQU 2\nDAT a", parser.ICWS94Draft)
	duplicate := messagesOfKind(result.Messages, parser.DuplicateError)
	if len(duplicate) != 1 {
		t.Fatalf("Expected 1 duplicate error, got %v", result.Messages)
	}
	if duplicate[0].Position.Line != 2 {
		t.Errorf("Expected the second definition to be reported, got line %d", duplicate[0].Position.Line)
	}
	if loadFile != "DAT.F #0, $1\n" {
		t.Errorf("Expected the original definition to be used, got %q", loadFile)
	}
}

func TestPreprocessMissingName(t *testing.T) {
	result, _ := compile("EQU 3\nMOV 0, 1", parser.ICWS94Draft)
	if len(result.Messages) != 1 || result.Messages[0].Text != "Expected a label before EQU" {
		t.Errorf("Expected a missing name error, got %v", result.Messages)
	}
}

func TestPreprocessKeepsLabelDefinitions(t *testing.T) {
	result, loadFile := compile("dist EQU 2\ndist JMP dist", parser.ICWS94Draft)
	if len(messagesOfKind(result.Messages, parser.UndefinedError)) != 0 {
		t.Errorf("Expected no undefined labels, got %v", result.Messages)
	}
	if loadFile != "JMP.B $2, $0\n" {
		t.Errorf("Expected the reference to use the constant, got %q", loadFile)
	}
}

func TestPreprocessAnalyserOrder(t *testing.T) {
	context := parser.NewContext()
	context.Equs["first"] = []parser.Token{{Category: parser.Label, Lexeme: "second"}}
	context.Equs["second"] = []parser.Token{
		{Category: parser.Label, Lexeme: "third"},
		{Category: parser.Maths, Lexeme: "*"},
		{Category: parser.Number, Lexeme: "2"},
	}
	context.Equs["third"] = []parser.Token{{Category: parser.Number, Lexeme: "7"}}

	actual := parser.PreprocessAnalyser{}.Process(context, parser.DefaultOptions)
	if len(actual.Messages) != 0 {
		t.Fatalf("Expected no messages, got %v", actual.Messages)
	}
	expectLexemes(t, actual.Equs["first"], "7", "*", "2")
	expectLexemes(t, actual.Equs["second"], "7", "*", "2")
	expectLexemes(t, actual.Equs["third"], "7")
}

func runPasses(document string, passes ...parser.Pass) []parser.Token {
	context := parser.Scanner{}.Scan(document, parser.DefaultOptions)
	for _, pass := range passes {
		context = pass.Process(context, parser.DefaultOptions)
	}
	return context.Tokens
}

func TestPreprocessIgnoresCommentPlacement(t *testing.T) {
	document := "; constants\nx EQU 5 ; five\ny EQU x+1 ; derived\n\nMOV x, y ; copy\nDAT y"

	filteredFirst := runPasses(document,
		parser.Filter{},
		parser.PreprocessCollector{},
		parser.PreprocessAnalyser{},
		parser.PreprocessEmitter{},
	)
	filteredLast := runPasses(document,
		parser.PreprocessCollector{},
		parser.PreprocessAnalyser{},
		parser.PreprocessEmitter{},
		parser.Filter{},
	)

	if !reflect.DeepEqual(filteredFirst, filteredLast) {
		t.Errorf("Expected the same tokens in both orders, got %v and %v", filteredFirst, filteredLast)
	}
	expectLexemes(t, only(filteredFirst, parser.Number), "5", "5", "1", "5", "1")
	if comments := only(filteredLast, parser.Comment); len(comments) != 0 {
		t.Errorf("Expected no comments, got %v", comments)
	}
}
