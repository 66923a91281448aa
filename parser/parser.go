package parser

import (
	"fmt"

	"github.com/corewar/redcode/util"
)

//go:generate mockgen -write_package_comment=false -package=parser_test -destination=mock_parser_test.go github.com/corewar/redcode/parser Lexer,Pass

// Lexer turns a document into the initial token stream.
type Lexer interface {
	Scan(document string, options Options) *Context
}

// Pass transforms the context produced by the previous stage. A pass must
// not stop the pipeline: problems are recorded as messages.
type Pass interface {
	Process(context *Context, options Options) *Context
}

type Parser struct {
	lexer  Lexer
	passes []Pass
}

func New(lexer Lexer, passes ...Pass) *Parser {
	return &Parser{
		lexer:  lexer,
		passes: passes,
	}
}

// NewParser returns a parser running the complete Redcode pipeline.
func NewParser() *Parser {
	return New(
		Scanner{},
		MetaDataCollector{},
		Filter{},
		ForPass{},
		PreprocessCollector{},
		PreprocessAnalyser{},
		PreprocessEmitter{},
		LabelCollector{},
		LabelEmitter{},
		MathsProcessor{},
		DefaultPass{},
		OrgPass{},
		SyntaxCheck{},
		IllegalCommandCheck{},
	)
}

func (p *Parser) Parse(document string, options Options) *ParseResult {
	options = options.withDefaults()

	context := p.lexer.Scan(document, options)
	util.Trace("parser: scanned", "standard", options.Standard.String(), "tokens", len(context.Tokens))

	for _, pass := range p.passes {
		context = pass.Process(context, options)
		util.Trace("parser: pass finished", "pass", fmt.Sprintf("%T", pass), "tokens", len(context.Tokens), "messages", len(context.Messages))
	}

	return &ParseResult{
		Tokens:   context.Tokens,
		Messages: context.Messages,
		MetaData: context.MetaData,
		Labels:   context.Labels,
		Start:    context.Start,
	}
}

// Compile parses a document with the default pipeline and renders its load file.
func Compile(document string, options Options) (*ParseResult, string) {
	result := NewParser().Parse(document, options)
	return result, LoadFileSerialiser{}.Serialise(result.Tokens)
}
