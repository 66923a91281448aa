package languageServer

import (
	"context"
	"fmt"
	"strings"

	"github.com/corewar/redcode/parser"
	"github.com/sourcegraph/jsonrpc2"
)

type hoverInfoFormatsType struct {
	labelDefinition string
	labelReference  string
	instruction     string
	expansion       string
	expandedLine    string
}

var hoverInfoFormats = hoverInfoFormatsType{
	labelDefinition: "**%s**\n\nLabel at address %d",
	labelReference:  "**%s**\n\nLabel at address %d, offset %d from this instruction",
	instruction:     "```redcode\n%s\n```\nAddress %d",
	expansion:       "Expands to %d instructions\n\n```redcode\n%s```",
	expandedLine:    "%-4d %s\n",
}

func (h *handler) hoverRequest(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := TextDocumentPositionParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}

	doc, ok := h.documents[string(decodedParams.TextDocument.URI)]
	if !ok || doc.lastResult == nil {
		conn.Reply(ctx, req.ID, nil)
		return
	}

	text, ok := evaluateHover(doc.Text, doc.lastResult, decodedParams.Position, h.options)
	if !ok {
		conn.Reply(ctx, req.ID, nil)
		return
	}

	conn.Reply(ctx, req.ID, Hover{
		Contents: MarkupContent{
			Kind:  "markdown",
			Value: text,
		},
	})
}

// evaluateHover returns markdown describing the label or instruction at
// position, and false when there is nothing to show.
func evaluateHover(text string, result *parser.ParseResult, position TextPosition, options parser.Options) (string, bool) {
	lines := splitDocument(text)
	if position.Line < 0 || position.Line >= len(lines) {
		return "", false
	}
	line := lines[position.Line]

	// instructions generated from this source line, keyed by address
	addresses := make([]int, 0)
	rendered := make([]string, 0)
	for address, instruction := range result.LoadFile().Instructions {
		if instruction[0].Position.Line == position.Line+1 {
			addresses = append(addresses, address)
			rendered = append(rendered, parser.LoadFileSerialiser{}.Line(instruction))
		}
	}

	word, start := wordAt(line, position.Char)
	if labelAddress, isLabel := result.Labels[word]; isLabel {
		if start == firstWord(line) || len(addresses) == 0 {
			return fmt.Sprintf(hoverInfoFormats.labelDefinition, word, labelAddress), true
		}
		offset := options.CoreSize
		if offset <= 0 {
			offset = parser.DefaultOptions.CoreSize
		}
		offset = ((labelAddress-addresses[0])%offset + offset) % offset
		return fmt.Sprintf(hoverInfoFormats.labelReference, word, labelAddress, offset), true
	}

	switch len(addresses) {
	case 0:
		return "", false
	case 1:
		return fmt.Sprintf(hoverInfoFormats.instruction, rendered[0], addresses[0]), true
	}

	var builder strings.Builder
	for i := range addresses {
		builder.WriteString(fmt.Sprintf(hoverInfoFormats.expandedLine, addresses[i], rendered[i]))
	}
	return fmt.Sprintf(hoverInfoFormats.expansion, len(addresses), builder.String()), true
}

func isWordChar(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')
}

// wordAt returns the identifier under char and the index it starts at.
func wordAt(line string, char int) (string, int) {
	if char < 0 || char > len(line) {
		return "", -1
	}
	start := char
	for start > 0 && isWordChar(line[start-1]) {
		start--
	}
	end := char
	for end < len(line) && isWordChar(line[end]) {
		end++
	}
	return line[start:end], start
}

func firstWord(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}
