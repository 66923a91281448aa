package languageServer

import (
	"context"
	"strings"

	"github.com/corewar/redcode/parser"
	"github.com/corewar/redcode/util"
	"github.com/sourcegraph/jsonrpc2"
)

// compileAndReportDiagnostics parses an open document and keeps the result for hovers.
func (h *handler) compileAndReportDiagnostics(uri DocumentUri) []Diagnostic {
	doc, ok := h.documents[string(uri)]
	if !ok {
		return make([]Diagnostic, 0)
	}

	result := parser.NewParser().Parse(doc.Text, h.options)
	doc.lastResult = result
	h.documents[string(uri)] = doc
	return toDiagnostics(doc.Text, result.Messages)
}

func (h *handler) documentOpenNotification(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DidOpenTextDocumentParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}

	h.documents[string(decodedParams.TextDocument.URI)] = decodedParams.TextDocument

	diagnostics := h.compileAndReportDiagnostics(decodedParams.TextDocument.URI)
	conn.Notify(ctx, "textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         decodedParams.TextDocument.URI,
		Version:     decodedParams.TextDocument.Version,
		Diagnostics: diagnostics,
	})
}

func (h *handler) documentCloseNotification(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DidCloseTextDocumentParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}

	delete(h.documents, string(decodedParams.TextDocument.URI))

	// clear whatever the client is still showing
	conn.Notify(ctx, "textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         decodedParams.TextDocument.URI,
		Diagnostics: make([]Diagnostic, 0),
	})
}

func (h *handler) documentChangeNotification(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DidChangeTextDocumentParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}
	if len(decodedParams.ContentChanges) == 0 {
		return
	}

	uri := string(decodedParams.TextDocument.URI)
	doc, ok := h.documents[uri]
	if !ok {
		doc = TextDocumentItem{URI: decodedParams.TextDocument.URI, LanguageID: "redcode"}
	}
	doc.Text = decodedParams.ContentChanges[len(decodedParams.ContentChanges)-1].Text
	doc.Version = decodedParams.TextDocument.Version
	h.documents[uri] = doc

	diagnostics := h.compileAndReportDiagnostics(decodedParams.TextDocument.URI)
	conn.Notify(ctx, "textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         decodedParams.TextDocument.URI,
		Version:     doc.Version,
		Diagnostics: diagnostics,
	})
}

func (h *handler) documentDiagnostics(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DocumentDiagnosticsParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}

	diagnostics := h.compileAndReportDiagnostics(decodedParams.TextDocument.URI)
	conn.Reply(ctx, req.ID, DocumentDiagnosticsReport{
		Kind:  "full",
		Items: diagnostics,
	})
}

func (h *handler) loadFileRequest(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := LoadFileParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}

	doc, ok := h.documents[string(decodedParams.TextDocument.URI)]
	if !ok {
		conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{
			Code:    jsonrpc2.CodeInvalidParams,
			Message: "document is not open: " + string(decodedParams.TextDocument.URI),
		})
		return
	}

	h.compileAndReportDiagnostics(decodedParams.TextDocument.URI)
	result := h.documents[string(doc.URI)].lastResult
	conn.Reply(ctx, req.ID, LoadFileResult{
		LoadFile: parser.LoadFileSerialiser{}.SerialiseLoadFile(result.LoadFile()),
		Start:    result.Start,
		MetaData: result.MetaData,
		Failed:   result.Failed(h.strict),
	})
}

// columns of a formatted line, after the label column
const (
	opcodeWidth  = 8
	operandWidth = 16
)

// reformatDocument lines instructions up in columns: labels, opcode, operands
// and comment. Lines the formatter does not understand are only trimmed.
func reformatDocument(text string, standard parser.Standard) string {
	lines := strings.Split(text, "\n")

	type splitLine struct {
		label    string
		fields   []string
		comment  string
		carriage bool
	}
	split := make([]splitLine, len(lines))
	maxLabelLength := 0

	for i, line := range lines {
		s := splitLine{}
		if strings.HasSuffix(line, "\r") {
			s.carriage = true
			line = strings.TrimSuffix(line, "\r")
		}
		code := line
		if index := strings.Index(line, ";"); index != -1 {
			code = line[:index]
			s.comment = line[index:]
		}

		s.fields = strings.Fields(code)
		if len(s.fields) > 0 && !isKeyword(s.fields[0], standard) {
			s.label = s.fields[0]
			s.fields = s.fields[1:]
			if len(s.label) > maxLabelLength {
				maxLabelLength = len(s.label)
			}
		}
		split[i] = s
	}

	labelWidth := 0
	if maxLabelLength > 0 {
		labelWidth = maxLabelLength + 2
	}

	for i, s := range split {
		var builder strings.Builder
		if s.label != "" || len(s.fields) > 0 {
			if labelWidth > 0 {
				builder.WriteString(pad(s.label, labelWidth))
			}
			if len(s.fields) > 0 {
				builder.WriteString(pad(s.fields[0], opcodeWidth))
				builder.WriteString(pad(strings.Join(s.fields[1:], " "), operandWidth))
			}
		}
		if s.comment != "" {
			builder.WriteString(s.comment)
		}

		formatted := strings.TrimRight(builder.String(), " ")
		if s.carriage {
			formatted += "\r"
		}
		lines[i] = formatted
	}
	return strings.Join(lines, "\n")
}

// isKeyword accepts opcodes written with a modifier, such as MOV.AB
func isKeyword(field string, standard parser.Standard) bool {
	word, _, _ := strings.Cut(field, ".")
	return parser.IsKeyword(word, standard)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}

func (h *handler) documentWillSaveWaitUntil(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DocumentWillSaveWaitUntilParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}

	text := h.documents[string(decodedParams.TextDocument.URI)].Text
	formatted := reformatDocument(text, h.options.Standard)

	edits := make([]TextEdit, 0)
	if formatted != text {
		lines := strings.Split(text, "\n")
		edits = append(edits, TextEdit{
			Range: TextRange{
				Start: TextPosition{Line: 0, Char: 0},
				End:   TextPosition{Line: len(lines) - 1, Char: len(lines[len(lines)-1])},
			},
			NewText: formatted,
		})
	}

	conn.Reply(ctx, req.ID, edits)
	util.LogF(serverName + ": reformatted document")
}
