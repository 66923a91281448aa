package languageServer

import (
	"strings"

	"github.com/corewar/redcode/parser"
)

var severities = map[parser.MessageSeverity]DiagnosticSeverity{
	parser.Error:       Error,
	parser.Warning:     Warning,
	parser.Information: Information,
}

func toDiagnostics(text string, messages []parser.Message) []Diagnostic {
	lines := splitDocument(text)
	diagnostics := make([]Diagnostic, 0, len(messages))
	for _, message := range messages {
		diagnostics = append(diagnostics, toDiagnostic(lines, message))
	}
	return diagnostics
}

// toDiagnostic converts a 1-based message position into a 0-based range
// covering the word the message points at.
func toDiagnostic(lines []string, message parser.Message) Diagnostic {
	start := TextPosition{
		Line: max(message.Position.Line-1, 0),
		Char: max(message.Position.Char-1, 0),
	}
	end := start

	if start.Line < len(lines) {
		line := lines[start.Line]
		start.Char = min(start.Char, len(line))
		end.Char = start.Char + wordLength(line[start.Char:])
	}

	severity, ok := severities[message.Severity]
	if !ok {
		severity = Hint
	}

	return Diagnostic{
		Range:    TextRange{Start: start, End: end},
		Message:  message.Text,
		Source:   "redcode",
		Code:     string(message.Kind),
		Severity: severity,
	}
}

func wordLength(s string) int {
	if s == "" {
		return 0
	}
	length := strings.IndexAny(s, " \t,;")
	switch length {
	case -1:
		return len(s)
	case 0:
		return 1
	}
	return length
}

func splitDocument(text string) []string {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}
