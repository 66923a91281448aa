package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/corewar/redcode/parser"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"
)

// Write prints the diagnostics of a compilation. Terminals get a table,
// anything else gets one "file:line:char: severity: message" line per message.
func Write(out io.Writer, file string, result *parser.ParseResult) error {
	text := Plain(file, result.Messages)
	if isTerminal(out) {
		text = Table(file, result)
	}
	_, err := io.WriteString(out, text)
	return err
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func Plain(file string, messages []parser.Message) string {
	var builder strings.Builder
	for _, message := range messages {
		fmt.Fprintf(&builder, "%s:%d:%d: %s: %s\n",
			file, message.Position.Line, message.Position.Char, message.Severity, message.Text)
	}
	return builder.String()
}

func Table(file string, result *parser.ParseResult) string {
	var builder strings.Builder

	summary := table.NewWriter()
	summary.SetTitle(file)
	summary.AppendRow(table.Row{"Name", result.MetaData.Name})
	summary.AppendRow(table.Row{"Author", result.MetaData.Author})
	summary.AppendRow(table.Row{"Instructions", len(result.LoadFile().Instructions)})
	summary.AppendRow(table.Row{"Start", result.Start})
	builder.WriteString(summary.Render())
	builder.WriteString("\n")

	if len(result.Messages) == 0 {
		return builder.String()
	}

	messages := table.NewWriter()
	messages.SetTitle(fmt.Sprintf("Diagnostics (%d)", len(result.Messages)))
	messages.AppendHeader(table.Row{"Line", "Char", "Severity", "Kind", "Message"})
	for _, message := range result.Messages {
		messages.AppendRow(table.Row{
			message.Position.Line,
			message.Position.Char,
			message.Severity.String(),
			string(message.Kind),
			message.Text,
		})
	}
	builder.WriteString(messages.Render())
	builder.WriteString("\n")
	return builder.String()
}
