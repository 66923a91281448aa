package parser

// LabelCollector assigns every label the address of the instruction it
// precedes. Labels on their own line belong to the next instruction and
// labels after the last instruction get the instruction count.
type LabelCollector struct{}

func (LabelCollector) Process(context *Context, options Options) *Context {
	address := 0

	for _, line := range readLines(context.Tokens) {
		for _, label := range line[:leadingLabels(line)] {
			if _, exists := context.Labels[label.Lexeme]; exists {
				context.AddMessages(Errors.DuplicateLabel(label))
				continue
			}
			context.Labels[label.Lexeme] = address
		}

		if isInstruction(line) {
			address++
		} else if labels := leadingLabels(line); labels > 1 && labels == len(line)-1 {
			// "JMX start" is more likely a misspelt opcode than two labels
			context.AddMessages(Warnings.OpcodeExpected(line[0], line[1]))
		}
	}

	return context
}
