package parser

type TokenCategory int

const (
	Opcode TokenCategory = iota
	Modifier
	Mode
	Number
	Label
	Comma
	Maths
	Comment
	Preprocessor
	EOL
	Unknown
)

var tokenCategoryNames = map[TokenCategory]string{
	Opcode:       "opcode",
	Modifier:     "modifier",
	Mode:         "mode",
	Number:       "number",
	Label:        "label",
	Comma:        "','",
	Maths:        "maths operator",
	Comment:      "comment",
	Preprocessor: "preprocessor directive",
	EOL:          "end of line",
	Unknown:      "unknown token",
}

func (c TokenCategory) String() string {
	if name, ok := tokenCategoryNames[c]; ok {
		return name
	}
	return "invalid"
}

// Position is 1-based.
type Position struct {
	Line int `json:"line"`
	Char int `json:"char"`
}

type Token struct {
	Category TokenCategory `json:"category"`
	Lexeme   string        `json:"lexeme"`
	Position Position      `json:"position"`
}

// describe returns the token the way diagnostics quote it
func (t Token) describe() string {
	if t.Category == EOL {
		return "end of line"
	}
	return "'" + t.Lexeme + "'"
}

type MessageSeverity int

const (
	Error       MessageSeverity = 1
	Warning     MessageSeverity = 2
	Information MessageSeverity = 3
)

func (s MessageSeverity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Information:
		return "info"
	}
	return "unknown"
}

type MessageKind string

const (
	LexicalError    MessageKind = "lexical"
	SyntaxError     MessageKind = "syntax"
	DuplicateError  MessageKind = "duplicate"
	UndefinedError  MessageKind = "undefined"
	CyclicError     MessageKind = "cyclic"
	IllegalError    MessageKind = "illegal"
	ArithmeticError MessageKind = "arithmetic"
	LimitWarning    MessageKind = "limit"
)

type Message struct {
	Severity MessageSeverity `json:"severity"`
	Kind     MessageKind     `json:"kind"`
	Text     string          `json:"text"`
	Position Position        `json:"position"`
}

type MetaData struct {
	Name     string `json:"name"`
	Author   string `json:"author"`
	Strategy string `json:"strategy"`
}

type Context struct {
	Tokens   []Token
	Messages []Message
	Equs     map[string][]Token // constant name to replacement tokens
	Labels   map[string]int     // label name to instruction address
	Org      []Token            // start expression from ORG (or END), constants expanded
	Start    int
	MetaData MetaData
}

func NewContext() *Context {
	return &Context{
		Tokens:   make([]Token, 0),
		Messages: make([]Message, 0),
		Equs:     make(map[string][]Token),
		Labels:   make(map[string]int),
	}
}

func (c *Context) AddMessages(messages ...Message) {
	c.Messages = append(c.Messages, messages...)
}

type ParseResult struct {
	Tokens   []Token        `json:"tokens"`
	Messages []Message      `json:"messages"`
	MetaData MetaData       `json:"metaData"`
	Labels   map[string]int `json:"labels"`
	Start    int            `json:"start"`
}

// Failed reports whether the compilation should be rejected. Strict callers
// reject on any message, everyone else only on errors.
func (r *ParseResult) Failed(strict bool) bool {
	for _, message := range r.Messages {
		if strict || message.Severity == Error {
			return true
		}
	}
	return false
}

type LoadFile struct {
	Instructions [][]Token
	Start        int
}

func (r *ParseResult) LoadFile() LoadFile {
	return LoadFile{
		Instructions: splitLines(r.Tokens),
		Start:        r.Start,
	}
}

// splitLines groups tokens into lines without their EOL tokens, dropping empty lines
func splitLines(tokens []Token) [][]Token {
	lines := make([][]Token, 0)
	current := make([]Token, 0)
	for _, token := range tokens {
		if token.Category == EOL {
			if len(current) > 0 {
				lines = append(lines, current)
			}
			current = make([]Token, 0)
			continue
		}
		current = append(current, token)
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}
