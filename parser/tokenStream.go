package parser

// TokenStream is a read cursor over a fixed token slice. Diagnostics raised
// while reading are collected in Messages.
type TokenStream struct {
	Position int
	Tokens   []Token
	Messages []Message
}

func NewTokenStream(tokens []Token, messages []Message) *TokenStream {
	if messages == nil {
		messages = make([]Message, 0)
	}
	return &TokenStream{
		Tokens:   tokens,
		Messages: messages,
	}
}

func (ts *TokenStream) EOF() bool {
	return ts.Position >= len(ts.Tokens)
}

// Peek returns the next token without consuming it. At the end of the stream
// it returns an EOL positioned after the last token.
func (ts *TokenStream) Peek() Token {
	if ts.EOF() {
		return ts.endToken()
	}
	return ts.Tokens[ts.Position]
}

func (ts *TokenStream) Read() Token {
	token := ts.Peek()
	if !ts.EOF() {
		ts.Position++
	}
	return token
}

// ReadToEOL returns the rest of the current line including its EOL.
func (ts *TokenStream) ReadToEOL() []Token {
	line := make([]Token, 0)
	for !ts.EOF() {
		token := ts.Read()
		line = append(line, token)
		if token.Category == EOL {
			break
		}
	}
	return line
}

func (ts *TokenStream) SkipToEOL() {
	_ = ts.ReadToEOL()
}

func (ts *TokenStream) Expected(expected string, got Token) {
	ts.Messages = append(ts.Messages, Errors.Expected(expected, got))
}

func (ts *TokenStream) Error(message Message) {
	ts.Messages = append(ts.Messages, message)
}

func (ts *TokenStream) Warn(message Message) {
	message.Severity = Warning
	ts.Messages = append(ts.Messages, message)
}

func (ts *TokenStream) endToken() Token {
	position := Position{Line: 1, Char: 1}
	if len(ts.Tokens) > 0 {
		last := ts.Tokens[len(ts.Tokens)-1]
		position = last.Position
		position.Char += len(last.Lexeme)
	}
	return Token{Category: EOL, Lexeme: "\n", Position: position}
}
