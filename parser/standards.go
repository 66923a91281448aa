package parser

import (
	"fmt"
	"strings"
)

type Standard int

const (
	ICWS86 Standard = iota
	ICWS88
	ICWS94Draft
)

func (s Standard) String() string {
	switch s {
	case ICWS86:
		return "ICWS'86"
	case ICWS88:
		return "ICWS'88"
	case ICWS94Draft:
		return "ICWS'94 draft"
	}
	return "unknown standard"
}

// ParseStandard accepts "86", "88", "94" and the ICWS prefixed spellings.
func ParseStandard(name string) (Standard, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	normalized = strings.TrimPrefix(normalized, "ICWS")
	normalized = strings.Trim(normalized, "-' ")
	switch normalized {
	case "86":
		return ICWS86, nil
	case "88":
		return ICWS88, nil
	case "94", "94DRAFT", "94-DRAFT", "":
		return ICWS94Draft, nil
	}
	return ICWS94Draft, fmt.Errorf("unknown standard %q", name)
}

type Options struct {
	Standard     Standard `json:"standard"`
	CoreSize     int      `json:"coreSize"`
	MaxLength    int      `json:"maxLength"`
	MaxExpansion int      `json:"maxExpansion"`
}

var DefaultOptions = Options{
	Standard:     ICWS94Draft,
	CoreSize:     8000,
	MaxLength:    100,
	MaxExpansion: 10000,
}

// withDefaults fills zero sizes from DefaultOptions
func (o Options) withDefaults() Options {
	if o.CoreSize <= 0 {
		o.CoreSize = DefaultOptions.CoreSize
	}
	if o.MaxExpansion <= 0 {
		o.MaxExpansion = DefaultOptions.MaxExpansion
	}
	return o
}

// wrap folds a value into [0, CoreSize)
func (o Options) wrap(value int) int {
	coreSize := o.CoreSize
	if coreSize <= 0 {
		coreSize = DefaultOptions.CoreSize
	}
	return ((value % coreSize) + coreSize) % coreSize
}

type set map[string]bool

func newSet(items ...string) set {
	s := make(set, len(items))
	for _, item := range items {
		s[item] = true
	}
	return s
}

type capabilities struct {
	opcodes       set // lexed as Opcode
	legalOpcodes  set
	preprocessor  set
	modes         set
	maths         set
	modifiers     bool
	maxLabelChars int // 0 means unlimited
	aModes        map[string]set
	bModes        map[string]set
}

var allModes88 = newSet("#", "$", "@", "<")
var addressModes88 = newSet("$", "@", "<")

var legal88AModes = map[string]set{
	"DAT": newSet("#", "<"),
	"MOV": allModes88, "ADD": allModes88, "SUB": allModes88, "CMP": allModes88, "SLT": allModes88,
	"JMP": addressModes88, "SPL": addressModes88,
	"JMZ": addressModes88, "JMN": addressModes88, "DJN": addressModes88,
}

var legal88BModes = map[string]set{
	"DAT": newSet("#", "<"),
	"MOV": addressModes88, "ADD": addressModes88, "SUB": addressModes88, "CMP": addressModes88, "SLT": addressModes88,
	"JMP": allModes88, "SPL": allModes88,
	"JMZ": allModes88, "JMN": allModes88, "DJN": allModes88,
}

var standards = map[Standard]capabilities{
	ICWS94Draft: {
		opcodes:      newSet("DAT", "MOV", "ADD", "SUB", "MUL", "DIV", "MOD", "JMP", "JMZ", "JMN", "DJN", "CMP", "SLT", "SPL", "SEQ", "SNE", "NOP"),
		legalOpcodes: newSet("DAT", "MOV", "ADD", "SUB", "MUL", "DIV", "MOD", "JMP", "JMZ", "JMN", "DJN", "CMP", "SLT", "SPL", "SEQ", "SNE", "NOP"),
		preprocessor: newSet("EQU", "END", "ORG", "FOR", "ROF"),
		modes:        newSet("#", "$", "@", "<", ">", "{", "}", "*"),
		maths:        newSet("+", "-", "*", "/", "%", "(", ")"),
		modifiers:    true,
	},
	// SEQ, SNE and NOP scan as opcodes before '94 so that IllegalCommandCheck
	// names them, rather than them vanishing into label definitions.
	ICWS88: {
		opcodes:      newSet("DAT", "MOV", "ADD", "SUB", "JMP", "JMZ", "JMN", "DJN", "CMP", "SLT", "SPL", "SEQ", "SNE", "NOP"),
		legalOpcodes: newSet("DAT", "MOV", "ADD", "SUB", "JMP", "JMZ", "JMN", "DJN", "CMP", "SLT", "SPL"),
		preprocessor: newSet("EQU", "END"),
		modes:        allModes88,
		maths:        newSet("+", "-", "*", "/"),
		aModes:       legal88AModes,
		bModes:       legal88BModes,
	},
	ICWS86: {
		opcodes:       newSet("DAT", "MOV", "ADD", "SUB", "JMP", "JMZ", "JMN", "DJN", "CMP", "SPL", "SEQ", "SNE", "NOP"),
		legalOpcodes:  newSet("DAT", "MOV", "ADD", "SUB", "JMP", "JMZ", "JMN", "DJN", "CMP", "SPL"),
		preprocessor:  newSet("END"),
		modes:         allModes88,
		maths:         newSet("+", "-"),
		maxLabelChars: 8,
		aModes:        legal88AModes,
		bModes:        legal88BModes,
	},
}

var modifierNames = []string{"AB", "BA", "A", "B", "F", "X", "I"}

func capabilitiesOf(standard Standard) capabilities {
	if c, ok := standards[standard]; ok {
		return c
	}
	return standards[ICWS94Draft]
}

// IsKeyword reports whether word lexes as an opcode or directive under the standard.
func IsKeyword(word string, standard Standard) bool {
	c := capabilitiesOf(standard)
	upper := strings.ToUpper(word)
	return c.opcodes[upper] || c.preprocessor[upper]
}
