package lsp

import (
	"github.com/alecthomas/participle/v2/lexer"
	"v2sc/grammar"
	"v2sc/internal/ast"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into the SemanticTokenTypes array
type SemanticToken struct {
	Line      uint32
	StartChar uint32
	Length    uint32
	TokenType int // index into SemanticTokenTypes
}

// collectSemanticTokens walks a parsed tree file in source order.
func collectSemanticTokens(file *grammar.File, source string) []SemanticToken {
	var tokens []SemanticToken
	if file == nil {
		return tokens
	}
	for _, n := range file.Nodes {
		tokens = append(tokens, walkNode(n, source)...)
	}
	return tokens
}

func walkNode(n *grammar.Node, source string) []SemanticToken {
	var tokens []SemanticToken
	if n == nil {
		return tokens
	}

	// The kind keyword follows the opening parenthesis.
	pos := n.Pos
	offset := pos.Offset + 1
	pos.Column++
	for offset < len(source) && (source[offset] == ' ' || source[offset] == '\t') {
		offset++
		pos.Column++
	}
	kindType := "type"
	if _, ok := ast.LookupOp(n.Kind); ok {
		kindType = "operator"
	}
	tokens = append(tokens, makeToken(pos, len(n.Kind), kindType)...)

	for _, a := range n.Attrs {
		tokens = append(tokens, makeToken(a.Pos, len(a.Name), "property")...)
		tokens = append(tokens, walkValue(a.Value, source)...)
	}
	return tokens
}

func walkValue(v *grammar.Value, source string) []SemanticToken {
	switch {
	case v == nil:
		return nil
	case v.Node != nil:
		return walkNode(v.Node, source)
	case v.List != nil:
		var tokens []SemanticToken
		for _, item := range v.List.Items {
			tokens = append(tokens, walkValue(item, source)...)
		}
		return tokens
	case v.Str != nil:
		return makeToken(v.Pos, quotedLength(source, v.Pos.Offset), "string")
	case v.Int != nil:
		return makeToken(v.Pos, tokenLength(source, v.Pos.Offset), "number")
	case v.Ident != nil:
		wordType := "variable"
		switch *v.Ident {
		case "None", "true", "false":
			wordType = "keyword"
		}
		return makeToken(v.Pos, len(*v.Ident), wordType)
	}
	return nil
}

// quotedLength measures the string literal starting at offset.
func quotedLength(source string, offset int) int {
	if offset >= len(source) || source[offset] != '"' {
		return 0
	}
	for i := offset + 1; i < len(source); i++ {
		switch source[i] {
		case '\\':
			i++
		case '"':
			return i - offset + 1
		}
	}
	return len(source) - offset
}

func tokenLength(source string, offset int) int {
	i := offset
	for i < len(source) && (source[i] == '-' || (source[i] >= '0' && source[i] <= '9')) {
		i++
	}
	return i - offset
}

// makeToken creates a semantic token for a given position and length
func makeToken(pos lexer.Position, length int, tokenType string) []SemanticToken {
	if length <= 0 || pos.Line <= 0 {
		return nil
	}
	return []SemanticToken{{
		Line:      uint32(pos.Line - 1),   // LSP uses 0-based line numbers
		StartChar: uint32(pos.Column - 1), // LSP uses 0-based column numbers
		Length:    uint32(length),
		TokenType: indexOf(tokenType, SemanticTokenTypes),
	}}
}

// encodeTokens converts tokens to the LSP wire format (delta-line, delta-start compression)
func encodeTokens(tokens []SemanticToken) []uint32 {
	data := []uint32{}
	var prevLine, prevStart uint32
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		deltaStart := token.StartChar
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		}
		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), 0)
		prevLine = token.Line
		prevStart = token.StartChar
	}
	return data
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0 // Default to first token type if not found
}
