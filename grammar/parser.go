package grammar

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
)

var parser = participle.MustBuild[File](
	participle.Lexer(VastLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.Unquote("String"),
	participle.UseLookahead(2),
)

func ParseFile(path string) (*File, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseString(path, string(source))
}

func ParseString(filename, source string) (*File, error) {
	return parser.ParseString(filename, source)
}

// ParseNode parses text holding exactly one node.
func ParseNode(filename, source string) (*Node, error) {
	file, err := ParseString(filename, source)
	if err != nil {
		return nil, err
	}
	if len(file.Nodes) != 1 {
		return nil, fmt.Errorf("expected one node, found %d", len(file.Nodes))
	}
	return file.Nodes[0], nil
}
