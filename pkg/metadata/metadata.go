package metadata

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fioncat/batify/pkg/errors"
)

// ScriptType is the block type carrying script dependencies.
const ScriptType = "script"

var blockRegex = regexp.MustCompile(`(?m)^# /// (?P<type>[a-zA-Z0-9-]+)$\s(?P<content>(^#(| .*)$\s)+)^# ///$`)

// Metadata is the decoded content of a `# /// script` block. Unknown keys
// are ignored.
type Metadata struct {
	Dependencies []string `toml:"dependencies"`

	RequiresPython string `toml:"requires-python"`
}

// Read returns the script metadata block, or nil if the script has none.
// CRLF line endings are treated as LF.
func Read(script string) (*Metadata, error) {
	script = strings.ReplaceAll(script, "\r\n", "\n")
	content, ok, err := findBlock(script, ScriptType)
	if err != nil || !ok {
		return nil, err
	}

	var md Metadata
	_, err = toml.Decode(content, &md)
	if err != nil {
		return nil, fmt.Errorf("parse %s metadata toml: %w", ScriptType, err)
	}
	return &md, nil
}

func findBlock(script, name string) (string, bool, error) {
	typeIdx := blockRegex.SubexpIndex("type")
	contentIdx := blockRegex.SubexpIndex("content")

	var contents []string
	for _, match := range blockRegex.FindAllStringSubmatch(script, -1) {
		if match[typeIdx] == name {
			contents = append(contents, match[contentIdx])
		}
	}

	switch len(contents) {
	case 0:
		return "", false, nil
	case 1:
		return stripComments(contents[0]), true, nil
	default:
		return "", false, fmt.Errorf("%w: %d %s blocks", errors.ErrMultipleBlocks, len(contents), name)
	}
}

// stripComments drops "# " from lines that have it and a bare "#" otherwise.
func stripComments(content string) string {
	var sb strings.Builder
	for _, line := range strings.SplitAfter(content, "\n") {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "# ") {
			sb.WriteString(line[2:])
		} else {
			sb.WriteString(line[1:])
		}
	}
	return sb.String()
}
