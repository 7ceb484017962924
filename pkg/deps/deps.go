package deps

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fioncat/batify/pkg/metadata"
)

type Source int

const (
	SourceNone Source = iota
	SourceRequirements
	SourceInline
)

func (s Source) String() string {
	switch s {
	case SourceRequirements:
		return "requirements"
	case SourceInline:
		return "inline"
	default:
		return "none"
	}
}

type List struct {
	Items []string

	Source Source

	// RequiresPython is the interpreter constraint from the inline block,
	// empty for other sources.
	RequiresPython string
}

func (l *List) Empty() bool {
	return len(l.Items) == 0
}

// Dependency is one row of a List, used for displaying.
type Dependency struct {
	Index int

	Requirement string

	Source Source
}

func (d *Dependency) GetFields() map[string]any {
	return map[string]any{
		"Index":       strconv.Itoa(d.Index),
		"Requirement": d.Requirement,
		"Source":      d.Source.String(),
	}
}

func (l *List) Rows() []*Dependency {
	rows := make([]*Dependency, 0, len(l.Items))
	for idx, item := range l.Items {
		rows = append(rows, &Dependency{
			Index:       idx + 1,
			Requirement: item,
			Source:      l.Source,
		})
	}
	return rows
}

// Resolve determines the dependencies of script. An explicit requirements
// file wins over the inline metadata block, which wins over nothing.
func Resolve(script, requirementsPath string) (*List, error) {
	if requirementsPath != "" {
		lines, err := ReadRequirements(requirementsPath)
		if err != nil {
			return nil, err
		}
		return &List{
			Items:  Normalize(lines),
			Source: SourceRequirements,
		}, nil
	}

	md, err := metadata.Read(script)
	if err != nil {
		return nil, err
	}
	if md == nil {
		return &List{Source: SourceNone}, nil
	}
	return &List{
		Items:          Normalize(md.Dependencies),
		Source:         SourceInline,
		RequiresPython: md.RequiresPython,
	}, nil
}

// ReadRequirements returns the lines of a requirements file, excluding
// full-line "#" comments.
func ReadRequirements(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read requirements file: %w", err)
	}

	content := strings.TrimSuffix(string(data), "\n")
	if content == "" {
		return nil, nil
	}

	var lines []string
	for line := range strings.SplitSeq(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Normalize trims whitespace and then quotes from both ends of every entry,
// dropping entries that end up empty.
func Normalize(entries []string) []string {
	items := make([]string, 0, len(entries))
	for _, entry := range entries {
		item := strings.TrimSpace(entry)
		item = strings.Trim(item, `'"`)
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}
