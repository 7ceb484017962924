package term

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testRow struct {
	name  string
	value int
}

func (r *testRow) GetFields() map[string]any {
	return map[string]any{
		"Name":  r.name,
		"Value": r.value,
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable([]string{"Name", "Value"}, []*testRow{
		{name: "requests", value: 1},
		{name: "flask", value: 2},
	})

	lines := strings.Split(out, "\n")
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "requests")
	assert.Contains(t, out, "flask")
	assert.Less(t, strings.Index(out, "requests"), strings.Index(out, "flask"))
	assert.Greater(t, len(lines), 4)
}

func TestRenderEmptyTable(t *testing.T) {
	out := RenderTable[*testRow]([]string{"Name"}, nil)
	assert.Equal(t, "<empty list>", out)
}
