package template

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderNoDependencies(t *testing.T) {
	out := Render(&Values{
		Version:  "git version: v1.0.0-0-g0123abcd",
		PypiHost: "ignored",
	})

	want := strings.ReplaceAll(header, "{{gitversion}}", "git version: v1.0.0-0-g0123abcd")
	assert.Equal(t, want, out)
	assert.True(t, strings.HasPrefix(out, "@echo off\n"))
	assert.True(t, strings.HasSuffix(out, "\"\"\"\n"))
	assert.NotContains(t, out, "{{")
	assert.NotContains(t, out, "--trusted-host")
}

func TestRenderDependencies(t *testing.T) {
	out := Render(&Values{
		Version:      "git version: abcdef12",
		Dependencies: []string{"requests", "flask", "click"},
		PypiHost:     "pypi.local",
		PypiURL:      "http://pypi.local/simple",
	})

	assert.NotContains(t, out, "{{")
	assert.Contains(t, out, `rem = """ git version: abcdef12`+"\n")
	assert.Equal(t, 4, strings.Count(out, `"requests" "flask" "click" || goto error`))
	assert.Equal(t, 4, strings.Count(out, "--trusted-host=pypi.local ^"))
	assert.Equal(t, 4, strings.Count(out, "--index-url=http://pypi.local/simple ^"))
	assert.Contains(t, out, `set VIRTUAL_ENV=%LOC%.venv.%~n0`)
	assert.Contains(t, out, `if "%NO_COLOR%" equ "1" (`)
	assert.Contains(t, out, "set COL_GREEN=\x1b[92m")
}

func TestRenderEmptyIndexFlags(t *testing.T) {
	out := Render(&Values{Dependencies: []string{"rich"}})

	assert.Contains(t, out, "--trusted-host= ^")
	assert.Contains(t, out, "--index-url= ^")
	assert.Contains(t, out, `rem = """ `+"\n")
}

func TestRenderNoNestedSubstitution(t *testing.T) {
	out := Render(&Values{
		Dependencies: []string{"{{pypi-url}}"},
		PypiURL:      "http://example.com",
	})

	assert.Contains(t, out, `"{{pypi-url}}" || goto error`)
}
