package template

import (
	_ "embed"
	"strings"
)

// Extension of every generated wrapper.
const Extension = ".bat"

const (
	trustedHostFlag = "--trusted-host"
	indexURLFlag    = "--index-url"
)

//go:embed header.bat
var header string

//go:embed header_req.bat
var headerReq string

type Values struct {
	Version string

	Dependencies []string

	PypiHost string
	PypiURL  string
}

// Render fills the header matching v. Scripts without dependencies get the
// plain header that runs the system interpreter directly.
func Render(v *Values) string {
	if len(v.Dependencies) == 0 {
		return strings.ReplaceAll(header, "{{gitversion}}", v.Version)
	}

	quoted := make([]string, 0, len(v.Dependencies))
	for _, dep := range v.Dependencies {
		quoted = append(quoted, `"`+dep+`"`)
	}

	r := strings.NewReplacer(
		"{{requirements}}", strings.Join(quoted, " "),
		"{{pypi-host}}", trustedHostFlag+"="+v.PypiHost,
		"{{pypi-url}}", indexURLFlag+"="+v.PypiURL,
		"{{gitversion}}", v.Version,
	)
	return r.Replace(headerReq)
}
