package git

import "strings"

const versionPrefix = "git version: "

// Describe returns a human readable tag for the current revision, such as
// "git version: v1.2.0-3-g1a2b3c4d-dirty". Any failure, including a missing
// git binary or a directory outside a repository, yields an empty string.
func Describe(g *Git) string {
	g.Quiet()
	out, err := g.Output(
		"describe",
		"--abbrev=8",
		"--dirty",
		"--always",
		"--tags",
		"--long",
	)
	if err != nil {
		return ""
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return ""
	}
	return versionPrefix + out
}
