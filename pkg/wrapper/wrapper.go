package wrapper

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fioncat/batify/pkg/config"
	"github.com/fioncat/batify/pkg/deps"
	"github.com/fioncat/batify/pkg/git"
	"github.com/fioncat/batify/pkg/template"
)

type Options struct {
	// Script is the python file to wrap, required.
	Script string

	// Requirements is an optional requirements file. When set, the inline
	// metadata block of the script is not consulted.
	Requirements string

	OutDir string

	PypiHost string
	PypiURL  string

	// Newline is one of the config.Newline* values, empty means auto.
	Newline string

	// Version returns the version tag embedded in the header. Defaults to
	// describing the git repository of the working directory.
	Version func() string
}

type Result struct {
	Path string

	Dependencies *deps.List

	Version string

	Size int64
}

func (r *Result) String() string {
	return fmt.Sprintf("%s (%s, %d dependencies)", r.Path,
		humanize.IBytes(uint64(r.Size)), len(r.Dependencies.Items))
}

func defaultVersion() string {
	return git.Describe(git.New())
}

// OutputPath returns where the wrapper of script is written inside outDir.
func OutputPath(outDir, script string) string {
	base := filepath.Base(script)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = base
	}
	return filepath.Join(outDir, stem+template.Extension)
}

// Generate writes the wrapper for opts.Script, overwriting any existing one.
func Generate(opts *Options) (*Result, error) {
	if opts.Script == "" {
		return nil, errors.New("script path cannot be empty")
	}

	outDir := opts.OutDir
	if outDir == "" {
		outDir = config.Default().OutDir
	}
	err := os.MkdirAll(outDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("ensure output dir: %w", err)
	}

	data, err := os.ReadFile(opts.Script)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	script := string(data)

	depList, err := deps.Resolve(script, opts.Requirements)
	if err != nil {
		return nil, fmt.Errorf("resolve dependencies for %q: %w", opts.Script, err)
	}

	versionFunc := opts.Version
	if versionFunc == nil {
		versionFunc = defaultVersion
	}
	version := versionFunc()

	header := template.Render(&template.Values{
		Version:      version,
		Dependencies: depList.Items,
		PypiHost:     opts.PypiHost,
		PypiURL:      opts.PypiURL,
	})

	content := header + script
	if useCRLF(opts.Newline) {
		content = toCRLF(content)
	}

	path := OutputPath(outDir, opts.Script)
	err = os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		return nil, fmt.Errorf("write wrapper: %w", err)
	}

	return &Result{
		Path:         path,
		Dependencies: depList,
		Version:      version,
		Size:         int64(len(content)),
	}, nil
}

func useCRLF(newline string) bool {
	switch newline {
	case config.NewlineCRLF:
		return true
	case config.NewlineLF:
		return false
	default:
		return runtime.GOOS == "windows"
	}
}

func toCRLF(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "\r\n")
}
