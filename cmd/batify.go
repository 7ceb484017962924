package cmd

import (
	"errors"
	"fmt"

	"github.com/fioncat/batify/build"
	"github.com/fioncat/batify/pkg/config"
	"github.com/fioncat/batify/pkg/term"
	"github.com/fioncat/batify/pkg/wrapper"
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	return newCommand(&batifyOptions{})
}

func newCommand(opts *batifyOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "batify",
		Short: "A basic tool for creating bat files that contains Python code",

		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},

		Version: build.Version,
	}

	c.Flags().StringVarP(&opts.script, "script", "s", "", "Python script file")
	c.Flags().StringVarP(&opts.requirements, "requirements", "r", "", "requirements file, one requirement per line. Blank lines and lines starting with \"#\" are skipped. When set, the inline script metadata is ignored")
	c.Flags().StringVarP(&opts.pypiHost, "pypi-host", "", "", "hostname of pypi host (e.g. host)")
	c.Flags().StringVarP(&opts.pypiURL, "pypi-url", "", "", "pypi index url (e.g. http://host/pypi/simple)")
	c.Flags().StringVarP(&opts.outDir, "outdir", "", "dist", "output directory")
	c.Flags().StringVarP(&opts.newline, "newline", "", config.NewlineAuto, "line ending of the generated file, one of auto, lf, crlf. auto uses crlf on windows")
	c.Flags().BoolVarP(&opts.list, "list", "l", false, "print the resolved dependencies after writing")
	c.Flags().BoolVarP(&term.Mute, "quiet", "q", false, "do not print info messages")

	_ = c.MarkFlagRequired("script")
	_ = c.MarkFlagFilename("script", "py", "pyw")
	_ = c.MarkFlagFilename("requirements", "txt", "in")
	_ = c.MarkFlagDirname("outdir")

	return Build(c, opts)
}

type batifyOptions struct {
	script       string
	requirements string

	pypiHost string
	pypiURL  string

	outDir string

	newline string

	list bool

	// version overrides the git version lookup, nil means git describe.
	version func() string
}

func (o *batifyOptions) Complete(c *cobra.Command, _ []string, cfg *config.Config) error {
	if o.script == "" {
		return errors.New("script cannot be empty")
	}

	flags := c.Flags()
	if !flags.Changed("pypi-host") {
		o.pypiHost = cfg.PypiHost
	}
	if !flags.Changed("pypi-url") {
		o.pypiURL = cfg.PypiURL
	}
	if !flags.Changed("outdir") {
		o.outDir = cfg.OutDir
	}
	if !flags.Changed("newline") {
		o.newline = cfg.Newline
	}

	return config.ValidateNewline(o.newline)
}

func (o *batifyOptions) Run(c *cobra.Command) error {
	result, err := wrapper.Generate(&wrapper.Options{
		Script:       o.script,
		Requirements: o.requirements,
		OutDir:       o.outDir,
		PypiHost:     o.pypiHost,
		PypiURL:      o.pypiURL,
		Newline:      o.newline,
		Version:      o.version,
	})
	if err != nil {
		return err
	}

	if result.Version == "" {
		term.PrintWarn("No git version found, the version tag is left empty")
	}
	term.PrintInfo("Write %s", result.String())
	if result.Dependencies.RequiresPython != "" {
		term.PrintInfo("Script requires python %s", result.Dependencies.RequiresPython)
	}

	if o.list {
		table := term.RenderTable([]string{"Index", "Requirement", "Source"}, result.Dependencies.Rows())
		fmt.Fprintln(c.OutOrStdout(), table)
	}
	return nil
}
