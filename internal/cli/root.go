package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vyrjana/go-api-documenter/internal/introspect"
	"github.com/vyrjana/go-api-documenter/pkg/apidoc"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version,
// typically injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

type rootOptions struct {
	title       string
	description string
	out         string
	toc         bool
	pagebreak   bool
	minimal     []string
	ignore      []string
	configPath  string
	strict      bool
}

// Execute runs the apidocumenter CLI and returns an error if the command
// fails. Logging goes to stderr: info level by default, debug with
// --verbose. Documentation discrepancies are logged as warnings; with
// --strict they additionally make the command fail, after the document
// has been written.
func Execute() error {
	var (
		opts    rootOptions
		verbose bool
	)
	root := &cobra.Command{
		Use:   "apidocumenter [flags] [packages]",
		Short: "Generate Markdown API documentation through introspection",
		Long: `apidocumenter renders the public API of the enclosing Go module as a
single Markdown document. Packages are introspected in place: exported
types become class sections with their constructors and methods,
exported functions become function sections, and doc comments carrying a
"Parameters"/"Returns" listing are validated against the actual
signatures. Mismatches are reported as warnings, or as failures with
--strict.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("apidocumenter %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	flags := root.Flags()
	flags.StringVar(&opts.title, "title", "API Reference", "main title of the generated document")
	flags.StringVar(&opts.description, "description", "", "text inserted between the title and the table of contents")
	flags.StringVarP(&opts.out, "out", "o", "", "write the document to a file instead of stdout")
	flags.BoolVar(&opts.toc, "toc", true, "generate a table of contents")
	flags.BoolVar(&opts.pagebreak, "pagebreak", false, "insert LaTeX page breaks for Pandoc PDF conversion")
	flags.StringSliceVar(&opts.minimal, "minimal", nil, "qualified class names to document constructor-only")
	flags.StringSliceVar(&opts.ignore, "ignore", nil, "qualified names to exclude from the document")
	flags.StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")
	flags.BoolVar(&opts.strict, "strict", false, "fail when documentation discrepancies are found")

	root.AddCommand(completionCommand())
	return root.ExecuteContext(context.Background())
}

func run(cmd *cobra.Command, args []string, opts rootOptions) error {
	logger := loggerFromContext(cmd.Context())

	cfg := apidoc.Config{
		Title:           opts.title,
		Description:     opts.description,
		TableOfContents: opts.toc,
		MinimalClasses:  opts.minimal,
		ObjectsToIgnore: opts.ignore,
		LatexPagebreak:  opts.pagebreak,
	}
	patterns := args
	if opts.configPath != "" {
		fileCfg, err := loadFileConfig(opts.configPath)
		if err != nil {
			return err
		}
		cfg = fileCfg.apply(cfg, cmd.Flags())
		if len(patterns) == 0 {
			patterns = fileCfg.Packages
		}
	}
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	logger.Debug("loading packages", "patterns", patterns)
	modules, err := introspect.Load(patterns...)
	if err != nil {
		return err
	}
	logger.Debug("generating document", "modules", len(modules))
	result, err := apidoc.Generate(cfg, modules...)
	if err != nil {
		return err
	}
	for _, d := range result.Discrepancies {
		logger.Warn("documentation mismatch",
			"object", d.Object,
			"kind", d.Kind.String(),
			"detail", d.Detail,
		)
	}
	if err := writeOutput(opts.out, cmd, result.Markdown); err != nil {
		return err
	}
	if opts.strict && len(result.Discrepancies) > 0 {
		return errors.Errorf("found %d documentation discrepancies", len(result.Discrepancies))
	}
	return nil
}

func writeOutput(path string, cmd *cobra.Command, markdown string) error {
	if path == "" || path == "-" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), markdown)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create output directory %s", dir)
		}
	}
	if err := os.WriteFile(path, []byte(markdown), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
