package cli

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/vyrjana/go-api-documenter/pkg/apidoc"
)

// fileConfig mirrors the generator configuration in a TOML file, so a
// release script can keep titles, ignore lists and minimal-class lists
// out of its command line.
//
//	title = "libwidget"
//	description = "Widgets for everyone."
//	table_of_contents = true
//	latex_pagebreak = false
//	minimal_classes = ["widgets.Widget"]
//	objects_to_ignore = ["widgets.Registry"]
//	packages = ["./pkg/..."]
type fileConfig struct {
	Title           string   `toml:"title"`
	Description     string   `toml:"description"`
	TableOfContents *bool    `toml:"table_of_contents"`
	LatexPagebreak  *bool    `toml:"latex_pagebreak"`
	MinimalClasses  []string `toml:"minimal_classes"`
	ObjectsToIgnore []string `toml:"objects_to_ignore"`
	// Packages lists package patterns to document, used when none are
	// given on the command line.
	Packages []string `toml:"packages"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, errors.Wrapf(err, "failed to read config file %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fileConfig{}, errors.Errorf("unknown key %q in config file %s", undecoded[0].String(), path)
	}
	return cfg, nil
}

// apply overlays the file configuration onto cfg, keeping any value the
// user set explicitly on the command line.
func (f fileConfig) apply(cfg apidoc.Config, flags *pflag.FlagSet) apidoc.Config {
	if f.Title != "" && !flags.Changed("title") {
		cfg.Title = f.Title
	}
	if f.Description != "" && !flags.Changed("description") {
		cfg.Description = f.Description
	}
	if f.TableOfContents != nil && !flags.Changed("toc") {
		cfg.TableOfContents = *f.TableOfContents
	}
	if f.LatexPagebreak != nil && !flags.Changed("pagebreak") {
		cfg.LatexPagebreak = *f.LatexPagebreak
	}
	if len(f.MinimalClasses) > 0 && !flags.Changed("minimal") {
		cfg.MinimalClasses = f.MinimalClasses
	}
	if len(f.ObjectsToIgnore) > 0 && !flags.Changed("ignore") {
		cfg.ObjectsToIgnore = f.ObjectsToIgnore
	}
	return cfg
}
