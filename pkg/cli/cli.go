// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"errors"

	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/go-homedir"
)

// ErrUnpairedTemplate is returned when --template and --template-out counts differ.
var ErrUnpairedTemplate = errors.New("every --template needs a matching --template-out")

// Option defines command line options.
type Option struct {
	CatalogDir        []string `short:"c" long:"catalog-dir" description:"catalog directory to read (repeatable)"`
	Include           []string `short:"i" long:"include" description:"doublestar pattern of catalog files, relative to each catalog dir (repeatable)"`
	Target            string   `short:"t" long:"target" description:"target to resolve for" choice:"native" choice:"java" choice:"vendor" default:"native"`
	MinAPILevel       int      `long:"min-api-level" description:"lowest API level generated code runs on (0 means unset)"`
	Output            string   `short:"o" long:"output" description:"resolved bundle output file"`
	Format            string   `short:"f" long:"format" description:"resolved bundle format" choice:"json" choice:"yaml" choice:"cbor"`
	Compress          string   `long:"compress" description:"resolved bundle compression" choice:"none" choice:"zstd" choice:"lz4"`
	Template          []string `long:"template" description:"text template to render (repeatable, paired with --template-out)"`
	TemplateOut       []string `long:"template-out" description:"rendered template output file (repeatable)"`
	StrictRestriction bool     `long:"strict-restriction" description:"fail on unknown restriction category values"`
	Workers           int      `long:"workers" description:"number of atoms resolved concurrently (0 means GOMAXPROCS)"`
	Watch             bool     `short:"w" long:"watch" description:"regenerate whenever a catalog file or template changes"`
	DumpSchema        bool     `long:"dump-schema" description:"print the catalog file JSON schema and exit"`
	Debug             bool     `short:"d" long:"debug" description:"debug mode"`
	Version           bool     `short:"v" long:"version" description:"display the version and exit"`
}

// Parse returns parsed command-line flags in Option struct
func Parse(args []string) (*Option, error) {
	opt := &Option{}
	parser := flags.NewParser(opt, flags.Default)
	parser.Name = "statsgen"
	parser.Usage = "[OPTIONS]"

	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}

	if len(opt.Template) != len(opt.TemplateOut) {
		return nil, ErrUnpairedTemplate
	}

	return opt, nil
}

func IsHelp(err error) bool {
	return flags.WroteHelp(err)
}

// IsPrinted reports whether the parser already wrote err to stderr.
func IsPrinted(err error) bool {
	var fe *flags.Error
	return errors.As(err, &fe)
}

// ExpandPaths replaces a leading "~" in every path option with the home directory.
func (o *Option) ExpandPaths() error {
	for _, paths := range [][]string{o.CatalogDir, o.Template, o.TemplateOut} {
		for i, path := range paths {
			v, err := homedir.Expand(path)
			if err != nil {
				return err
			}
			paths[i] = v
		}
	}

	v, err := homedir.Expand(o.Output)
	if err != nil {
		return err
	}
	o.Output = v

	return nil
}
