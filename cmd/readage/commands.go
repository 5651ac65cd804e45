package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/jeduden/readage/internal/config"
	"github.com/jeduden/readage/internal/readability"
)

// runList implements the "list" subcommand: print the algorithm registry.
func runList(args []string) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	var format string

	fs.StringVarP(&format, "format", "f", "text", "Output format: text, json")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: readage list [flags]\n\n"+
			"List the available readability algorithms.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "readage: list takes no arguments\n")
		return 2
	}

	var err error
	switch format {
	case "text":
		err = writeListText(readability.All())
	case "json":
		err = writeListJSON(readability.All())
	default:
		fmt.Fprintf(os.Stderr, "readage: unknown format %q (supported: text, json)\n", format)
		return 2
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "readage: writing output: %v\n", err)
		return 2
	}
	return 0
}

func writeListText(algs []readability.Algorithm) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "ID\tNAME\tLABEL\tDESCRIPTION"); err != nil {
		return err
	}
	for _, a := range algs {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			a.ID(), a.Name(), a.Label(), a.Description()); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func writeListJSON(algs []readability.Algorithm) error {
	items := make([]map[string]any, 0, len(algs))
	for _, a := range algs {
		items = append(items, map[string]any{
			"id":          a.ID(),
			"name":        a.Name(),
			"label":       a.Label(),
			"description": a.Description(),
		})
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

// runInit implements the "init" subcommand: generate .readage.yml.
func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: readage init\n\n"+
			"Generate a default %s config file in the current directory.\n", config.FileName)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "readage: init takes no arguments\n")
		return 2
	}

	if _, err := os.Stat(config.FileName); err == nil {
		fmt.Fprintf(os.Stderr, "readage: %s already exists\n", config.FileName)
		return 2
	}

	data, err := yaml.Marshal(config.Defaults())
	if err != nil {
		fmt.Fprintf(os.Stderr, "readage: marshalling config: %v\n", err)
		return 2
	}

	if err := os.WriteFile(config.FileName, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "readage: writing %s: %v\n", config.FileName, err)
		return 2
	}

	fmt.Fprintf(os.Stderr, "readage: created %s\n", config.FileName)
	return 0
}
