package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"

	"github.com/arr-ai/ebnf/ast"
	"github.com/arr-ai/ebnf/ebnf"
)

var grammarFlag = cli.StringFlag{
	Name:      "grammar",
	Usage:     "input grammar file, - or empty for stdin",
	TakesFile: true,
}

var parseCommand = cli.Command{
	Name:    "parse",
	Aliases: []string{"p"},
	Usage:   "Parse a grammar and print its syntax tree",
	Action:  parseAction,
	Flags: []cli.Flag{
		grammarFlag,
		cli.StringFlag{
			Name:   "format",
			Usage:  "output format: tree, json, yaml or ebnf",
			EnvVar: "EBNF_FORMAT",
			Value:  "tree",
		},
		cli.BoolFlag{
			Name:   "v",
			Usage:  "verbose logging",
			EnvVar: "EBNF_VERBOSE",
		},
	},
}

func readGrammar(c *cli.Context) (string, string, error) {
	source := c.String("grammar")
	var buf []byte
	var err error
	switch source {
	case "", "-":
		source = ""
		buf, err = io.ReadAll(os.Stdin)
	default:
		buf, err = os.ReadFile(source)
	}
	if err != nil {
		return "", "", err
	}
	return string(buf), source, nil
}

func loadGrammar(c *cli.Context) (ast.Grammar, error) {
	text, filename, err := readGrammar(c)
	if err != nil {
		return ast.Grammar{}, err
	}
	g, err := ebnf.ParseWithFilename(text, filename)
	if err != nil {
		var pe *ebnf.ParseError
		if errors.As(err, &pe) {
			logrus.Debug(pe.Context())
		}
		return ast.Grammar{}, err
	}
	logrus.WithField("rules", len(g.Expressions)).Debug("parsed grammar")
	return g, nil
}

func parseAction(c *cli.Context) error {
	if c.Bool("v") {
		logrus.SetLevel(logrus.TraceLevel)
	}
	g, err := loadGrammar(c)
	if err != nil {
		return err
	}
	return writeGrammar(c.App.Writer, g, c.String("format"))
}

func writeGrammar(w io.Writer, g ast.Grammar, format string) error {
	switch format {
	case "tree":
		_, err := fmt.Fprint(w, ast.BuildTreeView(g))
		return err
	case "ebnf":
		_, err := fmt.Fprint(w, g)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(g)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(g); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q", format)
}
