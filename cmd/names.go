package cmd

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/ebnf/ast"
)

var namesCommand = cli.Command{
	Name:    "names",
	Aliases: []string{"n"},
	Usage:   "List the rules a grammar defines and the names it references",
	Action:  namesAction,
	Flags:   []cli.Flag{grammarFlag},
}

func namesAction(c *cli.Context) error {
	g, err := loadGrammar(c)
	if err != nil {
		return err
	}
	undefined := ast.Sorted(g.Undefined())
	if len(undefined) > 0 {
		logrus.WithField("names", undefined).Warn("grammar references undefined rules")
	}
	_, err = fmt.Fprintf(c.App.Writer, "rules: %s\nreferences: %s\nundefined: %s\n",
		strings.Join(ast.Sorted(g.RuleNames()), " "),
		strings.Join(ast.Sorted(g.References()), " "),
		strings.Join(undefined, " "))
	return err
}
