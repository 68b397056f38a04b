package ebnf

import (
	"github.com/sirupsen/logrus"

	"github.com/arr-ai/ebnf/ast"
	"github.com/arr-ai/ebnf/parse"
)

// Trace logging for the combinators. Nothing is formatted unless logrus is at
// TraceLevel.
//
//	defer enterf("atom %v", lookahead(*input)).exitf(&node, &err)

type logExiter struct {
	format string
	args   []interface{}
}

func enterf(format string, args ...interface{}) logExiter {
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		logrus.Tracef("--> "+format, args...)
	}
	return logExiter{format: format, args: args}
}

func (l logExiter) exitf(node *ast.Node, err **ParseError) {
	if !logrus.IsLevelEnabled(logrus.TraceLevel) {
		return
	}
	if *err != nil {
		logrus.WithField("error", (*err).Kind).Tracef("<-- "+l.format, l.args...)
		return
	}
	logrus.WithField("node", *node).Tracef("<-- "+l.format, l.args...)
}

// lookahead defers rendering a preview of the input until it is logged.
type lookahead parse.Scanner

func (l lookahead) String() string {
	return "@" + parse.Scanner(l).Preview(16)
}
