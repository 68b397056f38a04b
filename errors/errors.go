package errors

import "errors"

// Inconceivable is raised for states the code paths guarantee can't happen.
var Inconceivable = errors.New("inconceivable")
