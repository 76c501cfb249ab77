// Package cmpcheck adapts two-operand comparisons to check.Checker for the
// command line. Operands are strings, parsed by operand type, and may be
// read from a JSON document.
package cmpcheck
