// Package directive extracts structured graph-edit operations from free-form
// text produced by a text generator. The recognized grammar is deliberately
// tiny (add/delete with quoted arguments) and the parser is best-effort:
// prose, malformed directives and unmatched quotes yield no operations
// instead of errors.
package directive
