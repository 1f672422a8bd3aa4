/*
Package uritemplate parses and expands RFC 6570 URI Templates.

# Overview

A template is literal text mixed with {...} expressions. Parse turns the
text into a Template once; Expand renders it against any number of variable
sets:

	t := uritemplate.Parse("https://api.example.com/repos/{owner}/{repo}/issues{?state,labels}")

	vars := uritemplate.Map{
	    "owner":  uritemplate.StringValue("golang"),
	    "repo":   uritemplate.StringValue("go"),
	    "labels": uritemplate.ListValue("bug", "help wanted"),
	}
	url := t.Expand(vars)
	// url: "https://api.example.com/repos/golang/go/issues?labels=bug,help%20wanted"

# Operators

The first character of an expression selects how it expands:

	{var}    simple, comma separated, unreserved characters only
	{+var}   reserved, reserved characters and %XX triplets pass through
	{#var}   fragment, like reserved with a leading "#"
	{.var}   label, "." prefixed and separated
	{/var}   path segment, "/" prefixed and separated
	{;var}   path parameter, ";name=value"
	{?var}   form query, "?name=value&..."
	{&var}   form continuation, "&name=value&..."

Each variable may carry a prefix modifier ({var:3}, the first 3 code points
of a string) or an explode modifier ({var*}, one element per separator for
lists and associative arrays).

# Values

Variables resolve to a Value, which is a string, a list, or an ordered
associative array:

	uritemplate.StringValue("red")
	uritemplate.ListValue("red", "green", "blue")
	uritemplate.AssocValue(uritemplate.Pair{Key: "semi", Value: ";"})

Any type implementing Variables can supply values. Map, Bindings, and
VariablesFunc are provided; package vars builds bindings incrementally or
loads them from YAML and JSON.

Undefined variables, empty lists, and empty associative arrays produce no
output, not even a separator. A prefix modifier has no effect on lists and
associative arrays.

# Malformed Templates

Parse never fails. An expression that does not follow the grammar is kept
as literal text exactly as written, braces included, and an unterminated
"{" turns the rest of the template into literal text:

	uritemplate.Parse("{x:1y}").Expand(nil) // "{x:1y}"

Template.Degraded lists those spans for diagnostics.

# Observability

Expander wraps Parse and Expand with slog logging, OpenTelemetry metrics,
and OpenTelemetry spans:

	exp := uritemplate.NewExpander(
	    uritemplate.WithLogger(logger),
	    uritemplate.WithMetrics(true),
	    uritemplate.WithTracing(true),
	)
	t := exp.Parse(ctx, "/search{?q}")
	url := exp.Expand(ctx, t, vars)

# Thread Safety

Template is immutable and may be expanded from many goroutines at once.
Expander is safe for concurrent use after construction. Variables
implementations are only read during expansion.
*/
package uritemplate
