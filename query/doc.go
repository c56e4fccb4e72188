// Package query provides composable commands that filter, sort, and
// paginate an ordered collection of HTML elements.
//
// Each [Command] mutates an [Elements] collection in place. Commands are
// keyed by text pulled from each element by a caller-supplied
// [TextExtractor]:
//
//	elems := query.Elements{...}
//	err := query.NewPipeline(
//	    query.NewStartsWithText(dom.Text, "a"),
//	    query.NewOrderByTextAsc(dom.Text),
//	    query.NewLimit(10),
//	).Run(&elems)
//
// # Commands
//
// The set of commands is closed:
//
//   - [OrderByTextAsc], [OrderByTextDesc] - stable, numeric-aware sort
//   - [StartsWithText], [EndsWithText] - keep elements with a literal prefix or suffix
//   - [GTEByText], [LTEByText] - keep elements whose text is an integer at or above/below a threshold
//   - [Limit] - keep the sub-range [index, index+count)
//
// # Comparison
//
// Ordering commands use [Compare]: when both trimmed texts are integers
// (optional leading minus, then ASCII digits) they are compared numerically,
// otherwise they are compared as strings by code point, or by a
// locale-specific collation when [WithCollation] is given.
//
// # Errors
//
// Only the threshold filters can fail. When an element's text does not parse
// as a base-10 integer, Execute returns an error wrapping [ErrMalformedNumber]
// and stops. Elements already removed stay removed; the failing element and
// everything after it are kept in their original order.
//
// # Plans
//
// A [Pipeline] can also be loaded from YAML with [ParsePlan] or [LoadPlan].
package query
