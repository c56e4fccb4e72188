package main

import (
	"fmt"
	"math"

	"golang.org/x/text/language"

	"github.com/tsawler/elemq"
	"github.com/tsawler/elemq/dom"
	"github.com/tsawler/elemq/query"
)

type runOptions struct {
	file   string
	tag    string
	within string
	by     string
	plan   string

	prefix, suffix string
	gte, lte       int
	hasGTE, hasLTE bool

	asc, desc bool
	collation string

	offset   int
	limit    int
	hasLimit bool
}

// buildQuery turns the command line into a query. Commands run in the order
// plan, prefix, suffix, gte, lte, sort, offset/limit.
func buildQuery(opts runOptions) (*elemq.Query, error) {
	ext, err := dom.Resolver(opts.by)
	if err != nil {
		return nil, err
	}

	q := elemq.Open(opts.file).Within(opts.within).Select(opts.tag).By(ext)

	if opts.plan != "" {
		p, err := query.LoadPlan(opts.plan, dom.Resolver)
		if err != nil {
			return nil, err
		}
		q = q.Plan(p)
	}

	if opts.prefix != "" {
		q = q.StartsWith(opts.prefix)
	}
	if opts.suffix != "" {
		q = q.EndsWith(opts.suffix)
	}
	if opts.hasGTE {
		q = q.AtLeast(opts.gte)
	}
	if opts.hasLTE {
		q = q.AtMost(opts.lte)
	}

	if opts.collation != "" {
		tag, err := language.Parse(opts.collation)
		if err != nil {
			return nil, fmt.Errorf("collation %q: %w", opts.collation, err)
		}
		q = q.Collate(tag)
	}
	switch {
	case opts.asc:
		q = q.OrderAsc()
	case opts.desc:
		q = q.OrderDesc()
	}

	switch {
	case opts.hasLimit:
		q = q.Slice(opts.offset, opts.limit)
	case opts.offset > 0:
		q = q.Slice(opts.offset, math.MaxInt)
	}

	return q, nil
}
