package query

import "fmt"

// Pipeline is an ordered sequence of commands applied left to right to the
// same collection.
type Pipeline []Command

// NewPipeline creates a pipeline from cmds.
func NewPipeline(cmds ...Command) Pipeline {
	return Pipeline(cmds)
}

// Then returns a new pipeline with cmds appended.
func (p Pipeline) Then(cmds ...Command) Pipeline {
	out := make(Pipeline, 0, len(p)+len(cmds))
	out = append(out, p...)
	return append(out, cmds...)
}

// Run executes each command in turn against elems. It stops at the first
// failing command; the collection keeps whatever that command and its
// predecessors already did to it.
func (p Pipeline) Run(elems *Elements) error {
	for i, cmd := range p {
		if err := cmd.Execute(elems); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

// Apply runs cmds against elems and returns the resulting collection.
// elems itself is modified.
func Apply(elems Elements, cmds ...Command) (Elements, error) {
	err := NewPipeline(cmds...).Run(&elems)
	return elems, err
}
