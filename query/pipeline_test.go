package query

import (
	"errors"
	"strings"
	"testing"
)

func TestOrderThenLimitYieldsSmallest(t *testing.T) {
	in := []string{"42", "7", "19", "3", "100", "8"}
	sorted := []string{"3", "7", "8", "19", "42", "100"}

	for n := 0; n <= len(in); n++ {
		got, err := Apply(newElements(in...), NewOrderByTextAsc(childText), NewLimitAt(0, n))
		if err != nil {
			t.Fatalf("n=%d: Apply() error: %v", n, err)
		}
		if !equalStrings(texts(got), sorted[:n]) {
			t.Errorf("n=%d: got %q, want %q", n, texts(got), sorted[:n])
		}
	}
}

func TestPipelineRun(t *testing.T) {
	elems := newElements("a3", "b1", "a10", "a2", "c5")

	p := NewPipeline(
		NewStartsWithText(childText, "a"),
		NewOrderByTextDesc(childText),
	).Then(NewLimit(2))

	if err := p.Run(&elems); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got, want := texts(elems), []string{"a3", "a2"}; !equalStrings(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPipelineThenDoesNotAlias(t *testing.T) {
	base := make(Pipeline, 0, 4)
	base = append(base, NewLimit(5))

	a := base.Then(NewLimit(1))
	b := base.Then(NewLimit(2))

	if a[1] == b[1] {
		t.Error("Then() results share storage")
	}
	if len(base) != 1 {
		t.Errorf("len(base) = %d, want 1", len(base))
	}
}

func TestPipelineStopsAtFirstError(t *testing.T) {
	elems := newElements("1", "x", "3")
	p := NewPipeline(
		NewLimit(10),
		NewGTEByText(childText, 2),
		NewLimit(0),
	)

	err := p.Run(&elems)
	if !errors.Is(err, ErrMalformedNumber) {
		t.Fatalf("Run() error = %v, want ErrMalformedNumber", err)
	}
	if !strings.Contains(err.Error(), "step 2") {
		t.Errorf("Run() error = %q, want it to name step 2", err)
	}
	// The final Limit(0) never ran
	if got, want := texts(elems), []string{"x", "3"}; !equalStrings(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmptyPipeline(t *testing.T) {
	elems := newElements("b", "a")
	if err := NewPipeline().Run(&elems); err != nil {
		t.Fatal(err)
	}
	if got, want := texts(elems), []string{"b", "a"}; !equalStrings(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}
