package elemq

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/tsawler/elemq/dom"
	"github.com/tsawler/elemq/query"
)

const scoresPage = `<html><body>
<table>
	<tr><td class="name" data-rank="3">carol</td><td class="score">42</td></tr>
	<tr><td class="name" data-rank="1">alice</td><td class="score">7</td></tr>
	<tr><td class="name" data-rank="2">bob</td><td class="score">100</td></tr>
	<tr><td class="name" data-rank="4">anna</td><td class="score">19</td></tr>
</table>
<ul><li>apple</li><li>banana</li><li>avocado</li></ul>
</body></html>`

func writePage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scores.html")
	if err := os.WriteFile(path, []byte(scoresPage), 0o644); err != nil {
		t.Fatalf("writing page: %v", err)
	}
	return path
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestOpen(t *testing.T) {
	// Test with non-existent file
	_, err := Open("nonexistent.html").Select("li").Texts()
	if err == nil {
		t.Error("expected error for non-existent file")
	}

	texts, err := Open(writePage(t)).Select("li").Texts()
	if err != nil {
		t.Fatalf("Texts() failed: %v", err)
	}
	if want := []string{"apple", "banana", "avocado"}; !equalStrings(texts, want) {
		t.Errorf("Texts() = %q, want %q", texts, want)
	}
}

func TestOpenEmptyFilename(t *testing.T) {
	if _, err := Open("").Elements(); err == nil {
		t.Error("expected error for empty filename")
	}
}

func TestFromReaderChain(t *testing.T) {
	texts, err := FromReader(strings.NewReader(scoresPage)).
		Select("li").
		StartsWith("a").
		Texts()
	if err != nil {
		t.Fatalf("Texts() failed: %v", err)
	}
	if want := []string{"apple", "avocado"}; !equalStrings(texts, want) {
		t.Errorf("Texts() = %q, want %q", texts, want)
	}
}

func TestNumericOrderAndLimit(t *testing.T) {
	q := FromReader(strings.NewReader(scoresPage)).Select("td").By(dom.Attr("class")).EndsWith("score").By(dom.Text)

	asc, err := q.OrderAsc().Limit(3).Texts()
	if err != nil {
		t.Fatalf("Texts() failed: %v", err)
	}
	if want := []string{"7", "19", "42"}; !equalStrings(asc, want) {
		t.Errorf("ascending = %q, want %q", asc, want)
	}

	desc, err := q.OrderDesc().Slice(1, 2).Texts()
	if err != nil {
		t.Fatalf("Texts() failed: %v", err)
	}
	if want := []string{"42", "19"}; !equalStrings(desc, want) {
		t.Errorf("descending = %q, want %q", desc, want)
	}

	n, err := q.AtLeast(19).AtMost(42).Count()
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Count() = %d, want 2", n)
	}
}

func TestOrderByAttribute(t *testing.T) {
	texts, err := FromReader(strings.NewReader(scoresPage)).
		Select("td").
		By(dom.Attr("class")).
		StartsWith("name").
		By(dom.Attr("data-rank")).
		AtLeast(1).
		OrderAsc().
		By(dom.Text).
		Texts()
	if err != nil {
		t.Fatalf("Texts() failed: %v", err)
	}
	if want := []string{"alice", "bob", "carol", "anna"}; !equalStrings(texts, want) {
		t.Errorf("Texts() = %q, want %q", texts, want)
	}
}

func TestMalformedNumberFails(t *testing.T) {
	_, err := FromReader(strings.NewReader(scoresPage)).Select("li").AtLeast(1).Texts()
	if !errors.Is(err, query.ErrMalformedNumber) {
		t.Errorf("Texts() error = %v, want ErrMalformedNumber", err)
	}
}

func TestQueryIsImmutable(t *testing.T) {
	base := FromReader(strings.NewReader(scoresPage)).Select("li")
	filtered := base.StartsWith("b")

	all, err := base.Count()
	if err != nil {
		t.Fatal(err)
	}
	some, err := filtered.Count()
	if err != nil {
		t.Fatal(err)
	}
	if all != 3 || some != 1 {
		t.Errorf("base count = %d, filtered count = %d, want 3 and 1", all, some)
	}

	// Running twice gives the same result
	again, err := filtered.Count()
	if err != nil {
		t.Fatal(err)
	}
	if again != some {
		t.Errorf("second Count() = %d, want %d", again, some)
	}
}

func TestFromElements(t *testing.T) {
	root, err := dom.Parse(strings.NewReader(scoresPage))
	if err != nil {
		t.Fatal(err)
	}
	elems := dom.ElementsByTag(root, "li")

	texts, err := FromElements(elems).OrderDesc().Texts()
	if err != nil {
		t.Fatalf("Texts() failed: %v", err)
	}
	if want := []string{"banana", "avocado", "apple"}; !equalStrings(texts, want) {
		t.Errorf("Texts() = %q, want %q", texts, want)
	}

	// The caller's collection is untouched
	if got := dom.Text(elems[0]); got != "apple" {
		t.Errorf("elems[0] = %q, want apple", got)
	}
}

func TestCollate(t *testing.T) {
	page := `<ul><li>é</li><li>f</li><li>e</li></ul>`

	texts, err := FromReader(strings.NewReader(page)).Select("li").Collate(language.French).OrderAsc().Texts()
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"e", "é", "f"}; !equalStrings(texts, want) {
		t.Errorf("Texts() = %q, want %q", texts, want)
	}
}

func TestPlan(t *testing.T) {
	p, err := query.ParsePlan([]byte("steps:\n  - order: desc\n  - limit: {count: 1}\n"), dom.Resolver)
	if err != nil {
		t.Fatal(err)
	}

	texts, err := FromReader(strings.NewReader(scoresPage)).Select("li").Plan(p).Texts()
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"banana"}; !equalStrings(texts, want) {
		t.Errorf("Texts() = %q, want %q", texts, want)
	}
}

func TestWithin(t *testing.T) {
	page := `<html><body>
<ul><li>outside</li></ul>
<OL><li>b</li><li>a</li></OL>
</body></html>`

	texts, err := FromReader(strings.NewReader(page)).Within("OL").Select("li").OrderAsc().Texts()
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a", "b"}; !equalStrings(texts, want) {
		t.Errorf("Texts() = %q, want %q", texts, want)
	}

	n, err := FromReader(strings.NewReader(page)).Within("table").Select("li").Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("Count() = %d, want 0 when the scope element is missing", n)
	}
}

func TestNilExtractor(t *testing.T) {
	if _, err := FromReader(strings.NewReader(scoresPage)).By(nil).Texts(); err == nil {
		t.Error("expected error for nil extractor")
	}
}

func TestMust(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Must() should panic on error")
		}
	}()
	Must(Open("nonexistent.html").Count())
}
