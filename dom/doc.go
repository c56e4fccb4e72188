// Package dom parses HTML documents into element collections and provides
// the standard text extractors used by the query commands.
//
//	root, err := dom.ParseFile("page.html")
//	if err != nil {
//	    // handle error
//	}
//	items := dom.ElementsByTag(root, "li")
//	err = query.NewOrderByTextAsc(dom.Text).Execute(&items)
//
// Element selection is by tag name only.
package dom
