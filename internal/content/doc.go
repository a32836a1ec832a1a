// Package content loads site documents from JsonML files.
//
// A document file holds one JSON array in JsonML form: the tag name
// first, an optional attribute object second, then children.
//
//	["html",
//	  ["head", ["title", "Hello"]],
//	  ["body",
//	    ["h1", {"class": "hero"}, "Hello"],
//	    ["p", "Welcome."]]]
//
// LoadSite walks a directory of such files and assembles a
// tagtree.Site, mapping file paths to page paths:
//
//	content/index.json       ->  /
//	content/about.json       ->  /about
//	content/blog/hello.json  ->  /blog/hello
//	content/blog/index.json  ->  /blog
//
// Forms that do not start with "html" are wrapped in a document shell,
// so a file holding just ["h1", "Hi"] still renders as a complete page.
package content
