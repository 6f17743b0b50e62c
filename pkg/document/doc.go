// Package document loads element trees from YAML or JSON files.
//
// A document describes a page: its title, language, head metadata, a
// resolver context and a body tree. Tree nodes are scalars (text, numbers,
// booleans), lists (flattened in place) or mappings with a tag:
//
//	title: Home
//	context:
//	  user: Ada
//	body:
//	  tag: main
//	  props: {className: content}
//	  children:
//	    - tag: h1
//	      children: [Welcome]
//	    - tag: Greeting
//	      props: {name: Ada}
//
// Lowercase tags are markup. Other tags name components looked up in a
// Registry; "Fragment" groups children without a wrapper. JSON documents
// use the same shape.
package document
