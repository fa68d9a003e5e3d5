/*
Package render turns arbitrary Go values into indented, class-annotated markup.

The engine classifies every value once into a Category and hands it to the
matching formatter:

	Null -> Temporal -> Text -> Boolean -> Number -> Handle ->
	Iterable -> Record -> Collection -> Opaque

Collections and records recurse back into the dispatcher with the indent
level and depth incremented by one, sharing a single Registry of visited
records. A record seen twice within one pass is printed as a short
back-reference (`T #3`), so self-referencing graphs terminate. Independently,
once the depth exceeds the configured maximum (10 by default) the subtree is
replaced by a "max depth reached" marker.

# Usage

	e := render.New(render.WithMaxDepth(5))
	html := e.Render(map[string]any{"key": "value"})

Values can take part in the rendering explicitly:

  - Iterable: ordered keyed containers, rendered as record-like collections
  - Inspectable: explicit field lists, including static (shared) fields
  - Handle / StreamHandle: external resources with optional stream metadata

The engine holds no per-call state; one Engine can be shared by any number of
goroutines.
*/
package render
