package render

// CSS classes emitted by the formatters. The stylesheet and the toggle
// script shipped by pkg/dumper depend on these names.
const (
	ClassNull            = "insight-dump-null"
	ClassBoolean         = "insight-dump-boolean"
	ClassNumber          = "insight-dump-number"
	ClassString          = "insight-dump-string"
	ClassDateTime        = "insight-dump-datetime"
	ClassDateTimeContent = "insight-dump-datetime-content"
	ClassResource        = "insight-dump-resource"
	ClassType            = "insight-dump-type"
	ClassToggle          = "insight-dump-toggle"
	ClassArrayKey        = "insight-dump-array-key"
	ClassArrayContent    = "insight-dump-array-content"
	ClassObject          = "insight-dump-object"
	ClassObjectID        = "insight-dump-object-id"
	ClassObjectKey       = "insight-dump-object-key"
	ClassMaxDepth        = "insight-dump-max-depth"

	StateOpened = "opened"
	StateClosed = "closed"
)

// MaxDepthMessage is the text of the sentinel emitted past the depth limit
const MaxDepthMessage = "max depth reached"

// booleanClass returns the class pair for a boolean literal
func booleanClass(literal string) string {
	return ClassBoolean + " " + ClassBoolean + "--" + literal
}
