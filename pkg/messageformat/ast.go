package messageformat

// Message is a parsed pattern: a sequence of nodes.
type Message []Node

// Node is an element of a parsed message.
type Node interface {
	node()
}

// Text is literal output with quoting already resolved.
type Text struct {
	Value string
}

// Argument is a plain placeholder, {name}.
type Argument struct {
	Name string
}

// Argument types of a Formatted node.
const (
	TypeNumber = "number"
	TypeDate   = "date"
	TypeTime   = "time"
)

// Formatted is a {name, number|date|time[, style]} placeholder.
type Formatted struct {
	Name  string
	Type  string
	Style string
}

// Pound is "#" inside a plural branch.
type Pound struct{}

// Plural is a plural or selectordinal placeholder. Option keys are either
// plural categories or exact matches in the form "=N".
type Plural struct {
	Name    string
	Ordinal bool
	Offset  float64
	Options map[string]Message
}

// Select is a {name, select, ...} placeholder.
type Select struct {
	Name    string
	Options map[string]Message
}

func (Text) node()      {}
func (Argument) node()  {}
func (Formatted) node() {}
func (Pound) node()     {}
func (Plural) node()    {}
func (Select) node()    {}
