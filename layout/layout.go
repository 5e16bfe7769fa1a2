// Package layout provides the element model for declarative views.
//
// A view is a tree of Elements built fresh on every refresh:
// Text leaves, Row and Column containers with ordered children,
// and Container wrappers carrying an optional visual Style.
// Hosts like the tui package turn such a tree into output.
package layout

// Element is a node of a layout tree.
// It is implemented by Text, Row, Column, and Container.
type Element interface {
	element()
}

var (
	_ Element = Text{}
	_ Element = Row{}
	_ Element = Column{}
	_ Element = Container{}
)

// Length defines how an element is sized along an axis.
type Length int

const (
	// Shrink sizes an element to its content.
	Shrink Length = iota
	// Fill makes an element take an equal share of the available space.
	Fill
)

func (l Length) String() string {
	switch l {
	case Shrink:
		return "Shrink"
	case Fill:
		return "Fill"
	}
	return "Length(?)"
}

// Text is a leaf element displaying a string as is.
type Text struct {
	Content string
}

// NewText returns a Text element for content.
func NewText(content string) Text {
	return Text{Content: content}
}

func (Text) element() {}

// Row arranges its children horizontally, left to right.
type Row struct {
	Children []Element
	// Spacing between two neighboring children
	Spacing int
}

// NewRow returns an empty Row.
func NewRow() Row {
	return Row{}
}

// Push returns a copy of the row with child appended.
func (r Row) Push(child Element) Row {
	r.Children = append(r.Children[:len(r.Children):len(r.Children)], child)
	return r
}

// WithSpacing returns a copy of the row with the passed spacing.
func (r Row) WithSpacing(spacing int) Row {
	r.Spacing = spacing
	return r
}

func (Row) element() {}

// Column arranges its children vertically, top to bottom.
type Column struct {
	Children []Element
	// Spacing between two neighboring children
	Spacing int
}

// NewColumn returns an empty Column.
func NewColumn() Column {
	return Column{}
}

// Push returns a copy of the column with child appended.
func (c Column) Push(child Element) Column {
	c.Children = append(c.Children[:len(c.Children):len(c.Children)], child)
	return c
}

// WithSpacing returns a copy of the column with the passed spacing.
func (c Column) WithSpacing(spacing int) Column {
	c.Spacing = spacing
	return c
}

func (Column) element() {}

// Container wraps a single element and can decorate it
// with a Style, a Width, and Padding on all sides.
type Container struct {
	Content Element
	// Style is nil for an undecorated container
	Style   *Style
	Width   Length
	Padding int
}

// NewContainer returns an undecorated Container for content.
func NewContainer(content Element) Container {
	return Container{Content: content}
}

// WithStyle returns a copy of the container using style.
func (c Container) WithStyle(style *Style) Container {
	c.Style = style
	return c
}

// WithWidth returns a copy of the container using width.
func (c Container) WithWidth(width Length) Container {
	c.Width = width
	return c
}

// WithPadding returns a copy of the container using padding.
func (c Container) WithPadding(padding int) Container {
	c.Padding = padding
	return c
}

func (Container) element() {}
