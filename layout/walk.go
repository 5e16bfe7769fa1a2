package layout

// Walk calls visit for el and all its descendants
// in depth-first order, parents before children.
// If visit returns false then the children
// of that element are skipped.
func Walk(el Element, visit func(el Element) bool) {
	if el == nil || !visit(el) {
		return
	}
	switch e := el.(type) {
	case Row:
		for _, child := range e.Children {
			Walk(child, visit)
		}
	case Column:
		for _, child := range e.Children {
			Walk(child, visit)
		}
	case Container:
		Walk(e.Content, visit)
	}
}

// Texts returns the content of all Text leaves
// of the tree in depth-first order.
func Texts(el Element) []string {
	var texts []string
	Walk(el, func(el Element) bool {
		if t, ok := el.(Text); ok {
			texts = append(texts, t.Content)
		}
		return true
	})
	return texts
}
