package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/domonda/tableview/layout"
)

// DefaultPixelsPerCell is the number of layout length units
// mapped to one terminal cell for spacing and padding.
const DefaultPixelsPerCell = 10

// Renderer renders layout trees as terminal text using lipgloss.
type Renderer struct {
	// PixelsPerCell converts spacing and padding of the layout
	// to terminal cells, rounding up. Values < 1 use DefaultPixelsPerCell.
	PixelsPerCell int
}

// Render renders el with DefaultPixelsPerCell
// for a terminal width of width cells.
// A width <= 0 sizes all elements to their content.
func Render(el layout.Element, width int) string {
	return Renderer{}.Render(el, width)
}

// Render renders el for a terminal width of width cells.
// A width <= 0 sizes all elements to their content.
func (r Renderer) Render(el layout.Element, width int) string {
	switch e := el.(type) {
	case nil:
		return ""
	case layout.Text:
		return e.Content
	case layout.Row:
		return r.renderRow(e, width)
	case layout.Column:
		return r.renderColumn(e, width)
	case layout.Container:
		return r.renderContainer(e, width)
	}
	return ""
}

func (r Renderer) cells(length int) int {
	if length <= 0 {
		return 0
	}
	ppc := r.PixelsPerCell
	if ppc < 1 {
		ppc = DefaultPixelsPerCell
	}
	return (length + ppc - 1) / ppc
}

func (r Renderer) renderContainer(c layout.Container, width int) string {
	var (
		style   = lipgloss.NewStyle()
		padding = r.cells(c.Padding)
		frame   = 2 * padding
	)
	if padding > 0 {
		style = style.Padding(padding)
	}
	if c.Style.HasBorder() {
		border := lipgloss.NormalBorder()
		if c.Style.BorderRadius > 0 {
			border = lipgloss.RoundedBorder()
		}
		style = style.Border(border).
			BorderForeground(lipgloss.Color(c.Style.BorderColor.Hex()))
		frame += 2
	}

	innerWidth := 0
	if width > 0 {
		innerWidth = max(width-frame, 1)
	}
	content := r.Render(c.Content, innerWidth)

	if c.Width == layout.Fill && width > 0 {
		// lipgloss width includes padding but not the border
		style = style.Width(innerWidth + 2*padding)
	}
	return style.Render(content)
}

func (r Renderer) renderRow(row layout.Row, width int) string {
	if len(row.Children) == 0 {
		return ""
	}
	var (
		spacing  = r.cells(row.Spacing)
		parts    = make([]string, len(row.Children))
		numFill  = 0
		rest     = width - spacing*(len(row.Children)-1)
		isFilled = make([]bool, len(row.Children))
	)
	// Shrink children take their content width first,
	// the rest is shared equally by the Fill children.
	for i, child := range row.Children {
		if width > 0 && fills(child) {
			isFilled[i] = true
			numFill++
			continue
		}
		parts[i] = r.Render(child, 0)
		rest -= lipgloss.Width(parts[i])
	}
	if numFill > 0 {
		rest = max(rest, numFill)
		share, remainder := rest/numFill, rest%numFill
		for i, child := range row.Children {
			if !isFilled[i] {
				continue
			}
			w := share
			if remainder > 0 {
				w++
				remainder--
			}
			parts[i] = r.Render(child, w)
		}
	}

	if spacing == 0 {
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	spacer := strings.Repeat(" ", spacing)
	joined := make([]string, 0, 2*len(parts)-1)
	for i, part := range parts {
		if i > 0 {
			joined = append(joined, spacer)
		}
		joined = append(joined, part)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joined...)
}

func (r Renderer) renderColumn(col layout.Column, width int) string {
	if len(col.Children) == 0 {
		return ""
	}
	var (
		spacing = r.cells(col.Spacing)
		parts   = make([]string, 0, 2*len(col.Children)-1)
	)
	for i, child := range col.Children {
		if i > 0 && spacing > 0 {
			parts = append(parts, strings.Repeat("\n", spacing-1))
		}
		parts = append(parts, r.Render(child, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// fills returns true if el takes an equal share
// of the horizontal space of its parent row.
func fills(el layout.Element) bool {
	c, ok := el.(layout.Container)
	return ok && c.Width == layout.Fill
}
