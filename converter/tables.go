package converter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rgonek/docx-html-converter/document"
	"github.com/rgonek/docx-html-converter/htmltree"
)

// TableFormatter translates source-format table formatting into CSS. All
// functions are pure: identical input always yields an identical declaration
// string, which keeps end-to-end output snapshot-testable.
//
// Unit rules: twentieths of a point become pixels via round(v/20*96/72);
// fiftieths of a percent become percent via v/50; border sizes in eighths of
// a point become pixels with a 1px floor; "auto" and "nil" map to the literal
// values "auto" and "0".

// TableCSS renders table-level formatting. Declarations are emitted in a
// fixed order: width, margins (alignment), borders, background.
func TableCSS(p document.TableProperties) string {
	var d declarations
	d.add("width", measureCSS(p.Width))
	switch p.Alignment {
	case "center":
		d.add("margin-left", "auto")
		d.add("margin-right", "auto")
	case "right":
		d.add("margin-left", "auto")
	}
	d.addBorders(p.Borders, document.Borders{})
	d.addShading(p.Shading)
	return d.String()
}

// RowCSS renders row-level formatting.
func RowCSS(p document.RowProperties) string {
	var d declarations
	if p.Height != nil {
		if p.HeightRule == "exact" {
			d.add("height", measureCSS(p.Height))
		} else {
			d.add("min-height", measureCSS(p.Height))
		}
	}
	return d.String()
}

// CellCSS renders cell-level formatting. The table's inside-horizontal and
// inside-vertical borders act as defaults for cell edges the cell does not
// set itself.
func CellCSS(p document.CellProperties, table document.TableProperties) string {
	var d declarations
	d.add("width", measureCSS(p.Width))
	if p.Alignment != "" {
		d.add("text-align", cellTextAlign(p.Alignment))
	}
	if p.VerticalAlignment != "" {
		d.add("vertical-align", cellVerticalAlign(p.VerticalAlignment))
	}
	switch p.TextDirection {
	case "tbRl":
		d.add("writing-mode", "vertical-rl")
	case "btLr":
		d.add("writing-mode", "vertical-lr")
	}
	d.addBorders(p.Borders, document.Borders{
		Top:    table.Borders.InsideH,
		Bottom: table.Borders.InsideH,
		Left:   table.Borders.InsideV,
		Right:  table.Borders.InsideV,
	})
	d.addShading(p.Shading)
	d.add("padding-top", measureCSS(p.Margins.Top))
	d.add("padding-right", measureCSS(p.Margins.Right))
	d.add("padding-bottom", measureCSS(p.Margins.Bottom))
	d.add("padding-left", measureCSS(p.Margins.Left))
	return d.String()
}

type declarations struct {
	parts []string
}

func (d *declarations) add(property, value string) {
	if value == "" {
		return
	}
	d.parts = append(d.parts, property+": "+value)
}

func (d *declarations) addBorders(borders, fallback document.Borders) {
	d.addBorder("border-top", borders.Top, fallback.Top)
	d.addBorder("border-right", borders.Right, fallback.Right)
	d.addBorder("border-bottom", borders.Bottom, fallback.Bottom)
	d.addBorder("border-left", borders.Left, fallback.Left)
}

func (d *declarations) addBorder(property string, border, fallback *document.Border) {
	if border == nil {
		border = fallback
	}
	if border == nil {
		return
	}
	style := borderStyleCSS(border.Style)
	if style == "none" {
		d.add(property, "none")
		return
	}
	d.add(property, fmt.Sprintf("%dpx %s %s", borderWidthPx(border.Size), style, borderColorCSS(border.Color)))
}

func (d *declarations) addShading(shading *document.Shading) {
	if shading == nil {
		return
	}
	fill := shading.Fill
	if (fill == "" || fill == "auto") && shading.Pattern == "solid" {
		fill = shading.Color
	}
	if fill == "" || fill == "auto" {
		return
	}
	d.add("background-color", "#"+strings.ToLower(fill))
}

func (d *declarations) String() string {
	return strings.Join(d.parts, "; ")
}

func measureCSS(m *document.Measure) string {
	if m == nil {
		return ""
	}
	switch m.Kind {
	case document.MeasureDxa:
		return strconv.Itoa(dxaToPx(m.Value)) + "px"
	case document.MeasurePercent:
		return strconv.FormatFloat(float64(m.Value)/50, 'f', -1, 64) + "%"
	case document.MeasureAuto:
		return "auto"
	case document.MeasureNil:
		return "0"
	default:
		return ""
	}
}

func dxaToPx(value int) int {
	return int(math.Round(float64(value) / 20 * 96 / 72))
}

func borderWidthPx(eighthsOfPoint int) int {
	px := int(math.Round(float64(eighthsOfPoint) / 8 * 96 / 72))
	if px < 1 {
		px = 1
	}
	return px
}

func borderStyleCSS(style string) string {
	switch style {
	case "nil", "none":
		return "none"
	case "dashed", "dashSmallGap":
		return "dashed"
	case "dotted":
		return "dotted"
	case "double", "doubleWave", "triple":
		return "double"
	case "inset":
		return "inset"
	case "outset":
		return "outset"
	default:
		// single, thick, wave, dotDash and the remaining decorative styles
		// all degrade to solid.
		return "solid"
	}
}

func borderColorCSS(color string) string {
	if color == "" || color == "auto" {
		return "#000000"
	}
	return "#" + strings.ToLower(color)
}

func cellTextAlign(alignment string) string {
	if alignment == "both" {
		return "justify"
	}
	return alignment
}

func cellVerticalAlign(alignment string) string {
	if alignment == "center" {
		return "middle"
	}
	return alignment
}

// convertTable renders a table, its rows and cells. Leading header rows are
// grouped into a thead with th cells; the remaining rows form the tbody. A
// style-map rule on the table replaces the default table wrapper.
func (s *state) convertTable(t *document.Table) []htmltree.Node {
	path := htmltree.PathOf(htmltree.FreshPathElem("table").WithAttrs(styleAttr(TableCSS(t.Properties))))
	if rule, ok := s.styleMap.Find(t); ok {
		path = rule.Path
	} else if t.StyleID != "" || t.StyleName != "" {
		s.addWarning(CodeUnrecognizedStyle, fmt.Sprintf("unrecognised table style: %s (style id: %s)", t.StyleName, t.StyleID))
	}

	var header, body []htmltree.Node
	inHeader := true
	for _, child := range t.Children {
		row, ok := child.(*document.TableRow)
		if !ok {
			body = append(body, s.convertElement(child)...)
			continue
		}
		inHeader = inHeader && row.IsHeader
		if inHeader {
			header = append(header, s.convertTableRow(row, true, t.Properties)...)
		} else {
			body = append(body, s.convertTableRow(row, false, t.Properties)...)
		}
	}

	children := body
	if len(header) > 0 {
		children = []htmltree.Node{
			htmltree.Elem("thead", nil, header...),
			htmltree.Elem("tbody", nil, body...),
		}
	}
	return path.Wrap(children)
}

// convertTableRow renders one row. inHeader reflects the row's place in the
// table's leading header segment, not the row's own flag: a header-marked row
// after the first body row renders td cells.
func (s *state) convertTableRow(row *document.TableRow, inHeader bool, table document.TableProperties) []htmltree.Node {
	cells := make([]htmltree.Node, 0, len(row.Children))
	for _, child := range row.Children {
		if cell, ok := child.(*document.TableCell); ok {
			cells = append(cells, s.convertTableCell(cell, inHeader, table)...)
			continue
		}
		cells = append(cells, s.convertElement(child)...)
	}
	return []htmltree.Node{htmltree.Elem("tr", styleAttr(RowCSS(row.Properties)), cells...)}
}

func (s *state) convertTableCell(cell *document.TableCell, isHeader bool, table document.TableProperties) []htmltree.Node {
	tag := "td"
	if isHeader {
		tag = "th"
	}

	attrs := map[string]string{}
	if cell.ColSpan > 1 {
		attrs["colspan"] = strconv.Itoa(cell.ColSpan)
	}
	if cell.RowSpan > 1 {
		attrs["rowspan"] = strconv.Itoa(cell.RowSpan)
	}
	if css := CellCSS(cell.Properties, table); css != "" {
		attrs["style"] = css
	}
	if len(attrs) == 0 {
		attrs = nil
	}

	children := s.convertChildren(cell.Children)
	// An empty cell still needs its box drawn.
	children = append(children, htmltree.ForceWrite)
	return []htmltree.Node{htmltree.Elem(tag, attrs, children...)}
}

func styleAttr(css string) map[string]string {
	if css == "" {
		return nil
	}
	return map[string]string{"style": css}
}
