package document

// Formatting property bags for tables, rows and cells. Measurements keep the
// source format's units (twentieths of a point, fiftieths of a percent,
// eighths of a point); translation to CSS happens in the converter.

// MeasureKind identifies the unit of a Measure.
type MeasureKind string

const (
	// MeasureDxa is twentieths of an (absolute) point.
	MeasureDxa MeasureKind = "dxa"
	// MeasurePercent is fiftieths of a percent.
	MeasurePercent MeasureKind = "pct"
	// MeasureAuto lets the renderer size the box.
	MeasureAuto MeasureKind = "auto"
	// MeasureNil is an explicit zero width.
	MeasureNil MeasureKind = "nil"
)

// Measure is a length in source-format units.
type Measure struct {
	Kind  MeasureKind
	Value int
}

// Dxa returns a twentieths-of-a-point measure.
func Dxa(value int) *Measure { return &Measure{Kind: MeasureDxa, Value: value} }

// Percent returns a fiftieths-of-a-percent measure.
func Percent(value int) *Measure { return &Measure{Kind: MeasurePercent, Value: value} }

// Border describes one border side.
type Border struct {
	Style string // source border style name, e.g. "single", "dashed"
	Size  int    // eighths of a point
	Color string // hex without '#', or "auto"
}

// Borders groups the border sides of a table or cell. InsideH and InsideV are
// only meaningful on tables, where they supply defaults for inner cell edges.
type Borders struct {
	Top     *Border
	Right   *Border
	Bottom  *Border
	Left    *Border
	InsideH *Border
	InsideV *Border
}

// Shading describes background fill.
type Shading struct {
	Fill    string // hex without '#', or "auto"
	Color   string // pattern color, hex without '#', or "auto"
	Pattern string // e.g. "clear", "solid"
}

// CellMargins are per-side cell padding values.
type CellMargins struct {
	Top    *Measure
	Right  *Measure
	Bottom *Measure
	Left   *Measure
}

// TableProperties is table-level formatting.
type TableProperties struct {
	Width     *Measure
	Borders   Borders
	Shading   *Shading
	Alignment string // "left", "center", "right"
}

// RowProperties is row-level formatting. HeightRule follows the source
// format: "atLeast" or "exact".
type RowProperties struct {
	Height     *Measure
	HeightRule string
}

// CellProperties is cell-level formatting.
type CellProperties struct {
	Width             *Measure
	Borders           Borders
	Shading           *Shading
	Margins           CellMargins
	Alignment         string // "left", "center", "right", "both"
	VerticalAlignment string // "top", "center", "bottom"
	TextDirection     string // "tbRl", "btLr"
}
