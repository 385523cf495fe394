package grid

import "fmt"

// Diagnostics reports how well the last Generate filled the bounding box.
// None of these conditions stop resolution; the geometry is still produced.
type Diagnostics struct {
	// AvailableWidth is the bounding width minus left and right padding.
	AvailableWidth  int
	AvailableHeight int

	// RequestedWidth is the sum of explicit column widths.
	RequestedWidth  int
	RequestedHeight int

	// ColumnSlack is the available width minus the sum of resolved column
	// widths. Small values come from rounding.
	ColumnSlack int
	RowSlack    int

	// ColumnsDegenerate is set when every column has an explicit width and
	// they do not add up to the available width.
	ColumnsDegenerate bool
	RowsDegenerate    bool
}

// ColumnOverflow reports whether explicit widths alone exceed the
// available width.
func (d Diagnostics) ColumnOverflow() bool {
	return d.RequestedWidth > d.AvailableWidth
}

// RowOverflow reports whether explicit heights alone exceed the available
// height.
func (d Diagnostics) RowOverflow() bool {
	return d.RequestedHeight > d.AvailableHeight
}

// OK reports whether there is nothing worth warning about. Rounding slack
// alone is not a warning.
func (d Diagnostics) OK() bool {
	return !d.ColumnsDegenerate && !d.RowsDegenerate && !d.ColumnOverflow() && !d.RowOverflow()
}

// Warnings describes each problem in one line.
func (d Diagnostics) Warnings() []string {
	var out []string
	switch {
	case d.ColumnOverflow():
		out = append(out, fmt.Sprintf("explicit column widths (%dpx) exceed the available width (%dpx)",
			d.RequestedWidth, d.AvailableWidth))
	case d.ColumnsDegenerate:
		out = append(out, fmt.Sprintf("all columns have explicit widths; %dpx of width left unused", d.ColumnSlack))
	}
	switch {
	case d.RowOverflow():
		out = append(out, fmt.Sprintf("explicit row heights (%dpx) exceed the available height (%dpx)",
			d.RequestedHeight, d.AvailableHeight))
	case d.RowsDegenerate:
		out = append(out, fmt.Sprintf("all rows have explicit heights; %dpx of height left unused", d.RowSlack))
	}
	return out
}
