// Package layout computes the fixed per-page grid geometry for tracking
// sheets. All values are PDF points (1/72 inch) with the origin at the
// top-left corner of the page, matching the renderer's coordinate system.
package layout

import (
	"os"

	"gopkg.in/yaml.v3"

	"qrsheets/internal/errs"
)

const (
	Columns      = 2
	Rows         = 5
	CellsPerPage = Columns * Rows
)

// Layout holds the page geometry constants. The zero value is not usable;
// start from Default or Load.
type Layout struct {
	PageWidth    float64 `yaml:"page_width"`
	PageHeight   float64 `yaml:"page_height"`
	MarginTop    float64 `yaml:"margin_top"`
	MarginBottom float64 `yaml:"margin_bottom"`
	MarginLeft   float64 `yaml:"margin_left"`
	MarginRight  float64 `yaml:"margin_right"`
	QRSize       float64 `yaml:"qr_size"`
	QRPadding    float64 `yaml:"qr_padding"`
	CellGutter   float64 `yaml:"cell_gutter"`
}

// Default returns the US Letter geometry the sheets were designed around.
// The wider left margin leaves room for punching or binding.
func Default() Layout {
	return Layout{
		PageWidth:    612,
		PageHeight:   792,
		MarginTop:    36,
		MarginBottom: 36,
		MarginLeft:   72,
		MarginRight:  36,
		QRSize:       60,
		QRPadding:    6,
		CellGutter:   12,
	}
}

// Load reads YAML overrides from path on top of the defaults. Fields absent
// from the file keep their default values.
func Load(path string) (Layout, error) {
	l := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return l, errs.Config("read layout file %q: %v", path, err)
	}
	if err := yaml.Unmarshal(data, &l); err != nil {
		return l, errs.Config("parse layout file %q: %v", path, err)
	}
	if err := l.Validate(); err != nil {
		return l, err
	}
	return l, nil
}

// Validate rejects geometry that cannot produce a usable grid.
func (l Layout) Validate() error {
	if l.PageWidth <= 0 || l.PageHeight <= 0 {
		return errs.Config("page dimensions must be positive")
	}
	if l.MarginTop < 0 || l.MarginBottom < 0 || l.MarginLeft < 0 || l.MarginRight < 0 {
		return errs.Config("margins must not be negative")
	}
	if l.QRSize <= 0 || l.QRPadding < 0 || l.CellGutter < 0 {
		return errs.Config("qr size must be positive and spacing must not be negative")
	}
	if l.cellWidth() < l.QRSize {
		return errs.Config("cell width %.1fpt cannot hold a %.1fpt QR symbol", l.cellWidth(), l.QRSize)
	}
	if l.cellHeight() <= l.QRSize+l.QRPadding {
		return errs.Config("cell height %.1fpt leaves no room for a note box", l.cellHeight())
	}
	return nil
}

func (l Layout) cellWidth() float64 {
	usable := l.PageWidth - l.MarginLeft - l.MarginRight
	return (usable - (Columns-1)*l.CellGutter) / Columns
}

func (l Layout) cellHeight() float64 {
	usable := l.PageHeight - l.MarginTop - l.MarginBottom
	return (usable - (Rows-1)*l.CellGutter) / Rows
}

// Rect is an axis-aligned box, origin at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// GridCell is one of the ten fixed positions on a page: a square QR region
// top-aligned and centered in the cell, with the note box filling the rest.
type GridCell struct {
	Index int
	Row   int
	Col   int
	Cell  Rect
	QR    Rect
	Note  Rect
}

// PageSpec is the complete geometry for one page: effective margins, label
// anchor and the ten cells in row-major order.
type PageSpec struct {
	Number      int
	MarginLeft  float64
	MarginRight float64
	// LabelRight is the x coordinate the page-number label is right-aligned
	// to; LabelBaseline is the text baseline y.
	LabelRight    float64
	LabelBaseline float64
	Cells         [CellsPerPage]GridCell
}

// ForPage computes the geometry for an absolute page number. It is a pure
// function of its inputs. In double-sided mode even pages swap the left and
// right margins so the bound edge lines up across front and back.
func (l Layout) ForPage(pageNum int, doubleSided bool) PageSpec {
	ml, mr := l.MarginLeft, l.MarginRight
	if doubleSided && pageNum%2 == 0 {
		ml, mr = mr, ml
	}

	cellW := (l.PageWidth - ml - mr - (Columns-1)*l.CellGutter) / Columns
	cellH := l.cellHeight()

	spec := PageSpec{
		Number:        pageNum,
		MarginLeft:    ml,
		MarginRight:   mr,
		LabelRight:    l.PageWidth - mr,
		LabelBaseline: l.PageHeight - l.MarginBottom + 20,
	}

	for i := 0; i < CellsPerPage; i++ {
		row, col := i/Columns, i%Columns
		cell := Rect{
			X: ml + float64(col)*(cellW+l.CellGutter),
			Y: l.MarginTop + float64(row)*(cellH+l.CellGutter),
			W: cellW,
			H: cellH,
		}
		spec.Cells[i] = GridCell{
			Index: i,
			Row:   row,
			Col:   col,
			Cell:  cell,
			QR: Rect{
				X: cell.X + (cellW-l.QRSize)/2,
				Y: cell.Y,
				W: l.QRSize,
				H: l.QRSize,
			},
			Note: Rect{
				X: cell.X,
				Y: cell.Y + l.QRSize + l.QRPadding,
				W: cellW,
				H: cellH - l.QRSize - l.QRPadding,
			},
		}
	}
	return spec
}
