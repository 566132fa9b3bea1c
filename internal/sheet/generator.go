// Package sheet assembles tracking-sheet PDF documents: one QR symbol plus
// an empty note box per grid cell, ten cells per page.
package sheet

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog"

	"qrsheets/internal/errs"
	"qrsheets/internal/ident"
	"qrsheets/internal/layout"
	"qrsheets/internal/qrimg"
)

const (
	labelFont = "Helvetica"
	labelSize = 10
)

// Params selects what to generate.
type Params struct {
	NumPages    int
	StartPage   int
	DoubleSided bool
}

// Validate rejects parameters before any generation work begins.
func (p Params) Validate() error {
	if p.NumPages < 1 {
		return errs.Config("number of pages must be at least 1, got %d", p.NumPages)
	}
	if p.StartPage < 1 {
		return errs.Config("starting page number must be at least 1, got %d", p.StartPage)
	}
	return nil
}

// Result is one fully generated document. PDF is complete and self-contained;
// IDs lists every tracking id issued, in page and cell order.
type Result struct {
	PDF   []byte
	IDs   []string
	Pages []layout.PageSpec
}

// Generator builds documents for a fixed layout. NewID may be replaced in
// tests to make id issuance deterministic.
type Generator struct {
	Layout layout.Layout
	NewID  func() string
	Log    zerolog.Logger
}

// New returns a Generator using fresh random tracking ids.
func New(l layout.Layout, log zerolog.Logger) *Generator {
	return &Generator{Layout: l, NewID: ident.New, Log: log}
}

// Generate renders pages StartPage through StartPage+NumPages-1 into a single
// PDF, strictly sequentially. Any encoding or rendering failure aborts the
// whole run; a partial document is never returned.
func (g *Generator) Generate(p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	g.Log.Info().
		Int("pages", p.NumPages).
		Int("codes", p.NumPages*layout.CellsPerPage).
		Int("start_page", p.StartPage).
		Msg("generating")
	if p.DoubleSided {
		g.Log.Info().Msg("double-sided mode: margins flip on even pages")
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: g.Layout.PageWidth, Ht: g.Layout.PageHeight},
	})
	doc.SetAutoPageBreak(false, 0)
	doc.SetFont(labelFont, "", labelSize)

	res := &Result{
		IDs:   make([]string, 0, p.NumPages*layout.CellsPerPage),
		Pages: make([]layout.PageSpec, 0, p.NumPages),
	}

	for i := 0; i < p.NumPages; i++ {
		if p.NumPages > 1 {
			g.Log.Info().Msgf("page %d/%d", i+1, p.NumPages)
		}
		spec := g.Layout.ForPage(p.StartPage+i, p.DoubleSided)
		ids, err := g.renderPage(doc, spec)
		if err != nil {
			return nil, err
		}
		res.IDs = append(res.IDs, ids...)
		res.Pages = append(res.Pages, spec)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, errs.IO(err, "assemble PDF document")
	}
	res.PDF = buf.Bytes()
	return res, nil
}

func (g *Generator) renderPage(doc *fpdf.Fpdf, spec layout.PageSpec) ([]string, error) {
	doc.AddPage()
	if doc.Err() {
		return nil, errs.IO(doc.Error(), "add page %d", spec.Number)
	}
	ids := make([]string, 0, layout.CellsPerPage)

	for _, cell := range spec.Cells {
		id := g.NewID()
		png, err := qrimg.Encode(id, cell.QR.W)
		if err != nil {
			return nil, err
		}

		opts := fpdf.ImageOptions{ImageType: "PNG"}
		doc.RegisterImageOptionsReader(id, opts, bytes.NewReader(png))
		doc.ImageOptions(id, cell.QR.X, cell.QR.Y, cell.QR.W, cell.QR.H, false, opts, 0, "")
		doc.Rect(cell.Note.X, cell.Note.Y, cell.Note.W, cell.Note.H, "D")
		ids = append(ids, id)
	}

	label := fmt.Sprintf("Page %d", spec.Number)
	doc.Text(spec.LabelRight-doc.GetStringWidth(label), spec.LabelBaseline, label)

	if doc.Err() {
		return nil, errs.IO(doc.Error(), "render page %d", spec.Number)
	}
	return ids, nil
}
