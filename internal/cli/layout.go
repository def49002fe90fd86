package cli

import (
	"folio/internal/dom"
	"folio/internal/page"
)

// pageLayout implements page.Layout. The renderer records each tracked
// element's line range while producing the document body; the layout
// converts rows to page pixels with the configured row size.
type pageLayout struct {
	rowPx int

	viewportRows int
	docRows      int

	tops    map[dom.Ref]int // row index in the rendered body
	heights map[dom.Ref]int // rows
}

var _ page.Layout = (*pageLayout)(nil)

func newPageLayout(rowPx int) *pageLayout {
	return &pageLayout{
		rowPx:   rowPx,
		tops:    make(map[dom.Ref]int),
		heights: make(map[dom.Ref]int),
	}
}

// record notes that el occupies rows [top, top+rows) in the rendered body.
func (l *pageLayout) record(el dom.Ref, top, rows int) {
	if !el.Present() {
		return
	}
	l.tops[el] = top
	l.heights[el] = rows
}

func (l *pageLayout) reset(viewportRows int) {
	l.viewportRows = viewportRows
	l.docRows = 0
	clear(l.tops)
	clear(l.heights)
}

func (l *pageLayout) Top(el dom.Ref) int {
	return l.tops[el] * l.rowPx
}

func (l *pageLayout) Height(el dom.Ref) int {
	return l.heights[el] * l.rowPx
}

func (l *pageLayout) ViewportHeight() int {
	return l.viewportRows * l.rowPx
}

func (l *pageLayout) DocumentHeight() int {
	return l.docRows * l.rowPx
}
