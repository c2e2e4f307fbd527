package layout

// PaginatorState is one step of the pagination state machine. Overflow is
// expected control flow here, never an error.
type PaginatorState int

const (
	// StateNewPage opens a fresh page and resets the remaining height.
	StateNewPage PaginatorState = iota
	// StateDrawHeader charges the per-page header band.
	StateDrawHeader
	// StateDrawRow places blocks until one no longer fits.
	StateDrawRow
	// StatePageFull closes the current page and loops to StateNewPage.
	StatePageFull
)

// Paginator distributes measured blocks onto pages of fixed content
// height. Every page pays for the header again; the footer reserve is
// never given to rows. The machine is deterministic: equal inputs always
// produce equal page breaks.
type Paginator struct {
	ContentHeight float64
	HeaderHeight  float64
	FooterReserve float64

	state     PaginatorState
	remaining float64
}

// State exposes the current machine state, mainly for tests.
func (p *Paginator) State() PaginatorState {
	return p.state
}

// Paginate splits the blocks with the given heights into pages and
// returns the block index ranges per page. A block taller than a whole
// fresh page is force-placed alone rather than looping forever.
func (p *Paginator) Paginate(heights []float64) [][]int {
	if len(heights) == 0 {
		return [][]int{{}}
	}

	var pages [][]int
	current := []int{}
	p.state = StateNewPage

	i := 0
	for i < len(heights) {
		switch p.state {
		case StateNewPage:
			p.remaining = p.ContentHeight - p.FooterReserve
			current = []int{}
			p.state = StateDrawHeader
		case StateDrawHeader:
			p.remaining -= p.HeaderHeight
			p.state = StateDrawRow
		case StateDrawRow:
			if heights[i] > p.remaining && len(current) > 0 {
				p.state = StatePageFull
				continue
			}
			p.remaining -= heights[i]
			current = append(current, i)
			i++
		case StatePageFull:
			pages = append(pages, current)
			p.state = StateNewPage
		}
	}
	pages = append(pages, current)
	return pages
}

// FitsOnOnePage reports whether all blocks fit without overflow.
func (p *Paginator) FitsOnOnePage(heights []float64) bool {
	return len(p.Paginate(heights)) == 1
}
