package model

// Board dimensions are fixed for the tower grid
const (
	BoardRows = 13
	BoardCols = 9
)

// CellKind identifies what kind of tile occupies a cell
type CellKind string

const (
	// KindBlank is an empty cell with no letter
	KindBlank CellKind = "blank"
	// KindNormal is an ordinary letter tile
	KindNormal CellKind = "normal"
	// KindRed clears its entire row when played as part of a word
	KindRed CellKind = "red"
	// KindStarred multiplies the score of any word it takes part in
	KindStarred CellKind = "starred"
)

// Position identifies a cell on the board
type Position struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// Cell is a single board cell: an optional letter plus its tile kind.
// Invariant: Kind == KindBlank exactly when Letter == 0.
type Cell struct {
	Letter rune     `json:"letter"`
	Kind   CellKind `json:"kind"`
}

// BlankCell returns the canonical empty cell
func BlankCell() Cell {
	return Cell{Letter: 0, Kind: KindBlank}
}

// Board is the fixed 13x9 letter grid. Row-major, row 0 = top, col 0 = left.
// The fixed-size array gives boards value semantics: copying the struct copies
// the whole grid.
type Board struct {
	Cells [BoardRows][BoardCols]Cell `json:"cells"`
}

// NewBoard creates an all-blank board
func NewBoard() *Board {
	b := &Board{}
	for row := 0; row < BoardRows; row++ {
		for col := 0; col < BoardCols; col++ {
			b.Cells[row][col] = BlankCell()
		}
	}
	return b
}

// Get returns the cell at the given position, or a blank cell out of bounds
func (b *Board) Get(pos Position) Cell {
	if !b.IsValidPosition(pos) {
		return BlankCell()
	}
	return b.Cells[pos.Row][pos.Col]
}

// Set places a cell at the given position
func (b *Board) Set(pos Position, cell Cell) {
	if b.IsValidPosition(pos) {
		b.Cells[pos.Row][pos.Col] = cell
	}
}

// SetLetter places a normal-kind letter at the given position
func (b *Board) SetLetter(pos Position, letter rune) {
	b.Set(pos, Cell{Letter: letter, Kind: KindNormal})
}

// Clear blanks the cell at the given position
func (b *Board) Clear(pos Position) {
	b.Set(pos, BlankCell())
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < BoardRows && pos.Col >= 0 && pos.Col < BoardCols
}

// IsBlank returns true if the cell at the given position holds no letter
func (b *Board) IsBlank(pos Position) bool {
	return b.Get(pos).Kind == KindBlank
}

// TileCount returns the number of non-blank cells
func (b *Board) TileCount() int {
	count := 0
	for row := 0; row < BoardRows; row++ {
		for col := 0; col < BoardCols; col++ {
			if b.Cells[row][col].Kind != KindBlank {
				count++
			}
		}
	}
	return count
}

// IsEmpty returns true if every cell is blank
func (b *Board) IsEmpty() bool {
	return b.TileCount() == 0
}

// Fullness returns the fraction of cells holding a tile, in [0, 1]
func (b *Board) Fullness() float64 {
	return float64(b.TileCount()) / float64(BoardRows*BoardCols)
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	copied := *b
	return &copied
}

// Validate checks cell-level invariants: blank cells carry no letter and
// non-blank cells carry one
func (b *Board) Validate() error {
	for row := 0; row < BoardRows; row++ {
		for col := 0; col < BoardCols; col++ {
			cell := b.Cells[row][col]
			switch cell.Kind {
			case KindBlank:
				if cell.Letter != 0 {
					return ErrInvalidBoard
				}
			case KindNormal, KindRed, KindStarred:
				if cell.Letter == 0 {
					return ErrInvalidBoard
				}
			default:
				return ErrInvalidBoard
			}
		}
	}
	return nil
}
