package screen

// CellFlags is a bitmask of presentation attributes carried by a Cell.
type CellFlags uint16

const (
	FlagBold CellFlags = 1 << iota
	FlagDim
	FlagItalic
	FlagUnderline
	FlagReverse
	FlagHidden
	FlagStrike
	FlagWide
	FlagWideSpacer
	FlagDirty
)

// ColorDefault marks a Cell's Fg or Bg as "use the default", as opposed to
// an explicit palette index in [0,256).
const ColorDefault = -1

// Cell is a single grid position: a grapheme cluster, its display width,
// and presentation attributes. A width-2 cluster is stored in the left
// cell; the cell to its right is a FlagWideSpacer placeholder with an empty
// Grapheme.
type Cell struct {
	Grapheme string
	Fg       int
	Bg       int
	Flags    CellFlags
}

// NewCell returns a blank cell: a single space, default colors, no
// attributes.
func NewCell() Cell {
	return Cell{Grapheme: " ", Fg: ColorDefault, Bg: ColorDefault}
}

// Reset clears c back to a blank cell in place.
func (c *Cell) Reset() {
	*c = NewCell()
}

func (c *Cell) HasFlag(f CellFlags) bool { return c.Flags&f != 0 }
func (c *Cell) SetFlag(f CellFlags)      { c.Flags |= f }
func (c *Cell) ClearFlag(f CellFlags)    { c.Flags &^= f }

func (c *Cell) IsWide() bool        { return c.HasFlag(FlagWide) }
func (c *Cell) IsWideSpacer() bool  { return c.HasFlag(FlagWideSpacer) }
func (c *Cell) IsDirty() bool       { return c.HasFlag(FlagDirty) }
func (c *Cell) MarkDirty()          { c.SetFlag(FlagDirty) }
func (c *Cell) ClearDirty()         { c.ClearFlag(FlagDirty) }

// Copy returns an independent copy of c.
func (c Cell) Copy() Cell { return c }
