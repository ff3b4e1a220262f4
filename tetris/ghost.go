package tetris

// dropPiece moves p down until the next row is blocked. Hard drop and the
// ghost projection both go through here, so they always agree.
func dropPiece(p Piece, grid *Grid) (Piece, int) {
	rows := 0
	for {
		next := p.Translated(down)
		if !fits(next, grid) {
			return p, rows
		}
		p = next
		rows++
	}
}

// Project returns the footprint p would rest at after a hard drop. It does
// not modify the grid.
func Project(p Piece, grid *Grid) Shape {
	landed, _ := dropPiece(p, grid)
	return landed.Cells()
}

// DropDistance returns how many rows p can fall before it is blocked.
func DropDistance(p Piece, grid *Grid) int {
	_, rows := dropPiece(p, grid)
	return rows
}
