package tetris_test

import (
	"fmt"

	"github.com/plus3/fallingblocks/tetris"
)

func ExampleMachine() {
	grid := tetris.NewGrid(6, 6)
	m, err := tetris.NewMachine(tetris.DefaultConfig(), tetris.WithGrid(grid))
	if err != nil {
		panic(err)
	}

	m.Spawn(tetris.I)
	piece, _ := m.Piece()
	fmt.Println("spawned", piece)

	ghost, _ := m.Ghost()
	fmt.Println("ghost", ghost)

	m.HardDrop()
	fmt.Println(m.State(), m.LockCount())
	fmt.Print(grid)

	// Output:
	// spawned I@(3,3) rot 0
	// ghost [(1,0) (2,0) (3,0) (4,0)]
	// Locked 1
	// ------------
	// ............
	// ............
	// ............
	// ............
	// ............
	// ..########..
	// ------------
}

func ExampleProject() {
	grid := tetris.NewGrid(10, 20)
	_ = grid.Occupy([]tetris.Cell{{X: 5, Y: 2}}, tetris.O.Color())

	p := tetris.Piece{Kind: tetris.T, Rotation: tetris.RotationSpawn, Pivot: tetris.Cell{X: 5, Y: 15}}
	fmt.Println(tetris.DropDistance(p, grid), tetris.Project(p, grid))

	// Output:
	// 12 [(5,4) (4,3) (5,3) (6,3)]
}
