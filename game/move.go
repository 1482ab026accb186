package game

import "fmt"

// Move is a board coordinate, row 0 at the top, column 0 on the left.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}
