package entity

type Mark string

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

// Opponent returns the mark that moves after m.
func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

const BoardSize = 9

// Board is a 3x3 grid stored row-major.
type Board [BoardSize]Mark

// WinLines are the rows, columns and diagonals, in scan order.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Win describes a satisfied line.
type Win struct {
	Player Mark   `json:"player"`
	Line   [3]int `json:"line"`
}

// WinnerOf returns the first satisfied line, if any.
func WinnerOf(board Board) (Win, bool) {
	for _, line := range WinLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != Empty && a == b && b == c {
			return Win{Player: a, Line: line}, true
		}
	}

	return Win{}, false
}

func IsFull(board Board) bool {
	for _, cell := range board {
		if cell == Empty {
			return false
		}
	}

	return true
}

func EmptyCells(board Board) []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range board {
		if cell == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

func OccupiedCells(board Board) []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range board {
		if cell != Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

// Count returns how many cells hold mark.
func Count(board Board, mark Mark) int {
	n := 0
	for _, cell := range board {
		if cell == mark {
			n++
		}
	}

	return n
}

func ValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}
