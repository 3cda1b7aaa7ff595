package ai

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-despair/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-despair/internal/entity"
)

const (
	scoreWin  = 10
	scoreLoss = -10
	scoreDraw = 0

	// zenBlunderRate is the chance Zen plays a random legal move.
	zenBlunderRate = 0.3
)

// moveOrder prefers the center, then corners, then edges.
var moveOrder = [entity.BoardSize]int{4, 0, 2, 6, 8, 1, 3, 5, 7}

type randSource interface {
	Intn(n int) int
	Float64() float64
}

// Engine picks moves for O. X is always the human.
type Engine struct {
	rng randSource
}

func NewEngine(rng randSource) *Engine {
	return &Engine{rng: rng}
}

// ChooseMove returns the cell O should play on board.
func (that *Engine) ChooseMove(board entity.Board, difficulty entity.Difficulty) (int, error) {
	availableCells := entity.EmptyCells(board)
	if len(availableCells) == 0 {
		return -1, apperror.ErrNoLegalMoves
	}

	if _, won := entity.WinnerOf(board); won {
		return -1, apperror.ErrBoardTerminal
	}

	if difficulty == entity.DifficultyZen && that.rng.Float64() < zenBlunderRate {
		return availableCells[that.rng.Intn(len(availableCells))], nil
	}

	bestMoves, _, err := that.BestMoves(board)
	if err != nil {
		return -1, fmt.Errorf("failed to search board: %w", err)
	}

	return bestMoves[that.rng.Intn(len(bestMoves))], nil
}

// BestMoves returns every cell reaching the game-theoretic best score for O, in preference order.
func (that *Engine) BestMoves(board entity.Board) ([]int, int, error) {
	if entity.IsFull(board) {
		return nil, 0, apperror.ErrNoLegalMoves
	}

	if _, won := entity.WinnerOf(board); won {
		return nil, 0, apperror.ErrBoardTerminal
	}

	bestScore := scoreLoss - 1
	var bestMoves []int

	for _, cell := range moveOrder {
		if board[cell] != entity.Empty {
			continue
		}

		board[cell] = entity.O
		score := minimax(&board, false)
		board[cell] = entity.Empty

		switch {
		case score > bestScore:
			bestScore = score
			bestMoves = []int{cell}
		case score == bestScore:
			bestMoves = append(bestMoves, cell)
		}
	}

	return bestMoves, bestScore, nil
}

// Score returns the exact value of board for O with the given side to move.
func Score(board entity.Board, toMove entity.Mark) int {
	return minimax(&board, toMove == entity.O)
}

func minimax(board *entity.Board, aiTurn bool) int {
	if win, ok := entity.WinnerOf(*board); ok {
		if win.Player == entity.O {
			return scoreWin
		}
		return scoreLoss
	}

	if entity.IsFull(*board) {
		return scoreDraw
	}

	if aiTurn {
		best := scoreLoss
		for cell := range board {
			if board[cell] != entity.Empty {
				continue
			}

			board[cell] = entity.O
			best = max(best, minimax(board, false))
			board[cell] = entity.Empty
		}

		return best
	}

	best := scoreWin
	for cell := range board {
		if board[cell] != entity.Empty {
			continue
		}

		board[cell] = entity.X
		best = min(best, minimax(board, true))
		board[cell] = entity.Empty
	}

	return best
}
