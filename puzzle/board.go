package puzzle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/bearmaps/astar"
)

// ErrBadBoard indicates malformed board input.
var ErrBadBoard = errors.New("puzzle: malformed board")

// maxBoardSize keeps every tile in a single byte.
const maxBoardSize = 15

// Board is an immutable sliding-tile position. Boards are comparable and can
// be used directly as search vertices.
type Board struct {
	n     int
	tiles string // row-major, one byte per tile, 0 is the blank
}

// NewBoard builds a board from rows of tiles.
// Returns ErrBadBoard unless rows form an N×N permutation of 0..N²−1.
func NewBoard(rows [][]int) (Board, error) {
	n := len(rows)
	if n == 0 || n > maxBoardSize {
		return Board{}, fmt.Errorf("%w: size %d", ErrBadBoard, n)
	}

	buf := make([]byte, 0, n*n)
	seen := make([]bool, n*n)
	for i, row := range rows {
		if len(row) != n {
			return Board{}, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrBadBoard, i, len(row), n)
		}
		for _, t := range row {
			if t < 0 || t >= n*n || seen[t] {
				return Board{}, fmt.Errorf("%w: tile %d invalid or repeated", ErrBadBoard, t)
			}
			seen[t] = true
			buf = append(buf, byte(t))
		}
	}

	return Board{n: n, tiles: string(buf)}, nil
}

// ParseBoard reads a board: the size N followed by N×N whitespace-separated tiles.
func ParseBoard(r io.Reader) (Board, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func() (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("%w: unexpected end of input", ErrBadBoard)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrBadBoard, err)
		}
		return v, nil
	}

	n, err := next()
	if err != nil {
		return Board{}, err
	}
	if n <= 0 || n > maxBoardSize {
		return Board{}, fmt.Errorf("%w: size %d", ErrBadBoard, n)
	}
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		for j := range rows[i] {
			if rows[i][j], err = next(); err != nil {
				return Board{}, err
			}
		}
	}

	return NewBoard(rows)
}

// Solved returns the goal board of size n: tiles in order, blank last.
func Solved(n int) Board {
	buf := make([]byte, n*n)
	for i := 0; i < n*n-1; i++ {
		buf[i] = byte(i + 1)
	}

	return Board{n: n, tiles: string(buf)}
}

// Size returns N.
func (b Board) Size() int { return b.n }

// Tile returns the tile at row i, column j (0 for the blank).
func (b Board) Tile(i, j int) int { return int(b.tiles[i*b.n+j]) }

// blank returns the row-major index of the blank.
func (b Board) blank() int { return strings.IndexByte(b.tiles, 0) }

// Neighbors returns the boards reachable by one blank move, in the order
// up, down, left, right.
func (b Board) Neighbors() []Board {
	z := b.blank()
	zi, zj := z/b.n, z%b.n

	out := make([]Board, 0, 4)
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		i, j := zi+d[0], zj+d[1]
		if i < 0 || i >= b.n || j < 0 || j >= b.n {
			continue
		}
		buf := []byte(b.tiles)
		k := i*b.n + j
		buf[z], buf[k] = buf[k], buf[z]
		out = append(out, Board{n: b.n, tiles: string(buf)})
	}

	return out
}

// Manhattan returns the sum over all tiles of the grid distance between the
// tile's cell in b and in goal. The blank is not counted.
func (b Board) Manhattan(goal Board) int {
	where := make([]int, len(goal.tiles))
	for k := 0; k < len(goal.tiles); k++ {
		where[goal.tiles[k]] = k
	}

	sum := 0
	for k := 0; k < len(b.tiles); k++ {
		t := b.tiles[k]
		if t == 0 {
			continue
		}
		g := where[t]
		sum += abs(k/b.n-g/b.n) + abs(k%b.n-g%b.n)
	}

	return sum
}

// String renders the board in ParseBoard format.
func (b Board) String() string {
	var sb strings.Builder
	width := len(strconv.Itoa(b.n*b.n - 1))
	fmt.Fprintf(&sb, "%d\n", b.n)
	for i := 0; i < b.n; i++ {
		for j := 0; j < b.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%*d", width, b.Tile(i, j))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// BoardGraph is the sliding-tile puzzle graph with the Manhattan heuristic.
type BoardGraph struct{}

// Neighbors returns unit-cost edges to every board one blank move away.
func (BoardGraph) Neighbors(b Board) ([]astar.WeightedEdge[Board], error) {
	next := b.Neighbors()
	out := make([]astar.WeightedEdge[Board], len(next))
	for i, nb := range next {
		out[i] = astar.NewEdge(b, nb, 1)
	}

	return out, nil
}

// EstimatedDistanceToGoal returns the Manhattan distance of b to goal.
func (BoardGraph) EstimatedDistanceToGoal(b, goal Board) (float64, error) {
	if b.n != goal.n {
		return 0, fmt.Errorf("%w: size %d vs goal size %d", ErrBadBoard, b.n, goal.n)
	}

	return float64(b.Manhattan(goal)), nil
}
