package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/samuelfneumann/gridq/environment"
	"github.com/samuelfneumann/gridq/utils/matutils"
	"gonum.org/v1/gonum/mat"
)

// ASCII writes the grid to w, one line per row. Obstacles are drawn
// red, the goal cyan, and the agent yellow. Colors are only emitted if
// au was created with colors enabled.
func ASCII(w io.Writer, g Grid, path []environment.State,
	au aurora.Aurora) error {
	agent := agentAt(g, path)
	visited := onPath(path)
	buf := bufio.NewWriter(w)

	rows, cols := g.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c > 0 {
				buf.WriteByte(' ')
			}

			cell := cellOf(g, environment.State{Row: r, Col: c}, agent,
				visited)
			switch cell {
			case ObstacleCell:
				fmt.Fprint(buf, au.Red(string(cell)))
			case GoalCell:
				fmt.Fprint(buf, au.Cyan(string(cell)))
			case AgentCell:
				fmt.Fprint(buf, au.Bold(au.Yellow(string(cell))))
			case PathCell:
				fmt.Fprint(buf, au.White(string(cell)))
			default:
				fmt.Fprint(buf, au.Green(string(cell)))
			}
		}
		buf.WriteByte('\n')
	}

	return buf.Flush()
}

// Values writes the range of the state values followed by a table of
// the values to w, with prec digits after the decimal point
func Values(w io.Writer, values *mat.Dense, prec int) error {
	min, max := matutils.Range(values)
	_, err := fmt.Fprintf(w, "range: [%.*f, %.*f]\n%v\n", prec, min, prec,
		max, matutils.FormatPrec(values, prec))
	return err
}
