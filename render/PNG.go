package render

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/samuelfneumann/gridq/environment"
)

// Colours of PNG renderings
const (
	BackgroundColour = "#000000"
	GridColour       = "#00ff00"
	ObstacleColour   = "#fd0000"
	GoalColour       = "#00fdfd"
	AgentColour      = "#ffff00"
)

// Image draws the grid with each cell cell pixels wide. Path cells are
// covered by a translucent white square.
func Image(g Grid, path []environment.State, cell int) (image.Image,
	error) {
	if cell < 1 {
		return nil, fmt.Errorf("image: cell size %d must be positive", cell)
	}

	rows, cols := g.Dims()
	size := float64(cell)
	dc := gg.NewContext(cols*cell, rows*cell)

	dc.SetHexColor(BackgroundColour)
	dc.Clear()

	// Obstacles and goal
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			s := environment.State{Row: r, Col: c}
			switch {
			case g.IsObstacle(s):
				dc.SetHexColor(ObstacleColour)
			case g.AtGoal(s):
				dc.SetHexColor(GoalColour)
			default:
				continue
			}
			dc.DrawRectangle(float64(c)*size, float64(r)*size, size, size)
			dc.Fill()
		}
	}

	// Path
	dc.SetRGBA(1, 1, 1, 0.7)
	for s := range onPath(path) {
		dc.DrawRectangle((float64(s.Col)+0.1)*size,
			(float64(s.Row)+0.1)*size, 0.8*size, 0.8*size)
	}
	dc.Fill()

	// Agent
	agent := agentAt(g, path)
	dc.SetHexColor(AgentColour)
	dc.DrawRectangle((float64(agent.Col)+0.15)*size,
		(float64(agent.Row)+0.15)*size, 0.7*size, 0.7*size)
	dc.Fill()

	// Grid lines
	dc.SetHexColor(GridColour)
	dc.SetLineWidth(2)
	for r := 0; r <= rows; r++ {
		dc.DrawLine(0, float64(r)*size, float64(cols)*size, float64(r)*size)
	}
	for c := 0; c <= cols; c++ {
		dc.DrawLine(float64(c)*size, 0, float64(c)*size, float64(rows)*size)
	}
	dc.Stroke()

	return dc.Image(), nil
}

// PNG draws the grid and saves it as a PNG image at filename
func PNG(filename string, g Grid, path []environment.State, cell int) error {
	img, err := Image(g, path, cell)
	if err != nil {
		return fmt.Errorf("png: %w", err)
	}

	if err := gg.SavePNG(filename, img); err != nil {
		return fmt.Errorf("png: could not save image: %w", err)
	}
	return nil
}
