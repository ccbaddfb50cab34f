// Command gridq trains a tabular Q-learning agent to navigate a grid
// world and reports the greedy path it learns
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"

	"github.com/samuelfneumann/gridq/charts"
	"github.com/samuelfneumann/gridq/environment/gridworld"
	"github.com/samuelfneumann/gridq/experiment"
	"github.com/samuelfneumann/gridq/experiment/trackers"
	"github.com/samuelfneumann/gridq/render"
	"github.com/samuelfneumann/gridq/utils/progressbar"
)

// cellSize is the width in pixels of a grid cell in PNG renderings
const cellSize = 40

// trainOptions holds the flags of the train command
type trainOptions struct {
	config   string
	episodes int
	maxSteps int
	seed     uint64
	out      string
	noColor  bool
	progress bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "gridq",
		Short:        "Tabular Q-learning in a grid world",
		SilenceUsage: true,
	}
	root.AddCommand(newTrainCmd())
	return root
}

func newTrainCmd() *cobra.Command {
	var o trainOptions

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train an agent and show the greedy path it learns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.experimentConfig(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			_, err = train(ctx, c, o, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.config, "config", "", "JSON experiment configuration file")
	flags.IntVar(&o.episodes, "episodes", 0, "number of training episodes")
	flags.IntVar(&o.maxSteps, "max-steps", 0, "maximum steps per episode")
	flags.Uint64Var(&o.seed, "seed", 0, "random seed")
	flags.StringVar(&o.out, "out", "out", "directory runs are saved in")
	flags.BoolVar(&o.noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&o.progress, "progress", false, "display a progress bar")

	return cmd
}

// experimentConfig returns the experiment configuration with the flags
// set on the command line applied over the configuration file
func (o trainOptions) experimentConfig(cmd *cobra.Command) (experiment.Config,
	error) {
	c := experiment.DefaultConfig()
	if o.config != "" {
		var err error
		if c, err = experiment.LoadConfig(o.config); err != nil {
			return experiment.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("episodes") {
		c.Episodes = o.episodes
	}
	if flags.Changed("max-steps") {
		c.MaxSteps = o.maxSteps
	}
	if flags.Changed("seed") {
		c.Seed = o.seed
	}

	if err := c.Validate(); err != nil {
		return experiment.Config{}, err
	}
	return c, nil
}

// train runs an experiment, saves its data in a new run directory under
// o.out, and returns the run directory
func train(ctx context.Context, c experiment.Config, o trainOptions,
	stdout, stderr io.Writer) (string, error) {
	au := aurora.NewAurora(!o.noColor)
	fmt.Fprintln(stdout, au.Bold("Grid World Q-Learning Agent"))
	fmt.Fprintf(stdout, "%v=Agent, %v=Goal, %v=Obstacles\n",
		au.Yellow("Yellow"), au.Cyan("Cyan"), au.Red("Red"))

	runDir := filepath.Join(o.out, uuid.NewString())
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", fmt.Errorf("train: could not create run directory: %w",
			err)
	}

	g, q, err := c.Create()
	if err != nil {
		return "", fmt.Errorf("train: %w", err)
	}

	returns := trackers.NewReturn(filepath.Join(runDir, "returns.bin"))
	lengths := trackers.NewEpisodeLength(filepath.Join(runDir, "lengths.bin"))
	success := trackers.NewSuccess(filepath.Join(runDir, "success.bin"))

	e := experiment.NewOnline(g, q, c, returns, lengths, success)
	e.SetLogger(log.New(stdout, "", 0))
	if o.progress {
		e.SetProgressBar(progressbar.NewManualProgressBar(stderr, 50,
			c.Episodes))
	}

	results, runErr := e.Run(ctx)
	if runErr != nil {
		fmt.Fprintf(stderr, "Warning: training stopped after %d episodes: "+
			"%v\n", len(results), runErr)
	}

	// Save whatever was collected, even if training was interrupted
	if err := e.Save(); err != nil {
		return runDir, fmt.Errorf("train: %w", err)
	}
	if err := saveCharts(runDir, c, returns.Data(), success.Data()); err != nil {
		return runDir, fmt.Errorf("train: %w", err)
	}
	if err := saveSnapshots(runDir, g, results); err != nil {
		return runDir, fmt.Errorf("train: %w", err)
	}
	if runErr != nil {
		return runDir, runErr
	}

	fmt.Fprintln(stdout, "\nTraining complete! Now showing optimal path...")
	rollout, err := e.Evaluate(c.EvalSteps)
	if err != nil {
		return runDir, fmt.Errorf("train: %w", err)
	}

	if err := render.ASCII(stdout, g, rollout.Path, au); err != nil {
		return runDir, fmt.Errorf("train: %w", err)
	}
	fmt.Fprintln(stdout, "\nState values:")
	if err := render.Values(stdout, q.StateValues(g.Dims()), 1); err != nil {
		return runDir, fmt.Errorf("train: %w", err)
	}

	if rollout.Reached {
		fmt.Fprintf(stdout, "Optimal path found in %d steps!\n", rollout.Steps)
	} else {
		fmt.Fprintf(stdout, "Goal not reached within %d steps\n",
			rollout.Steps)
	}

	err = render.PNG(filepath.Join(runDir, "path.png"), g, rollout.Path,
		cellSize)
	if err != nil {
		return runDir, fmt.Errorf("train: %w", err)
	}

	fmt.Fprintf(stdout, "Run saved to %v\n", runDir)
	return runDir, nil
}

// saveCharts saves the learning curves of a run as PNG and HTML
func saveCharts(runDir string, c experiment.Config, returns,
	success []float64) error {
	if len(returns) == 0 {
		return nil
	}

	window := c.ReportEvery
	if window < 1 {
		window = 1
	}

	returnCurves := []charts.Series{
		{Name: "Return", Data: returns},
		{Name: fmt.Sprintf("Return (%d-episode average)", window),
			Data: charts.MovingAverage(returns, window)},
	}
	err := charts.LearningCurvePNG(filepath.Join(runDir, "curve.png"),
		"Episodic Return", returnCurves...)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(runDir, "curve.html"))
	if err != nil {
		return fmt.Errorf("saveCharts: could not create file: %w", err)
	}
	defer f.Close()

	err = charts.LearningCurveHTML(f, "Grid World Training",
		append(returnCurves, charts.Series{
			Name: fmt.Sprintf("Success rate (%d-episode average)", window),
			Data: charts.MovingAverage(success, window),
		})...)
	if err != nil {
		return err
	}
	return f.Close()
}

// saveSnapshots renders the paths recorded during training
func saveSnapshots(runDir string, g *gridworld.GridWorld,
	results []experiment.EpisodeResult) error {
	for _, r := range results {
		if len(r.Path) == 0 {
			continue
		}
		filename := filepath.Join(runDir,
			fmt.Sprintf("episode-%04d.png", r.Episode+1))
		if err := render.PNG(filename, g, r.Path, cellSize); err != nil {
			return err
		}
	}
	return nil
}
