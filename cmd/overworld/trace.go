package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-overworld/internal/actor"
	"github.com/vovakirdan/tui-overworld/internal/script"
)

var (
	flagTraceFile  string
	flagTraceScale int
)

var traceCmd = &cobra.Command{
	Use:   "trace [events...]",
	Short: "Replay key events headlessly",
	Long: `Replays a trace against a fresh actor and prints the snapshot
published after each event.

Tokens:
  +Key      key-down (ArrowUp, ArrowDown, ArrowLeft, ArrowRight)
  -Key      key-up
  .         advance one step in the held direction
  scale=N   set the pixel scale (only once)

A trace file is YAML with an "events" list of the same tokens.

Examples:
  overworld trace +ArrowRight +ArrowDown -ArrowRight .
  overworld trace --scale 4 +ArrowRight
  overworld trace --file walk.yaml`,
	Run: runTrace,
}

func init() {
	traceCmd.Flags().StringVar(&flagTraceFile, "file", "", "Read events from a YAML trace file")
	traceCmd.Flags().IntVar(&flagTraceScale, "scale", 0, "Set the pixel scale before the first event (0 = from config)")
}

func runTrace(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	logger, err := newLogger(os.Stderr, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	events, err := script.Parse(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagTraceFile != "" {
		fromFile, err := script.LoadFile(flagTraceFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		events = append(fromFile, events...)
	}
	if len(events) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no events given")
		fmt.Fprintln(os.Stderr, "Run 'overworld trace --help' for the token syntax.")
		os.Exit(1)
	}

	published := 0
	ctrl := actor.NewController(
		actor.WithLogger(logger),
		actor.WithObserver(func(actor.Snapshot) { published++ }),
	)
	defer ctrl.Close()

	scale := flagTraceScale
	if scale == 0 {
		scale = cfg.Display.PixelScale
	}
	if err := ctrl.SetPixelScale(scale); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	steps := script.Run(ctrl, events)

	fmt.Println(traceTable(steps).View())
	fmt.Println()

	rejected := 0
	for _, s := range steps {
		if s.Err != nil {
			rejected++
		}
	}
	fmt.Printf("%d events, %d snapshots published, %d rejected\n", len(steps), published, rejected)
}

// traceTable lays the steps out as a static table.
func traceTable(steps []script.Step) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Event", Width: 12},
		{Title: "Pos", Width: 10},
		{Title: "Facing", Width: 6},
		{Title: "Mode", Width: 6},
		{Title: "Active", Width: 6},
		{Title: "Actor px", Width: 10},
		{Title: "Map px", Width: 10},
		{Title: "Error", Width: 40},
	}

	rows := make([]table.Row, len(steps))
	for i, s := range steps {
		snap := s.Snapshot
		actorPx, mapPx := "-", "-"
		if snap.Projected {
			actorPx = snap.ActorOffset.String()
			mapPx = snap.MapOffset.String()
		}
		errText := ""
		if s.Err != nil {
			errText = s.Err.Error()
		}
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			s.Event.String(),
			snap.Position.String(),
			snap.Facing.String(),
			string(snap.Mode),
			snap.Active.String(),
			actorPx,
			mapPx,
			errText,
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}
