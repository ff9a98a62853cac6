package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/quadboard/internal/intent"
	"github.com/mesh-intelligence/quadboard/internal/render"
)

type runFlags struct {
	summary bool
	show    bool
	history bool
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Apply intents from a JSON Lines file",
		Long: `Apply user intents, one JSON object per line, to a fresh board.
Reads standard input when file is omitted or "-". Each submit intent prints
the layout summary.

  {"type":"drop","item":{"id":"1","content":"Item 1"},"quadrant":"2"}
  {"type":"layout","layout":[{"i":"1","x":0,"y":0,"w":6,"h":6}, ...]}
  {"type":"navigate","delta":-1}
  {"type":"goto","page":2}
  {"type":"add_page"}
  {"type":"submit"}`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return userError(fmt.Errorf("open intents: %w", err))
				}
				defer file.Close()
				r = file
			}
			return runIntents(a, r, cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().BoolVar(&f.summary, "summary", false, "print the summary after the last intent")
	cmd.Flags().BoolVar(&f.show, "show", false, "render the current page after the last intent")
	cmd.Flags().BoolVar(&f.history, "history", false, "print the session journal after the last intent")
	return cmd
}

func runIntents(a *app, r io.Reader, out io.Writer, f runFlags) error {
	intents, err := intent.Decode(r)
	if err != nil {
		return userError(err)
	}

	s, err := a.openSession(out)
	if err != nil {
		return err
	}
	defer s.Close()

	for i, in := range intents {
		if err := s.apply(in); err != nil {
			return fmt.Errorf("intent %d: %w", i+1, err)
		}
	}
	a.logger.Debug("intents applied",
		zap.Int("count", len(intents)),
		zap.Int("pages", s.board.PageCount()),
		zap.Int("pool", len(s.board.Pool())))

	if f.summary {
		if err := s.printSummary(); err != nil {
			return err
		}
	}
	if f.show {
		pages := s.board.Pages()
		current := s.board.CurrentPage()
		fmt.Fprintln(out, render.Page(pages[current], current, len(pages)))
	}
	if f.history {
		return s.printHistory()
	}
	return nil
}
