// Shared session plumbing for the run and shell commands.
package main

import (
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/quadboard/internal/board"
	"github.com/mesh-intelligence/quadboard/internal/intent"
	"github.com/mesh-intelligence/quadboard/internal/journal"
	"github.com/mesh-intelligence/quadboard/internal/summary"
	"github.com/mesh-intelligence/quadboard/pkg/types"
)

// session is one board plus its journal, alive for a single command.
type session struct {
	app         *app
	board       *board.Board
	journal     *journal.Journal
	stopJournal func()
	out         io.Writer
}

// openSession creates a board from the configured seed and attaches a
// journal to it. The caller must Close the session.
func (a *app) openSession(out io.Writer) (*session, error) {
	b, err := board.New(a.cfg.SeedItems, board.WithLogger(a.logger.Named("board")))
	if err != nil {
		return nil, sysError(fmt.Errorf("create board: %w", err))
	}

	j, err := journal.Open(a.cfg.JournalDSN, a.logger.Named("journal"))
	if err != nil {
		return nil, sysError(err)
	}

	return &session{
		app:         a,
		board:       b,
		journal:     j,
		stopJournal: j.Follow(b),
		out:         out,
	}, nil
}

// Close detaches and closes the journal.
func (s *session) Close() error {
	s.stopJournal()
	return s.journal.Close()
}

// apply runs one intent. A rejected intent stops the session in strict mode;
// otherwise it is logged and skipped.
func (s *session) apply(in intent.Intent) error {
	res, err := intent.Apply(s.board, in)
	if err != nil {
		if s.app.cfg.Strict {
			return userError(fmt.Errorf("%s rejected: %w", in.Type, err))
		}
		s.app.logger.Warn("intent skipped",
			zap.String("type", string(in.Type)),
			zap.Int("page", s.board.CurrentPage()+1),
			zap.Error(err))
		return nil
	}
	if res.Report != nil {
		return s.printReport(*res.Report)
	}
	return nil
}

// printSummary prints the summary of the board's current pages.
func (s *session) printSummary() error {
	return s.printReport(summary.BuildReport(s.board.Pages()))
}

// printReport writes r in the configured summary format.
func (s *session) printReport(r summary.Report) error {
	if s.app.cfg.SummaryFormat == types.SummaryFormatJSON {
		out, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return sysError(fmt.Errorf("marshal JSON: %w", err))
		}
		fmt.Fprintln(s.out, string(out))
		return nil
	}
	fmt.Fprint(s.out, summary.Format(r))
	return nil
}

// printHistory writes the journal entries recorded so far.
func (s *session) printHistory() error {
	entries, err := s.journal.Entries()
	if err != nil {
		return sysError(fmt.Errorf("read journal: %w", err))
	}
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "No changes recorded")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(s.out, "%3d  %-8s page %d", e.Seq, e.Kind, e.Page+1)
		if e.ItemID != "" {
			fmt.Fprintf(s.out, "  item %s -> quadrant %s", e.ItemID, e.QuadrantID)
		}
		fmt.Fprintln(s.out)
	}
	return nil
}
