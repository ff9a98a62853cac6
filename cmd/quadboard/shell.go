package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quadboard/internal/intent"
	"github.com/mesh-intelligence/quadboard/internal/render"
)

const shellPrompt = "quadboard> "

const shellHelp = `Commands:
  items                          list the items still available
  drop <item-id> <quadrant>      move an item into a quadrant of the current page
  layout <q>=<x>,<y>,<w>,<h> ... replace the current page's layout
  prev | next                    move to the previous or next page
  page <n>                       go to page n
  add-page                       add a page after a full last page
  show                           draw the current page
  status                         show the current page and pool size
  submit                         print the layout summary
  history                        list the changes made this session
  help                           show this help
  quit                           leave the shell`

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Arrange items interactively",
		Long:  "Start a line-oriented session on a fresh board. Type help for the command list.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(a, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// errQuit ends the shell loop without error.
var errQuit = errors.New("quit")

func runShell(a *app, in io.Reader, out io.Writer) error {
	s, err := a.openSession(out)
	if err != nil {
		return err
	}
	defer s.Close()

	fmt.Fprintln(out, render.Pool(s.board.Pool()))
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, shellPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		err := s.shellCommand(line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return sysError(fmt.Errorf("read input: %w", err))
	}
	return nil
}

// shellCommand runs one shell line. Typing mistakes are reported and the
// shell continues; rejected intents follow the session's strict policy.
func (s *session) shellCommand(line string) error {
	verb, _, _ := strings.Cut(line, " ")
	switch strings.ToLower(verb) {
	case "quit", "exit":
		return errQuit
	case "help":
		fmt.Fprintln(s.out, shellHelp)
		return nil
	case "items":
		fmt.Fprintln(s.out, render.Pool(s.board.Pool()))
		return nil
	case "show":
		pages := s.board.Pages()
		current := s.board.CurrentPage()
		fmt.Fprintln(s.out, render.Page(pages[current], current, len(pages)))
		return nil
	case "status":
		current := s.board.CurrentPage()
		full, _ := s.board.IsPageFull(current)
		fmt.Fprintf(s.out, "page %d of %d, full: %t, items available: %d\n",
			current+1, s.board.PageCount(), full, len(s.board.Pool()))
		return nil
	case "history":
		return s.printHistory()
	}

	in, err := intent.ParseCommand(line)
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return nil
	}
	return s.apply(in)
}
