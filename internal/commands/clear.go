package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spenso-dev/spenso/internal/session"
)

func newClearCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the entire expense store (asks to confirm)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClear(cmd, dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger project directory")

	return cmd
}

// runClear drives the two-step confirmation machine: invoking the
// command is the first clear request, typing "clear" at the prompt is
// the second. Anything else returns the machine to Idle and aborts.
func runClear(cmd *cobra.Command, dir string) error {
	_, svc, err := newService(dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	// Invoking the command is the first clear request.
	state, _ := session.RequestClear(session.Idle)

	fmt.Fprintln(out, "This deletes ALL expenses. Type 'clear' to confirm:")
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "clear" {
		session.Touch(state)
		fmt.Fprintln(out, "Aborted, nothing deleted.")
		return nil
	}

	if _, confirmed := session.RequestClear(state); confirmed {
		if err := svc.ClearAll(); err != nil {
			return err
		}
		fmt.Fprintln(out, "All expenses cleared.")
	}
	return nil
}
