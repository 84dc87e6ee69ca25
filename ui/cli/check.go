// Copyright (c) 2025 ToeiRei
// Passgate - password strength validation toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/toeirei/passgate/internal/db"
	"github.com/toeirei/passgate/internal/i18n"
	"github.com/toeirei/passgate/internal/logging"
	"github.com/toeirei/passgate/internal/model"
	"github.com/toeirei/passgate/internal/validation"
	"github.com/toeirei/passgate/util/slicest"
)

var hashFlag bool

// checkCmd validates a single password non-interactively. The password
// comes from the argument, a stdin pipe, or a hidden terminal prompt.
var checkCmd = &cobra.Command{
	Use:   "check [password]",
	Short: "Check a password against the strength policy",
	Long: `Check validates one password and prints the per-criterion result.
The password is taken from the argument, from a stdin pipe, or from a
hidden prompt when running on a terminal. The command exits non-zero
when the password does not meet the policy.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readCandidate(cmd, args)
		if err != nil {
			return errors.New(i18n.T("check.error_read", err))
		}

		session := validation.NewSession()
		session.OnTextChanged(text)
		ok := session.Validate()

		printChecklist(cmd, session)

		if db.IsInitialized() {
			if _, err := db.LogAttempt(model.Attempt{
				Source:   model.SourceCLI,
				Passed:   ok,
				MetCount: session.MetCount(),
				Unmet:    joinUnmet(session),
			}); err != nil {
				logging.Warnf("could not record attempt: %v", err)
			}
		}

		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("check.fail"))
			if hashFlag {
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("check.hash_refused"))
			}
			cmd.SilenceUsage = true
			return errors.New(i18n.T("check.unmet_header") + " " + joinUnmet(session))
		}

		fmt.Fprintln(cmd.OutOrStdout(), i18n.T("check.pass"))

		if hashFlag {
			hash, err := bcrypt.GenerateFromPassword([]byte(text), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("could not hash password: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(hash))
		}
		return nil
	},
}

// readCandidate resolves the candidate password: argument first, then a
// piped stdin, then a hidden prompt on a real terminal.
func readCandidate(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.OutOrStdout(), i18n.T("check.prompt"))
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", errors.New(i18n.T("check.error_empty"))
	}
	return strings.TrimRight(scanner.Text(), "\r"), nil
}

// printChecklist writes one line per criterion with its tri-state marker.
func printChecklist(cmd *cobra.Command, session *validation.Session) {
	lines := slicest.Map(validation.Criteria[:], func(c validation.Criterion) string {
		marker := "[ ]"
		switch session.Status(c) {
		case validation.StatusMet:
			marker = "[x]"
		case validation.StatusUnmet:
			marker = "[!]"
		}
		return marker + " " + i18n.T("criteria."+c.String())
	})
	for _, line := range lines {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
}

func joinUnmet(session *validation.Session) string {
	return strings.Join(slicest.Map(session.UnmetCriteria(), func(c validation.Criterion) string {
		return c.String()
	}), ",")
}
