// Copyright (c) 2025 ToeiRei
// Passgate - password strength validation toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/toeirei/passgate/internal/generate"
	"github.com/toeirei/passgate/internal/i18n"
	"github.com/toeirei/passgate/internal/logging"
	"github.com/toeirei/passgate/internal/validation"
)

var genLength int
var copyFlag bool

// generateCmd emits a random password that satisfies the policy.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a password that satisfies the policy",
	RunE: func(cmd *cobra.Command, args []string) error {
		length := genLength
		if length == 0 {
			length = appConfig.Generate.Length
		}
		if length < validation.MinLength || length > validation.MaxLength {
			cmd.SilenceUsage = true
			return errors.New(i18n.T("generate.error_length", validation.MinLength, validation.MaxLength))
		}

		password, err := generate.Password(length)
		if err != nil {
			cmd.SilenceUsage = true
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), password)

		if copyFlag {
			if err := clipboard.WriteAll(password); err != nil {
				logging.Warnf("could not copy to clipboard: %v", err)
			} else {
				fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("generate.copied"))
			}
		}
		return nil
	},
}
