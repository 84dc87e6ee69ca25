// Copyright (c) 2025 ToeiRei
// Passgate - password strength validation toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"

	"github.com/toeirei/passgate/internal/db"
	"github.com/toeirei/passgate/internal/i18n"
	"github.com/toeirei/passgate/internal/model"
)

// auditCmd lists the recorded validation attempts.
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "List recorded validation attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		attempts, err := db.GetAllAttempts()
		if err != nil {
			return fmt.Errorf("could not load attempts: %w", err)
		}
		if len(attempts) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("audit.empty"))
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-7s %-8s %-4s %s\n",
			i18n.T("audit.header_time"),
			i18n.T("audit.header_source"),
			i18n.T("audit.header_verdict"),
			i18n.T("audit.header_met"),
			i18n.T("audit.header_unmet"))
		for _, a := range attempts {
			verdict := i18n.T("tui.audit_failed")
			if a.Passed {
				verdict = i18n.T("tui.audit_passed")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-7s %-8s %-4d %s\n",
				a.Timestamp.Local().Format("2006-01-02 15:04:05"), a.Source, verdict, a.MetCount, a.Unmet)
		}

		total, passed, err := db.CountAttempts()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), i18n.T("audit.summary", total, passed))
		return nil
	},
}

// auditExportCmd dumps the attempt trail to a zstd-compressed JSON file.
var auditExportCmd = &cobra.Command{
	Use:   "export <output-file>",
	Short: "Export the attempt trail as compressed (zstd) JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		attempts, err := db.GetAllAttempts()
		if err != nil {
			return fmt.Errorf("could not load attempts: %w", err)
		}

		if err := writeCompressedExport(args[0], attempts); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), i18n.T("audit.exported", len(attempts), args[0]))
		return nil
	},
}

// writeCompressedExport writes the attempts as zstd-compressed JSON.
func writeCompressedExport(filename string, attempts []model.Attempt) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	zstdWriter, err := zstd.NewWriter(file)
	if err != nil {
		return fmt.Errorf("could not create zstd writer: %w", err)
	}

	data := model.BackupData{
		ExportedAt: time.Now().UTC(),
		Attempts:   attempts,
	}
	if err := json.NewEncoder(zstdWriter).Encode(&data); err != nil {
		_ = zstdWriter.Close()
		return fmt.Errorf("could not encode json to zstd writer: %w", err)
	}
	return zstdWriter.Close()
}

// readCompressedExport reads a file written by writeCompressedExport.
// The audit view does not consume exports; this exists for tooling and
// round-trip tests.
func readCompressedExport(filename string) (*model.BackupData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	zstdReader, err := zstd.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("could not create zstd reader: %w", err)
	}
	defer zstdReader.Close()

	var data model.BackupData
	if err := json.NewDecoder(zstdReader).Decode(&data); err != nil {
		return nil, fmt.Errorf("could not decode json from zstd reader: %w", err)
	}
	return &data, nil
}

func init() {
	auditCmd.AddCommand(auditExportCmd)
}
