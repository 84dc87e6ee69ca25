// Copyright (c) 2025 ToeiRei
// Passgate - password strength validation toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// package model defines the data structures shared between the store and
// the UI shells.
package model // import "github.com/toeirei/passgate/internal/model"

import (
	"strings"
	"time"
)

// Attempt sources.
const (
	SourceCLI = "cli"
	SourceTUI = "tui"
)

// Attempt is one recorded validation attempt. Only the outcome is kept;
// password material is never persisted.
type Attempt struct {
	ID        int       // Primary key.
	Timestamp time.Time // When the attempt was validated.
	Source    string    // Which shell recorded it (SourceCLI or SourceTUI).
	Passed    bool      // The aggregate verdict.
	MetCount  int       // How many of the four character-class rules were met.
	Unmet     string    // Comma-joined machine names of the unmet criteria.
}

// UnmetNames splits the stored unmet list back into individual names.
func (a Attempt) UnmetNames() []string {
	if a.Unmet == "" {
		return nil
	}
	return strings.Split(a.Unmet, ",")
}

// BackupData is the envelope written by `passgate audit export`.
type BackupData struct {
	ExportedAt time.Time `json:"exported_at"`
	Attempts   []Attempt `json:"attempts"`
}
