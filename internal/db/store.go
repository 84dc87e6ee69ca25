// Copyright (c) 2025 ToeiRei
// Passgate - password strength validation toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"time"

	"github.com/toeirei/passgate/internal/model"
)

// Store defines the interface for the attempt audit trail. All supported
// database backends implement it through the shared bun store.
type Store interface {
	// LogAttempt records one validation attempt and returns its id.
	LogAttempt(attempt model.Attempt) (int, error)

	// GetAllAttempts returns every recorded attempt, newest first.
	GetAllAttempts() ([]model.Attempt, error)

	// GetRecentAttempts returns up to limit attempts, newest first.
	GetRecentAttempts(limit int) ([]model.Attempt, error)

	// CountAttempts returns total and passed attempt counts.
	CountAttempts() (total int, passed int, err error)

	// PruneAttemptsBefore deletes attempts older than cutoff and reports
	// how many rows were removed.
	PruneAttemptsBefore(cutoff time.Time) (int, error)

	// Close releases the underlying database handle.
	Close() error
}

// store is the package-level store set by New. The package helpers below
// exist so UI code does not have to thread a Store through every view.
var store Store

// IsInitialized reports whether the package-level store has been set.
func IsInitialized() bool {
	return store != nil
}

// SetStore overrides the package-level store. Tests use this to inject
// fakes.
func SetStore(s Store) {
	store = s
}

// LogAttempt records an attempt using the package-level store.
func LogAttempt(attempt model.Attempt) (int, error) {
	return store.LogAttempt(attempt)
}

// GetAllAttempts returns all attempts from the package-level store.
func GetAllAttempts() ([]model.Attempt, error) {
	return store.GetAllAttempts()
}

// GetRecentAttempts returns recent attempts from the package-level store.
func GetRecentAttempts(limit int) ([]model.Attempt, error) {
	return store.GetRecentAttempts(limit)
}

// CountAttempts returns counts from the package-level store.
func CountAttempts() (int, int, error) {
	return store.CountAttempts()
}
