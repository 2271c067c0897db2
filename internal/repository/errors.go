// Package repository stores booking snapshots.  Each archive type keeps the
// same flat text produced by reservation.Store.Save; they only differ in
// where that text lives (a file, a Redis key, a MySQL row).  A missing
// snapshot is always reported as reservation.ErrNoSnapshot so the store can
// treat every backend alike.
package repository

import "errors"

// ErrPayloadTooLarge is returned when a snapshot does not fit the
// backend's value limit.  Nothing is written in that case.
var ErrPayloadTooLarge = errors.New("snapshot payload too large")

// ErrNoSnapshotName is returned by constructors given an empty key/row name.
var ErrNoSnapshotName = errors.New("snapshot name is required")
