// Package service contains application services orchestrating parsing and
// analysis over the current in-memory dataset.
package service

import "errors"

// ErrNoDataset indicates no dataset has been loaded yet. Distinct from an
// upload that parsed to zero valid records, which fails with
// coverage.ErrEmptyDataset and leaves any previous dataset in place.
var ErrNoDataset = errors.New("no dataset loaded")
