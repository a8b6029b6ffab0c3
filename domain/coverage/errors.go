package coverage

import "errors"

// ErrEmptyDataset indicates a parse produced zero valid records. The message
// carries the corrective hint shown to users, distinct from the "no rows match
// filters" case which is not an error.
var ErrEmptyDataset = errors.New("no valid coverage records: ensure Stretch uses a format like 500-1000")
