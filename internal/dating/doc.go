// Package dating resolves the "taken" timestamp for a media file.
//
// Resolution walks a fixed chain and the first tier that produces a value
// wins:
//
//  1. embedded DateTimeOriginal metadata (images only)
//  2. filesystem creation time, or inode status-change time where the
//     platform does not report a birth time
//  3. filesystem modification time
//
// Tier 1 and tier 2 failures are misses, never errors. Only when the last
// tier also fails does Resolve return an error matching ErrDateUnavailable.
// The readers are injected so the chain can be tested without real files.
package dating
