// SPDX-License-Identifier: MIT

// Package export writes a locked dataset to external sinks: CSV streams and
// SQLite database files.
package export
