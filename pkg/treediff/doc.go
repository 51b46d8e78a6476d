// Package treediff compares two directory trees of dump files.
//
// Files are matched by their path relative to each root. Matching pairs are
// diffed with the schema package, files that appear only in the new tree are
// copied into the output verbatim and files that disappear are reported with a
// reminder to drop their objects by hand. The Finder decides which files take
// part; SQLFinder keeps ".sql" files by default.
//
// Any file-level difference sets Report.Differences. A pair that fails to parse
// or diff is reported in Report.Failures without stopping the rest of the
// comparison.
package treediff
