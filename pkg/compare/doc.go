// Package compare provides generic comparison helpers shared by the schema
// and directory differs.
//
// Both differs work the same way: take two keyed collections, split the keys
// into removed, added and common groups, then look closer at the common ones.
// Partition does the split with a caller-supplied ordering so the output of
// every differ is deterministic:
//
//	removed, added, common := compare.Partition(oldFiles, newFiles, strings.Compare)
//
// Pointers handles optional attributes such as column defaults:
//
//	if !compare.Pointers(old.Default, new.Default) {
//	    // default changed
//	}
package compare
