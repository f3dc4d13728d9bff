// Package model contains the Car, Document and Content records together with the
// helpers that keep both sides of their relationships consistent in memory.
//
// The types carry no persistence tags; repositories map them to rows and rebuild
// relationships through the same setters used by request handlers.
package model

// Int64 returns a pointer to v. Handy for ids and optional numeric fields.
func Int64(v int64) *int64 {
	return &v
}

// String returns a pointer to v.
func String(v string) *string {
	return &v
}

func sameID(a, b *int64) bool {
	return a != nil && b != nil && *a == *b
}
