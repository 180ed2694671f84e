// Package repository defines the sweep result store interface and errors.
package repository

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithMaxRecords bounds the number of records kept before eviction.
func WithMaxRecords(n int) Option {
	return func(s *MemStore) {
		if n > 0 {
			s.maxRecords = n
		}
	}
}
