// Package types defines the Store and table interfaces, entity types, and
// standard errors for the companion local store.
//
// The store holds a single user profile, the accessory shop catalog, the
// timed quest catalog and the mood history. Entity types carry their own
// validation so callers can reject bad input before it reaches the
// database's CHECK constraints.
package types
