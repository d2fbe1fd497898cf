// Package profile provides implementations of core.ProfileStore: an
// in-process store for tests and local development, and a Postgres-backed
// store in the postgres subpackage.
package profile
