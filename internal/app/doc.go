// Package app wires configuration, storage, services and the HTTP router of
// the landing site. The cobra commands in internal/cmd are thin wrappers
// around it.
package app
