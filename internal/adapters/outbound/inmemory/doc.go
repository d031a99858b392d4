// Package inmemory provides in-memory implementations of the host
// capabilities: an identity record standing in for the process-wide build
// constants and a system-property store.
//
// They are used by tests, by the propsctl tool to simulate a device, and as
// the reference for what a host adapter must guarantee.
package inmemory
