// Package callers implements ports.CallerResolver.
//
// Two host capabilities are provided: an explicit caller tag carried in the
// context (for hosts that know who is calling) and a goroutine stack walk
// (for hosts that only have their own call stack to go on). Chain combines
// them, preferring the explicit tag.
package callers
