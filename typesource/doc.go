// Package typesource declares the contracts an external type repository
// and process snapshot must satisfy for destructure to build a factor
// graph from them. Nothing in this package touches minidumps, debug
// info, or any other concrete format — memsnapshot is one concrete,
// JSON-backed implementation; production callers may supply their own.
package typesource
