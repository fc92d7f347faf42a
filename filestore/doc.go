// Package filestore persists warehouse snapshots as plain text files.
//
// # File Format
//
// The on-disk format is a fixed wire contract:
//
//	# Warehouse:Mumbai
//	P-1001,Laptop,54,5
//	P-2002,Mouse,25,10
//
// One header comment line names the warehouse, followed by one record per
// product in the warehouse package's snapshot format
// (id,name,quantity,threshold; commas in the name escaped as `\,`).
// On load, '#'-prefixed lines and blank lines are skipped.
//
// # Error Classification
//
// Filesystem failures are wrapped transient; malformed records surface the
// warehouse package's invalid classification and abort the load with no
// partial result.
//
// # Durability
//
// Save and Load are explicit, whole-snapshot operations. The store offers
// no write-ahead guarantees: a warehouse mutated after Save diverges from
// its file until the next Save.
package filestore
