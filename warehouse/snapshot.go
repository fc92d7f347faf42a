package warehouse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/c360/inventory/errors"
)

// ProductSnapshot is a point-in-time value copy of a product's state.
// Snapshots are plain values: mutating one never affects the source catalog.
type ProductSnapshot struct {
	ID               string
	Name             string
	Quantity         int64
	ReorderThreshold int64
}

// Low reports whether the snapshot is at or below its reorder threshold.
func (s ProductSnapshot) Low() bool {
	return s.Quantity <= s.ReorderThreshold
}

// EncodeRecord renders a snapshot in the fixed wire format
//
//	id,name,quantity,threshold
//
// The name field escapes the comma delimiter as `\,`. The id is validated
// at product construction and never contains a delimiter in practice;
// quantity and threshold are decimal integers. This format is a wire
// contract shared with the filestore: do not change delimiter handling.
func EncodeRecord(s ProductSnapshot) string {
	safeName := strings.ReplaceAll(s.Name, ",", `\,`)
	return fmt.Sprintf("%s,%s,%d,%d", s.ID, safeName, s.Quantity, s.ReorderThreshold)
}

// DecodeRecord parses one wire-format record. A backslash escapes the
// following rune, so `\,` yields a literal comma inside a field. A record
// must carry exactly four fields with integer quantity and threshold;
// anything else is a malformed record.
func DecodeRecord(line string) (ProductSnapshot, error) {
	parts := make([]string, 0, 4)
	var cur strings.Builder
	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ',':
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	parts = append(parts, cur.String())

	if len(parts) != 4 {
		return ProductSnapshot{}, errors.WrapInvalid(
			fmt.Errorf("%w: expected 4 fields, got %d in %q", errors.ErrMalformedRecord, len(parts), line),
			"snapshot", "DecodeRecord", "field count validation")
	}

	quantity, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return ProductSnapshot{}, errors.WrapInvalid(
			fmt.Errorf("%w: bad quantity %q in %q", errors.ErrMalformedRecord, parts[2], line),
			"snapshot", "DecodeRecord", "quantity parsing")
	}

	threshold, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return ProductSnapshot{}, errors.WrapInvalid(
			fmt.Errorf("%w: bad threshold %q in %q", errors.ErrMalformedRecord, parts[3], line),
			"snapshot", "DecodeRecord", "threshold parsing")
	}

	return ProductSnapshot{
		ID:               parts[0],
		Name:             parts[1],
		Quantity:         quantity,
		ReorderThreshold: threshold,
	}, nil
}

// Export returns one encoded record per product, in snapshot iteration
// order. The order is not required to be sorted; Import accepts records
// in any order.
func Export(w *Warehouse) []string {
	snapshots := w.ListSnapshot()
	records := make([]string, 0, len(snapshots))
	for _, s := range snapshots {
		records = append(records, EncodeRecord(s))
	}
	return records
}

// Import constructs a new warehouse from encoded records. The first
// malformed record aborts the entire import: no partial warehouse is ever
// returned. Products are installed through PutOrReplace, so bulk restore
// triggers no duplicate checks and no low-stock notifications.
func Import(name string, records []string, opts ...Option) (*Warehouse, error) {
	w, err := New(name, opts...)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		s, err := DecodeRecord(record)
		if err != nil {
			return nil, err
		}

		p, err := NewProduct(s.ID, s.Name, s.Quantity, s.ReorderThreshold)
		if err != nil {
			return nil, errors.WrapInvalid(
				fmt.Errorf("%w: record %q: %v", errors.ErrMalformedRecord, record, err),
				"snapshot", "Import", "record validation")
		}

		if err := w.PutOrReplace(p); err != nil {
			return nil, err
		}
	}

	return w, nil
}
