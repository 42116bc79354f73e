/*package cafio reads and writes truth files: binary containers that store a
set of truth.Interaction records as named, individually compressed columns.
The layout is

	magic number, format version
	header (record count, daughter count, column names and types)
	offset table locating each column's block
	one zstd-compressed block per column

so a reader can pull a single column out of a large file without touching the
rest. Column contents are encoded with encoding/binary using the byte order
the file was written with, which preserves float bit patterns exactly,
sentinel NaNs included.*/
package cafio

const (
	// MagicNumber is an arbitrary number at the start of every truth file
	// which should help identify when the code is run on something else by
	// accident.
	MagicNumber = 0x0cafd00d
	// ReverseMagicNumber is the magic number as read on a machine with
	// flipped endianness.
	ReverseMagicNumber = 0x0dd0af0c
	// Version is the current truth-file format version. Readers accept any
	// file with a version at or below their own.
	Version = 1
)

// Header describes the contents of a truth file.
type Header struct {
	// N is the number of interaction records in the file. NPrim is the
	// total number of daughter particles summed over all records.
	N, NPrim int64
	// Names gives the names of the columns stored in the file, in the order
	// their blocks appear. Types gives the corresponding three-byte type
	// codes (see lib/columns).
	Names, Types []string
}
