package cafio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/DataDog/zstd"

	"github.com/hepio/truthcaf/lib/columns"
	"github.com/hepio/truthcaf/lib/truth"
)

// Writer handles writing truth files. The pattern is to create a Writer with
// NewWriter, hand it the full record slice with Write, and call Flush to
// write everything to disk.
type Writer struct {
	Header
	fname  string
	order  binary.ByteOrder
	blocks [][]byte
}

// NewWriter creates a Writer targeting a given file and using a given byte
// order.
func NewWriter(fname string, order binary.ByteOrder) *Writer {
	return &Writer{Header{}, fname, order, nil}
}

// Write flattens recs into columns, encodes and compresses each column, and
// stages the blocks for Flush. It may only be called once per Writer. It
// returns an error if any record's nprim field disagrees with the length of
// its daughter sequence.
func (wr *Writer) Write(recs []truth.Interaction) error {
	if wr.blocks != nil {
		return fmt.Errorf("Write() was called more than once on the Writer "+
			"for %s.", wr.fname)
	}

	cols, err := columns.Flatten(recs)
	if err != nil {
		return err
	}

	wr.N = int64(len(recs))
	for i := range recs {
		wr.NPrim += int64(len(recs[i].Prim))
	}

	for _, name := range columns.Names() {
		col, err := cols.Get(name)
		if err != nil {
			panic(fmt.Sprintf("Internal error: Flatten() did not produce "+
				"the column '%s'.", name))
		}

		raw, err := encodeColumn(col, wr.order)
		if err != nil {
			return err
		}
		block, err := zstd.CompressLevel(nil, raw, 1)
		if err != nil {
			return err
		}

		// Each block records its own uncompressed size so the reader can
		// allocate the decompression target up front.
		sizedBlock := make([]byte, 8+len(block))
		wr.order.PutUint64(sizedBlock[:8], uint64(len(raw)))
		copy(sizedBlock[8:], block)

		wr.blocks = append(wr.blocks, sizedBlock)
		wr.Names = append(wr.Names, name)
		wr.Types = append(wr.Types, col.Type())
	}

	return nil
}

// Flush writes the staged file to disk.
func (wr *Writer) Flush() error {
	if wr.blocks == nil {
		return fmt.Errorf("Flush() was called on the Writer for %s before "+
			"Write().", wr.fname)
	}

	fp, err := os.Create(wr.fname)
	if err != nil {
		return err
	}
	defer fp.Close()

	err = binary.Write(fp, wr.order, uint32(MagicNumber))
	if err != nil {
		return err
	}
	err = binary.Write(fp, wr.order, uint32(Version))
	if err != nil {
		return err
	}

	nHd, err := wr.Header.write(fp, wr.order)
	if err != nil {
		return err
	}
	nHd += 8 // magic number + version

	// The offset table stores absolute file offsets: block i spans
	// edges[i] to edges[i+1].
	nCols := len(wr.blocks)
	edges := make([]int64, nCols+1)
	edges[0] = int64(nHd) + 8*int64(nCols+1)
	for i := range wr.blocks {
		edges[i+1] = edges[i] + int64(len(wr.blocks[i]))
	}

	if err := binary.Write(fp, wr.order, edges); err != nil {
		return err
	}
	for i := range wr.blocks {
		if _, err := fp.Write(wr.blocks[i]); err != nil {
			return err
		}
	}

	return nil
}

func (hd *Header) write(f io.Writer, order binary.ByteOrder) (int, error) {
	n := 0
	if err := binary.Write(f, order, hd.N); err != nil {
		return 0, err
	}
	if err := binary.Write(f, order, hd.NPrim); err != nil {
		return 0, err
	}
	n += 16

	nCols := uint32(len(hd.Names))
	if err := binary.Write(f, order, nCols); err != nil {
		return 0, err
	}
	n += 4

	nNames := make([]uint32, nCols)
	for i := range nNames {
		nNames[i] = uint32(len(hd.Names[i]))
	}
	if err := binary.Write(f, order, nNames); err != nil {
		return 0, err
	}
	n += 4 * len(nNames)

	for i := range hd.Names {
		b := []byte(hd.Names[i])
		if _, err := f.Write(b); err != nil {
			return 0, err
		}
		n += len(b)
	}

	for i := range hd.Types {
		if len(hd.Types[i]) != 3 {
			panic(fmt.Sprintf("Internal error: the type code '%s' of "+
				"column '%s' is not 3 bytes long.", hd.Types[i], hd.Names[i]))
		}
		if _, err := f.Write([]byte(hd.Types[i])); err != nil {
			return 0, err
		}
		n += 3
	}

	return n, nil
}

func (hd *Header) read(f io.Reader, order binary.ByteOrder) error {
	if err := binary.Read(f, order, &hd.N); err != nil {
		return err
	}
	if err := binary.Read(f, order, &hd.NPrim); err != nil {
		return err
	}

	var nCols uint32
	if err := binary.Read(f, order, &nCols); err != nil {
		return err
	}

	nNames := make([]uint32, nCols)
	if err := binary.Read(f, order, nNames); err != nil {
		return err
	}

	hd.Names, hd.Types = make([]string, nCols), make([]string, nCols)
	for i := range hd.Names {
		b := make([]byte, nNames[i])
		if _, err := io.ReadFull(f, b); err != nil {
			return err
		}
		hd.Names[i] = string(b)
	}
	for i := range hd.Types {
		b := make([]byte, 3)
		if _, err := io.ReadFull(f, b); err != nil {
			return err
		}
		hd.Types[i] = string(b)
	}

	return nil
}

// Reader handles the I/O and navigation associated with reading columns from
// a truth file. Unlike Writer, it needs to be closed after use.
type Reader struct {
	Header
	fname string
	f     *os.File
	order binary.ByteOrder
	edges []int64
}

// NewReader opens the given truth file, checks its magic number and version,
// and reads its header and offset table.
func NewReader(fname string) (*Reader, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}

	order, err := checkFile(fname, f)
	if err != nil {
		f.Close()
		return nil, err
	}

	rd := &Reader{Header{}, fname, f, order, nil}
	if err := rd.Header.read(f, order); err != nil {
		f.Close()
		return nil, err
	}

	rd.edges = make([]int64, len(rd.Names)+1)
	if err := binary.Read(f, order, rd.edges); err != nil {
		f.Close()
		return nil, err
	}

	return rd, nil
}

// ByteOrder returns the byte order the file was written with.
func (rd *Reader) ByteOrder() binary.ByteOrder { return rd.order }

// ReadColumn reads a single column from the file. (Use the Names field to
// find the valid names.)
func (rd *Reader) ReadColumn(name string) (columns.Column, error) {
	i := findString(rd.Names, name)
	if i == -1 {
		return nil, fmt.Errorf("The column '%s' is not in the truth file "+
			"%s. It only contains the columns %s.", name, rd.fname, rd.Names)
	}

	if _, err := rd.f.Seek(rd.edges[i], 0); err != nil {
		return nil, err
	}

	var rawLen uint64
	if err := binary.Read(rd.f, rd.order, &rawLen); err != nil {
		return nil, err
	}

	block := make([]byte, rd.edges[i+1]-rd.edges[i]-8)
	if _, err := io.ReadFull(rd.f, block); err != nil {
		return nil, err
	}

	raw, err := zstd.Decompress(make([]byte, rawLen), block)
	if err != nil {
		return nil, fmt.Errorf("The column '%s' in %s could not be "+
			"decompressed: %s. The file is likely corrupted.",
			name, rd.fname, err.Error())
	}

	n := int(rd.N)
	if columns.IsPrim(name) {
		n = int(rd.NPrim)
	}
	return decodeColumn(name, rd.Types[i], raw, n, rd.order)
}

// ReadAll reads every column in the file and reassembles the full record
// slice.
func (rd *Reader) ReadAll() ([]truth.Interaction, error) {
	cols := columns.Columns{}
	for _, name := range rd.Names {
		col, err := rd.ReadColumn(name)
		if err != nil {
			return nil, err
		}
		cols[name] = col
	}
	return columns.Unflatten(cols)
}

// Close closes the file associated with the Reader.
func (rd *Reader) Close() {
	rd.f.Close()
}

// findString returns the index of the first instance of target in x and -1
// if target isn't in x.
func findString(x []string, target string) int {
	for i := range x {
		if x[i] == target {
			return i
		}
	}
	return -1
}

// checkFile reads in the file's magic number and version number and makes
// sure this code can actually read it. If it can, the byte order is
// returned. Otherwise an error is returned.
func checkFile(fname string, f *os.File) (binary.ByteOrder, error) {
	var magicNumber, version uint32

	order := binary.ByteOrder(binary.LittleEndian)
	err := binary.Read(f, order, &magicNumber)
	if err != nil {
		return nil, err
	}

	switch magicNumber {
	case MagicNumber:
	case ReverseMagicNumber:
		order = binary.BigEndian
	default:
		return order, fmt.Errorf("%s is not a truth file. All truth files "+
			"begin with either the 32-bit integer %x or %x. This file "+
			"begins with %x.", fname, uint32(MagicNumber),
			uint32(ReverseMagicNumber), magicNumber)
	}

	err = binary.Read(f, order, &version)
	if err != nil {
		return nil, err
	}
	if version > Version {
		return order, fmt.Errorf("The file %s was created with truth-file "+
			"format version %d, but this code only understands versions up "+
			"to %d. It likely contains columns or encodings that were added "+
			"after this code was written.", fname, version, Version)
	}

	return order, nil
}

// WriteFile is a convenience wrapper that writes recs to fname in
// little-endian byte order.
func WriteFile(fname string, recs []truth.Interaction) error {
	wr := NewWriter(fname, binary.LittleEndian)
	if err := wr.Write(recs); err != nil {
		return err
	}
	return wr.Flush()
}

// ReadFile is a convenience wrapper that reads every record in fname.
func ReadFile(fname string) ([]truth.Interaction, error) {
	rd, err := NewReader(fname)
	if err != nil {
		return nil, err
	}
	defer rd.Close()
	return rd.ReadAll()
}
