package cafio

/* encode.go converts single columns to and from their raw (uncompressed)
byte encodings. Fixed-width columns are a plain binary.Write of the backing
slice. The two ragged types store a per-record count array followed by the
concatenated payloads. */

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hepio/truthcaf/lib/columns"
)

// encodeColumn returns the raw byte encoding of col in the given byte order.
func encodeColumn(col columns.Column, order binary.ByteOrder) ([]byte, error) {
	buf := &bytes.Buffer{}

	var err error
	switch x := col.Data().(type) {
	case []bool:
		b := make([]uint8, len(x))
		for i := range x {
			if x[i] {
				b[i] = 1
			}
		}
		err = binary.Write(buf, order, b)
	case []int32:
		err = binary.Write(buf, order, x)
	case []uint32:
		err = binary.Write(buf, order, x)
	case []float32:
		err = binary.Write(buf, order, x)
	case [][3]float32:
		err = binary.Write(buf, order, x)
	case []string:
		counts := make([]uint32, len(x))
		for i := range x {
			counts[i] = uint32(len(x[i]))
		}
		if err = binary.Write(buf, order, counts); err != nil {
			break
		}
		for i := range x {
			if _, err = buf.WriteString(x[i]); err != nil {
				break
			}
		}
	case [][]uint32:
		counts := make([]uint32, len(x))
		for i := range x {
			counts[i] = uint32(len(x[i]))
		}
		if err = binary.Write(buf, order, counts); err != nil {
			break
		}
		for i := range x {
			if err = binary.Write(buf, order, x[i]); err != nil {
				break
			}
		}
	default:
		panic(fmt.Sprintf("Internal error: unknown-typed column (name: "+
			"'%s', type: '%s') given to encodeColumn().",
			col.Name(), col.Type()))
	}
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// decodeColumn rebuilds a column from its raw byte encoding. n is the
// column's entry count: the file's record count for record-level columns and
// its total daughter count for prim.* columns.
func decodeColumn(
	name, code string, raw []byte, n int, order binary.ByteOrder,
) (columns.Column, error) {
	rd := bytes.NewReader(raw)

	switch code {
	case columns.BoolCode:
		b := make([]uint8, n)
		if err := binary.Read(rd, order, b); err != nil {
			return nil, decodeError(name, err)
		}
		x := make([]bool, n)
		for i := range b {
			x[i] = b[i] != 0
		}
		return columns.NewBool(name, x), nil
	case columns.Int32Code:
		x := make([]int32, n)
		if err := binary.Read(rd, order, x); err != nil {
			return nil, decodeError(name, err)
		}
		return columns.NewInt32(name, x), nil
	case columns.Uint32Code:
		x := make([]uint32, n)
		if err := binary.Read(rd, order, x); err != nil {
			return nil, decodeError(name, err)
		}
		return columns.NewUint32(name, x), nil
	case columns.Float32Code:
		x := make([]float32, n)
		if err := binary.Read(rd, order, x); err != nil {
			return nil, decodeError(name, err)
		}
		return columns.NewFloat32(name, x), nil
	case columns.Vec32Code:
		x := make([][3]float32, n)
		if err := binary.Read(rd, order, x); err != nil {
			return nil, decodeError(name, err)
		}
		return columns.NewVec32(name, x), nil
	case columns.StringCode:
		counts := make([]uint32, n)
		if err := binary.Read(rd, order, counts); err != nil {
			return nil, decodeError(name, err)
		}
		x := make([]string, n)
		for i := range x {
			b := make([]byte, counts[i])
			if _, err := io.ReadFull(rd, b); err != nil {
				return nil, decodeError(name, err)
			}
			x[i] = string(b)
		}
		return columns.NewString(name, x), nil
	case columns.Uint32SeqCode:
		counts := make([]uint32, n)
		if err := binary.Read(rd, order, counts); err != nil {
			return nil, decodeError(name, err)
		}
		x := make([][]uint32, n)
		for i := range x {
			if counts[i] == 0 {
				continue
			}
			x[i] = make([]uint32, counts[i])
			if err := binary.Read(rd, order, x[i]); err != nil {
				return nil, decodeError(name, err)
			}
		}
		return columns.NewUint32Seq(name, x), nil
	}

	return nil, fmt.Errorf("The column '%s' has type code '%s', which this "+
		"version of the code does not recognize.", name, code)
}

func decodeError(name string, err error) error {
	return fmt.Errorf("The column '%s' could not be decoded: %s. The file "+
		"is likely corrupted or was written by an incompatible version of "+
		"the code.", name, err.Error())
}
