/*package columns flattens slices of truth records into named, typed columns
and reassembles them. The column layout is the on-disk contract: every field
of truth.Interaction becomes one addressable column with a stable name, and
the daughter particles become flat "prim.*" columns whose per-record extents
are given by the "nprim" column. lib/cafio stores each column as one
compressed block.*/
package columns

import (
	"fmt"
)

// Column type codes. These are the three-byte strings written to file
// headers: "bol" for bools, "i32"/"u32" for 32-bit ints, "f32" for floats,
// "v32" for float 3-vectors, "str" for per-record strings, and "su3" for
// per-record uint32 sequences.
const (
	BoolCode      = "bol"
	Int32Code     = "i32"
	Uint32Code    = "u32"
	Float32Code   = "f32"
	Vec32Code     = "v32"
	StringCode    = "str"
	Uint32SeqCode = "su3"
)

// Columns maps column names to their data.
type Columns map[string]Column

// Column is a generic interface around one column of a flattened record set.
type Column interface {
	// Name returns the column's name.
	Name() string
	// Type returns the column's three-byte type code.
	Type() string
	// Len returns the number of entries in the column. For record-level
	// columns this is the record count; for "prim.*" columns it is the
	// total daughter count.
	Len() int
	// Data returns the underlying array as an interface{}.
	Data() interface{}
}

// Type assertions
var (
	_ Column = &Bool{}
	_ Column = &Int32{}
	_ Column = &Uint32{}
	_ Column = &Float32{}
	_ Column = &Vec32{}
	_ Column = &String{}
	_ Column = &Uint32Seq{}
)

// Bool implements the Column interface for []bool data.
type Bool struct {
	name string
	data []bool
}

// NewBool creates a column with a given name associated with a given array.
func NewBool(name string, x []bool) *Bool { return &Bool{name, x} }

func (x *Bool) Name() string      { return x.name }
func (x *Bool) Type() string      { return BoolCode }
func (x *Bool) Len() int          { return len(x.data) }
func (x *Bool) Data() interface{} { return x.data }

// Int32 implements the Column interface for []int32 data.
type Int32 struct {
	name string
	data []int32
}

// NewInt32 creates a column with a given name associated with a given array.
func NewInt32(name string, x []int32) *Int32 { return &Int32{name, x} }

func (x *Int32) Name() string      { return x.name }
func (x *Int32) Type() string      { return Int32Code }
func (x *Int32) Len() int          { return len(x.data) }
func (x *Int32) Data() interface{} { return x.data }

// Uint32 implements the Column interface for []uint32 data.
type Uint32 struct {
	name string
	data []uint32
}

// NewUint32 creates a column with a given name associated with a given array.
func NewUint32(name string, x []uint32) *Uint32 { return &Uint32{name, x} }

func (x *Uint32) Name() string      { return x.name }
func (x *Uint32) Type() string      { return Uint32Code }
func (x *Uint32) Len() int          { return len(x.data) }
func (x *Uint32) Data() interface{} { return x.data }

// Float32 implements the Column interface for []float32 data.
type Float32 struct {
	name string
	data []float32
}

// NewFloat32 creates a column with a given name associated with a given
// array.
func NewFloat32(name string, x []float32) *Float32 { return &Float32{name, x} }

func (x *Float32) Name() string      { return x.name }
func (x *Float32) Type() string      { return Float32Code }
func (x *Float32) Len() int          { return len(x.data) }
func (x *Float32) Data() interface{} { return x.data }

// Vec32 implements the Column interface for [][3]float32 data.
type Vec32 struct {
	name string
	data [][3]float32
}

// NewVec32 creates a column with a given name associated with a given array.
func NewVec32(name string, x [][3]float32) *Vec32 { return &Vec32{name, x} }

func (x *Vec32) Name() string      { return x.name }
func (x *Vec32) Type() string      { return Vec32Code }
func (x *Vec32) Len() int          { return len(x.data) }
func (x *Vec32) Data() interface{} { return x.data }

// String implements the Column interface for []string data.
type String struct {
	name string
	data []string
}

// NewString creates a column with a given name associated with a given array.
func NewString(name string, x []string) *String { return &String{name, x} }

func (x *String) Name() string      { return x.name }
func (x *String) Type() string      { return StringCode }
func (x *String) Len() int          { return len(x.data) }
func (x *String) Data() interface{} { return x.data }

// Uint32Seq implements the Column interface for [][]uint32 data, one
// variable-length sequence per record.
type Uint32Seq struct {
	name string
	data [][]uint32
}

// NewUint32Seq creates a column with a given name associated with a given
// array.
func NewUint32Seq(name string, x [][]uint32) *Uint32Seq {
	return &Uint32Seq{name, x}
}

func (x *Uint32Seq) Name() string      { return x.name }
func (x *Uint32Seq) Type() string      { return Uint32SeqCode }
func (x *Uint32Seq) Len() int          { return len(x.data) }
func (x *Uint32Seq) Data() interface{} { return x.data }

// Get returns the column with the given name, or an error naming the columns
// that do exist.
func (c Columns) Get(name string) (Column, error) {
	col, ok := c[name]
	if !ok {
		return nil, fmt.Errorf("There is no column named '%s'. The valid "+
			"column names are %s.", name, Names())
	}
	return col, nil
}
