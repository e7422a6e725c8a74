package value

import (
	"math"
	"strconv"

	"github.com/wippyai/typeflow"
)

var (
	_ Copyable[*Int]    = (*Int)(nil)
	_ Copyable[*Long]   = (*Long)(nil)
	_ Copyable[*Double] = (*Double)(nil)
	_ Copyable[*Bool]   = (*Bool)(nil)
	_ Copyable[*String] = (*String)(nil)
)

// Int is a mutable 32-bit integer value.
type Int struct{ V int32 }

func (v *Int) Write(out typeflow.DataOutput) error { return out.WriteU32(uint32(v.V)) }

func (v *Int) Read(in typeflow.DataInput) error {
	u, err := in.ReadU32()
	v.V = int32(u)
	return err
}

func (v *Int) BinaryLength() int  { return 4 }
func (v *Int) CopyTo(target *Int) { target.V = v.V }
func (v *Int) String() string     { return strconv.FormatInt(int64(v.V), 10) }

func (v *Int) CopyStream(in typeflow.DataInput, out typeflow.DataOutput) error {
	u, err := in.ReadU32()
	if err != nil {
		return err
	}
	return out.WriteU32(u)
}

// Long is a mutable 64-bit integer value.
type Long struct{ V int64 }

func (v *Long) Write(out typeflow.DataOutput) error { return out.WriteU64(uint64(v.V)) }

func (v *Long) Read(in typeflow.DataInput) error {
	u, err := in.ReadU64()
	v.V = int64(u)
	return err
}

func (v *Long) BinaryLength() int   { return 8 }
func (v *Long) CopyTo(target *Long) { target.V = v.V }
func (v *Long) String() string      { return strconv.FormatInt(v.V, 10) }

func (v *Long) CopyStream(in typeflow.DataInput, out typeflow.DataOutput) error {
	u, err := in.ReadU64()
	if err != nil {
		return err
	}
	return out.WriteU64(u)
}

// Double is a mutable float64 value.
type Double struct{ V float64 }

func (v *Double) Write(out typeflow.DataOutput) error {
	return out.WriteU64(math.Float64bits(v.V))
}

func (v *Double) Read(in typeflow.DataInput) error {
	u, err := in.ReadU64()
	v.V = math.Float64frombits(u)
	return err
}

func (v *Double) BinaryLength() int     { return 8 }
func (v *Double) CopyTo(target *Double) { target.V = v.V }
func (v *Double) String() string        { return strconv.FormatFloat(v.V, 'g', -1, 64) }

func (v *Double) CopyStream(in typeflow.DataInput, out typeflow.DataOutput) error {
	u, err := in.ReadU64()
	if err != nil {
		return err
	}
	return out.WriteU64(u)
}

// Bool is a mutable boolean value.
type Bool struct{ V bool }

func (v *Bool) Write(out typeflow.DataOutput) error {
	var b uint8
	if v.V {
		b = 1
	}
	return out.WriteU8(b)
}

func (v *Bool) Read(in typeflow.DataInput) error {
	b, err := in.ReadU8()
	v.V = b != 0
	return err
}

func (v *Bool) BinaryLength() int   { return 1 }
func (v *Bool) CopyTo(target *Bool) { target.V = v.V }
func (v *Bool) String() string      { return strconv.FormatBool(v.V) }

func (v *Bool) CopyStream(in typeflow.DataInput, out typeflow.DataOutput) error {
	b, err := in.ReadU8()
	if err != nil {
		return err
	}
	return out.WriteU8(b)
}

// String is a mutable string value.
type String struct{ V string }

func (v *String) Write(out typeflow.DataOutput) error { return out.WriteString(v.V) }

func (v *String) Read(in typeflow.DataInput) error {
	s, err := in.ReadString()
	v.V = s
	return err
}

func (v *String) BinaryLength() int     { return VariableLength }
func (v *String) CopyTo(target *String) { target.V = v.V }
func (v *String) String() string        { return v.V }

func (v *String) CopyStream(in typeflow.DataInput, out typeflow.DataOutput) error {
	s, err := in.ReadString()
	if err != nil {
		return err
	}
	return out.WriteString(s)
}
