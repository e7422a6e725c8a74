package csvinput

import (
	"math/bits"
	"strconv"

	"github.com/samber/lo"

	"github.com/wippyai/typeflow/errors"
	"github.com/wippyai/typeflow/typeinfo"
)

// Projection maps the columns of a line onto the declared fields of a
// record. Column i is parsed when bit i of the inclusion mask is set; the
// k-th set bit feeds declared field k.
type Projection struct {
	total    int
	mask     []uint64
	declared []typeinfo.Tag
	columns  []int // declared field -> column
}

// NewProjection builds a projection from one tag per input column, with
// typeinfo.None marking columns that are present but not selected.
func NewProjection(fieldTypes []typeinfo.Tag) (*Projection, error) {
	if fieldTypes == nil {
		return nil, errors.InvalidConfiguration("field types are nil")
	}
	for i, t := range fieldTypes {
		if t != typeinfo.None && !typeinfo.HasParser(t) {
			return nil, errors.InvalidType([]string{"column[" + strconv.Itoa(i) + "]"}, t.String(),
				"no parser registered")
		}
	}

	columns := lo.FilterMap(fieldTypes, func(t typeinfo.Tag, i int) (int, bool) {
		return i, t != typeinfo.None
	})
	if len(columns) == 0 {
		return nil, errors.InvalidConfiguration("no column selected among %d", len(fieldTypes))
	}

	mask := make([]uint64, (len(fieldTypes)+63)/64)
	for _, c := range columns {
		mask[c/64] |= 1 << (c % 64)
	}

	return &Projection{
		total:    len(fieldTypes),
		mask:     mask,
		declared: lo.Without(fieldTypes, typeinfo.None),
		columns:  columns,
	}, nil
}

// TotalColumns returns the number of columns a line is expected to hold.
func (p *Projection) TotalColumns() int { return p.total }

// NumDeclared returns the number of selected columns.
func (p *Projection) NumDeclared() int { return len(p.declared) }

// Included reports whether column col is parsed.
func (p *Projection) Included(col int) bool {
	if col < 0 || col >= p.total {
		return false
	}
	return p.mask[col/64]&(1<<(col%64)) != 0
}

// Column returns the input column that feeds declared field k.
func (p *Projection) Column(k int) int { return p.columns[k] }

// DeclaredTypes returns the dense field types in column order.
func (p *Projection) DeclaredTypes() []typeinfo.Tag {
	return append([]typeinfo.Tag(nil), p.declared...)
}

// SparseTypes returns one tag per column, None for skipped columns.
func (p *Projection) SparseTypes() []typeinfo.Tag {
	sparse := make([]typeinfo.Tag, p.total)
	for k, c := range p.columns {
		sparse[c] = p.declared[k]
	}
	return sparse
}

func (p *Projection) popcount() int {
	n := 0
	for _, w := range p.mask {
		n += bits.OnesCount64(w)
	}
	return n
}
