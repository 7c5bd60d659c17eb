package layout

import (
	"go.uber.org/zap"

	"github.com/gpukit/shaderir/errors"
	"github.com/gpukit/shaderir/ir"
)

// TypeLayout is the computed memory layout of a single type.
// Alignment is always a nonzero power of two.
type TypeLayout struct {
	Size      uint32
	Alignment uint32
}

// Range is a half-open byte range [Start, End) within a struct.
type Range struct {
	Start uint32
	End   uint32
}

// Width returns the number of bytes the range covers.
func (r Range) Width() uint32 {
	return r.End - r.Start
}

// Layouter holds one TypeLayout per type handle, index-aligned with
// the type arena it was built from.
//
// The table is read-only after construction: concurrent readers are
// safe as long as nothing calls Initialize at the same time. Rebuilding
// after arena growth is an explicit Initialize call, never implicit.
type Layouter struct {
	layouts []TypeLayout
}

// New builds a layout table for the given arenas. It panics with a
// structured *errors.Error on malformed input; see InitializeChecked
// for the propagating variant.
func New(types *ir.Arena[ir.Type], constants *ir.Arena[ir.Constant]) *Layouter {
	l := &Layouter{}
	l.Initialize(types, constants)
	return l
}

// RoundUp returns the smallest value >= offset that passes the layout
// table's own alignment test.
//
// The mask is the alignment value itself, not alignment-1. That is the
// literal contract of the defining layout table, and every downstream
// byte offset depends on it; do not substitute the conventional
// power-of-two round-up.
func RoundUp(alignment, offset uint32) uint32 {
	rem := offset & alignment
	if rem == 0 {
		return offset
	}
	return offset + alignment - rem
}

// MemberPlacement computes where a struct member lands when placed at
// or after offset: its byte range and its effective alignment (the
// member's override if present, the member type's own alignment
// otherwise). It is a pure function of the current table and never
// mutates it.
func (l *Layouter) MemberPlacement(offset uint32, member ir.StructMember) (Range, uint32) {
	base := l.layouts[member.Type.Index()]

	alignment := member.Align
	if alignment == 0 {
		alignment = base.Alignment
	}

	size := member.Size
	if size == 0 {
		size = base.Size
	}

	start := RoundUp(alignment, offset)
	return Range{Start: start, End: start + size}, alignment
}

// Initialize rebuilds the table with one forward pass over the type
// arena. Types may only reference earlier handles, so each layout
// depends only on already-computed entries.
//
// Malformed input panics with a structured *errors.Error; it signals
// that an upstream validation stage failed, and no partial table is
// usable afterwards.
func (l *Layouter) Initialize(types *ir.Arena[ir.Type], constants *ir.Arena[ir.Constant]) {
	if err := l.initialize(types, constants); err != nil {
		panic(err)
	}
}

// InitializeChecked is Initialize with propagated errors instead of
// panics, for callers that cannot guarantee pre-validated input.
func (l *Layouter) InitializeChecked(types *ir.Arena[ir.Type], constants *ir.Arena[ir.Constant]) error {
	return l.initialize(types, constants)
}

func (l *Layouter) initialize(types *ir.Arena[ir.Type], constants *ir.Arena[ir.Constant]) error {
	l.layouts = l.layouts[:0]
	if cap(l.layouts) < types.Len() {
		l.layouts = make([]TypeLayout, 0, types.Len())
	}

	var firstErr error
	types.Each(func(h ir.Handle, ty *ir.Type) bool {
		tl, err := l.layoutOf(ty, constants)
		if err != nil {
			firstErr = err
			return false
		}
		l.layouts = append(l.layouts, tl)
		return true
	})
	if firstErr != nil {
		return firstErr
	}

	Logger().Debug("layout table built", zap.Int("types", types.Len()))
	return nil
}

func (l *Layouter) layoutOf(ty *ir.Type, constants *ir.Arena[ir.Constant]) (TypeLayout, error) {
	switch inner := ty.Inner.(type) {
	case ir.Scalar:
		return TypeLayout{
			Size:      uint32(inner.Width),
			Alignment: uint32(inner.Width),
		}, nil

	case ir.Vector:
		count := uint32(2)
		if inner.Size >= ir.Tri {
			count = 4
		}
		return TypeLayout{
			Size:      uint32(inner.Size) * uint32(inner.Width),
			Alignment: count * uint32(inner.Width),
		}, nil

	case ir.Matrix:
		count := uint32(2)
		if inner.Rows >= ir.Tri {
			count = 4
		}
		return TypeLayout{
			Size:      uint32(inner.Columns) * uint32(inner.Rows) * uint32(inner.Width),
			Alignment: count * uint32(inner.Width),
		}, nil

	case ir.Pointer, ir.ValuePointer:
		// Opaque reference types: fixed sentinel layout.
		return TypeLayout{Size: 4, Alignment: 1}, nil

	case ir.Array:
		count, err := l.arrayCount(inner.Size, constants)
		if err != nil {
			return TypeLayout{}, err
		}
		stride := inner.Stride
		if stride == 0 {
			base := l.layouts[inner.Base.Index()]
			stride = RoundUp(base.Alignment, base.Size)
		}
		return TypeLayout{
			Size:      count * stride,
			Alignment: stride,
		}, nil

	case ir.Struct:
		total := uint32(0)
		biggest := uint32(1)
		for _, member := range inner.Members {
			placement, alignment := l.MemberPlacement(total, member)
			if alignment > biggest {
				biggest = alignment
			}
			total = placement.End
		}
		return TypeLayout{
			Size:      RoundUp(biggest, total),
			Alignment: biggest,
		}, nil

	case ir.Image, ir.Sampler:
		// Opaque resources, not memory-resident.
		return TypeLayout{Size: 0, Alignment: 1}, nil

	default:
		return TypeLayout{}, &errors.Error{
			Phase:   errors.PhaseLayout,
			Kind:    errors.KindInvalidData,
			Variant: variantName(ty.Inner),
			Detail:  "unknown type variant",
		}
	}
}

// arrayCount resolves an array's element count. A dynamic size is 0
// for layout purposes: the count is unknown until bound later. A
// constant size must hold a scalar integer; a signed value is accepted
// and coerced so sources need no explicit uint literal.
func (l *Layouter) arrayCount(size ir.ArraySize, constants *ir.Arena[ir.Constant]) (uint32, error) {
	if size.Dynamic {
		return 0, nil
	}

	c := constants.Get(size.Count)
	sc, ok := c.Inner.(ir.ScalarConst)
	if !ok {
		return 0, errors.InvalidConstant(uint32(size.Count), variantName(c.Inner), "scalar integer array size")
	}
	switch v := sc.Value.(type) {
	case ir.UintValue:
		return uint32(v), nil
	case ir.SintValue:
		return uint32(v), nil
	default:
		return 0, errors.InvalidConstant(uint32(size.Count), variantName(v), "scalar integer array size")
	}
}

// Resolve returns the layout computed for a handle. The handle must
// belong to the arena the table was built from; a stale or foreign
// handle is a programmer error and panics with a structured
// *errors.Error.
func (l *Layouter) Resolve(h ir.Handle) TypeLayout {
	if h.Index() >= len(l.layouts) {
		panic(errors.OutOfBounds(errors.PhaseResolve, uint32(h), len(l.layouts)))
	}
	return l.layouts[h.Index()]
}

// ResolveChecked is Resolve with a propagated error instead of a
// panic.
func (l *Layouter) ResolveChecked(h ir.Handle) (TypeLayout, error) {
	if h.Index() >= len(l.layouts) {
		return TypeLayout{}, errors.OutOfBounds(errors.PhaseResolve, uint32(h), len(l.layouts))
	}
	return l.layouts[h.Index()], nil
}

// Len returns the number of entries in the table.
func (l *Layouter) Len() int {
	return len(l.layouts)
}

func variantName(v any) string {
	switch v.(type) {
	case ir.Scalar:
		return "scalar"
	case ir.Vector:
		return "vector"
	case ir.Matrix:
		return "matrix"
	case ir.Pointer:
		return "pointer"
	case ir.ValuePointer:
		return "value-pointer"
	case ir.Array:
		return "array"
	case ir.Struct:
		return "struct"
	case ir.Image:
		return "image"
	case ir.Sampler:
		return "sampler"
	case ir.ScalarConst:
		return "scalar constant"
	case ir.CompositeConst:
		return "composite constant"
	case ir.FloatValue:
		return "float constant"
	case ir.BoolValue:
		return "bool constant"
	default:
		return "unknown"
	}
}
