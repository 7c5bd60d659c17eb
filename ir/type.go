package ir

// ScalarKind identifies the interpretation of a scalar's bits.
type ScalarKind uint8

const (
	Sint ScalarKind = iota
	Uint
	Float
	Bool
)

var scalarKindNames = [...]string{
	Sint:  "sint",
	Uint:  "uint",
	Float: "float",
	Bool:  "bool",
}

func (k ScalarKind) String() string {
	if int(k) < len(scalarKindNames) {
		return scalarKindNames[k]
	}
	return "unknown"
}

// VectorSize is a vector's component count, or a matrix's column or
// row count. Only 2 through 4 exist in the type system.
type VectorSize uint8

const (
	Bi   VectorSize = 2
	Tri  VectorSize = 3
	Quad VectorSize = 4
)

// AddressSpace identifies the memory region a pointer refers to.
type AddressSpace uint8

const (
	SpaceFunction AddressSpace = iota
	SpacePrivate
	SpaceWorkgroup
	SpaceUniform
	SpaceStorage
	SpaceHandle
)

var addressSpaceNames = [...]string{
	SpaceFunction:  "function",
	SpacePrivate:   "private",
	SpaceWorkgroup: "workgroup",
	SpaceUniform:   "uniform",
	SpaceStorage:   "storage",
	SpaceHandle:    "handle",
}

func (s AddressSpace) String() string {
	if int(s) < len(addressSpaceNames) {
		return addressSpaceNames[s]
	}
	return "unknown"
}

// ImageDim is an image's dimensionality.
type ImageDim uint8

const (
	Dim1D ImageDim = iota
	Dim2D
	Dim3D
	DimCube
)

// ImageClass distinguishes sampled, depth, and storage images.
type ImageClass uint8

const (
	ImageSampled ImageClass = iota
	ImageDepth
	ImageStorage
)

// Type is one entry in the type arena. Name may be empty for
// anonymous types.
type Type struct {
	Name  string
	Inner TypeInner
}

// TypeInner is the tagged union of type variants. Exactly the types
// below implement it.
type TypeInner interface {
	isTypeInner()
}

// Scalar is a single value of Width bytes.
type Scalar struct {
	Kind  ScalarKind
	Width uint8
}

// Vector is Size components of Width bytes each.
type Vector struct {
	Size  VectorSize
	Kind  ScalarKind
	Width uint8
}

// Matrix is Columns column vectors of Rows components each.
type Matrix struct {
	Columns VectorSize
	Rows    VectorSize
	Width   uint8
}

// Pointer references a value of type Base in some address space.
type Pointer struct {
	Base  Handle
	Space AddressSpace
}

// ValuePointer references a scalar or vector without going through the
// type arena. Size 0 means a scalar.
type ValuePointer struct {
	Size  VectorSize
	Kind  ScalarKind
	Width uint8
	Space AddressSpace
}

// ArraySize is an array's element count: either a handle to a scalar
// integer constant, or dynamic (resolved at binding time).
type ArraySize struct {
	Count   Handle
	Dynamic bool
}

// Array is a sequence of Base elements. Stride is the explicit byte
// distance between elements; 0 means derive the default stride from
// the element's own layout.
type Array struct {
	Base   Handle
	Size   ArraySize
	Stride uint32
}

// StructMember is one field of a Struct, in declaration order.
// Align and Size override the member type's own layout when nonzero;
// a valid alignment override is a nonzero power of two.
type StructMember struct {
	Name  string
	Type  Handle
	Align uint32
	Size  uint32
}

// Struct is an ordered sequence of members. Block marks structs used
// as uniform or storage buffer blocks.
type Struct struct {
	Block   bool
	Members []StructMember
}

// Image is an opaque texture resource. It occupies no buffer memory.
type Image struct {
	Dim     ImageDim
	Arrayed bool
	Class   ImageClass
}

// Sampler is an opaque sampler resource.
type Sampler struct {
	Comparison bool
}

func (Scalar) isTypeInner()       {}
func (Vector) isTypeInner()       {}
func (Matrix) isTypeInner()       {}
func (Pointer) isTypeInner()      {}
func (ValuePointer) isTypeInner() {}
func (Array) isTypeInner()        {}
func (Struct) isTypeInner()       {}
func (Image) isTypeInner()        {}
func (Sampler) isTypeInner()      {}
