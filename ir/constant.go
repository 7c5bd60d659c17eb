package ir

// Constant is one entry in the constant arena. Only scalar integer
// constants are read by the layout pass (as array element counts);
// the other shapes exist so upstream stages can share the arena.
type Constant struct {
	Name  string
	Inner ConstantInner
}

// ConstantInner is the tagged union of constant variants.
type ConstantInner interface {
	isConstantInner()
}

// ScalarConst is a single already-folded scalar value of Width bytes.
type ScalarConst struct {
	Width uint8
	Value ScalarValue
}

// CompositeConst is a constant built from other constants.
type CompositeConst struct {
	Type       Handle
	Components []Handle
}

func (ScalarConst) isConstantInner()    {}
func (CompositeConst) isConstantInner() {}

// ScalarValue is the tagged union of scalar constant values.
type ScalarValue interface {
	isScalarValue()
}

type SintValue int64
type UintValue uint64
type FloatValue float64
type BoolValue bool

func (SintValue) isScalarValue()  {}
func (UintValue) isScalarValue()  {}
func (FloatValue) isScalarValue() {}
func (BoolValue) isScalarValue()  {}
