package ir

import "testing"

func TestArenaAppendGet(t *testing.T) {
	var a Arena[Type]

	h0 := a.Append(Type{Name: "f32", Inner: Scalar{Kind: Float, Width: 4}})
	h1 := a.Append(Type{Name: "vec2", Inner: Vector{Size: Bi, Kind: Float, Width: 4}})

	if h0.Index() != 0 || h1.Index() != 1 {
		t.Errorf("handles: got %d, %d, want 0, 1", h0, h1)
	}
	if a.Len() != 2 {
		t.Errorf("len: got %d, want 2", a.Len())
	}
	if a.Get(h0).Name != "f32" {
		t.Errorf("get(0): got %q, want \"f32\"", a.Get(h0).Name)
	}
	if a.Get(h1).Name != "vec2" {
		t.Errorf("get(1): got %q, want \"vec2\"", a.Get(h1).Name)
	}
}

func TestArenaEachOrder(t *testing.T) {
	var a Arena[Constant]
	for i := 0; i < 5; i++ {
		a.Append(Constant{Inner: ScalarConst{Width: 4, Value: UintValue(i)}})
	}

	var seen []Handle
	a.Each(func(h Handle, c *Constant) bool {
		if got := c.Inner.(ScalarConst).Value.(UintValue); uint64(got) != uint64(h) {
			t.Errorf("handle %d: got value %d", h, got)
		}
		seen = append(seen, h)
		return true
	})

	if len(seen) != 5 {
		t.Fatalf("visited %d entries, want 5", len(seen))
	}
	for i, h := range seen {
		if h.Index() != i {
			t.Errorf("iteration order: position %d got handle %d", i, h)
		}
	}
}

func TestArenaEachEarlyStop(t *testing.T) {
	var a Arena[Type]
	a.Append(Type{})
	a.Append(Type{})
	a.Append(Type{})

	count := 0
	a.Each(func(Handle, *Type) bool {
		count++
		return count < 2
	})
	if count != 2 {
		t.Errorf("visited %d entries, want 2", count)
	}
}

func TestArenaGetForeignHandlePanics(t *testing.T) {
	var a Arena[Type]
	a.Append(Type{})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for foreign handle")
		}
	}()
	a.Get(Handle(5))
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{Float.String(), "float"},
		{Sint.String(), "sint"},
		{Uint.String(), "uint"},
		{Bool.String(), "bool"},
		{ScalarKind(99).String(), "unknown"},
		{SpaceUniform.String(), "uniform"},
		{SpaceStorage.String(), "storage"},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("got %q, want %q", tc.got, tc.want)
		}
	}
}
