package typedesc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gpukit/shaderir/ir"
)

// Module is a parsed type and constant table.
type Module struct {
	Types     ir.Arena[ir.Type]
	Constants ir.Arena[ir.Constant]
}

// Parse reads a type description and builds the arenas.
func Parse(r io.Reader) (*Module, error) {
	p := &parser{
		mod:      &Module{},
		typeMap:  make(map[string]ir.Handle),
		constMap: make(map[string]ir.Handle),
	}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		p.line++
		if err := p.parseLine(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return p.mod, nil
}

// ParseString is Parse over an in-memory description.
func ParseString(s string) (*Module, error) {
	return Parse(strings.NewReader(s))
}

type parser struct {
	mod      *Module
	typeMap  map[string]ir.Handle
	constMap map[string]ir.Handle
	line     int
}

func (p *parser) errf(format string, args ...any) error {
	return fmt.Errorf("line %d: %s", p.line, fmt.Sprintf(format, args...))
}

func (p *parser) parseLine(raw string) error {
	text := raw
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}
	// Collapse runs of whitespace so tabs and alignment padding parse
	// the same as single spaces.
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return nil
	}

	keyword, rest, ok := strings.Cut(text, " ")
	if !ok {
		return p.errf("expected declaration, got %q", text)
	}
	name, body, ok := strings.Cut(rest, "=")
	if !ok {
		return p.errf("expected '=' in declaration")
	}
	name = strings.TrimSpace(name)
	body = strings.TrimSpace(body)
	if name == "" {
		return p.errf("missing declaration name")
	}

	switch keyword {
	case "const":
		return p.parseConst(name, body)
	case "type":
		return p.parseType(name, body)
	default:
		return p.errf("unknown keyword %q", keyword)
	}
}

func (p *parser) parseConst(name, body string) error {
	if _, exists := p.constMap[name]; exists {
		return p.errf("duplicate constant %q", name)
	}

	fields := strings.Fields(body)
	if len(fields) != 2 {
		return p.errf("constant %q: expected '<uint|sint> <value>'", name)
	}

	var value ir.ScalarValue
	switch fields[0] {
	case "uint":
		v, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return p.errf("constant %q: %v", name, err)
		}
		value = ir.UintValue(v)
	case "sint":
		v, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return p.errf("constant %q: %v", name, err)
		}
		value = ir.SintValue(v)
	default:
		return p.errf("constant %q: unknown kind %q", name, fields[0])
	}

	h := p.mod.Constants.Append(ir.Constant{
		Name:  name,
		Inner: ir.ScalarConst{Width: 4, Value: value},
	})
	p.constMap[name] = h
	return nil
}

func (p *parser) parseType(name, body string) error {
	if _, exists := p.typeMap[name]; exists {
		return p.errf("duplicate type %q", name)
	}

	inner, err := p.parseTypeInner(name, body)
	if err != nil {
		return err
	}

	h := p.mod.Types.Append(ir.Type{Name: name, Inner: inner})
	p.typeMap[name] = h
	return nil
}

func (p *parser) parseTypeInner(name, body string) (ir.TypeInner, error) {
	variant, rest, _ := strings.Cut(body, " ")
	rest = strings.TrimSpace(rest)

	switch variant {
	case "scalar":
		fields := strings.Fields(rest)
		if len(fields) != 2 {
			return nil, p.errf("type %q: expected 'scalar <kind> <width>'", name)
		}
		kind, err := p.scalarKind(name, fields[0])
		if err != nil {
			return nil, err
		}
		width, err := p.width(name, fields[1])
		if err != nil {
			return nil, err
		}
		return ir.Scalar{Kind: kind, Width: width}, nil

	case "vector":
		fields := strings.Fields(rest)
		if len(fields) != 3 {
			return nil, p.errf("type %q: expected 'vector <n> <kind> <width>'", name)
		}
		size, err := p.vectorSize(name, fields[0])
		if err != nil {
			return nil, err
		}
		kind, err := p.scalarKind(name, fields[1])
		if err != nil {
			return nil, err
		}
		width, err := p.width(name, fields[2])
		if err != nil {
			return nil, err
		}
		return ir.Vector{Size: size, Kind: kind, Width: width}, nil

	case "matrix":
		fields := strings.Fields(rest)
		if len(fields) != 2 {
			return nil, p.errf("type %q: expected 'matrix <cols>x<rows> <width>'", name)
		}
		cols, rows, ok := strings.Cut(fields[0], "x")
		if !ok {
			return nil, p.errf("type %q: expected '<cols>x<rows>'", name)
		}
		c, err := p.vectorSize(name, cols)
		if err != nil {
			return nil, err
		}
		r, err := p.vectorSize(name, rows)
		if err != nil {
			return nil, err
		}
		width, err := p.width(name, fields[1])
		if err != nil {
			return nil, err
		}
		return ir.Matrix{Columns: c, Rows: r, Width: width}, nil

	case "pointer":
		base, ok := p.typeMap[rest]
		if !ok {
			return nil, p.errf("type %q: unknown type %q", name, rest)
		}
		return ir.Pointer{Base: base, Space: ir.SpaceStorage}, nil

	case "array":
		return p.parseArray(name, rest)

	case "struct":
		return p.parseStruct(name, rest)

	case "image":
		return ir.Image{Dim: ir.Dim2D, Class: ir.ImageSampled}, nil

	case "sampler":
		return ir.Sampler{}, nil

	default:
		return nil, p.errf("type %q: unknown variant %q", name, variant)
	}
}

func (p *parser) parseArray(name, rest string) (ir.TypeInner, error) {
	fields := strings.Fields(rest)
	if len(fields) != 2 && len(fields) != 4 {
		return nil, p.errf("type %q: expected 'array <base> <count|dynamic> [stride <n>]'", name)
	}

	base, ok := p.typeMap[fields[0]]
	if !ok {
		return nil, p.errf("type %q: unknown type %q", name, fields[0])
	}

	var size ir.ArraySize
	if fields[1] == "dynamic" {
		size.Dynamic = true
	} else {
		count, ok := p.constMap[fields[1]]
		if !ok {
			return nil, p.errf("type %q: unknown constant %q", name, fields[1])
		}
		size.Count = count
	}

	var stride uint32
	if len(fields) == 4 {
		if fields[2] != "stride" {
			return nil, p.errf("type %q: expected 'stride', got %q", name, fields[2])
		}
		v, err := strconv.ParseUint(fields[3], 10, 32)
		if err != nil {
			return nil, p.errf("type %q: stride: %v", name, err)
		}
		stride = uint32(v)
	}

	return ir.Array{Base: base, Size: size, Stride: stride}, nil
}

func (p *parser) parseStruct(name, rest string) (ir.TypeInner, error) {
	if !strings.HasPrefix(rest, "{") || !strings.HasSuffix(rest, "}") {
		return nil, p.errf("type %q: struct body must be '{ ... }' on one line", name)
	}
	body := strings.TrimSpace(rest[1 : len(rest)-1])

	var members []ir.StructMember
	if body == "" {
		return ir.Struct{Members: members}, nil
	}

	for _, decl := range strings.Split(body, ";") {
		member, err := p.parseMember(name, strings.TrimSpace(decl))
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return ir.Struct{Members: members}, nil
}

func (p *parser) parseMember(structName, decl string) (ir.StructMember, error) {
	fields := strings.Fields(decl)
	if len(fields) < 2 || !strings.HasSuffix(fields[0], ":") {
		return ir.StructMember{}, p.errf("struct %q: expected '<name>: <type> [@align(n)] [@size(n)]', got %q", structName, decl)
	}

	member := ir.StructMember{Name: strings.TrimSuffix(fields[0], ":")}

	ty, ok := p.typeMap[fields[1]]
	if !ok {
		return ir.StructMember{}, p.errf("struct %q: unknown type %q", structName, fields[1])
	}
	member.Type = ty

	for _, attr := range fields[2:] {
		switch {
		case strings.HasPrefix(attr, "@align("):
			v, err := p.attrValue(structName, attr, "@align(")
			if err != nil {
				return ir.StructMember{}, err
			}
			member.Align = v
		case strings.HasPrefix(attr, "@size("):
			v, err := p.attrValue(structName, attr, "@size(")
			if err != nil {
				return ir.StructMember{}, err
			}
			member.Size = v
		default:
			return ir.StructMember{}, p.errf("struct %q: unknown attribute %q", structName, attr)
		}
	}
	return member, nil
}

func (p *parser) attrValue(structName, attr, prefix string) (uint32, error) {
	if !strings.HasSuffix(attr, ")") {
		return 0, p.errf("struct %q: malformed attribute %q", structName, attr)
	}
	raw := attr[len(prefix) : len(attr)-1]
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return 0, p.errf("struct %q: attribute %q needs a positive value", structName, attr)
	}
	return uint32(v), nil
}

func (p *parser) scalarKind(name, s string) (ir.ScalarKind, error) {
	switch s {
	case "sint":
		return ir.Sint, nil
	case "uint":
		return ir.Uint, nil
	case "float":
		return ir.Float, nil
	case "bool":
		return ir.Bool, nil
	default:
		return 0, p.errf("type %q: unknown scalar kind %q", name, s)
	}
}

func (p *parser) vectorSize(name, s string) (ir.VectorSize, error) {
	switch s {
	case "2":
		return ir.Bi, nil
	case "3":
		return ir.Tri, nil
	case "4":
		return ir.Quad, nil
	default:
		return 0, p.errf("type %q: component count must be 2, 3 or 4, got %q", name, s)
	}
}

func (p *parser) width(name, s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil || v == 0 {
		return 0, p.errf("type %q: invalid width %q", name, s)
	}
	return uint8(v), nil
}
