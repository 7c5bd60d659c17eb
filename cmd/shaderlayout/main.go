package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/gpukit/shaderir/errors"
	"github.com/gpukit/shaderir/ir"
	"github.com/gpukit/shaderir/layout"
	"github.com/gpukit/shaderir/typedesc"
)

func main() {
	var (
		descFile    = flag.String("desc", "", "Path to type description file")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose layout logging")
	)
	flag.Parse()

	if *descFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: shaderlayout -desc <file.types>")
		fmt.Fprintln(os.Stderr, "       shaderlayout -desc <file.types> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		layout.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*descFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*descFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func load(descFile string) (*typedesc.Module, *layout.Layouter, error) {
	f, err := os.Open(descFile)
	if err != nil {
		return nil, nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	mod, err := typedesc.Parse(f)
	if err != nil {
		return nil, nil, errors.ParseFailed(descFile, err)
	}

	var l layout.Layouter
	if err := l.InitializeChecked(&mod.Types, &mod.Constants); err != nil {
		return nil, nil, err
	}
	return mod, &l, nil
}

func run(descFile string) error {
	mod, l, err := load(descFile)
	if err != nil {
		return err
	}

	fmt.Printf("Types: %d\n", mod.Types.Len())
	fmt.Printf("Constants: %d\n\n", mod.Constants.Len())

	fmt.Printf("%-4s %-16s %-24s %8s %8s\n", "#", "name", "type", "size", "align")
	mod.Types.Each(func(h ir.Handle, ty *ir.Type) bool {
		tl := l.Resolve(h)
		fmt.Printf("%-4d %-16s %-24s %8d %8d\n", h, displayName(ty), typeSummary(mod, ty), tl.Size, tl.Alignment)

		if st, ok := ty.Inner.(ir.Struct); ok {
			offset := uint32(0)
			for _, member := range st.Members {
				placement, alignment := l.MemberPlacement(offset, member)
				fmt.Printf("     .%-15s %-24s bytes %d..%d (align %d)\n",
					member.Name, memberSummary(mod, member), placement.Start, placement.End, alignment)
				offset = placement.End
			}
		}
		return true
	})
	return nil
}

func displayName(ty *ir.Type) string {
	if ty.Name == "" {
		return "<anon>"
	}
	return ty.Name
}

// typeSummary renders a one-line description of a type variant.
func typeSummary(mod *typedesc.Module, ty *ir.Type) string {
	switch inner := ty.Inner.(type) {
	case ir.Scalar:
		return fmt.Sprintf("scalar %s %d", inner.Kind, inner.Width)
	case ir.Vector:
		return fmt.Sprintf("vector %d %s %d", inner.Size, inner.Kind, inner.Width)
	case ir.Matrix:
		return fmt.Sprintf("matrix %dx%d %d", inner.Columns, inner.Rows, inner.Width)
	case ir.Pointer:
		return fmt.Sprintf("pointer to %s (%s)", displayName(mod.Types.Get(inner.Base)), inner.Space)
	case ir.ValuePointer:
		return fmt.Sprintf("value pointer (%s)", inner.Space)
	case ir.Array:
		base := displayName(mod.Types.Get(inner.Base))
		count := "dynamic"
		if !inner.Size.Dynamic {
			count = constSummary(mod.Constants.Get(inner.Size.Count))
		}
		s := fmt.Sprintf("array %s x %s", base, count)
		if inner.Stride != 0 {
			s += fmt.Sprintf(" stride %d", inner.Stride)
		}
		return s
	case ir.Struct:
		return fmt.Sprintf("struct (%d members)", len(inner.Members))
	case ir.Image:
		return "image"
	case ir.Sampler:
		return "sampler"
	default:
		return "unknown"
	}
}

func memberSummary(mod *typedesc.Module, member ir.StructMember) string {
	var attrs []string
	if member.Align != 0 {
		attrs = append(attrs, fmt.Sprintf("@align(%d)", member.Align))
	}
	if member.Size != 0 {
		attrs = append(attrs, fmt.Sprintf("@size(%d)", member.Size))
	}
	s := displayName(mod.Types.Get(member.Type))
	if len(attrs) > 0 {
		s += " " + strings.Join(attrs, " ")
	}
	return s
}

func constSummary(c *ir.Constant) string {
	if sc, ok := c.Inner.(ir.ScalarConst); ok {
		switch v := sc.Value.(type) {
		case ir.UintValue:
			return fmt.Sprintf("%d", uint64(v))
		case ir.SintValue:
			return fmt.Sprintf("%d", int64(v))
		}
	}
	if c.Name != "" {
		return c.Name
	}
	return "<const>"
}
