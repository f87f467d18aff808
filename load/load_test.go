package load_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/toejough/implements/internal/core"
	"github.com/toejough/implements/load"
)

const shapesSource = `package shapes

// Shape is anything with an area.
type Shape interface {
	Area() float64
}

type Named interface {
	Name() string
}

// NamedShape embeds both.
type NamedShape interface {
	Shape
	Named
	Scale(factor float64)
}

type base struct{}

func (b *base) Name() string { return "base" }

//implements:NamedShape
type Square struct {
	*base
	side float64
}

func (s Square) Area() float64 { return s.side * s.side }

func (s *Square) Scale(factor float64) { s.side *= factor }

type Circle struct{ r float64 }

func (c Circle) Area() float64 { return 3 * c.r * c.r }
`

func TestSource_BuildsInterfacesAndClasses(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	opt := core.WithRegistry(core.NewRegistry())

	pkg, err := load.Source("shapes.go", shapesSource, opt)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(pkg.Name).To(Equal("shapes"))
	g.Expect(pkg.Interfaces).To(HaveLen(3))
	g.Expect(pkg.Classes).To(HaveLen(3))

	namedShape, ok := pkg.Interface("NamedShape")
	g.Expect(ok).To(BeTrue())
	g.Expect(namedShape.Spec().Names()).To(Equal([]string{"Scale", "Area", "Name"}))

	square, ok := pkg.Class("Square")
	g.Expect(ok).To(BeTrue())
	g.Expect(square.Implements()).To(Equal([]*core.Interface{namedShape}))
	g.Expect(square.Bases()).To(HaveLen(1))
	g.Expect(square.Bases()[0].Name()).To(Equal("base"))

	shape, _ := pkg.Interface("Shape")
	circle, _ := pkg.Class("Circle")
	checker := core.NewChecker(opt)

	g.Expect(checker.Conforms(circle, shape)).To(BeTrue())
	g.Expect(checker.Conforms(circle, namedShape)).To(BeFalse())

	_, ok = pkg.Class("Missing")
	g.Expect(ok).To(BeFalse())

	_, ok = pkg.Interface("Missing")
	g.Expect(ok).To(BeFalse())
}

func TestSource_SameTypeTextSharesAnnotation(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	pkg, err := load.Source("refs.go", `package refs

type Sizer interface {
	Size(unit string) (int64, error)
}

type File struct{}

func (f File) Size(unit string) (int64, error) { return 0, nil }
`, core.WithRegistry(core.NewRegistry()))
	g.Expect(err).NotTo(HaveOccurred())

	sizer, _ := pkg.Interface("Sizer")
	file, _ := pkg.Class("File")

	want, _ := sizer.Spec().Get("Size")
	got, _ := file.LookupStatic("Size")

	g.Expect(got.Signature.Params[0].Annotation).To(BeIdenticalTo(want.Signature.Params[0].Annotation))
	g.Expect(got.Signature.Return).To(BeIdenticalTo(want.Signature.Return))
	g.Expect(want.Signature.String()).To(Equal("(unit: string) -> (int64, error)"))
}

func TestSource_DirectiveFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		src    string
		target error
	}{
		{
			name: "parameter name differs",
			src: `package p

type Writer interface { Write(p []byte) (int, error) }

//implements:Writer
type Sink struct{}

func (s Sink) Write(data []byte) (int, error) { return len(data), nil }
`,
			target: core.ErrNotImplemented,
		},
		{
			name: "method missing",
			src: `package p

type Closer interface { Close() error }

//implements: Closer
type Leaky struct{}
`,
			target: core.ErrNotImplemented,
		},
		{
			name: "unknown interface",
			src: `package p

//implements:Nowhere
type Lost struct{}
`,
		},
		{
			name: "unknown embedded interface",
			src: `package p

type Wide interface {
	fmt.Stringer
}
`,
		},
		{
			name: "redeclared ancestor member",
			src: `package p

type Closer interface { Close() error }

type ClosingCloser interface {
	Closer
	Close() error
}
`,
			target: core.ErrOverloaded,
		},
		{
			name: "syntax error",
			src:  `package p; type`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			pkg, err := load.Source("p.go", testCase.src, core.WithRegistry(core.NewRegistry()))
			g.Expect(err).To(HaveOccurred())
			g.Expect(pkg).To(BeNil())

			if testCase.target != nil {
				g.Expect(errors.Is(err, testCase.target)).To(BeTrue(), "got %v", err)
			}
		})
	}
}

func TestSource_EmbeddingCycle(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := load.Source("cycle.go", `package cycle

type Ping struct{ *Pong }

type Pong struct{ *Ping }
`, core.WithRegistry(core.NewRegistry()))
	g.Expect(err).To(MatchError(ContainSubstring("embedding cycle")))
}

func TestSource_GroupedDeclarationDirectives(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	pkg, err := load.Source("files.go", `package files

type Reader interface {
	Read(data []byte) (int, error)
}

//implements:Reader
type (
	File  struct{}
	Other struct{}
)

type (
	//implements:Reader
	Pipe   struct{}
	Buffer struct{}
)

func (f *File) Read(data []byte) (int, error) { return 0, nil }

func (p *Pipe) Read(data []byte) (int, error) { return 0, nil }
`, core.WithRegistry(core.NewRegistry()))
	g.Expect(err).NotTo(HaveOccurred())

	reader, _ := pkg.Interface("Reader")

	for name, want := range map[string][]*core.Interface{
		"File":   nil,
		"Other":  nil,
		"Pipe":   {reader},
		"Buffer": nil,
	} {
		class, ok := pkg.Class(name)
		g.Expect(ok).To(BeTrue(), name)
		g.Expect(class.Implements()).To(ConsistOf(want), name)
	}
}

func TestSource_SkipsConstraintInterfaces(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	pkg, err := load.Source("constraints.go", `package constraints

type Number interface{ ~int | ~float64 }

type Integer interface{ int | int64 }

type Ordered interface {
	Number
	Less(other Ordered) bool
}

type Key interface {
	comparable
	Hash() uint64
}

type ID int

type Identified interface {
	ID
	Name() string
}

type Hasher interface {
	Hash() uint64
}

//implements:Hasher
type Digest struct{}

func (d Digest) Hash() uint64 { return 0 }
`, core.WithRegistry(core.NewRegistry()))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(pkg.Interfaces).To(HaveLen(1))
	g.Expect(pkg.Interfaces[0].Name()).To(Equal("Hasher"))

	for _, name := range []string{"Number", "Integer", "Ordered", "Key", "Identified"} {
		_, ok := pkg.Interface(name)
		g.Expect(ok).To(BeFalse(), name)
	}

	_, ok := pkg.Class("Digest")
	g.Expect(ok).To(BeTrue())
}

func TestSource_MethodsAndVariadics(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	pkg, err := load.Source("log.go", `package log

type Logger interface {
	Logf(format string, args ...any)
}

type Counter int

func (c *Counter) Logf(format string, args ...any) { *c++ }

type Alias = Counter
`, core.WithRegistry(core.NewRegistry()))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(pkg.Classes).To(HaveLen(1))

	logger, _ := pkg.Interface("Logger")
	logf, _ := logger.Spec().Get("Logf")

	g.Expect(logf.Signature.Params[1].Kind).To(Equal(core.VarPositional))
	g.Expect(logf.Signature.String()).To(Equal("(format: string, *args: any)"))

	counter, _ := pkg.Class("Counter")
	g.Expect(core.NewChecker(core.WithRegistry(core.NewRegistry())).Conforms(counter, logger)).To(BeTrue())
}

func TestDir(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	dir := t.TempDir()
	files := map[string]string{
		"iface.go":    "package multi\n\ntype Runner interface { Run() error }\n",
		"impl.go":     "package multi\n\n//implements:Runner\ntype Job struct{}\n",
		"run.go":      "package multi\n\nfunc (j *Job) Run() error { return nil }\n",
		"job_test.go": "package multi\n\ntype ignored interface { Nope() }\n",
		"README.md":   "not go",
	}

	for name, content := range files {
		g.Expect(os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600)).To(Succeed())
	}

	g.Expect(os.Mkdir(filepath.Join(dir, "nested.go"), 0o700)).To(Succeed())

	pkg, err := load.Dir(dir, core.WithRegistry(core.NewRegistry()))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(pkg.Name).To(Equal("multi"))
	g.Expect(pkg.Interfaces).To(HaveLen(1))

	job, ok := pkg.Class("Job")
	g.Expect(ok).To(BeTrue())
	g.Expect(job.Implements()).To(HaveLen(1))
}

func TestDir_Errors(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := load.Dir(filepath.Join(t.TempDir(), "absent"))
	g.Expect(err).To(HaveOccurred())

	empty := t.TempDir()
	g.Expect(os.WriteFile(filepath.Join(empty, "only_test.go"), []byte("package x\n"), 0o600)).To(Succeed())

	_, err = load.Dir(empty)
	g.Expect(err).To(MatchError(ContainSubstring("no source files")))

	broken := t.TempDir()
	g.Expect(os.WriteFile(filepath.Join(broken, "bad.go"), []byte("package"), 0o600)).To(Succeed())

	_, err = load.Dir(broken)
	g.Expect(err).To(MatchError(ContainSubstring("failed to parse")))
}
