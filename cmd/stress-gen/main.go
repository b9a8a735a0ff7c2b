// stress-gen emits the component and system workload file consumed by
// cmd/engine-stress. Systems are bound one-to-one to the first
// components, so -systems may not exceed -components.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

const fileTemplate = `// Code generated by stress-gen. DO NOT EDIT.

package main

import (
	"math/rand"

	"github.com/plus3/grit/ecs"
)

const (
	stressComponentCount = {{.Components}}
	stressSystemCount    = {{.Systems}}
)

{{range .ComponentIDs}}
type StressComponent{{.}} struct{ A, B float64 }
{{end}}

func RegisterStressComponents(w *ecs.World) {
{{- range .ComponentIDs}}
	ecs.RegisterComponent[StressComponent{{.}}](w, "StressComponent{{.}}")
{{- end}}
}

{{range .SystemIDs}}
type StressSystem{{.}} struct{}

func (s *StressSystem{{.}}) Execute(frame *ecs.Frame) {
	for _, e := range frame.Entities {
		c := ecs.Get[StressComponent{{.}}](frame.World, e)
		c.A += c.B * frame.DeltaTime
		c.B *= 0.999
	}
}
{{end}}

func RegisterStressSystems(w *ecs.World) {
{{- range .SystemIDs}}
	ecs.RegisterSystem(w, &StressSystem{{.}}{})
	ecs.SetSystemSignature[*StressSystem{{.}}](w, ecs.NewSignature(ecs.Bit[StressComponent{{.}}](w)))
{{- end}}
}

var stressAdders = []func(w *ecs.World, e ecs.Entity, rng *rand.Rand){
{{- range .ComponentIDs}}
	func(w *ecs.World, e ecs.Entity, rng *rand.Rand) {
		ecs.Add(w, e, StressComponent{{.}}{A: rng.Float64(), B: rng.Float64()})
	},
{{- end}}
}

// SpawnStressEntity creates an entity with componentCount random
// distinct stress components.
func SpawnStressEntity(w *ecs.World, rng *rand.Rand, componentCount int) ecs.Entity {
	e := w.CreateEntity()
	for _, i := range rng.Perm(stressComponentCount)[:componentCount] {
		stressAdders[i](w, e, rng)
	}
	return e
}
`

type templateData struct {
	Components   int
	Systems      int
	ComponentIDs []int
	SystemIDs    []int
}

func main() {
	components := flag.Int("components", 8, "Number of stress component types to generate.")
	systems := flag.Int("systems", 4, "Number of stress systems to generate.")
	out := flag.String("out", "cmd/engine-stress/stress_generated.go", "Output file path.")
	flag.Parse()

	if err := run(*components, *systems, *out); err != nil {
		fmt.Fprintf(os.Stderr, "stress-gen: %v\n", err)
		os.Exit(1)
	}
}

func run(components, systems int, out string) error {
	if components < 1 || components > 32 {
		return fmt.Errorf("components must be in [1, 32], got %d", components)
	}
	if systems < 1 || systems > components {
		return fmt.Errorf("systems must be in [1, components], got %d", systems)
	}

	data := templateData{
		Components:   components,
		Systems:      systems,
		ComponentIDs: ids(components),
		SystemIDs:    ids(systems),
	}

	tmpl, err := template.New("stress").Parse(fileTemplate)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return err
	}

	formatted, err := imports.Process(out, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return fmt.Errorf("format output: %w", err)
	}

	return os.WriteFile(out, formatted, 0o644)
}

func ids(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
