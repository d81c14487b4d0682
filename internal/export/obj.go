package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/blueloot/Stairs/pkg/stairs"
)

// WriteOBJ writes the step boxes and ramp quads as two OBJ objects,
// "steps" then "ramps". Face indices are 1-based and global to the file.
func WriteOBJ(w io.Writer, res stairs.Result) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# stairgen")
	fmt.Fprintf(bw, "# steps: %d, ramps: %d\n", len(res.Steps), len(res.Ramps))

	var base uint32
	base = writeObject(bw, "steps", res.StepsMesh(), base)
	if len(res.Ramps) > 0 {
		writeObject(bw, "ramps", res.RampsMesh(), base)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write obj: %w", err)
	}
	return nil
}

func writeObject(w *bufio.Writer, name string, mesh stairs.Mesh, base uint32) uint32 {
	fmt.Fprintf(w, "o %s\n", name)
	for _, v := range mesh.Vertices {
		fmt.Fprintf(w, "v %s %s %s\n", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
	}
	for _, tri := range mesh.Triangles {
		fmt.Fprintf(w, "f %d %d %d\n", base+tri[0]+1, base+tri[1]+1, base+tri[2]+1)
	}
	return base + uint32(len(mesh.Vertices))
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
