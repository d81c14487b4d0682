package stairs

import "github.com/blueloot/Stairs/pkg/math"

// Mesh is an indexed triangle mesh. Triangles wind counter-clockwise when
// seen from outside.
type Mesh struct {
	Vertices  []math.Vec3
	Triangles [][3]uint32
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3 `yaml:"min" json:"min"`
	Max math.Vec3 `yaml:"max" json:"max"`
}

// Size returns the extent of the box on each axis.
func (b AABB) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// unitBox corners: bit 0 selects +X, bit 1 +Y, bit 2 +Z.
var unitBox = [8]math.Vec3{
	{X: -0.5, Y: -0.5, Z: -0.5},
	{X: 0.5, Y: -0.5, Z: -0.5},
	{X: -0.5, Y: 0.5, Z: -0.5},
	{X: 0.5, Y: 0.5, Z: -0.5},
	{X: -0.5, Y: -0.5, Z: 0.5},
	{X: 0.5, Y: -0.5, Z: 0.5},
	{X: -0.5, Y: 0.5, Z: 0.5},
	{X: 0.5, Y: 0.5, Z: 0.5},
}

var boxTriangles = [12][3]uint32{
	{0, 2, 1}, {1, 2, 3}, // -Z
	{4, 5, 6}, {5, 7, 6}, // +Z
	{0, 4, 2}, {2, 4, 6}, // -X
	{1, 3, 5}, {3, 7, 5}, // +X
	{0, 1, 4}, {1, 5, 4}, // -Y
	{2, 6, 3}, {3, 6, 7}, // +Y
}

// StepMesh returns the box described by t: 8 vertices, 12 triangles.
func StepMesh(t Transform) Mesh {
	m := t.Matrix()
	mesh := Mesh{
		Vertices:  make([]math.Vec3, 0, len(unitBox)),
		Triangles: make([][3]uint32, 0, len(boxTriangles)),
	}
	for _, c := range unitBox {
		mesh.Vertices = append(mesh.Vertices, m.TransformVec3(c))
	}
	mesh.Triangles = append(mesh.Triangles, boxTriangles[:]...)
	return mesh
}

// RampMesh returns the ramp quad moved to its position. The four points
// are coplanar, so the quad is two triangles facing up the slope.
func RampMesh(r Ramp) Mesh {
	mesh := Mesh{Vertices: make([]math.Vec3, 0, 4)}
	for _, v := range r.Vertices {
		mesh.Vertices = append(mesh.Vertices, v.Add(r.Position))
	}
	mesh.Triangles = [][3]uint32{{0, 1, 2}, {2, 1, 3}}
	return mesh
}

// Append merges other into m, rebasing its indices.
func (m *Mesh) Append(other Mesh) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, tri := range other.Triangles {
		m.Triangles = append(m.Triangles, [3]uint32{tri[0] + base, tri[1] + base, tri[2] + base})
	}
}

// Bounds returns the bounding box of all vertices. An empty mesh has a
// zero box.
func (m Mesh) Bounds() AABB {
	if len(m.Vertices) == 0 {
		return AABB{}
	}
	b := AABB{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		b.Min = b.Min.Min(v)
		b.Max = b.Max.Max(v)
	}
	return b
}

// StepsMesh merges the meshes of every step in index order.
func (r Result) StepsMesh() Mesh {
	var mesh Mesh
	for _, s := range r.Steps {
		mesh.Append(StepMesh(s))
	}
	return mesh
}

// RampsMesh merges the meshes of every ramp in index order.
func (r Result) RampsMesh() Mesh {
	var mesh Mesh
	for _, ramp := range r.Ramps {
		mesh.Append(RampMesh(ramp))
	}
	return mesh
}

// Mesh merges steps then ramps into one mesh.
func (r Result) Mesh() Mesh {
	mesh := r.StepsMesh()
	mesh.Append(r.RampsMesh())
	return mesh
}

// Bounds returns the bounding box of the whole stair.
func (r Result) Bounds() AABB {
	return r.Mesh().Bounds()
}
