//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package fdm

import (
	"github.com/unixpickle/model3d/model3d"
)

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) min(o Vec3) Vec3 {
	if o.X < v.X {
		v.X = o.X
	}
	if o.Y < v.Y {
		v.Y = o.Y
	}
	if o.Z < v.Z {
		v.Z = o.Z
	}
	return v
}

func (v Vec3) max(o Vec3) Vec3 {
	if o.X > v.X {
		v.X = o.X
	}
	if o.Y > v.Y {
		v.Y = o.Y
	}
	if o.Z > v.Z {
		v.Z = o.Z
	}
	return v
}

// One facet of a mesh
type Triangle struct {
	Normal Vec3
	Vertex [3]Vec3
}

// Bounds is the axis aligned box around a set of vertices
type Bounds struct {
	Min, Max Vec3
}

// Size is the extent of the box along each axis
func (b Bounds) Size() Vec3 {
	return Vec3{b.Max.X - b.Min.X, b.Max.Y - b.Min.Y, b.Max.Z - b.Min.Z}
}

// Mesh is a triangle soup, in file order
type Mesh struct {
	Triangles []Triangle
}

// Count is the number of facets
func (mesh *Mesh) Count() int {
	return len(mesh.Triangles)
}

// Release drops the facet storage; the mesh is empty afterwards
func (mesh *Mesh) Release() {
	mesh.Triangles = nil
}

// Bounds of all vertices; the zero Bounds for an empty mesh
func (mesh *Mesh) Bounds() (bounds Bounds) {
	if len(mesh.Triangles) == 0 {
		return
	}

	bounds.Min = mesh.Triangles[0].Vertex[0]
	bounds.Max = bounds.Min
	for _, tri := range mesh.Triangles {
		for _, v := range tri.Vertex {
			bounds.Min = bounds.Min.min(v)
			bounds.Max = bounds.Max.max(v)
		}
	}

	return
}

// Model3D converts the facets for use with the model3d toolkit. Stored
// normals are dropped; model3d derives them from the winding order.
func (mesh *Mesh) Model3D() *model3d.Mesh {
	tris := make([]*model3d.Triangle, 0, len(mesh.Triangles))
	for _, tri := range mesh.Triangles {
		var t model3d.Triangle
		for n, v := range tri.Vertex {
			t[n] = model3d.XYZ(v.X, v.Y, v.Z)
		}
		tris = append(tris, &t)
	}

	return model3d.NewMeshTriangles(tris)
}
