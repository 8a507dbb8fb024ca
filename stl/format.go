//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package stl

import (
	"encoding/binary"
	"io"

	"github.com/go-restruct/restruct"
	"github.com/pkg/errors"

	"github.com/sigmaslicer/fdm"
)

const (
	headerSize = 84
	facetSize  = 50
)

type stlHeader struct {
	Comment [80]uint8 // 00: Opaque
	Facets  uint32    // 50: Number of facets that follow
}

type stlFacet struct {
	Normal    [3]float32 // 00:
	Vertex0   [3]float32 // 0c:
	Vertex1   [3]float32 // 18:
	Vertex2   [3]float32 // 24:
	Attribute uint16     // 30: Attribute byte count, not interpreted
}

func toVec3(v [3]float32) fdm.Vec3 {
	return fdm.Vec3{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

func fromVec3(v fdm.Vec3) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

func (facet *stlFacet) Triangle() (tri fdm.Triangle) {
	tri.Normal = toVec3(facet.Normal)
	tri.Vertex[0] = toVec3(facet.Vertex0)
	tri.Vertex[1] = toVec3(facet.Vertex1)
	tri.Vertex[2] = toVec3(facet.Vertex2)

	return
}

type Formatter struct {
	Suffix string
}

func NewFormatter(suffix string) (sf *Formatter) {
	sf = &Formatter{
		Suffix: suffix,
	}

	return
}

// readFull distinguishes a short source (malformed) from a failing one
func readFull(reader io.Reader, data []byte, what string) (err error) {
	_, err = io.ReadFull(reader, data)
	switch err {
	case nil:
	case io.EOF, io.ErrUnexpectedEOF:
		err = errors.Wrapf(fdm.ErrMalformedInput, "stl: %s truncated", what)
	default:
		err = &fdm.IOError{Op: "read", Err: err}
	}

	return
}

// Decode a binary STL of size bytes. The facet count is checked against
// size before any storage is allocated.
func (sf *Formatter) Decode(reader io.Reader, size int64) (mesh *fdm.Mesh, err error) {
	if size < headerSize {
		err = errors.Wrapf(fdm.ErrMalformedInput, "stl: %d bytes is shorter than the %d byte header", size, headerSize)
		return
	}

	data := make([]byte, headerSize)
	err = readFull(reader, data, "header")
	if err != nil {
		return
	}

	var header stlHeader
	err = restruct.Unpack(data, binary.LittleEndian, &header)
	if err != nil {
		return
	}

	need := int64(headerSize) + int64(header.Facets)*facetSize
	if need > size {
		err = errors.Wrapf(fdm.ErrMalformedInput, "stl: %d facets need %d bytes, only %d available", header.Facets, need, size)
		return
	}

	triangles := make([]fdm.Triangle, header.Facets)

	data = make([]byte, facetSize)
	for n := range triangles {
		err = readFull(reader, data, "facet")
		if err != nil {
			return
		}

		var facet stlFacet
		err = restruct.Unpack(data, binary.LittleEndian, &facet)
		if err != nil {
			return
		}

		triangles[n] = facet.Triangle()
	}

	mesh = &fdm.Mesh{
		Triangles: triangles,
	}

	return
}

// Encode writes a binary STL with an all-zero comment
func (sf *Formatter) Encode(writer io.Writer, mesh *fdm.Mesh) (err error) {
	header := stlHeader{
		Facets: uint32(mesh.Count()),
	}

	data, err := restruct.Pack(binary.LittleEndian, &header)
	if err != nil {
		return
	}

	_, err = writer.Write(data)
	if err != nil {
		err = &fdm.IOError{Op: "write", Err: err}
		return
	}

	for _, tri := range mesh.Triangles {
		facet := stlFacet{
			Normal:  fromVec3(tri.Normal),
			Vertex0: fromVec3(tri.Vertex[0]),
			Vertex1: fromVec3(tri.Vertex[1]),
			Vertex2: fromVec3(tri.Vertex[2]),
		}

		data, err = restruct.Pack(binary.LittleEndian, &facet)
		if err != nil {
			return
		}

		_, err = writer.Write(data)
		if err != nil {
			err = &fdm.IOError{Op: "write", Err: err}
			return
		}
	}

	return
}

// Decode is shorthand for the ".stl" formatter
func Decode(reader io.Reader, size int64) (mesh *fdm.Mesh, err error) {
	return NewFormatter(".stl").Decode(reader, size)
}

// Encode is shorthand for the ".stl" formatter
func Encode(writer io.Writer, mesh *fdm.Mesh) (err error) {
	return NewFormatter(".stl").Encode(writer, mesh)
}
