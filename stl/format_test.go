//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package stl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/sigmaslicer/fdm"
)

// stlBytes builds a binary STL by hand, one float at a time
func stlBytes(count uint32, facets [][12]float32) []byte {
	buf := &bytes.Buffer{}

	buf.Write(make([]byte, 80))
	binary.Write(buf, binary.LittleEndian, count)
	for _, facet := range facets {
		for _, f := range facet {
			binary.Write(buf, binary.LittleEndian, math.Float32bits(f))
		}
		binary.Write(buf, binary.LittleEndian, uint16(0))
	}

	return buf.Bytes()
}

var testFacets = [][12]float32{
	{0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0},
	{0.5, -0.25, 0.125, 3.3, 2.2, 1.1, -4, -5, -6, 1e-3, 7.7, 9},
}

func TestDecode(t *testing.T) {
	data := stlBytes(2, testFacets)

	mesh, err := Decode(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if mesh.Count() != 2 {
		t.Fatalf("expected 2 facets, got %v", mesh.Count())
	}

	for n, facet := range testFacets {
		tri := mesh.Triangles[n]
		got := []float64{
			tri.Normal.X, tri.Normal.Y, tri.Normal.Z,
			tri.Vertex[0].X, tri.Vertex[0].Y, tri.Vertex[0].Z,
			tri.Vertex[1].X, tri.Vertex[1].Y, tri.Vertex[1].Z,
			tri.Vertex[2].X, tri.Vertex[2].Y, tri.Vertex[2].Z,
		}
		for i, f := range facet {
			if got[i] != float64(f) {
				t.Errorf("facet %d field %d: expected %v, got %v", n, i, float64(f), got[i])
			}
		}
	}
}

func TestDecodeTrailing(t *testing.T) {
	data := stlBytes(1, testFacets[:1])
	data = append(data, 1, 2, 3)

	mesh, err := Decode(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if mesh.Count() != 1 {
		t.Errorf("expected 1 facet, got %v", mesh.Count())
	}
}

func TestDecodeMalformed(t *testing.T) {
	full := stlBytes(2, testFacets)

	table := map[string]struct {
		Data []byte
		Size int64
	}{
		"empty":          {[]byte{}, 0},
		"short-header":   {full[:50], 50},
		"no-count":       {full[:80], 80},
		"huge-count":     {stlBytes(0xffffffff, nil), headerSize},
		"count-too-big":  {stlBytes(3, testFacets), int64(len(full))},
		"truncated":      {full[:headerSize+facetSize+10], int64(headerSize + facetSize + 10)},
		"size-lies-high": {full[:headerSize+facetSize], int64(len(full))},
	}

	for key, item := range table {
		_, err := Decode(bytes.NewReader(item.Data), item.Size)
		if !errors.Is(err, fdm.ErrMalformedInput) {
			t.Errorf("%v: expected ErrMalformedInput, got %v", key, err)
		}
	}
}

type failingReader struct{}

func (fr *failingReader) Read(p []byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestDecodeReadError(t *testing.T) {
	_, err := Decode(&failingReader{}, 1000)

	var ioErr *fdm.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %v", err)
	}
	if !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("expected wrapped ErrClosedPipe, got %v", ioErr.Err)
	}
}

func TestEncode(t *testing.T) {
	data := stlBytes(2, testFacets)

	mesh, err := Decode(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	err = Encode(buf, mesh)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(buf.Bytes(), data) {
		t.Errorf("expected encoded mesh to match the source bytes")
	}
}

func TestFormatMesh(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "part.STL")

	data := stlBytes(2, testFacets)
	err := os.WriteFile(path, data, 0644)
	if err != nil {
		t.Fatal(err)
	}

	format, err := fdm.NewFormat(path)
	if err != nil {
		t.Fatalf("expected .STL to be recognized, got %v", err)
	}

	mesh, err := format.Mesh()
	if err != nil {
		t.Fatal(err)
	}
	if mesh.Count() != 2 {
		t.Errorf("expected 2 facets, got %v", mesh.Count())
	}

	format, err = fdm.NewFormat(filepath.Join(dir, "missing.stl"))
	if err != nil {
		t.Fatal(err)
	}

	_, err = format.Mesh()
	var ioErr *fdm.IOError
	if !errors.As(err, &ioErr) {
		t.Errorf("expected IOError for a missing file, got %v", err)
	}

	_, err = fdm.NewFormat(filepath.Join(dir, "part.obj"))
	if err == nil {
		t.Errorf("expected unknown extension to fail")
	}
}
