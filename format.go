//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package fdm

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Mesh file format
type MeshFormatter interface {
	Decode(reader io.Reader, size int64) (mesh *Mesh, err error)
	Encode(writer io.Writer, mesh *Mesh) (err error)
}

// Mesh file format factory
type NewMeshFormatter func(suffix string) (formatter MeshFormatter)

var formatterMap map[string]NewMeshFormatter

func RegisterFormatter(suffix string, newFormatter NewMeshFormatter) {
	if formatterMap == nil {
		formatterMap = make(map[string]NewMeshFormatter)
	}

	formatterMap[suffix] = newFormatter
}

// FormatterSuffixes lists the registered suffixes, sorted
func FormatterSuffixes() (list []string) {
	for suffix := range formatterMap {
		list = append(list, suffix)
	}
	sort.Strings(list)

	return
}

type Format struct {
	MeshFormatter
	Suffix   string
	Filename string
}

func NewFormat(filename string) (format *Format, err error) {
	var formatter MeshFormatter
	var suffix string

	lower := strings.ToLower(filename)
	for _, suffix = range FormatterSuffixes() {
		if strings.HasSuffix(lower, suffix) {
			formatter = formatterMap[suffix](suffix)
			break
		}
	}

	if formatter == nil {
		err = fmt.Errorf("%s: File extension unknown", filename)
		return
	}

	format = &Format{
		MeshFormatter: formatter,
		Suffix:        suffix,
		Filename:      filename,
	}
	return
}

// Mesh reads and decodes the file
func (format *Format) Mesh() (mesh *Mesh, err error) {
	reader, err := os.Open(format.Filename)
	if err != nil {
		err = &IOError{Op: "open", Path: format.Filename, Err: err}
		return
	}
	defer func() { reader.Close() }()

	info, err := reader.Stat()
	if err != nil {
		err = &IOError{Op: "stat", Path: format.Filename, Err: err}
		return
	}

	mesh, err = format.Decode(reader, info.Size())
	if err != nil {
		return
	}

	return
}

// SetMesh writes a mesh to the file format
func (format *Format) SetMesh(mesh *Mesh) (err error) {
	writer, err := os.Create(format.Filename)
	if err != nil {
		err = &IOError{Op: "create", Path: format.Filename, Err: err}
		return
	}
	defer func() {
		cerr := writer.Close()
		if err == nil && cerr != nil {
			err = &IOError{Op: "close", Path: format.Filename, Err: cerr}
		}
	}()

	err = format.Encode(writer, mesh)
	if err != nil {
		return
	}

	return
}
