package rot3

import (
	"bytes"
	"fmt"
	"os"

	"github.com/qmuntal/gltf"
)

// GLTFLoadOptions alters how rotations are read out of a glTF document.
type GLTFLoadOptions struct {
	// WorldSpace, if set, returns each node's rotation combined with the rotations of all of its parents, rather than
	// the rotation relative to its parent.
	WorldSpace bool
}

// DefaultGLTFLoadOptions returns the default GLTFLoadOptions (local rotations).
func DefaultGLTFLoadOptions() *GLTFLoadOptions {
	return &GLTFLoadOptions{}
}

// NodeRotation is the rotation of a single node in a glTF document, in all three representations.
type NodeRotation[T Real] struct {
	Index      int           // Index of the node in the document
	Name       string        // Name of the node
	Parent     int           // Index of the node's parent, or -1 if it's a root node
	FromMatrix bool          // True if the rotation came from the node's matrix rather than its rotation quaternion
	Matrix     Matrix3[T]    // The rotation as a normalized rotation matrix
	Quaternion Quaternion[T] // The rotation as a unit quaternion
	Euler      Euler[T]      // The rotation as Euler angles
}

// LoadGLTFFile loads a .gltf or .glb file from the filepath given, and returns the rotation of each node in it.
// Passing nil for loadOptions will use the default load options.
func LoadGLTFFile[T Real](path string, loadOptions *GLTFLoadOptions) ([]NodeRotation[T], error) {

	fileData, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return LoadGLTFData[T](fileData, loadOptions)

}

// LoadGLTFData loads a .gltf or .glb file from the byte data given, and returns the rotation of each node in it, in
// the order the nodes appear in the document. Passing nil for loadOptions will use the default load options.
//
// A node's rotation comes from its matrix if it has one that isn't the identity (the matrix's scale is normalized away),
// and from its rotation quaternion otherwise.
func LoadGLTFData[T Real](data []byte, loadOptions *GLTFLoadOptions) ([]NodeRotation[T], error) {

	decoder := gltf.NewDecoder(bytes.NewReader(data))

	doc := new(gltf.Document)

	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("decoding gltf: %w", err)
	}

	if loadOptions == nil {
		loadOptions = DefaultGLTFLoadOptions()
	}

	rotations := make([]NodeRotation[T], len(doc.Nodes))

	for i, node := range doc.Nodes {
		rotations[i] = nodeRotation[T](i, node)
	}

	for i, node := range doc.Nodes {
		for _, child := range node.Children {
			if child < 0 || child >= len(rotations) {
				return nil, fmt.Errorf("node %d (%s) has an out of range child %d", i, node.Name, child)
			}
			rotations[child].Parent = i
		}
	}

	if loadOptions.WorldSpace {

		world := make([]*Matrix3[T], len(rotations))

		var worldMatrix func(index int, depth int) (Matrix3[T], error)

		worldMatrix = func(index int, depth int) (Matrix3[T], error) {
			if depth > len(rotations) {
				return Matrix3[T]{}, fmt.Errorf("node %d (%s) is part of a cycle", index, rotations[index].Name)
			}
			if world[index] != nil {
				return *world[index], nil
			}
			mat := rotations[index].Matrix
			if parent := rotations[index].Parent; parent >= 0 {
				parentMat, err := worldMatrix(parent, depth+1)
				if err != nil {
					return Matrix3[T]{}, err
				}
				mat = mat.Mult(parentMat)
			}
			world[index] = &mat
			return mat, nil
		}

		for i := range rotations {
			mat, err := worldMatrix(i, 0)
			if err != nil {
				return nil, err
			}
			rotations[i].Matrix = mat
			rotations[i].Euler = mat.Euler()
			rotations[i].Quaternion = rotations[i].Euler.Quaternion()
		}

	}

	return rotations, nil

}

func nodeRotation[T Real](index int, node *gltf.Node) NodeRotation[T] {

	rot := NodeRotation[T]{
		Index:  index,
		Name:   node.Name,
		Parent: -1,
	}

	// glTF matrices are column-major; reading the columns in as rows gives rot3's row-vector layout.
	mtData := node.Matrix
	matrix := Matrix3[T]{
		{T(mtData[0]), T(mtData[1]), T(mtData[2])},
		{T(mtData[4]), T(mtData[5]), T(mtData[6])},
		{T(mtData[8]), T(mtData[9]), T(mtData[10])},
	}

	if !matrix.IsIdentity() && !matrix.Row(0).IsZero() && !matrix.Row(1).IsZero() && !matrix.Row(2).IsZero() {

		rot.FromMatrix = true
		rot.Matrix = matrix.Normalized()
		rot.Euler = rot.Matrix.Euler()
		rot.Quaternion = rot.Euler.Quaternion()

	} else {

		// glTF quaternions are stored X, Y, Z, W.
		rot.Quaternion = NewQuaternion(T(node.Rotation[3]), T(node.Rotation[0]), T(node.Rotation[1]), T(node.Rotation[2]))

		if rot.Quaternion == (Quaternion[T]{}) {
			rot.Quaternion = NewQuaternionIdentity[T]()
		}

		rot.Matrix = rot.Quaternion.Matrix3()
		rot.Euler = rot.Matrix.Euler()

	}

	return rot

}
