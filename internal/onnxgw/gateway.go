// Package onnxgw abstracts ONNX Runtime inference behind a small interface so
// the detector and recognizer never touch onnxruntime_go directly. This
// mirrors the teacher's internal/onnx package but collapses the
// session-lifecycle and tensor-marshalling concerns the detector/recognizer
// used to duplicate into one place with a single concrete backend.
package onnxgw

import "context"

// Tensor is a row-major float32 tensor with an explicit shape, NCHW for
// images (batch size 1 throughout this pipeline).
type Tensor struct {
	Data  []float32
	Shape []int64
}

// Named pairs a tensor with the input/output name a model graph expects.
type Named struct {
	Name   string
	Tensor Tensor
}

// Gateway is the capability every inference backend must provide: load a
// model once, run it repeatedly against named input tensors, and release its
// resources. Outputs are returned positionally, in the order of the output
// names given to Load.
type Gateway interface {
	// Load opens a session for the model at path. InputNames/OutputNames
	// constrain which graph tensors are fed/fetched; pass the names the
	// model's graph actually exposes.
	Load(ctx context.Context, path string, inputNames, outputNames []string) (Session, error)
	// Describe reads a model's graph metadata without opening a session,
	// returning the input and output tensor names in declaration order.
	Describe(ctx context.Context, path string) (inputNames, outputNames []string, err error)
}

// Session is a loaded model ready to run. Implementations must be safe for
// concurrent Run calls unless documented otherwise.
type Session interface {
	// Run feeds inputs (matching the names given to Load) and returns
	// outputs in the same order as the Load call's outputNames.
	Run(ctx context.Context, inputs []Named) ([]Tensor, error)
	// Close releases the underlying runtime resources. Idempotent.
	Close() error
}
