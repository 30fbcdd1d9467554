package onnxgw

import (
	"context"

	"github.com/ocrlite/ocrlite/internal/ocrerr"
)

// FakeGateway is an in-process Gateway for tests that returns
// a pre-scripted output for every Run call, so detector/recognizer logic can
// be exercised without a real ONNX Runtime install or model file.
type FakeGateway struct {
	// Outputs, keyed by model path, is returned verbatim (one copy per
	// output name) on every Run against that path's session.
	Outputs map[string][]Tensor
	// LoadErr, if set, is returned by Load instead of opening a session.
	LoadErr error
	// InputNames/OutputNames, keyed by model path, back Describe.
	InputNames  map[string][]string
	OutputNames map[string][]string
}

// Describe returns the scripted names registered for path.
func (f *FakeGateway) Describe(_ context.Context, path string) ([]string, []string, error) {
	in, ok := f.InputNames[path]
	if !ok {
		in = []string{"x"}
	}
	out, ok := f.OutputNames[path]
	if !ok {
		return nil, nil, ocrerr.Wrapf(ocrerr.Config, "FakeGateway.Describe", "no scripted output names registered for model %q", path)
	}
	return in, out, nil
}

// Load returns a fakeSession bound to the scripted output for path.
func (f *FakeGateway) Load(_ context.Context, path string, _, outputNames []string) (Session, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	out, ok := f.Outputs[path]
	if !ok {
		return nil, ocrerr.Wrapf(ocrerr.Config, "FakeGateway.Load", "no scripted output registered for model %q", path)
	}
	if len(out) != len(outputNames) {
		return nil, ocrerr.Wrapf(ocrerr.Config, "FakeGateway.Load",
			"scripted output count %d does not match requested output names %v", len(out), outputNames)
	}
	return &fakeSession{out: out}, nil
}

type fakeSession struct {
	out    []Tensor
	closed bool
}

func (s *fakeSession) Run(_ context.Context, _ []Named) ([]Tensor, error) {
	if s.closed {
		return nil, ocrerr.New(ocrerr.Inference, "fakeSession.Run", "session is closed")
	}
	return s.out, nil
}

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}
