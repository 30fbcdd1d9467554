package onnxgw

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	onnxruntime "github.com/yalue/onnxruntime_go"

	"github.com/ocrlite/ocrlite/internal/ocrerr"
)

var (
	envOnce sync.Once
	envErr  error
)

// ORTGateway is the production Gateway backed by
// github.com/yalue/onnxruntime_go bindings to the ONNX Runtime C library.
type ORTGateway struct {
	GPU GPUConfig
}

// NewORTGateway returns a Gateway with the given GPU configuration. Pass
// DefaultGPUConfig() for CPU-only execution.
func NewORTGateway(gpu GPUConfig) *ORTGateway {
	return &ORTGateway{GPU: gpu}
}

func initEnvironment() error {
	envOnce.Do(func() {
		if path := sharedLibraryPath(); path != "" {
			onnxruntime.SetSharedLibraryPath(path)
		}
		if !onnxruntime.IsInitialized() {
			envErr = onnxruntime.InitializeEnvironment()
		}
	})
	return envErr
}

// sharedLibraryPath returns the first system onnxruntime shared library
// found, or "" to let onnxruntime_go fall back to its own default search.
func sharedLibraryPath() string {
	var name string
	switch runtime.GOOS {
	case "linux":
		name = "libonnxruntime.so"
	case "darwin":
		name = "libonnxruntime.dylib"
	case "windows":
		name = "onnxruntime.dll"
	default:
		return ""
	}
	candidates := []string{
		filepath.Join("/usr/local/lib", name),
		filepath.Join("/usr/lib", name),
		filepath.Join("/opt/onnxruntime/lib", name),
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

// Describe queries a model's input/output tensor names via
// onnxruntime_go.GetInputOutputInfo, grounded on the teacher's
// validateModelInfo helper.
func (g *ORTGateway) Describe(_ context.Context, path string) ([]string, []string, error) {
	if err := initEnvironment(); err != nil {
		return nil, nil, ocrerr.Wrap(ocrerr.Config, "ORTGateway.Describe", err)
	}
	inputs, outputs, err := onnxruntime.GetInputOutputInfo(path)
	if err != nil {
		return nil, nil, ocrerr.Wrapf(ocrerr.Config, "ORTGateway.Describe", "reading model %s: %v", path, err)
	}
	inputNames := make([]string, len(inputs))
	for i, in := range inputs {
		inputNames[i] = in.Name
	}
	outputNames := make([]string, len(outputs))
	for i, out := range outputs {
		outputNames[i] = out.Name
	}
	return inputNames, outputNames, nil
}

// Load opens an ONNX Runtime session for the model at path.
func (g *ORTGateway) Load(_ context.Context, path string, inputNames, outputNames []string) (Session, error) {
	if err := initEnvironment(); err != nil {
		return nil, ocrerr.Wrap(ocrerr.Config, "ORTGateway.Load", err)
	}
	if err := g.GPU.Validate(); err != nil {
		return nil, err
	}

	sessionOptions, err := onnxruntime.NewSessionOptions()
	if err != nil {
		return nil, ocrerr.Wrap(ocrerr.Config, "ORTGateway.Load", err)
	}
	defer sessionOptions.Destroy() //nolint:errcheck // best-effort cleanup

	if err := configureSessionForGPU(sessionOptions, g.GPU); err != nil {
		return nil, err
	}

	session, err := onnxruntime.NewDynamicAdvancedSession(path, inputNames, outputNames, sessionOptions)
	if err != nil {
		return nil, ocrerr.Wrapf(ocrerr.Config, "ORTGateway.Load", "loading model %s: %v", path, err)
	}

	return &ortSession{session: session, outputNames: outputNames}, nil
}

type ortSession struct {
	mu          sync.Mutex
	session     *onnxruntime.DynamicAdvancedSession
	outputNames []string
}

func (s *ortSession) Run(_ context.Context, inputs []Named) ([]Tensor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inTensors := make([]onnxruntime.Value, len(inputs))
	for i, in := range inputs {
		t, err := onnxruntime.NewTensor(onnxruntime.NewShape(in.Tensor.Shape...), in.Tensor.Data)
		if err != nil {
			for _, created := range inTensors[:i] {
				if created != nil {
					created.Destroy() //nolint:errcheck // best-effort cleanup
				}
			}
			return nil, ocrerr.Wrapf(ocrerr.Inference, "ortSession.Run", "building input %q: %v", in.Name, err)
		}
		inTensors[i] = t
	}
	defer func() {
		for _, t := range inTensors {
			t.Destroy() //nolint:errcheck // best-effort cleanup
		}
	}()

	outValues := make([]onnxruntime.Value, len(s.outputNames))
	if err := s.session.Run(inTensors, outValues); err != nil {
		return nil, ocrerr.Wrap(ocrerr.Inference, "ortSession.Run", err)
	}
	defer func() {
		for _, v := range outValues {
			if v != nil {
				v.Destroy() //nolint:errcheck // best-effort cleanup
			}
		}
	}()

	out := make([]Tensor, len(outValues))
	for i, v := range outValues {
		floatTensor, ok := v.(*onnxruntime.Tensor[float32])
		if !ok {
			return nil, ocrerr.Wrapf(ocrerr.Inference, "ortSession.Run", "output %d: expected float32 tensor, got %T", i, v)
		}
		shape := floatTensor.GetShape()
		shape64 := make([]int64, len(shape))
		copy(shape64, shape)
		data := floatTensor.GetData()
		dataCopy := make([]float32, len(data))
		copy(dataCopy, data)
		out[i] = Tensor{Data: dataCopy, Shape: shape64}
	}
	return out, nil
}

func (s *ortSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	err := s.session.Destroy()
	s.session = nil
	if err != nil {
		return ocrerr.Wrap(ocrerr.Inference, "ortSession.Close", err)
	}
	return nil
}
