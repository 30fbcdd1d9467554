package cmd

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/ocrlite/ocrlite/internal/modelio"
	"github.com/ocrlite/ocrlite/internal/ocrpipeline"
	"github.com/ocrlite/ocrlite/internal/onnxgw"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var recognizeCmd = &cobra.Command{
	Use:   "recognize [image...]",
	Short: "Run detection and recognition over one or more image files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRecognize,
}

func init() {
	rootCmd.AddCommand(recognizeCmd)
}

func runRecognize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if err := modelio.ModelPathExists(cfg.Detector.ModelPath); err != nil {
		return err
	}
	if err := modelio.ModelPathExists(cfg.Recognizer.ModelPath); err != nil {
		return err
	}

	dict, err := modelio.LoadCharset(cfg.Recognizer.DictPath)
	if err != nil {
		return fmt.Errorf("loading dictionary: %w", err)
	}

	if cfg.Metrics.Addr != "" {
		startMetricsListener(cfg.Metrics.Addr)
	}

	pipelineCfg, err := cfg.ToPipelineConfig(dict)
	if err != nil {
		return fmt.Errorf("building pipeline config: %w", err)
	}
	gw := onnxgw.NewORTGateway(pipelineCfg.Detector.GPU)
	p, err := ocrpipeline.New(context.Background(), gw, pipelineCfg)
	if err != nil {
		return fmt.Errorf("building pipeline: %w", err)
	}
	defer func() {
		if err := p.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing pipeline: %v\n", err)
		}
	}()

	var outputs []string
	for _, path := range args {
		data, width, height, err := decodeImage(path)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", path, err)
		}
		recognized, err := p.Recognize(context.Background(), data, width, height)
		if err != nil {
			return fmt.Errorf("recognizing %s: %w", path, err)
		}
		result := p.ProcessRecognition(recognized)
		rendered, err := renderResult(path, result, cfg.Output.Format, cfg.Output.ConfidencePrecision)
		if err != nil {
			return err
		}
		outputs = append(outputs, rendered)
	}

	final := strings.Join(outputs, "\n")
	if cfg.Output.File != "" {
		return os.WriteFile(cfg.Output.File, []byte(final), 0o600)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), final)
	return err
}

// startMetricsListener serves internal/obsmetrics' Prometheus histograms on addr
// for the lifetime of the process. Bind failures are logged, not fatal: a
// debug listener is a convenience, not a requirement for recognition.
func startMetricsListener(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil { //nolint:gosec // debug-only listener, no timeouts needed
			slog.Error("metrics listener stopped", "addr", addr, "error", err)
		}
	}()
}

// decodeImage decodes a PNG/JPEG file into an interleaved RGB byte buffer,
// the raw pixel contract internal/ocrpipeline.Recognize expects.
func decodeImage(path string) (data []byte, width, height int, err error) {
	f, err := os.Open(path) //nolint:gosec // G304: CLI argument is expected to be a user-supplied path
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, 0, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := make([]byte, w*h*3)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			out[i+0] = byte(r >> 8)
			out[i+1] = byte(g >> 8)
			out[i+2] = byte(b >> 8)
			i += 3
		}
	}
	return out, w, h, nil
}

func renderResult(path string, result *ocrpipeline.OcrResult, format string, precision int) (string, error) {
	switch format {
	case "json":
		bts, err := json.MarshalIndent(struct {
			File       string  `json:"file"`
			Text       string  `json:"text"`
			Confidence float64 `json:"confidence"`
			Lines      int     `json:"lines"`
		}{File: path, Text: result.Text, Confidence: result.Confidence, Lines: len(result.Lines)}, "", "  ")
		if err != nil {
			return "", err
		}
		return string(bts), nil
	case "csv":
		var sb strings.Builder
		w := csv.NewWriter(&sb)
		if err := w.Write([]string{"file", "text", "confidence"}); err != nil {
			return "", err
		}
		if err := w.Write([]string{path, result.Text, fmt.Sprintf("%.*f", precision, result.Confidence)}); err != nil {
			return "", err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return "", err
		}
		return sb.String(), nil
	case "text", "":
		return fmt.Sprintf("%s:\n%s", path, result.Text), nil
	default:
		return "", errors.New("unsupported output format: " + format)
	}
}
