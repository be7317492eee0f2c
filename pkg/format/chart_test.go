package format

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G'}

func TestRenderChart(t *testing.T) {
	var buf bytes.Buffer

	if err := RenderChart(sampleRows(10), "Consumption", &buf); err != nil {
		t.Fatalf("RenderChart() failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("RenderChart() wrote no bytes")
	}
	if !bytes.HasPrefix(buf.Bytes(), pngSignature) {
		t.Error("RenderChart() output is not a PNG")
	}
}

func TestRenderChart_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderChart(nil, "Wind", &buf); err == nil {
		t.Error("RenderChart() with no rows should fail")
	}
}

func TestSaveChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts", "out.png")

	if err := SaveChart(sampleRows(10), "Consumption", path); err != nil {
		t.Fatalf("SaveChart() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading chart file failed: %v", err)
	}
	if !bytes.HasPrefix(data, pngSignature) {
		t.Error("SaveChart() file is not a PNG")
	}
}
