package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/blueloot/Stairs/pkg/stairs"
)

func generate(t *testing.T, cfg stairs.Config) stairs.Result {
	t.Helper()
	res, err := stairs.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return res
}

func testConfig() stairs.Config {
	return stairs.Config{Height: 3, Width: 2, Length: 3, Steps: 3, UseRamp: true, SpiralAmount: 1}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"yaml", FormatYAML, false},
		{"YML", FormatYAML, false},
		{" json ", FormatJSON, false},
		{"obj", FormatOBJ, false},
		{"fbx", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("ParseFormat(%q) error = %v, want ErrUnknownFormat", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestWriteYAML(t *testing.T) {
	cfg := testConfig()
	res := generate(t, cfg)

	var buf bytes.Buffer
	if err := Write(&buf, FormatYAML, cfg, res); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	out := buf.String()
	for _, key := range []string{"config:", "step_height: 1", "steps:", "ramps:", "position:", "vertices:"} {
		if !strings.Contains(out, key) {
			t.Errorf("expected %q in YAML output", key)
		}
	}

	var doc Document
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if doc.Config != cfg {
		t.Errorf("config = %+v, want %+v", doc.Config, cfg)
	}
	if len(doc.Steps) != 3 || len(doc.Ramps) != 3 {
		t.Errorf("got %d steps and %d ramps, want 3 and 3", len(doc.Steps), len(doc.Ramps))
	}
	if doc.Steps[2] != res.Steps[2] {
		t.Errorf("step 2 = %+v, want %+v", doc.Steps[2], res.Steps[2])
	}
}

func TestWriteJSON(t *testing.T) {
	cfg := testConfig()
	cfg.UseRamp = false
	res := generate(t, cfg)

	var buf bytes.Buffer
	if err := Write(&buf, FormatJSON, cfg, res); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	ramps, ok := raw["ramps"].([]any)
	if !ok || len(ramps) != 0 {
		t.Errorf("ramps = %v, want empty list", raw["ramps"])
	}
	if !strings.Contains(buf.String(), `"step_depth": 1`) {
		t.Error("expected step_depth in JSON output")
	}
}

func TestWriteOBJ(t *testing.T) {
	cfg := testConfig()
	res := generate(t, cfg)

	var buf bytes.Buffer
	if err := Write(&buf, FormatOBJ, cfg, res); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var verts, faces int
	var objects []string
	maxIndex := 0
	for _, line := range strings.Split(buf.String(), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			verts++
		case "f":
			faces++
			for _, f := range fields[1:] {
				idx, err := strconv.Atoi(f)
				if err != nil {
					t.Fatalf("bad face index %q", f)
				}
				if idx < 1 {
					t.Errorf("face index %d is not 1-based", idx)
				}
				maxIndex = max(maxIndex, idx)
			}
		case "o":
			objects = append(objects, fields[1])
		}
	}

	if verts != 3*8+3*4 {
		t.Errorf("got %d vertices, want %d", verts, 3*8+3*4)
	}
	if faces != 3*12+3*2 {
		t.Errorf("got %d faces, want %d", faces, 3*12+3*2)
	}
	if maxIndex != verts {
		t.Errorf("highest face index %d, want %d", maxIndex, verts)
	}
	if strings.Join(objects, ",") != "steps,ramps" {
		t.Errorf("objects = %v, want [steps ramps]", objects)
	}
}

func TestWriteOBJWithoutRamps(t *testing.T) {
	cfg := testConfig()
	cfg.UseRamp = false

	var buf bytes.Buffer
	if err := WriteOBJ(&buf, generate(t, cfg)); err != nil {
		t.Fatalf("WriteOBJ failed: %v", err)
	}
	if strings.Contains(buf.String(), "o ramps") {
		t.Error("unexpected ramps object")
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	cfg := testConfig()
	err := Write(&bytes.Buffer{}, Format("stl"), cfg, generate(t, cfg))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Write error = %v, want ErrUnknownFormat", err)
	}
}
