package main

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/shapes"
)

func TestLoadScene(t *testing.T) {
	s, err := LoadScene(filepath.Join("testdata", "scene.yaml"))
	if err != nil {
		t.Fatalf("LoadScene() error = %v", err)
	}
	if len(s.Shapes) != 6 {
		t.Fatalf("len(Shapes) = %d, want 6", len(s.Shapes))
	}

	if len(s.items) != len(s.Shapes) {
		t.Fatalf("resolved %d items, want %d", len(s.items), len(s.Shapes))
	}
	cfgs := make([]shapes.ShapeConfig, len(s.items))
	for i, it := range s.items {
		cfgs[i] = it.cfg
	}
	if cfgs[0].Color != shapes.Hex("#3366cc") {
		t.Errorf("inherited color = %v", cfgs[0].Color)
	}
	if cfgs[1].ThicknessType != shapes.Pixels || cfgs[1].Thickness != 3 || !cfgs[1].Hollow {
		t.Errorf("rect override not applied: %+v", cfgs[1])
	}
	if cfgs[2].Alignment != shapes.Billboard || cfgs[2].Cap != shapes.CapSquare {
		t.Errorf("line override not applied: %+v", cfgs[2])
	}
	if cfgs[3].Cap != shapes.CapRound {
		t.Errorf("base cap not inherited: %v", cfgs[3].Cap)
	}
	if cfgs[5].ThicknessType != shapes.Screen {
		t.Errorf("polyline thickness type = %v, want screen", cfgs[5].ThicknessType)
	}
	if cfgs[3].Color != shapes.Hex("#ff000080") {
		t.Errorf("circle color = %v", cfgs[3].Color)
	}

	if s.items[0].size != (mgl32.Vec2{2, 1}) {
		t.Errorf("rect size = %v", s.items[0].size)
	}
	if s.items[2].start != (mgl32.Vec3{}) || s.items[2].end != (mgl32.Vec3{4, 2, 1}) {
		t.Errorf("line = %v -> %v", s.items[2].start, s.items[2].end)
	}
	if len(s.items[5].strip) != 4 || s.items[5].strip[3] != (mgl32.Vec3{3, 4, 0}) {
		t.Errorf("polyline strip = %v", s.items[5].strip)
	}
	if !cfgs[0].Transform.Translation.ApproxEqual(mgl32.Vec3{1, 0, 0}) {
		t.Errorf("rect translation = %v", cfgs[0].Transform.Translation)
	}
}

func TestParseSceneErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"empty", "config: {}\n", "no shapes"},
		{"bad yaml", "shapes: [", "parse scene"},
		{"unknown kind", "shapes:\n  - kind: star\n", "unknown kind"},
		{"unknown cap", "config:\n  cap: pointy\nshapes:\n  - kind: circle\n", "unknown cap"},
		{"unknown alignment", "shapes:\n  - kind: circle\n    alignment: sideways\n", "unknown alignment"},
		{"unknown thickness type", "shapes:\n  - kind: circle\n    thickness_type: inches\n", "unknown thickness type"},
		{"short size", "shapes:\n  - kind: rect\n    size: [1]\n", "size"},
		{"bad point", "shapes:\n  - kind: polyline\n    points: [[1, 2], [3]]\n", "point 1"},
		{"bad translation", "shapes:\n  - kind: circle\n    translation: [1, 2, 3, 4]\n", "translation"},
		{"bad base color", "config:\n  color: \"#12\"\nshapes:\n  - kind: circle\n", "config: color"},
		{"bad shape color", "shapes:\n  - kind: circle\n  - kind: circle\n    color: \"#xyzxyz\"\n", "shape 1 (circle): color"},
		{"bad radii", "shapes:\n  - kind: rect\n    size: [1, 1]\n    corner_radii: [1]\n", "corner_radii"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScene([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestParseSceneInvalidColorWraps(t *testing.T) {
	_, err := ParseScene([]byte("shapes:\n  - kind: rect\n    size: [1, 1]\n    color: nope\n"))
	if !errors.Is(err, shapes.ErrInvalidHex) {
		t.Errorf("error = %v, want ErrInvalidHex", err)
	}
}

func TestParseSceneNoShapes(t *testing.T) {
	_, err := ParseScene([]byte("shapes: []\n"))
	if !errors.Is(err, errNoShapes) {
		t.Errorf("error = %v, want errNoShapes", err)
	}
}

func TestPaintAndSpawnMatch(t *testing.T) {
	s, err := LoadScene(filepath.Join("testdata", "scene.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	imm := paint(s)
	per, w := spawn(s)

	if w.Len() != 6 {
		t.Errorf("world holds %d entities, want 6", w.Len())
	}
	wantLen := map[shapes.Kind]int{
		shapes.KindRect:     2,
		shapes.KindLine:     1,
		shapes.KindDisc:     2,
		shapes.KindPolyline: 3,
	}
	for k, n := range wantLen {
		if imm.Len(k) != n {
			t.Errorf("immediate %s records = %d, want %d", k, imm.Len(k), n)
		}
	}
	var out bytes.Buffer
	if err := compare(&out, imm, per); err != nil {
		t.Errorf("compare() error = %v\n%s", err, out.String())
	}
}

func TestCompareMismatch(t *testing.T) {
	cfg := shapes.DefaultConfig2D()
	a := shapes.NewQueue()
	b := shapes.NewQueue()
	shapes.Send(a, shapes.NewCircleData(&cfg, 1))
	shapes.Send(b, shapes.NewCircleData(&cfg, 2))
	shapes.Send(b, shapes.NewRectData(&cfg, mgl32.Vec2{1, 1}))

	var out bytes.Buffer
	if err := compare(&out, a, b); !errors.Is(err, errMismatch) {
		t.Fatalf("compare() error = %v, want errMismatch", err)
	}
	if got := strings.Count(out.String(), "MISMATCH"); got != 2 {
		t.Errorf("reported %d mismatches, want 2:\n%s", got, out.String())
	}
}

func TestRun(t *testing.T) {
	scene := filepath.Join("testdata", "scene.yaml")
	tests := []struct {
		name     string
		args     []string
		code     int
		contains string
	}{
		{"both", []string{"-scene", scene}, 0, "records match"},
		{"immediate", []string{"-scene", scene, "-mode", "immediate"}, 0, "shader disc, stride 100"},
		{"persistent hex", []string{"-scene", scene, "-mode", "persistent", "-hex"}, 0, "00000000"},
		{"missing scene flag", nil, 2, ""},
		{"missing file", []string{"-scene", filepath.Join("testdata", "nope.yaml")}, 1, ""},
		{"bad mode", []string{"-scene", scene, "-mode", "deferred"}, 1, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != tt.code {
				t.Fatalf("run() = %d, want %d\nstderr: %s", code, tt.code, stderr.String())
			}
			if tt.contains != "" && !strings.Contains(stdout.String(), tt.contains) {
				t.Errorf("output missing %q:\n%s", tt.contains, stdout.String())
			}
		})
	}
}

func TestRunVerboseRestoresLogger(t *testing.T) {
	var stdout, stderr bytes.Buffer
	run([]string{"-scene", filepath.Join("testdata", "scene.yaml"), "-v"}, &stdout, &stderr)
	if !strings.Contains(stderr.String(), "shapeinspect: extracted") {
		t.Errorf("debug log missing from stderr:\n%s", stderr.String())
	}
	if shapes.Logger().Enabled(t.Context(), slog.LevelDebug) {
		t.Error("logger left enabled after run")
	}
}
