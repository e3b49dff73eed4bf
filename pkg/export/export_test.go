package export

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(40 * x), G: uint8(100 * y), B: 7, A: 0xff})
		}
	}
	return img
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"mandelbrot.png", PNG},
		{"out/DEEP.PNG", PNG},
		{"a.bmp", BMP},
		{"a.tif", TIFF},
		{"a.tiff", TIFF},
	}

	for _, tt := range tests {
		got, err := FormatOf(tt.path)
		if err != nil || got != tt.want {
			t.Errorf("FormatOf(%q) = %q, %v, want %q", tt.path, got, err, tt.want)
		}
	}

	for _, path := range []string{"a.jpg", "noext", "a.png.gz"} {
		if _, err := FormatOf(path); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("FormatOf(%q) error = %v, want ErrUnsupportedFormat", path, err)
		}
	}
}

func TestSaveRoundTrip(t *testing.T) {
	decoders := map[string]func(*os.File) (image.Image, error){
		"out.png":  func(f *os.File) (image.Image, error) { return png.Decode(f) },
		"out.bmp":  func(f *os.File) (image.Image, error) { return bmp.Decode(f) },
		"out.tiff": func(f *os.File) (image.Image, error) { return tiff.Decode(f) },
	}

	want := testImage()
	dir := t.TempDir()
	for name, decode := range decoders {
		path := filepath.Join(dir, name)
		if err := Save(path, want); err != nil {
			t.Fatalf("Save(%s) error = %v", name, err)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		got, err := decode(f)
		_ = f.Close()
		if err != nil {
			t.Fatalf("decoding %s: %v", name, err)
		}

		for y := 0; y < 2; y++ {
			for x := 0; x < 3; x++ {
				r1, g1, b1, _ := got.At(x, y).RGBA()
				r2, g2, b2, _ := want.At(x, y).RGBA()
				if r1 != r2 || g1 != g2 || b1 != b2 {
					t.Errorf("%s: pixel (%d, %d) = %v, want %v", name, x, y, got.At(x, y), want.At(x, y))
				}
			}
		}
	}
}

func TestSaveUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	if err := Save(path, testImage()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save(.gif) error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Save created a file for an unsupported format")
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Format("webp"), testImage()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(webp) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestMetaRoundTrip(t *testing.T) {
	want := Meta{
		Image:     "mandelbrot.png",
		Width:     4,
		Height:    4,
		Precision: 53,
		Center:    "(0, 0)",
		Scale:     "1.0",
		MaxIter:   10,
		Palette:   "hsl",
		Workers:   2,
		Elapsed:   1500 * time.Millisecond,
		Interior:  4,
		Histogram: []int{0, 7, 3, 2, 0, 0, 0, 0, 0, 0, 4},
	}

	path := filepath.Join(t.TempDir(), "meta.json")
	if err := WriteMeta(path, want); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`"max_iter": 10`)) {
		t.Errorf("sidecar missing max_iter:\n%s", data)
	}

	got, err := ReadMeta(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Image != want.Image || got.Precision != want.Precision || got.Elapsed != want.Elapsed || got.Interior != want.Interior {
		t.Errorf("ReadMeta() = %+v, want %+v", got, want)
	}
	if len(got.Histogram) != len(want.Histogram) || got.Histogram[1] != 7 || got.Histogram[10] != 4 {
		t.Errorf("Histogram = %v, want %v", got.Histogram, want.Histogram)
	}
}
