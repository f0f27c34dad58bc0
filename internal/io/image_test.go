package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func testImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func encodeTestJPEG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	return cfg.Width, cfg.Height
}

func TestPrepareCover_ConvertsPNG(t *testing.T) {
	svc := NewImageService()
	data := encodePNG(t, testImage(40, 20))

	out, err := svc.PrepareCover(context.Background(), data, CoverOptions{ConvertToJPEG: true})
	if err != nil {
		t.Fatalf("PrepareCover: %v", err)
	}
	if !IsJPEG(out) {
		t.Error("result should be JPEG")
	}
	if w, h := decodeSize(t, out); w != 40 || h != 20 {
		t.Errorf("size = %dx%d, want 40x20", w, h)
	}
}

func TestPrepareCover_KeepsJPEG(t *testing.T) {
	svc := NewImageService()
	data := encodeTestJPEG(t, testImage(10, 10))

	out, err := svc.PrepareCover(context.Background(), data, CoverOptions{ConvertToJPEG: true})
	if err != nil {
		t.Fatalf("PrepareCover: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Error("JPEG input without resizing should be returned untouched")
	}
}

func TestPrepareCover_Resize(t *testing.T) {
	svc := NewImageService()
	data := encodeTestJPEG(t, testImage(300, 200))

	out, err := svc.PrepareCover(context.Background(), data, CoverOptions{Resize: true, MaxSize: 150})
	if err != nil {
		t.Fatalf("PrepareCover: %v", err)
	}
	if w, h := decodeSize(t, out); w != 150 || h != 100 {
		t.Errorf("size = %dx%d, want 150x100", w, h)
	}
}

func TestPrepareCover_SmallImageNotResized(t *testing.T) {
	svc := NewImageService()
	data := encodeTestJPEG(t, testImage(50, 50))

	out, err := svc.PrepareCover(context.Background(), data, CoverOptions{Resize: true, MaxSize: 150})
	if err != nil {
		t.Fatalf("PrepareCover: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Error("image within bounds should be returned untouched")
	}
}

func TestPrepareCover_Undecodable(t *testing.T) {
	svc := NewImageService()
	data := []byte("definitely not an image")

	if _, err := svc.PrepareCover(context.Background(), data, CoverOptions{ConvertToJPEG: true}); err == nil {
		t.Error("expected a decoding error")
	}

	out, err := svc.PrepareCover(context.Background(), data, CoverOptions{})
	if err != nil || !bytes.Equal(out, data) {
		t.Error("no options should mean no processing")
	}
}
