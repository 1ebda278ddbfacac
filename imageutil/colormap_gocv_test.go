//go:build gocv

package imageutil

import "testing"

func TestApplyColormapCV(t *testing.T) {
	if !OpenCVAvailable {
		t.Fatal("OpenCVAvailable should be true with the gocv tag")
	}
	names := CVColormapNames()
	if len(names) != len(cvColormaps) {
		t.Fatalf("Expected %d names, got %d", len(cvColormaps), len(names))
	}

	out, err := ApplyColormapCV(gradientGray(16, 4), "jet")
	if err != nil {
		t.Fatalf("ApplyColormapCV failed: %v", err)
	}
	if out.Width() != 16 {
		t.Errorf("Expected width 16, got %d", out.Width())
	}
	if _, err := ApplyColormapCV(gradientGray(4, 4), "sepia"); err == nil {
		t.Error("Expected error for unknown OpenCV colormap")
	}
}
