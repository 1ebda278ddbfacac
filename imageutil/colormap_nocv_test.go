//go:build !gocv

package imageutil

import (
	"errors"
	"testing"
)

func TestApplyColormapCVUnavailable(t *testing.T) {
	if OpenCVAvailable {
		t.Fatal("OpenCVAvailable should be false without the gocv tag")
	}
	if IsCVColormap("jet") {
		t.Error("No OpenCV colormap should be recognised without the gocv tag")
	}
	if names := CVColormapNames(); names != nil {
		t.Errorf("Expected no OpenCV colormap names, got %v", names)
	}
	if _, err := ApplyColormapCV(NewGrayImage(2, 2), "jet"); !errors.Is(err, ErrNoOpenCV) {
		t.Errorf("Expected ErrNoOpenCV, got %v", err)
	}
}
