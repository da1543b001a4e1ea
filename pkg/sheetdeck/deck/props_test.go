package deck

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func TestReadDocProperties(t *testing.T) {
	path, _ := buildToFile(t, sampleSettings(), sampleTable(), Config{})

	props, err := ReadDocProperties(path)
	if err != nil {
		t.Fatalf("ReadDocProperties failed: %v", err)
	}
	if props.Title != "Presentation" {
		t.Errorf("Title = %q, expected %q", props.Title, "Presentation")
	}
	if props.Creator != "sheetdeck" {
		t.Errorf("Creator = %q, expected %q", props.Creator, "sheetdeck")
	}
}

func TestReadDocPropertiesMissingPart(t *testing.T) {
	// A zip archive without docProps/core.xml reads as empty properties.
	path := filepath.Join(t.TempDir(), "bare.pptx")
	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	zw := zip.NewWriter(out)
	w, err := zw.Create("ppt/presentation.xml")
	if err != nil {
		t.Fatalf("Failed to create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("<p:presentation/>")); err != nil {
		t.Fatalf("Failed to write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Failed to close file: %v", err)
	}

	props, err := ReadDocProperties(path)
	if err != nil {
		t.Fatalf("ReadDocProperties failed: %v", err)
	}
	if props.Title != "" || props.Creator != "" {
		t.Errorf("expected zero-value properties, got %+v", props)
	}
}

func TestReadDocPropertiesMissingFile(t *testing.T) {
	if _, err := ReadDocProperties("no-such-deck.pptx"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
