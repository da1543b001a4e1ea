package deck

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/sheetdeck/sheetdeck/pkg/sheetdeck/models"
)

// corePropsPart is the OOXML package part holding document properties.
const corePropsPart = "docProps/core.xml"

// coreProperties mirrors the slice of docProps/core.xml the summary
// reports. Title and creator are Dublin Core elements.
type coreProperties struct {
	XMLName xml.Name `xml:"coreProperties"`
	Title   string   `xml:"http://purl.org/dc/elements/1.1/ title"`
	Creator string   `xml:"http://purl.org/dc/elements/1.1/ creator"`
}

// ReadDocProperties reads the document properties of a pptx file
// straight from its core-properties part. A deck without the part
// yields zero-value properties, not an error.
func ReadDocProperties(path string) (models.DocProperties, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return models.DocProperties{}, fmt.Errorf("open deck: %w", err)
	}
	defer r.Close()

	data, err := readZipPart(&r.Reader, corePropsPart)
	if err != nil {
		return models.DocProperties{}, err
	}
	if data == nil {
		return models.DocProperties{}, nil
	}

	var core coreProperties
	if err := xml.Unmarshal(data, &core); err != nil {
		return models.DocProperties{}, fmt.Errorf("parse %s: %w", corePropsPart, err)
	}

	return models.DocProperties{
		Title:   core.Title,
		Creator: core.Creator,
	}, nil
}

// readZipPart returns the named archive part, or nil when absent.
func readZipPart(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}
