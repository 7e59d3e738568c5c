package docMetadata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/akolanti/RagWeb/internal/domain/appErrors"
	"github.com/akolanti/RagWeb/internal/domain/ingestModel"
	"github.com/akolanti/RagWeb/pkg/logger_i"
	"github.com/dslipak/pdf"
	"github.com/lu4p/cat"
)

var logger = logger_i.NewLogger("doc_metadata")

// sidecar is the knowledge base metadata file format stored next to each document.
type sidecar struct {
	MetadataAttributes map[string]any `json:"metadataAttributes"`
}

// Derive computes the filterable attributes we can read locally from the file.
// Extraction problems only drop the attribute, they never fail the upload.
func Derive(name string, data []byte) map[string]any {
	ext := ingestModel.Extension(name)
	attrs := map[string]any{
		"file_type": strings.TrimPrefix(ext, "."),
	}

	switch ext {
	case ".pdf":
		if pages, err := pdfPageCount(data); err == nil {
			attrs["page_count"] = pages
		} else {
			logger.Warn("could not read pdf page count", "file", name, "error", err)
		}
	case ".docx":
		if words, err := docxWordCount(data); err == nil {
			attrs["word_count"] = words
		} else {
			logger.Warn("could not read docx text", "file", name, "error", err)
		}
	case ".txt", ".md", ".csv":
		if utf8.Valid(data) {
			attrs["word_count"] = len(strings.Fields(string(data)))
		}
	}
	return attrs
}

// Merge overlays caller supplied attributes on the derived ones.
func Merge(derived map[string]any, supplied map[string]any) map[string]any {
	out := make(map[string]any, len(derived)+len(supplied))
	for k, v := range derived {
		out[k] = v
	}
	for k, v := range supplied {
		out[k] = v
	}
	return out
}

// ValidateAttributes enforces the value types the knowledge base accepts:
// string, number, boolean or a list of strings.
func ValidateAttributes(attrs map[string]any) error {
	for k, v := range attrs {
		if strings.TrimSpace(k) == "" {
			return appErrors.Validation("metadata", "attribute names must not be empty")
		}
		switch val := v.(type) {
		case string, bool, float64, int, int64:
		case []any:
			for _, item := range val {
				if _, ok := item.(string); !ok {
					return appErrors.Validation("metadata."+k, "lists may only contain strings")
				}
			}
		default:
			return appErrors.Validation("metadata."+k, "unsupported value type %T", v)
		}
	}
	return nil
}

func Sidecar(attrs map[string]any) ([]byte, error) {
	return json.Marshal(sidecar{MetadataAttributes: attrs})
}

func pdfPageCount(data []byte) (pages int, err error) {
	// the pdf reader panics on some malformed files
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, err
	}
	return reader.NumPage(), nil
}

func docxWordCount(data []byte) (int, error) {
	tmp, err := os.CreateTemp("", "upload-*.docx")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, err
	}

	text, err := cat.File(tmp.Name())
	if err != nil {
		return 0, err
	}
	return len(strings.Fields(text)), nil
}
