package ingestModel

import (
	"errors"
	"testing"

	"github.com/akolanti/RagWeb/internal/domain/appErrors"
)

func TestValidateDocumentName(t *testing.T) {
	accepted := []string{"notes.txt", "paper.PDF", "README.md", "data.csv", "page.html", "page.htm", "old.doc", "new.docx", "dir/sub/report.Docx"}
	for _, name := range accepted {
		if err := ValidateDocumentName(name); err != nil {
			t.Errorf("ValidateDocumentName(%s) = %v; want nil", name, err)
		}
	}

	rejected := []string{"", "image.png", "archive.zip", "script.exe", "noext", "notes.txt.metadata.json", "folder/"}
	for _, name := range rejected {
		err := ValidateDocumentName(name)
		var validationErr *appErrors.ValidationError
		if !errors.As(err, &validationErr) {
			t.Errorf("ValidateDocumentName(%q) = %v; want ValidationError", name, err)
		}
	}
}

func TestObjectKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"notes.txt", "documents/notes.txt"},
		{"../../etc/notes.txt", "documents/notes.txt"},
		{`C:\Users\me\report.pdf`, "documents/report.pdf"},
	}
	for _, tt := range tests {
		if got := ObjectKey(tt.name); got != tt.want {
			t.Errorf("ObjectKey(%s) = %s; want %s", tt.name, got, tt.want)
		}
	}
	if got := MetadataKey("documents/notes.txt"); got != "documents/notes.txt.metadata.json" {
		t.Errorf("MetadataKey got %s", got)
	}
}

func TestIsDocumentKey(t *testing.T) {
	if IsDocumentKey("documents/") {
		t.Error("folder marker counted as document")
	}
	if IsDocumentKey("documents/a.txt.metadata.json") {
		t.Error("metadata sidecar counted as document")
	}
	if !IsDocumentKey("documents/a.txt") {
		t.Error("document not counted")
	}
}

func TestJobStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to JobStatus
		want     bool
	}{
		{JobStatusStarting, JobStatusInProgress, true},
		{JobStatusStarting, JobStatusComplete, true},
		{JobStatusInProgress, JobStatusComplete, true},
		{JobStatusInProgress, JobStatusFailed, true},
		{JobStatusInProgress, JobStatusStarting, false},
		{JobStatusComplete, JobStatusInProgress, false},
		{JobStatusFailed, JobStatusComplete, false},
		{JobStatusComplete, JobStatusComplete, true},
		{JobStatusInProgress, JobStatusStopping, true},
		{JobStatusStopping, JobStatusStopped, true},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v; want %v", tt.from, tt.to, got, tt.want)
		}
	}

	if JobStatusStarting.IsTerminal() || JobStatusInProgress.IsTerminal() {
		t.Error("non terminal status reported terminal")
	}
	if !JobStatusComplete.IsTerminal() || !JobStatusFailed.IsTerminal() {
		t.Error("terminal status reported non terminal")
	}
}
