package ragModel

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/akolanti/RagWeb/internal/domain/appErrors"
)

func decode(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		t.Fatalf("bad fixture %s: %v", s, err)
	}
	return m
}

func TestParseMetadataFilter_Valid(t *testing.T) {
	f, err := ParseMetadataFilter(decode(t, `{"andAll": [
		{"equals": {"key": "file_type", "value": "pdf"}},
		{"orAll": [
			{"greaterThan": {"key": "page_count", "value": 3}},
			{"in": {"key": "team", "value": ["a", "b"]}}
		]}
	]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Operator != FilterAndAll || !f.IsGroup() || len(f.Filters) != 2 {
		t.Fatalf("unexpected root %+v", f)
	}
	if f.Filters[0].Operator != FilterEquals || f.Filters[0].Key != "file_type" || f.Filters[0].Value != "pdf" {
		t.Errorf("unexpected first child %+v", f.Filters[0])
	}
	inner := f.Filters[1]
	if inner.Operator != FilterOrAll || len(inner.Filters) != 2 {
		t.Fatalf("unexpected inner group %+v", inner)
	}
	if inner.Filters[0].Value != float64(3) {
		t.Errorf("numeric value got %v", inner.Filters[0].Value)
	}
}

func TestParseMetadataFilter_Empty(t *testing.T) {
	f, err := ParseMetadataFilter(nil)
	if err != nil || f != nil {
		t.Errorf("empty filter should be nil, got %v %v", f, err)
	}
}

func TestParseMetadataFilter_Invalid(t *testing.T) {
	cases := map[string]string{
		"two operators":   `{"equals": {"key": "a", "value": 1}, "notEquals": {"key": "b", "value": 2}}`,
		"unknown op":      `{"like": {"key": "a", "value": "x"}}`,
		"missing key":     `{"equals": {"value": 1}}`,
		"missing value":   `{"equals": {"key": "a"}}`,
		"group of one":    `{"andAll": [{"equals": {"key": "a", "value": 1}}]}`,
		"group not list":  `{"orAll": {"equals": {"key": "a", "value": 1}}}`,
		"in without list": `{"in": {"key": "a", "value": "x"}}`,
		"bad child":       `{"andAll": [{"equals": {"key": "a", "value": 1}}, "oops"]}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseMetadataFilter(decode(t, raw))
			var validationErr *appErrors.ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestDefaultRequestConfig(t *testing.T) {
	c := DefaultRequestConfig(false)
	if c.Retrieval.TopK != 4 || c.Retrieval.SearchType != SearchTypeSemantic || c.Retrieval.Reranking {
		t.Errorf("unexpected retrieval defaults %+v", c.Retrieval)
	}
	if c.Sampling != (SamplingParams{Temperature: 1.0, TopP: 0.95, TopK: 40, MaxTokens: 1024}) {
		t.Errorf("unexpected sampling defaults %+v", c.Sampling)
	}
	if c.Backend() != BackendGemini {
		t.Errorf("backend got %s", c.Backend())
	}
	if DefaultRequestConfig(true).Backend() != BackendBedrock {
		t.Error("use_bedrock_llm should select bedrock")
	}
}
