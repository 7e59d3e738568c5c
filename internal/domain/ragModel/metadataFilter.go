package ragModel

import (
	"sort"
	"strings"

	"github.com/akolanti/RagWeb/internal/domain/appErrors"
)

type FilterOperator string

// Operators accepted in metadata_filter, named as the knowledge base retrieval API names them.
const (
	FilterEquals              FilterOperator = "equals"
	FilterNotEquals           FilterOperator = "notEquals"
	FilterGreaterThan         FilterOperator = "greaterThan"
	FilterGreaterThanOrEquals FilterOperator = "greaterThanOrEquals"
	FilterLessThan            FilterOperator = "lessThan"
	FilterLessThanOrEquals    FilterOperator = "lessThanOrEquals"
	FilterIn                  FilterOperator = "in"
	FilterNotIn               FilterOperator = "notIn"
	FilterStartsWith          FilterOperator = "startsWith"
	FilterListContains        FilterOperator = "listContains"
	FilterStringContains      FilterOperator = "stringContains"
	FilterAndAll              FilterOperator = "andAll"
	FilterOrAll               FilterOperator = "orAll"
)

var attributeOperators = map[FilterOperator]struct{}{
	FilterEquals: {}, FilterNotEquals: {}, FilterGreaterThan: {}, FilterGreaterThanOrEquals: {},
	FilterLessThan: {}, FilterLessThanOrEquals: {}, FilterIn: {}, FilterNotIn: {},
	FilterStartsWith: {}, FilterListContains: {}, FilterStringContains: {},
}

// MetadataFilter is either an attribute comparison (Key/Value) or a group (Filters).
type MetadataFilter struct {
	Operator FilterOperator
	Key      string
	Value    any
	Filters  []MetadataFilter
}

func (f MetadataFilter) IsGroup() bool {
	return f.Operator == FilterAndAll || f.Operator == FilterOrAll
}

// ParseMetadataFilter validates a decoded JSON filter such as
// {"andAll": [{"equals": {"key": "file_type", "value": "pdf"}}, {"greaterThan": {"key": "page_count", "value": 3}}]}.
func ParseMetadataFilter(raw map[string]any) (*MetadataFilter, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	f, err := parseFilter(raw, "metadata_filter")
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func parseFilter(raw map[string]any, field string) (MetadataFilter, error) {
	if len(raw) != 1 {
		return MetadataFilter{}, appErrors.Validation(field, "must contain exactly one operator, got %d", len(raw))
	}

	var op string
	var body any
	for k, v := range raw {
		op, body = k, v
	}
	operator := FilterOperator(op)

	if operator == FilterAndAll || operator == FilterOrAll {
		items, ok := body.([]any)
		if !ok || len(items) < 2 {
			return MetadataFilter{}, appErrors.Validation(field+"."+op, "must be a list of at least two filters")
		}
		group := MetadataFilter{Operator: operator, Filters: make([]MetadataFilter, 0, len(items))}
		for _, item := range items {
			child, ok := item.(map[string]any)
			if !ok {
				return MetadataFilter{}, appErrors.Validation(field+"."+op, "entries must be objects")
			}
			parsed, err := parseFilter(child, field+"."+op)
			if err != nil {
				return MetadataFilter{}, err
			}
			group.Filters = append(group.Filters, parsed)
		}
		return group, nil
	}

	if _, ok := attributeOperators[operator]; !ok {
		return MetadataFilter{}, appErrors.Validation(field, "unknown operator %q, allowed: %s", op, strings.Join(knownOperators(), ", "))
	}

	attr, ok := body.(map[string]any)
	if !ok {
		return MetadataFilter{}, appErrors.Validation(field+"."+op, "must be an object with key and value")
	}
	key, _ := attr["key"].(string)
	if strings.TrimSpace(key) == "" {
		return MetadataFilter{}, appErrors.Validation(field+"."+op+".key", "is required")
	}
	value, present := attr["value"]
	if !present || value == nil {
		return MetadataFilter{}, appErrors.Validation(field+"."+op+".value", "is required")
	}
	if operator == FilterIn || operator == FilterNotIn {
		if _, isList := value.([]any); !isList {
			return MetadataFilter{}, appErrors.Validation(field+"."+op+".value", "must be a list")
		}
	}
	return MetadataFilter{Operator: operator, Key: key, Value: value}, nil
}

func knownOperators() []string {
	out := []string{string(FilterAndAll), string(FilterOrAll)}
	for op := range attributeOperators {
		out = append(out, string(op))
	}
	sort.Strings(out)
	return out
}
