package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// Issue codes.
const (
	CodeRequired = "required"
	CodeType     = "type"
	CodeEnum     = "enum"
	CodePattern  = "pattern"
)

// Issue is one validation failure, located by a JSON pointer into the
// candidate ("" is the root).
type Issue struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	path := i.Path
	if path == "" {
		path = "/"
	}
	return path + ": " + i.Message
}

type checkFunc func(path string, v any, issues *[]Issue)

// Validator is a compiled Schema. Validate is safe for concurrent use;
// Check/Errors keep the issues of the most recent Check call.
type Validator struct {
	route string
	check checkFunc

	mu   sync.Mutex
	last []Issue
}

// Compile turns s into a Validator. Candidates are values produced by
// encoding/json decoding into `any`, with or without UseNumber.
func Compile(route string, s *Schema) *Validator {
	return &Validator{route: route, check: compileNode(s)}
}

// Route is the route key the validator was compiled for.
func (v *Validator) Route() string { return v.route }

// Validate returns every issue found in candidate, in declaration order.
func (v *Validator) Validate(candidate any) []Issue {
	var issues []Issue
	v.check("", candidate, &issues)
	return issues
}

// Check reports whether candidate is valid and remembers the issue list for Errors.
func (v *Validator) Check(candidate any) bool {
	issues := v.Validate(candidate)
	v.mu.Lock()
	v.last = issues
	v.mu.Unlock()
	return len(issues) == 0
}

// Errors returns the issues of the last Check call.
func (v *Validator) Errors() []Issue {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.last)
}

func compileNode(s *Schema) checkFunc {
	var base checkFunc
	switch s.kind {
	case KindString:
		base = compileString(s)
	case KindInteger:
		base = checkInteger
	case KindNumber:
		base = checkNumber
	case KindBoolean:
		base = checkBoolean
	case KindArray:
		base = compileArray(s)
	case KindObject:
		base = compileObject(s)
	default:
		panic(fmt.Sprintf("schema: unsupported kind %d", s.kind))
	}

	nullable := s.nullable
	kind := s.kind
	return func(path string, v any, issues *[]Issue) {
		if v == nil {
			if !nullable {
				*issues = append(*issues, typeIssue(path, kind, v))
			}
			return
		}
		base(path, v, issues)
	}
}

func compileString(s *Schema) checkFunc {
	enum := s.enum
	pattern := s.pattern
	return func(path string, v any, issues *[]Issue) {
		str, ok := v.(string)
		if !ok {
			*issues = append(*issues, typeIssue(path, KindString, v))
			return
		}
		if len(enum) > 0 && !slices.Contains(enum, str) {
			*issues = append(*issues, Issue{
				Path:    path,
				Code:    CodeEnum,
				Message: fmt.Sprintf("value %q is not one of [%s]", str, strings.Join(enum, ", ")),
			})
			return
		}
		if pattern != nil && !pattern.MatchString(str) {
			*issues = append(*issues, Issue{
				Path:    path,
				Code:    CodePattern,
				Message: fmt.Sprintf("value %q does not match %s", str, pattern.String()),
			})
		}
	}
}

// maxSafeInteger bounds integers to what every JSON consumer can represent exactly.
const maxSafeInteger = 1<<53 - 1

func checkInteger(path string, v any, issues *[]Issue) {
	switch n := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil && i >= -maxSafeInteger && i <= maxSafeInteger {
			return
		}
	case float64:
		if n == math.Trunc(n) && math.Abs(n) <= maxSafeInteger {
			return
		}
	case int, int32, int64:
		return
	}
	*issues = append(*issues, typeIssue(path, KindInteger, v))
}

func checkNumber(path string, v any, issues *[]Issue) {
	switch v.(type) {
	case json.Number, float64, float32, int, int32, int64:
		return
	}
	*issues = append(*issues, typeIssue(path, KindNumber, v))
}

func checkBoolean(path string, v any, issues *[]Issue) {
	if _, ok := v.(bool); !ok {
		*issues = append(*issues, typeIssue(path, KindBoolean, v))
	}
}

func compileArray(s *Schema) checkFunc {
	elem := compileNode(s.items)
	return func(path string, v any, issues *[]Issue) {
		arr, ok := v.([]any)
		if !ok {
			*issues = append(*issues, typeIssue(path, KindArray, v))
			return
		}
		for i, item := range arr {
			elem(path+"/"+strconv.Itoa(i), item, issues)
		}
	}
}

type compiledField struct {
	name     string
	pointer  string
	required bool
	check    checkFunc
}

func compileObject(s *Schema) checkFunc {
	fields := make([]compiledField, len(s.fields))
	for i, f := range s.fields {
		fields[i] = compiledField{
			name:     f.Name,
			pointer:  escapePointer(f.Name),
			required: f.Required,
			check:    compileNode(f.Schema),
		}
	}
	return func(path string, v any, issues *[]Issue) {
		obj, ok := v.(map[string]any)
		if !ok {
			*issues = append(*issues, typeIssue(path, KindObject, v))
			return
		}
		for _, f := range fields {
			val, present := obj[f.name]
			if !present {
				if f.required {
					*issues = append(*issues, Issue{
						Path:    path + "/" + f.pointer,
						Code:    CodeRequired,
						Message: fmt.Sprintf("missing required property %q", f.name),
					})
				}
				continue
			}
			f.check(path+"/"+f.pointer, val, issues)
		}
	}
}

func typeIssue(path string, want Kind, got any) Issue {
	return Issue{
		Path:    path,
		Code:    CodeType,
		Message: fmt.Sprintf("expected %s, got %s", want, jsonType(got)),
	}
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, float32, int, int32, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// escapePointer escapes a property name as a JSON pointer token (RFC 6901).
func escapePointer(name string) string {
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(name)
}
