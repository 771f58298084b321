package schema

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_CheckExposesLastErrors(t *testing.T) {
	t.Parallel()
	v := Compile("GET /things", Object(
		Required("id", Integer()),
		Optional("tags", ArrayOf(String())),
	))

	assert.False(t, v.Check(map[string]any{"tags": []any{"a", true}}))
	issues := v.Errors()
	require.Len(t, issues, 2)
	assert.Equal(t, Issue{Path: "/id", Code: CodeRequired, Message: `missing required property "id"`}, issues[0])
	assert.Equal(t, "/tags/1", issues[1].Path)

	assert.True(t, v.Check(map[string]any{"id": 1}))
	assert.Empty(t, v.Errors())
	assert.Equal(t, "GET /things", v.Route())
}

func TestValidator_IntegerAndNumber(t *testing.T) {
	t.Parallel()
	ints := Compile("ints", Integer())
	nums := Compile("nums", Number())

	for _, ok := range []any{json.Number("3"), json.Number("-7"), json.Number("9007199254740991"), 3.0, 12} {
		assert.Empty(t, ints.Validate(ok), "%v", ok)
	}
	for _, bad := range []any{
		json.Number("3.25"), json.Number("42.0"), json.Number("1e2"), json.Number("1e300"),
		json.Number("9007199254740992"), json.Number("-9007199254740992"), 3.5, 1e300, "3", true,
	} {
		assert.NotEmpty(t, ints.Validate(bad), "%v", bad)
	}
	for _, ok := range []any{json.Number("3.25"), 0.5, 7} {
		assert.Empty(t, nums.Validate(ok), "%v", ok)
	}
	assert.NotEmpty(t, nums.Validate("0.5"))
	assert.NotEmpty(t, nums.Validate(nil))
}

func TestValidator_Pattern(t *testing.T) {
	t.Parallel()
	v := Compile("udid", String().Pattern(`^[0-9a-f-]+$`))
	assert.Empty(t, v.Validate("abc-123"))
	issues := v.Validate("xyz")
	require.Len(t, issues, 1)
	assert.Equal(t, CodePattern, issues[0].Code)
}

func TestSchema_ModifiersCopy(t *testing.T) {
	t.Parallel()
	base := Object(Optional("apps", ArrayOf(String())))
	strict := base.WithRequired("apps")
	extended := base.With(Required("extra", Boolean()))

	assert.False(t, base.Fields()[0].Required)
	assert.True(t, strict.Fields()[0].Required)
	assert.Len(t, base.Fields(), 1)
	assert.Len(t, extended.Fields(), 2)

	s := String()
	assert.NotSame(t, s, s.Nullable())
	assert.Empty(t, Compile("n", s.Nullable()).Validate(nil))
	assert.NotEmpty(t, Compile("s", s).Validate(nil))
}

func TestEscapePointer(t *testing.T) {
	t.Parallel()
	v := Compile("odd", Object(Required("a/b~c", String())))
	issues := v.Validate(map[string]any{})
	require.Len(t, issues, 1)
	assert.Equal(t, "/a~1b~0c", issues[0].Path)
}

func TestValidator_ConcurrentValidate(t *testing.T) {
	t.Parallel()
	v := Compile("c", Object(Required("id", Integer())))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				v.Check(map[string]any{"id": i})
			} else {
				v.Check(map[string]any{})
			}
			_ = v.Errors()
		}(i)
	}
	wg.Wait()
}

func TestKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "integer", KindInteger.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
