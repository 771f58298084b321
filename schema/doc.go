// Package schema guards every response of the device-management API.
//
// Each route has a declarative schema (required and optional properties,
// primitive types, enums, arrays, nested objects). NewRegistry compiles all
// of them once into validator closures; the API surface asserts the full,
// still-untyped response body before decoding it:
//
//	var body any
//	dec := json.NewDecoder(bytes.NewReader(raw))
//	dec.UseNumber()
//	if err := dec.Decode(&body); err != nil { ... }
//	if err := schema.Default().AssertValid(schema.RouteGetDevice, body); err != nil {
//	    return nil, err // *schema.SchemaError with route and issue list
//	}
//
// Validators reject missing required properties, wrong primitive types and
// enum values outside the declared set. Unknown extra properties are
// accepted.
package schema
