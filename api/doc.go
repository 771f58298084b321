// Package api is the typed surface of the device-management service: one
// method per route.
//
// Each method validates its arguments first (UDID format, id range, bulk
// size) and fails with a *ValidationError without touching the network.
// It then sends the request through a transport.Doer, decodes the whole
// response body, checks it against the route's schema in a
// schema.Registry and only then decodes the typed record and returns the
// payload field of the envelope.
//
// Basic usage:
//
//	c, err := api.New(api.Config{Config: transport.Config{
//		ID:    "12345",
//		Token: os.Getenv("MDM_API_TOKEN"),
//		URL:   "https://school.example.com/api",
//	}})
//	if err != nil {
//		return err
//	}
//	device, err := c.GetDevice(ctx, udid, true)
//
// A response that does not match its schema surfaces as *schema.SchemaError
// and is never handed back as data.
package api
