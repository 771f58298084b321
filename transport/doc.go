// Package transport is the HTTP layer of the device-management client.
//
// A Client adds the fixed headers every call needs (Basic auth computed once
// from the id/token pair, X-Server-Protocol-Version: 3, Accept and
// Content-Type), encodes query parameters the way the service expects, and
// runs each response through a hook chain that ends in ClassifyStatus:
//
//	401        → *AuthError
//	405        → *PermissionError (method and path attached)
//	other !2xx → *APIError (status, JSON-or-text body, method, path)
//
// Network-level failures are *RequestError. Nothing is retried; the caller
// decides. IsRemote groups all four as the recoverable remote class; a
// cancelled or expired caller context is excluded.
//
//	c, err := transport.New(transport.Config{ID: "1234", Token: "secret", URL: "https://example.com/api"})
//	if err != nil {
//	    return err
//	}
//	body, err := c.Do(ctx, http.MethodGet, "/devices", transport.Request{
//	    Query: transport.Query{"includeApps": true},
//	})
package transport
