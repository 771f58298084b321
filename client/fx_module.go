package client

import "go.uber.org/fx"

// FXModule provides the root *Client on top of the api.API in the graph.
var FXModule = fx.Module("client",
	fx.Provide(New),
)
