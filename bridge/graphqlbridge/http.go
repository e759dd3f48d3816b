package graphqlbridge

import (
	"context"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/jrazmi/taskdeck/bridge/scaffolding/errs"
	"github.com/jrazmi/taskdeck/infrastructure/web"
)

// queryRequest is the standard GraphQL-over-HTTP POST body.
type queryRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// AddHttpRoutes registers the GraphQL endpoint.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) error {
	b, err := NewBridge(cfg)
	if err != nil {
		return err
	}

	group.POST("/graphql", b.httpQuery)
	return nil
}

// httpQuery executes one GraphQL request. Resolver and validation failures
// come back in the errors array of the result with status 200, per GraphQL
// convention; only an unreadable body is an HTTP level error.
func (b *Bridge) httpQuery(ctx context.Context, r *http.Request) web.Encoder {
	var req queryRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}
	if req.Query == "" {
		return errs.Newf(errs.InvalidArgument, "query is required")
	}

	result := graphql.Do(graphql.Params{
		Schema:         b.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        ctx,
	})

	return web.NewJSONResponse(result)
}
