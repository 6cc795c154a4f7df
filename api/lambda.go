package api

import (
	"context"
	"net/http"
	"path"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/trailboard/norquay/internal/config"
	"github.com/trailboard/norquay/internal/log"
)

// LambdaFunc is the handler signature accepted by lambda.Start for API
// Gateway v2 and function-URL events.
type LambdaFunc func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)

// LambdaHandler serves the same endpoints as NewRouter from lambda events.
// A path matches an endpoint exactly, or by its last segment (so
// /prod/conditions reaches conditions); an empty path or "/" goes to
// cfg.LambdaEndpoint.
func LambdaHandler(svc *Service, cfg *config.Config) LambdaFunc {
	byPath := make(map[string]Endpoint)
	byName := make(map[string]Endpoint)
	for _, ep := range Endpoints(svc, cfg) {
		byName[ep.Name] = ep
		for _, p := range ep.Paths {
			byPath[p] = ep
			byName[path.Base(p)] = ep
		}
	}

	return func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		p := req.RawPath
		if p == "" {
			p = req.RequestContext.HTTP.Path
		}
		method := req.RequestContext.HTTP.Method

		ep, ok := byPath[p]
		if !ok {
			name := strings.Trim(p, "/")
			if name == "" {
				name = cfg.LambdaEndpoint
			}
			ep, ok = byName[path.Base(name)]
		}

		var resp Response
		switch {
		case !ok:
			resp = plainError(http.StatusNotFound, "not found")
		case method != "" && method != http.MethodGet:
			resp = plainError(http.StatusMethodNotAllowed, "method not allowed")
		default:
			resp = ep.Serve(ctx)
		}

		log.Infow("lambda request",
			"method", method,
			"path", p,
			"status", resp.StatusCode,
			"request_id", req.RequestContext.RequestID,
		)
		return events.APIGatewayV2HTTPResponse{
			StatusCode: resp.StatusCode,
			Headers:    resp.Header,
			Body:       string(resp.Body),
		}, nil
	}
}

func plainError(code int, msg string) Response {
	return Response{
		StatusCode: code,
		Header:     map[string]string{"Content-Type": "application/json; charset=utf-8"},
		Body:       []byte(`{"error":"` + msg + `"}`),
	}
}
