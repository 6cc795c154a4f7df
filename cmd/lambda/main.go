// Command lambda serves the runs, conditions and status endpoints from AWS
// Lambda behind API Gateway HTTP APIs or a function URL.
package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/trailboard/norquay/api"
	"github.com/trailboard/norquay/core/fetch"
	"github.com/trailboard/norquay/internal/config"
	"github.com/trailboard/norquay/internal/log"
)

func main() {
	if err := log.Init(false); err != nil {
		panic(err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading configuration: %v", err)
	}
	if cfg.Debug {
		if err := log.Init(true); err != nil {
			log.Fatalf("%v", err)
		}
	}
	defer log.Sync()

	resolver, err := api.LoadResolver(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fetcher := fetch.New(fetch.WithTimeout(cfg.FetchTimeout), fetch.WithUserAgent(cfg.UserAgent))
	svc := api.NewService(fetcher, cfg.SourceURL, api.WithResolver(resolver))
	lambda.Start(api.LambdaHandler(svc, cfg))
}
