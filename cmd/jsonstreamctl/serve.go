package main

import (
	"github.com/streampkg/jsonstream/jsonstream/ndjsonsrv"
)

const serveLongDesc = `serve starts the NDJSON ingestion HTTP service (POST /ingest,
GET /healthz, GET /metrics), the same service ndjsonsrv.Server
implements, for ad-hoc use outside of whatever larger binary normally
embeds it.`

type serveCommand struct {
	Config string `long:"config" description:"Path to a TOML config file"`
	Addr   string `long:"addr" description:"Override the configured listen address"`
}

func (c *serveCommand) Execute(args []string) error {
	cfg, err := ndjsonsrv.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Addr != "" {
		cfg.Addr = c.Addr
	}

	srv, err := ndjsonsrv.New(cfg, nil)
	if err != nil {
		return err
	}
	return srv.ListenAndServe()
}
