package main

import (
	"errors"
	"fmt"
	"net/http"

	ffgin "fastfact/gin"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	handler := ffgin.NewHandler(deps.Records, deps.Runs)

	cfg := ffgin.DefaultServerConfig()
	cfg.Addr = c.Addr
	srv := ffgin.NewServer(handler, cfg)

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", c.Addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	return nil
}
