/*
Package zerohour is the backend of the ZeroHour exposure dashboard demo.

It tracks a notional organization's risk posture across a small set of scripted
scenarios and lets an operator step through ordered escalation states. Every
view (risk summary, domain statuses, timeline, signals, countdown) is derived
from a static table keyed by (scenario, state); nothing is persisted.

# Architecture

A Dashboard owns one state engine (the only mutable component) and one
read-only catalog. Adapters (HTTP, MCP, terminal) receive the Dashboard by
injection and never talk to each other.

# Usage

	package main

	import (
		"log"
		"net/http"

		"github.com/aretw0/zerohour"
		httpadapter "github.com/aretw0/zerohour/pkg/adapters/http"
		"github.com/aretw0/zerohour/pkg/config"
	)

	func main() {
		dash, err := zerohour.New(config.Default())
		if err != nil {
			log.Fatal(err)
		}
		log.Fatal(http.ListenAndServe(":3000", httpadapter.NewHandler(dash)))
	}
*/
package zerohour
