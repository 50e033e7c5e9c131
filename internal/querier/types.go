// Package querier provides read access to flow, project, flow run, and task
// metadata.
package querier

import (
	"fmt"

	"github.com/finops-claw-gang/flowmeta/internal/domain"
	"github.com/finops-claw-gang/flowmeta/internal/graphql"
)

// data is the `data` object of a single-root query, keyed by root field.
type data[T any] map[string][]T

// checkEntity rejects a request whose root field does not match the list
// method it was passed to.
func checkEntity(req graphql.Request, want domain.Entity) error {
	if req.Entity() != string(want) {
		return fmt.Errorf("querier: request for %q cannot list %q", req.Entity(), want)
	}
	return nil
}

// limitOf returns the request's limit argument, or 0 when it has none.
func limitOf(req graphql.Request) int {
	v, ok := req.Root.Args.Get("limit")
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}
