// Package cache provides a Redis-backed decorator for the routing solver
// port, so repeated requests over identical matrices skip the search.
package cache

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"fulfillment-routing-service/internal/ports"
)

// CachedRouteSolver wraps a RouteSolver with a Redis result cache keyed by
// the matrix contents and the solve parameters. Cache write failures are
// logged and swallowed; a cold or unreachable cache only costs a re-solve.
type CachedRouteSolver struct {
	inner ports.RouteSolver
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedRouteSolver(inner ports.RouteSolver, rdb *redis.Client, ttl time.Duration) *CachedRouteSolver {
	return &CachedRouteSolver{inner: inner, rdb: rdb, ttl: ttl}
}

func (c *CachedRouteSolver) Solve(
	ctx context.Context,
	matrix [][]int64,
	req ports.SolveRequest,
) ([][]int, error) {
	if c.inner == nil {
		return nil, errors.New("cached route solver: inner solver is nil")
	}
	if c.rdb == nil {
		return c.inner.Solve(ctx, matrix, req)
	}

	key := cacheKey(matrix, req)

	if cached, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var routes [][]int
		if err := json.Unmarshal(cached, &routes); err == nil {
			return routes, nil
		}
		log.Printf("route cache: discarding malformed entry key=%s", key)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("route cache: read failed key=%s err=%v", key, err)
	}

	routes, err := c.inner.Solve(ctx, matrix, req)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(routes)
	if err != nil {
		return routes, nil
	}
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		log.Printf("route cache: write failed key=%s err=%v", key, err)
	}

	return routes, nil
}

// cacheKey hashes the full matrix and the solve parameters. The time limit
// is excluded: it bounds search effort, not the problem instance.
func cacheKey(matrix [][]int64, req ports.SolveRequest) string {
	h := fnv.New64a()
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], uint64(len(matrix)))
	h.Write(buf[:])
	for _, row := range matrix {
		for _, v := range row {
			binary.LittleEndian.PutUint64(buf[:], uint64(v))
			h.Write(buf[:])
		}
	}
	binary.LittleEndian.PutUint64(buf[:], uint64(req.NumVehicles))
	h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(req.DepotIndex))
	h.Write(buf[:])

	return fmt.Sprintf("routes:%016x", h.Sum64())
}
