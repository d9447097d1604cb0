// Package limiter throttles owner login attempts per (username, peer).
package limiter

import (
	"context"
	"crypto/sha256"
	"net"
	"time"
)

// Key identifies one throttled login source.
type Key struct {
	Username string
	PeerHash []byte
}

// KeyFor builds a key, hashing the peer host so raw IPs are never stored.
// The port is dropped: a new connection from the same host hits the same key.
func KeyFor(username, peer string) Key {
	if host, _, err := net.SplitHostPort(peer); err == nil {
		peer = host
	}
	h := sha256.Sum256([]byte(peer))
	return Key{Username: username, PeerHash: h[:]}
}

// Limiter controls login attempts and temporary lockouts.
type Limiter interface {
	// Allow returns the remaining block duration, zero when login may proceed.
	Allow(ctx context.Context, k Key) (time.Duration, error)
	// Success clears the failure history of k.
	Success(ctx context.Context, k Key) error
	// Failure records a failed attempt and returns the block placed, if any.
	Failure(ctx context.Context, k Key) (time.Duration, error)
}
