package client

import (
	"net/url"
	"sync"
	"time"

	"github.com/cenk/backoff"
	circuit "github.com/rubyist/circuitbreaker"
)

// breakerSet holds per-host circuit breakers.
type breakerSet struct {
	breakers map[string]*circuit.Breaker
	mu       sync.RWMutex
}

func newBreakerSet() *breakerSet {
	return &breakerSet{
		breakers: make(map[string]*circuit.Breaker),
	}
}

// get returns or creates a circuit breaker for the given host.
func (s *breakerSet) get(host string) *circuit.Breaker {
	s.mu.RLock()
	breaker, exists := s.breakers[host]
	s.mu.RUnlock()

	if exists {
		return breaker
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring write lock
	if breaker, exists := s.breakers[host]; exists {
		return breaker
	}

	// Trips after 5 consecutive failures
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 30 * time.Second
	expBackoff.MaxInterval = 5 * time.Minute
	expBackoff.Multiplier = 2.0
	expBackoff.Reset()

	opts := &circuit.Options{
		BackOff:    expBackoff,
		ShouldTrip: circuit.ThresholdTripFunc(5),
	}
	breaker = circuit.NewBreakerWithOptions(opts)

	s.breakers[host] = breaker
	return breaker
}

// states returns the current state of all breakers (for health checks).
func (s *breakerSet) states() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	states := make(map[string]string)
	for host, breaker := range s.breakers {
		if breaker.Tripped() {
			states[host] = "open"
		} else {
			states[host] = "closed"
		}
	}
	return states
}

// BreakerStates returns per-host circuit breaker states, or nil when circuit
// breaking is disabled.
func (c *Client) BreakerStates() map[string]string {
	if c.breakers == nil {
		return nil
	}
	return c.breakers.states()
}

// hostOf extracts a host identifier from a URL for circuit breaker grouping.
func hostOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		// Fallback to simple truncation
		if len(rawURL) > 50 {
			return rawURL[:50]
		}
		return rawURL
	}
	return parsed.Host
}
