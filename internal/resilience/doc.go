// Package resilience groups fault-tolerance building blocks used around
// external AI API calls: circuit breakers and retry with backoff.
package resilience
