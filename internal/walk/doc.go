// Package walk provides the best-effort recursive directory traversal shared
// by folder copying, bulk string replacement and the public Walk operation.
package walk
