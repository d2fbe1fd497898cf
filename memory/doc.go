// Package memory provides process-local implementations of the memory and
// knowledge-graph gateways. They keep everything in maps with substring
// search and are intended for tests and demos; production deployments use
// the hosted service adapter in memory/zep.
package memory
