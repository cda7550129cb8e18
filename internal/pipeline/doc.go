// Package pipeline streams mate pairs through a PairResolver on a worker
// pool and hands results to an emit callback in input order.
//
// The only contracts to implement are PairSource and PairResolver.
// This keeps the pipeline swappable and testable.
package pipeline
