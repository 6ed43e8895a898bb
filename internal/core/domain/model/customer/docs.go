// Package customer holds the Customer rollup, a derived view with no storage of its own.
// One Customer exists per distinct order email and is recomputed from the order set on
// every read by services.CustomerProjector.
package customer
