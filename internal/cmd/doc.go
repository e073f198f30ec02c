// Package cmd holds the cobra commands of the landing binary:
//
//	landing serve                 run the HTTP server
//	landing migrate               apply postgres migrations
//	landing leads list [--limit N] [--raw]
package cmd
