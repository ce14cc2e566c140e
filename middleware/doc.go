// Package middleware rewrites inbound request parameters to snake_case so
// handlers can work in one naming convention regardless of what clients
// send. Query string keys and JSON body object keys are converted; values
// are never touched.
//
//	mux := http.NewServeMux()
//	mux.Handle("/users", createUser)
//	http.ListenAndServe(":8080", middleware.SnakeCaseParams(mux))
//
// A body that is not JSON, does not parse, or exceeds the configured size
// cap passes through byte-identical, so downstream code sees exactly the
// error it would have seen without the middleware.
package middleware
