// Command example demonstrates keycase with a plain net/http server:
// inbound camelCase parameters are snake_cased by the middleware, and
// responses go back out in camelCase via jsonenc.
//
// Run:
//
//	go run ./_example
//
// Then:
//
//	curl -s -X POST localhost:8080/users -d '{"firstName":"Ada","homeAddress":{"streetName":"Main St"}}'
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Gobd/keycase"
	"github.com/Gobd/keycase/jsonenc"
	"github.com/Gobd/keycase/middleware"
	"github.com/segmentio/encoding/json"
)

func main() {
	mux := http.NewServeMux()

	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		// The middleware already snake_cased the body keys.
		var params map[string]any
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("first_name=%v", params["first_name"])

		params["created_at"] = "2024-01-01T00:00:00Z"

		// And the response goes back out camelCased.
		w.Header().Set("Content-Type", "application/json")
		_ = jsonenc.NewEncoder(w).Encode(params)
	})

	handler := middleware.New(middleware.Options{KeyFunc: keycase.ToSnakeCase})(mux)

	fmt.Println("Listening on http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", handler))
}
