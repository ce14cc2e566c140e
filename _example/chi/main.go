// Command chi demonstrates keycase with a chi router.
//
// Run:
//
//	cd _example/chi && go run .
//
// Then:
//
//	curl -s -X POST 'localhost:8080/orders?sortBy=createdAt' -d '{"customerName":"Ada","itemCount":2}'
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Gobd/keycase/jsonenc"
	"github.com/Gobd/keycase/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/segmentio/encoding/json"
)

func main() {
	r := chi.NewRouter()
	r.Use(middleware.SnakeCaseParams)

	r.Post("/orders", func(w http.ResponseWriter, r *http.Request) {
		var order map[string]any
		if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		// Handlers see snake_case regardless of what the client sent.
		log.Printf("customer_name=%v sort_by=%v", order["customer_name"], r.URL.Query().Get("sort_by"))

		w.Header().Set("Content-Type", "application/json")
		_ = jsonenc.NewEncoder(w).Encode(order)
	})

	fmt.Println("Listening on http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", r))
}
