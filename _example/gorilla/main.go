// Command gorilla demonstrates keycase with a gorilla/mux router.
//
// Run:
//
//	cd _example/gorilla && go run .
//
// Then:
//
//	curl -s -X POST localhost:8080/orders -d '{"customerName":"Ada","itemCount":2}'
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Gobd/keycase/jsonenc"
	"github.com/Gobd/keycase/middleware"
	"github.com/gorilla/mux"
	"github.com/segmentio/encoding/json"
)

func main() {
	r := mux.NewRouter()
	r.Use(middleware.SnakeCaseParams)

	r.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
		var order map[string]any
		if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		log.Printf("customer_name=%v", order["customer_name"])

		w.Header().Set("Content-Type", "application/json")
		_ = jsonenc.NewEncoder(w).Encode(order)
	}).Methods(http.MethodPost)

	fmt.Println("Listening on http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", r))
}
