package keycase_test

import (
	"fmt"
	"sort"
	"time"

	"github.com/Gobd/keycase"
)

func ExampleSnakeString() {
	fmt.Println(keycase.SnakeString("userFirstName"))
	fmt.Println(keycase.SnakeString("APIResponse"))
	fmt.Println(keycase.SnakeString("iOS"))
	// Output:
	// user_first_name
	// api_response
	// i_os
}

func ExampleCamelString() {
	fmt.Println(keycase.CamelString("user__first__name"))
	fmt.Println(keycase.CamelString("API_response"))
	// Output:
	// userFirstName
	// apiResponse
}

func ExampleCamelKeys() {
	in := map[string]any{
		"user_id": 1,
		"addresses": []any{
			map[string]any{"street_name": "Main St"},
		},
	}
	out := keycase.CamelKeys(in).(map[string]any)

	keys := make([]string, 0, len(out))
	for k := range out {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Println(keys)
	// Output: [addresses userId]
}

func ExampleSnakeKeys() {
	out := keycase.SnakeKeys(map[string]any{"firstName": "Ada"})
	fmt.Println(out)
	// Output: map[first_name:Ada]
}

func ExampleConvertKeys() {
	// Opaque records such as dates pass through whole; only the keys
	// around them are rewritten.
	birth := time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC)
	out := keycase.ConvertKeys(map[string]any{"birth_date": birth}, keycase.ToCamelCase)
	fmt.Println(out.(map[string]any)["birthDate"].(time.Time).Year())
	// Output: 1990
}
