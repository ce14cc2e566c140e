package keycase

import "strings"

// Symbol is a symbolic identifier key, distinct from plain text. Converting
// a Symbol key yields a Symbol; converting a string yields a string. The two
// are never turned into each other.
type Symbol string

// ToSnakeCase converts a string or [Symbol] key to snake_case. Any other
// value is returned unchanged, so it is safe to apply to every key of a
// heterogeneous map. Pass it to [ConvertKeys] to rewrite a whole structure.
func ToSnakeCase(key any) any {
	switch k := key.(type) {
	case string:
		return SnakeString(k)
	case Symbol:
		return Symbol(SnakeString(string(k)))
	default:
		return key
	}
}

// ToCamelCase converts a string or [Symbol] key to camelCase. Any other
// value is returned unchanged.
func ToCamelCase(key any) any {
	switch k := key.(type) {
	case string:
		return CamelString(k)
	case Symbol:
		return Symbol(CamelString(string(k)))
	default:
		return key
	}
}

// SnakeString converts a camelCase string to snake_case.
//
// A word boundary is inserted before an uppercase letter that follows a
// lowercase letter, or that follows an uppercase letter and precedes a
// lowercase one. The second rule keeps acronym runs together while still
// splitting the word that ends them:
//
//	SnakeString("userFirstName") // "user_first_name"
//	SnakeString("APIResponse")   // "api_response"
//	SnakeString("iOS")           // "i_os"
//
// Input that is already snake_case has no uppercase letters to act on and
// comes back unchanged. Only ASCII letter case is considered.
func SnakeString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isUpper(c) {
			b.WriteByte(c)
			continue
		}
		if i > 0 && (isLower(s[i-1]) || (isUpper(s[i-1]) && i+1 < len(s) && isLower(s[i+1]))) {
			b.WriteByte('_')
		}
		b.WriteByte(c - 'A' + 'a')
	}
	return b.String()
}

// CamelString converts a snake_case string to camelCase.
//
// The string is split on underscores, empty segments are discarded (so
// runs of underscores collapse), each segment is capitalized, and the
// first character of the concatenation is lowercased:
//
//	CamelString("user__first__name") // "userFirstName"
//	CamelString("API_response")      // "apiResponse"
//
// A string without underscores is returned as-is unless it is entirely
// uppercase, in which case it is lowercased wholesale ("API" → "api").
// Note the acronym information is lost either way; see [SnakeString].
func CamelString(s string) string {
	if !strings.Contains(s, "_") {
		if s == strings.ToUpper(s) {
			return strings.ToLower(s)
		}
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, seg := range strings.Split(s, "_") {
		if seg == "" {
			continue
		}
		b.WriteString(strings.ToUpper(seg[:1]))
		b.WriteString(strings.ToLower(seg[1:]))
	}
	out := b.String()
	if out == "" {
		return ""
	}
	return strings.ToLower(out[:1]) + out[1:]
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
