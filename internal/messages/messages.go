package messages

import "fmt"

var catalog = map[string]string{
	"product.not.found":           "Product with code %s not found",
	"user.not.found":              "User %s not found",
	"username.in.use":             "Username %s is already in use",
	"email.in.use":                "Email %s is already in use",
	"bad.credentials":             "Invalid username or password",
	"auth.token.missing":          "Authentication token is missing",
	"auth.token.invalid":          "Authentication token is invalid or expired",
	"auth.forbidden":              "You do not have permission to access this resource",
	"request.body.invalid":        "Request body is invalid",
	"product.name.required":       "Name is required",
	"product.price.required":      "Price EUR is required",
	"product.price.negative":      "Price EUR must be >= 0",
	"product.available.required":  "Availability status is required",
	"product.search.page.min":     "Page must not be negative",
	"product.search.size.min":     "Size must be at least 1",
	"product.search.size.max":     "Size must be at most 20",
	"product.search.sort.invalid": "Sort field must be one of NAME, PRICE",
	"register.username.invalid":   "Username must be between 3 and 20 characters",
	"register.email.invalid":      "Email must be a valid address",
	"register.password.invalid":   "Password must be between 6 and 40 characters",
	"internal.error":              "Internal server error",
}

// Render resolves a message key and substitutes args. Unknown keys fall back
// to the key itself.
func Render(key string, args ...any) string {
	format, ok := catalog[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
