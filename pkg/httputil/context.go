package httputil

// ContextKey is the type of keys set on the gin context by middlewares.
type ContextKey string

// ContextURL holds the base URL of the API. Handlers use it to build links.
const ContextURL ContextKey = "requestURL"
