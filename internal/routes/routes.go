// Package routes is the registry of versioned API routes, used for discovery and for
// 404/405 responses.
package routes

import (
	"slices"
	"strings"
)

const Prefix = "/api"

type Route struct {
	Path         string   `json:"path"`
	Methods      []string `json:"methods"`
	Version      string   `json:"version"`
	Description  string   `json:"description,omitempty"`
	RequiresAuth bool     `json:"requiresAuth"`
}

// APIPath is the full request path pattern, e.g. /api/v1/books/{id}.
func (r Route) APIPath() string {
	return Prefix + "/" + r.Version + "/" + r.Path
}

// Allows reports whether the route accepts the method.
func (r Route) Allows(method string) bool {
	return slices.Contains(r.Methods, method)
}

var registry = []Route{
	{Path: "books", Version: "v1", Methods: []string{"GET"}, Description: "Get all books"},
	{Path: "books/{id}", Version: "v1", Methods: []string{"GET"}, Description: "Get a specific book by ID"},
	{Path: "blog", Version: "v1", Methods: []string{"GET"}, Description: "Get all blog posts"},
	{Path: "blog/{slug}", Version: "v1", Methods: []string{"GET"}, Description: "Get a specific blog post by slug"},
	{Path: "videos", Version: "v1", Methods: []string{"GET"}, Description: "Get all videos"},
	{Path: "youtube", Version: "v1", Methods: []string{"GET"}, Description: "Get the latest channel videos"},
	{Path: "health", Version: "v1", Methods: []string{"GET"}, Description: "Health check endpoint"},
	{Path: "routes", Version: "v1", Methods: []string{"GET"}, Description: "List all available API routes"},
	{Path: "cart", Version: "v1", Methods: []string{"GET", "DELETE"}, Description: "Read or clear the cart"},
	{Path: "cart/items", Version: "v1", Methods: []string{"POST"}, Description: "Add a book to the cart"},
	{Path: "cart/items/{slug}", Version: "v1", Methods: []string{"PUT", "DELETE"}, Description: "Change or remove a cart line"},
	{Path: "checkout", Version: "v1", Methods: []string{"POST"}, Description: "Place an order from the cart"},
	{Path: "orders", Version: "v1", Methods: []string{"GET", "POST"}, Description: "List or create orders"},
	{Path: "payments/mpesa", Version: "v1", Methods: []string{"GET", "POST"}, Description: "Initiate or check an M-Pesa payment"},
	{Path: "payments/{id}", Version: "v1", Methods: []string{"GET"}, Description: "Get a payment"},
	{Path: "admin/books", Version: "v1", Methods: []string{"GET"}, Description: "Admin book inventory"},
	{Path: "admin/orders", Version: "v1", Methods: []string{"GET"}, Description: "Admin order list, filterable by status"},
	{Path: "admin/blog", Version: "v1", Methods: []string{"GET"}, Description: "Admin blog posts"},
	{Path: "admin/dashboard", Version: "v1", Methods: []string{"GET"}, Description: "Admin dashboard statistics"},
}

// All returns a copy of every registered route.
func All() []Route {
	out := make([]Route, len(registry))
	for i, r := range registry {
		r.Methods = slices.Clone(r.Methods)
		out[i] = r
	}
	return out
}

// ByVersion returns the routes of one API version.
func ByVersion(version string) []Route {
	var out []Route
	for _, r := range All() {
		if r.Version == version {
			out = append(out, r)
		}
	}
	return out
}

// Versions lists the known API versions in order.
func Versions() []string {
	var versions []string
	for _, r := range registry {
		if !slices.Contains(versions, r.Version) {
			versions = append(versions, r.Version)
		}
	}
	slices.Sort(versions)
	return versions
}

// Find resolves a concrete path such as "books/abc" to its route. Static segments win over
// parameters, so "payments/mpesa" never resolves to "payments/{id}".
func Find(version, path string) (Route, bool) {
	segments := splitPath(path)
	best, bestParams := -1, 0
	for i, r := range registry {
		if r.Version != version {
			continue
		}
		params, ok := match(splitPath(r.Path), segments)
		if !ok {
			continue
		}
		if best == -1 || params < bestParams {
			best, bestParams = i, params
		}
	}
	if best == -1 {
		return Route{}, false
	}
	r := registry[best]
	r.Methods = slices.Clone(r.Methods)
	return r, true
}

// Valid reports whether the route exists and supports the method.
func Valid(version, path, method string) bool {
	r, ok := Find(version, path)
	return ok && r.Allows(method)
}

// FindRequestPath resolves a full request path such as /api/v1/books/abc.
func FindRequestPath(requestPath string) (Route, bool) {
	version, path, ok := SplitRequestPath(requestPath)
	if !ok {
		return Route{}, false
	}
	return Find(version, path)
}

// SplitRequestPath turns /api/v1/books/abc into ("v1", "books/abc").
func SplitRequestPath(requestPath string) (version, path string, ok bool) {
	rest, found := strings.CutPrefix(requestPath, Prefix+"/")
	if !found {
		return "", "", false
	}
	version, path, _ = strings.Cut(rest, "/")
	if version == "" {
		return "", "", false
	}
	return version, strings.Trim(path, "/"), true
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func match(pattern, segments []string) (params int, ok bool) {
	if len(pattern) != len(segments) {
		return 0, false
	}
	for i, seg := range pattern {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			if segments[i] == "" {
				return 0, false
			}
			params++
			continue
		}
		if seg != segments[i] {
			return 0, false
		}
	}
	return params, true
}
