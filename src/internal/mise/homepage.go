package mise

import "strings"

// urlRule maps a backend identifier to a homepage. ok is false when the
// rule does not apply.
type urlRule func(backend string) (url string, ok bool)

// prefixRule links everything after prefix onto base
func prefixRule(prefix, base string) urlRule {
	return func(backend string) (string, bool) {
		rest, found := strings.CutPrefix(backend, prefix)
		if !found {
			return "", false
		}
		return base + rest, true
	}
}

// asdfRepoRule matches asdf:<owner>/<repo> with exactly two path segments
func asdfRepoRule(backend string) (string, bool) {
	rest, found := strings.CutPrefix(backend, "asdf:")
	if !found || len(strings.Split(rest, "/")) != 2 {
		return "", false
	}
	return "https://github.com/" + rest, true
}

var coreHomepages = map[string]string{
	"core:node":   "https://nodejs.org",
	"core:go":     "https://go.dev",
	"core:python": "https://www.python.org",
	"core:ruby":   "https://www.ruby-lang.org",
	"core:java":   "https://dev.java",
	"core:erlang": "https://www.erlang.org",
	"core:elixir": "https://elixir-lang.org",
}

func coreRule(backend string) (string, bool) {
	url, ok := coreHomepages[backend]
	return url, ok
}

// homepageRules are evaluated in order for each backend
var homepageRules = []urlRule{
	prefixRule("github:", "https://github.com/"),
	prefixRule("asdf:mise-plugins/", "https://github.com/mise-plugins/"),
	asdfRepoRule,
	prefixRule("cargo:", "https://crates.io/crates/"),
	prefixRule("npm:", "https://www.npmjs.com/package/"),
	prefixRule("pip:", "https://pypi.org/project/"),
	prefixRule("go:", "https://pkg.go.dev/"),
	prefixRule("gem:", "https://rubygems.org/gems/"),
	coreRule,
}

// DeriveToolURL returns the homepage for the first backend any rule
// recognizes, or "" when none does
func DeriveToolURL(backends []string) string {
	for _, backend := range backends {
		for _, rule := range homepageRules {
			if url, ok := rule(backend); ok {
				return url
			}
		}
	}
	return ""
}
