package provider

import "strings"

// Normalize converts a configured git remote URL into the HTTPS base URL that
// provider templates are built on. It handles the three forms git remotes
// come in:
//
//	git@host:owner/repo.git          -> https://host/owner/repo
//	ssh://git@host:port/owner/repo   -> https://host/owner/repo
//	https://host/owner/repo.git/     -> https://host/owner/repo
//
// The .git suffix and any trailing slash are stripped, ssh ports and
// userinfo are dropped. http:// remotes keep their scheme.
func Normalize(raw string) string {
	u := strings.TrimSpace(raw)

	switch {
	case strings.HasPrefix(u, "ssh://"):
		u = strings.TrimPrefix(u, "ssh://")
		if i := strings.Index(u, "@"); i >= 0 {
			u = u[i+1:]
		}
		// Drop an ssh port between host and path.
		if slash := strings.Index(u, "/"); slash >= 0 {
			host := u[:slash]
			if colon := strings.Index(host, ":"); colon >= 0 {
				u = host[:colon] + u[slash:]
			}
		}
		u = "https://" + u

	case strings.HasPrefix(u, "http://"), strings.HasPrefix(u, "https://"):
		scheme, rest, _ := strings.Cut(u, "://")
		if i := strings.Index(rest, "@"); i >= 0 && (strings.Index(rest, "/") == -1 || i < strings.Index(rest, "/")) {
			rest = rest[i+1:]
		}
		u = scheme + "://" + rest

	default:
		// scp-like syntax: [user@]host:path
		if i := strings.Index(u, "@"); i >= 0 {
			u = u[i+1:]
		}
		if host, path, ok := strings.Cut(u, ":"); ok {
			u = host + "/" + path
		}
		u = "https://" + u
	}

	u = strings.TrimSuffix(u, "/")
	u = strings.TrimSuffix(u, ".git")
	return u
}

// Host extracts the host portion of a normalized base URL: the substring
// between the scheme and the first path separator. Lookup against the
// provider table is an exact match on this string.
func Host(base string) string {
	rest := base
	if _, after, ok := strings.Cut(base, "://"); ok {
		rest = after
	}
	if i := strings.Index(rest, "/"); i >= 0 {
		return rest[:i]
	}
	return rest
}
