package site

import (
	"fmt"
	"regexp"
	"strings"
)

// Root-relative references emitted by the templates and the stock scripts.
// Protocol-relative URLs (//cdn...) must not match, hence the [^/"] guards.
var (
	attrRefRegex  = regexp.MustCompile(`(href|src)="/([^/"][^"]*|)"`)
	fetchRefRegex = regexp.MustCompile(`fetch\((['"])/([^/'"][^'"]*)['"]\)`)
)

// RewriteBasePath rewrites root-relative asset links in already-rendered
// output so the site works when served under a non-root base path. It is a
// pure string transform, not a templating feature; with an empty base path
// the content is returned unchanged.
func RewriteBasePath(content []byte, basePath string) []byte {
	base := normalizeBasePath(basePath)
	if base == "" {
		return content
	}

	s := string(content)
	s = attrRefRegex.ReplaceAllString(s, fmt.Sprintf(`$1="%s/$2"`, base))
	s = fetchRefRegex.ReplaceAllString(s, fmt.Sprintf(`fetch($1%s/$2$1)`, base))
	return []byte(s)
}

// normalizeBasePath forces a single leading slash and no trailing slash;
// "/" and "" both mean the site root.
func normalizeBasePath(basePath string) string {
	base := strings.Trim(basePath, "/")
	if base == "" {
		return ""
	}
	return "/" + base
}
