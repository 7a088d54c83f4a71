package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var linkSelector = cascadia.MustCompile("a[href]")

// RewriteRelativeLinks turns relative a[href] targets in a formatted message
// into absolute file:// URLs under sourceDir, so links keep working once the
// page or PDF is opened away from the message file.
//
// The fragment is returned byte-for-byte when sourceDir is empty or when no
// link was rewritten. Targets that escape sourceDir are left alone.
func RewriteRelativeLinks(fragment, sourceDir string) (string, error) {
	if sourceDir == "" || !strings.Contains(fragment, "<a ") {
		return fragment, nil
	}

	absSourceDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}

	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", err
	}

	rewritten := 0
	for _, n := range nodes {
		rewritten += rewriteLinks(n, absSourceDir)
	}
	if rewritten == 0 {
		return fragment, nil
	}

	var buf strings.Builder
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// rewriteLinks rewrites the links in and below n and returns how many hrefs
// it replaced. The target's path is percent-decoded before joining; its
// query is dropped and its fragment carried over.
func rewriteLinks(n *html.Node, sourceDir string) int {
	count := 0
	for _, a := range linkSelector.MatchAll(n) {
		for i, attr := range a.Attr {
			if attr.Key != "href" || !isRelativeTarget(attr.Val) {
				continue
			}
			target, err := url.Parse(attr.Val)
			if err != nil || target.Path == "" {
				continue
			}
			absPath := filepath.Join(sourceDir, filepath.FromSlash(target.Path))
			if !isPathUnderDir(absPath, sourceDir) {
				continue
			}
			a.Attr[i].Val = pathToFileURL(absPath, target.Fragment)
			count++
		}
	}
	return count
}

// isRelativeTarget reports whether a link target is a relative file path.
// URLs with a scheme, protocol-relative URLs, anchors and absolute paths are not.
func isRelativeTarget(target string) bool {
	if target == "" || strings.HasPrefix(target, "#") || strings.HasPrefix(target, "//") {
		return false
	}
	if filepath.IsAbs(target) || strings.HasPrefix(target, "/") {
		return false
	}
	if u, err := url.Parse(target); err != nil || u.Scheme != "" {
		return false
	}
	return true
}

// isPathUnderDir checks if absPath is under dir.
func isPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)

	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}

	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}

// pathToFileURL converts an absolute path and optional fragment to a file:// URL.
func pathToFileURL(absPath, fragment string) string {
	u := url.URL{
		Scheme:   "file",
		Path:     filepath.ToSlash(absPath),
		Fragment: fragment,
	}
	return u.String()
}
