package styles

import (
	"encoding/base64"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/lode/internal/core/ports"
)

// embedLimit bounds the size of assets eligible for data URI embedding.
const embedLimit = 32 * 1024

var embedURLPattern = regexp.MustCompile(`(/\*\s*@embed\s*\*/\s*)?url\(\s*(?:"([^"]*)"|'([^']*)'|([^'")][^)]*))\s*\)`)

// remapResult is the outcome of one URL rewrite pass.
type remapResult struct {
	CSS string

	// Dependencies are the referenced local files that exist.
	Dependencies []string

	// Missing are referenced local paths that do not exist. They are
	// diagnostics, never errors; the build continues without them.
	Missing []string
}

// remapURLs resolves every locally referenced asset URL against the style
// file's directory, records it as a dependency, and rewrites it to its
// remote-servable form with a content-hash cache buster. Assets annotated
// with an embed marker and small enough are inlined as data URIs. This pass
// is never cached: embedded content and cache busters must track current
// file state.
func remapURLs(css, localDir, remoteDir string, hasher ports.FileHasher) remapResult {
	result := remapResult{}

	result.CSS = embedURLPattern.ReplaceAllStringFunc(css, func(token string) string {
		m := embedURLPattern.FindStringSubmatch(token)
		embed := m[1] != ""
		target := m[2] + m[3] + m[4]
		target = strings.TrimSpace(target)

		if !isLocal(target) {
			return token
		}

		ref, fragment, _ := strings.Cut(target, "#")
		ref, query, _ := strings.Cut(ref, "?")
		if ref == "" {
			return token
		}

		localPath := filepath.Join(localDir, filepath.FromSlash(ref))
		sum, err := hasher.ComputeFileHash(localPath)
		if err != nil {
			result.Missing = append(result.Missing, localPath)
			return token
		}
		result.Dependencies = append(result.Dependencies, localPath)

		if embed {
			if data := embedDataURI(localPath); data != "" {
				return "url(" + data + ")"
			}
		}

		remote := path.Join(remoteDir, ref)
		bust := strconv.FormatUint(sum, 16)
		if len(bust) > 5 {
			bust = bust[:5]
		}
		if query != "" {
			bust = query + "&" + bust
		}
		rewritten := remote + "?" + bust
		if fragment != "" {
			rewritten += "#" + fragment
		}
		return `url(` + rewritten + `)`
	})

	return result
}

func isLocal(target string) bool {
	switch {
	case target == "",
		strings.HasPrefix(target, "data:"),
		strings.HasPrefix(target, "#"),
		strings.HasPrefix(target, "/"),
		strings.Contains(target, "://"):
		return false
	}
	return true
}

func embedDataURI(localPath string) string {
	info, err := os.Stat(localPath)
	if err != nil || info.Size() > embedLimit {
		return ""
	}
	data, err := os.ReadFile(localPath) //nolint:gosec // Path is resolved inside the style's directory
	if err != nil {
		return ""
	}
	return "data:" + mimeByExt(localPath) + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func mimeByExt(p string) string {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".svg":
		return "image/svg+xml"
	case ".woff":
		return "font/woff"
	case ".woff2":
		return "font/woff2"
	default:
		return "application/octet-stream"
	}
}
