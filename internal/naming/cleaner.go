package naming

import (
	"regexp"
	"strings"

	"github.com/mhmtszr/concurrent-swiss-map"
)

// Patterns bundles the configurable clean patterns with a process-wide
// memoization of cleaned names. A Patterns value is immutable after
// construction and safe for concurrent use.
type Patterns struct {
	clean []*regexp.Regexp
	cache *csmap.CsMap[string, string]
}

// DefaultCleanPatterns strips the release tags that commonly trail a title:
// codec, source, and release-group tokens.
// Resolution markers (1080p, 2160i) are deliberately not stripped: version
// ranking matches them against the cleaned name.
var DefaultCleanPatterns = []string{
	`(?i)\b(?:x265|x264|h\.?264|h\.?265|hevc|avc|aac|ac3|dts|flac|mp3|web-?dl|webrip|bluray|bdrip|dvdrip|hdtv|remux|uhd|hdr|sdr|10bit|8bit|proper|repack|internal|limited|unrated|extended|multi|dual|subbed)\b`,
	`-[A-Za-z0-9]+$`,
}

// NewPatterns compiles the given clean patterns. Invalid expressions are
// reported rather than skipped so configuration mistakes surface early.
func NewPatterns(patterns []string) (*Patterns, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, re)
	}
	return &Patterns{
		clean: compiled,
		cache: csmap.Create[string, string](),
	}, nil
}

// MustPatterns is NewPatterns for known-good pattern sets (defaults, tests).
func MustPatterns(patterns []string) *Patterns {
	p, err := NewPatterns(patterns)
	if err != nil {
		panic(err)
	}
	return p
}

// TryClean strips every configured pattern from name and reports whether
// anything was removed. Results are memoized; repeated resolutions of the
// same library hit the same names over and over.
func (p *Patterns) TryClean(name string) (string, bool) {
	if cached, ok := p.cache.Load(name); ok {
		return cached, cached != name
	}
	cleaned := name
	for _, re := range p.clean {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	cleaned = strings.TrimSpace(cleaned)
	p.cache.Store(name, cleaned)
	return cleaned, cleaned != name
}
