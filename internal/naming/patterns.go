package naming

import (
	"regexp"
	"strconv"
	"strings"
)

// Pattern compilation for version and stack detection.
//
// These expressions encode the fixed grouping policy; the configurable
// clean patterns live in Patterns (see cleaner.go) and are compiled once
// at config load.
var (
	// resolutionRe matches resolution markers like 720p, 1080p, 2160p, 1080i.
	resolutionRe = regexp.MustCompile(`(?i)[0-9]{2}[0-9]+[ip]`)

	// startVersionTagRe matches a bracketed version tag anchored at the
	// start of a string: "[1080p]", "[Directors Cut]".
	startVersionTagRe = regexp.MustCompile(`^\[[^\[\]]+\]`)

	// versionSuffixRe captures an optional trailing version suffix:
	// "Name - 1080p" or "Name - [HEVC]". Group 1 is the prefix, group 2
	// the bracketed tag contents, group 3 the bare tag.
	versionSuffixRe = regexp.MustCompile(`^(.*\S)\s+-\s+(?:\[([^\[\]]+)\]|([^\[\]]+?))\s*$`)

	// episodeCodeRe matches a bare season/episode token such as S01E01.
	// A trailing " - S01E01" is the episode code itself, never a version tag.
	episodeCodeRe = regexp.MustCompile(`(?i)^s[0-9]{1,4}e[0-9]{1,4}$`)

	// stackPartRe matches trailing multi-part tokens: "cd1", "disc 2",
	// "part-3", "pt a". Group 1 is the shared prefix, group 3 the part id.
	stackPartRe = regexp.MustCompile(`(?i)^(.+?)[ _.-]+(cd|dvd|disc|disk|part|pt)[ _.-]*([0-9]+|[a-d])$`)

	// videoRe matches video file extensions used to include media files.
	videoRe = regexp.MustCompile(`(?i)\.(mp4|mkv|avi|mov|wmv|flv|webm|mpeg|mpg|m4v|3gp|vob|ts|mts|m2ts|rmvb|divx)$`)

	// bracketTagRe matches bracketed tags anywhere in a name.
	bracketTagRe = regexp.MustCompile(`\[[^\[\]]+\]`)

	// yearRe extracts a plausible release year.
	yearRe = regexp.MustCompile(`\b((19|20)[0-9]{2})\b`)

	// extraKindRe matches trailing extra-content tokens in filenames.
	extraKindRe = regexp.MustCompile(`(?i)[ _.-](trailer|sample|behindthescenes|deleted(?:scene)?|featurette|interview|scene|short)$`)
)

// IsVideo reports whether filename has a recognized video extension.
func IsVideo(filename string) bool {
	return videoRe.MatchString(filename)
}

// ResolutionToken returns the first resolution marker in name ("1080p",
// "2160i"), or "" when name carries none.
func ResolutionToken(name string) string {
	return resolutionRe.FindString(name)
}

// StripBracketTags removes every bracketed tag from name. A "[1080p]"
// version tag names an encode, it is not a resolution marker in the
// surrounding text.
func StripBracketTags(name string) string {
	return bracketTagRe.ReplaceAllString(name, "")
}

// HasStartVersionTag reports whether name begins with a bracketed version tag.
func HasStartVersionTag(name string) bool {
	return startVersionTagRe.MatchString(name)
}

// SplitVersionSuffix splits a base name into its base key and optional
// version tag. "Show S01E01 - [HEVC]" yields ("Show S01E01", "HEVC", true);
// a name without a suffix, or whose suffix is a bare episode code like
// "S01E01", yields the whole name and no tag.
func SplitVersionSuffix(name string) (base, tag string, ok bool) {
	m := versionSuffixRe.FindStringSubmatch(name)
	if m == nil {
		return name, "", false
	}
	tag = m[2]
	if tag == "" {
		tag = strings.TrimSpace(m[3])
	}
	if tag == "" || episodeCodeRe.MatchString(tag) {
		return name, "", false
	}
	return m[1], tag, true
}

// SplitStackPart splits a base name into the shared stack prefix and the
// part token kind/id. "Movie (2020)-cd1" yields ("Movie (2020)", "cd", "1", true).
func SplitStackPart(name string) (prefix, token, part string, ok bool) {
	m := stackPartRe.FindStringSubmatch(name)
	if m == nil {
		return "", "", "", false
	}
	prefix = strings.TrimRight(m[1], " _.-")
	if prefix == "" {
		return "", "", "", false
	}
	return prefix, strings.ToLower(m[2]), strings.ToLower(m[3]), true
}

// ExtractYear returns the first plausible release year in name, or 0.
func ExtractYear(name string) int {
	m := yearRe.FindStringSubmatch(name)
	if m == nil {
		return 0
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return year
}

// ExtraToken returns the trailing extra-content token of name in lower
// case ("trailer", "sample", ...), or "" when name is primary content.
func ExtraToken(name string) string {
	m := extraKindRe.FindStringSubmatch(name)
	if m == nil {
		return ""
	}
	return strings.ToLower(m[1])
}
