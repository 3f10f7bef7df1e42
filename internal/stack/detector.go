// Package stack detects multi-part titles: files or directories in the
// same location whose names differ only by a trailing part token such as
// "cd1"/"cd2" or "part a"/"part b".
package stack

import (
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/Digital-Shane/title-group/internal/naming"
)

// FileRef is the minimal view of a file the detector needs.
type FileRef struct {
	Path        string
	IsDirectory bool
}

// Stack is a group of consecutive parts of one title.
type Stack struct {
	Name             string
	Files            []FileRef
	IsDirectoryStack bool
}

// ContainsFile reports whether the stack claims the given path.
func (s *Stack) ContainsFile(path string, isDirectory bool) bool {
	if s.IsDirectoryStack != isDirectory {
		return false
	}
	for _, f := range s.Files {
		if f.Path == path {
			return true
		}
	}
	return false
}

type candidate struct {
	token string
	refs  []FileRef
	parts map[string]struct{}
}

// Detect groups refs into stacks. Two or more entries sharing a directory,
// a kind (file vs directory), a name prefix, and a part token style form
// one stack; everything else is left unclaimed. Stacks are returned in
// first-appearance order of their prefix.
func Detect(refs []FileRef) []*Stack {
	type key struct {
		dir    string
		isDir  bool
		prefix string
	}

	candidates := make(map[key]*candidate)
	order := make([]key, 0, len(refs))

	for _, ref := range refs {
		name := baseName(ref)
		prefix, token, part, ok := naming.SplitStackPart(name)
		if !ok {
			continue
		}
		k := key{
			dir:    filepath.Dir(ref.Path),
			isDir:  ref.IsDirectory,
			prefix: strings.ToLower(prefix),
		}
		c, exists := candidates[k]
		if !exists {
			c = &candidate{token: token, parts: make(map[string]struct{})}
			candidates[k] = c
			order = append(order, k)
		}
		// Mixed token styles ("cd1" next to "part1") never merge, and a
		// repeated part id means two unrelated releases, not one stack.
		if c.token != token {
			continue
		}
		part = normalizePart(part)
		if _, dup := c.parts[part]; dup {
			continue
		}
		c.parts[part] = struct{}{}
		c.refs = append(c.refs, ref)
	}

	stacks := make([]*Stack, 0, len(order))
	for _, k := range order {
		c := candidates[k]
		if len(c.refs) < 2 {
			continue
		}
		sortParts(c.refs)
		name, _, _, _ := naming.SplitStackPart(baseName(c.refs[0]))
		stacks = append(stacks, &Stack{
			Name:             name,
			Files:            c.refs,
			IsDirectoryStack: k.isDir,
		})
	}
	return stacks
}

// sortParts orders stack members so disc 2 follows disc 1 regardless of
// zero padding or input order.
func sortParts(refs []FileRef) {
	slices.SortStableFunc(refs, func(a, b FileRef) int {
		return naming.NaturalCompare(a.Path, b.Path)
	})
}

// normalizePart folds zero padding so "cd1" and "cd01" claim the same slot.
func normalizePart(part string) string {
	if n, err := strconv.Atoi(part); err == nil {
		return strconv.Itoa(n)
	}
	return part
}

func baseName(ref FileRef) string {
	name := filepath.Base(ref.Path)
	if ref.IsDirectory {
		return name
	}
	if ext := filepath.Ext(name); ext != "" {
		name = name[:len(name)-len(ext)]
	}
	return name
}
