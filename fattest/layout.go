package fattest

import (
	"path"
	"sort"
	"strings"
)

// Layout describes a tree as slash-separated paths relative to the root.
// Paths ending in "/" are directories; every other key is a file holding
// its value. Parent directories are implied.
type Layout map[string][]byte

// Dirs returns every directory in the layout, explicit or implied, parents
// before children.
func (l Layout) Dirs() []string {
	seen := map[string]bool{}
	for p := range l {
		dir := strings.TrimSuffix(p, "/")
		if !strings.HasSuffix(p, "/") {
			dir = path.Dir(p)
		}
		for dir != "." && dir != "" && !seen[dir] {
			seen[dir] = true
			dir = path.Dir(dir)
		}
	}

	dirs := make([]string, 0, len(seen))
	for d := range seen {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}

// Files returns the file paths of the layout in sorted order.
func (l Layout) Files() []string {
	var files []string
	for p := range l {
		if !strings.HasSuffix(p, "/") {
			files = append(files, p)
		}
	}
	sort.Strings(files)
	return files
}

// Children returns the sorted names directly inside dir ("." for the root)
// and whether each is a directory.
func (l Layout) Children(dir string) (names []string, isDir map[string]bool) {
	isDir = map[string]bool{}
	add := func(p string, d bool) {
		if path.Dir(p) != dir {
			return
		}
		name := path.Base(p)
		if _, ok := isDir[name]; !ok {
			names = append(names, name)
		}
		isDir[name] = isDir[name] || d
	}
	for _, d := range l.Dirs() {
		add(d, true)
	}
	for _, f := range l.Files() {
		add(f, false)
	}
	sort.Strings(names)
	return names, isDir
}

// Build returns the layout as a Node tree rooted at an unnamed directory.
// Children are ordered by name.
func (l Layout) Build() *Node {
	return l.build("", ".")
}

func (l Layout) build(name, dir string) *Node {
	names, isDir := l.Children(dir)
	children := make([]*Node, 0, len(names))
	for _, n := range names {
		p := n
		if dir != "." {
			p = dir + "/" + n
		}
		if isDir[n] {
			children = append(children, l.build(n, p))
			continue
		}
		children = append(children, File(n, l[p]))
	}
	return Dir(name, children...)
}
