package output

import (
	"path"
	"slices"
	"strings"
)

const (
	treeBranch = "├── "
	treeLast   = "└── "
	treePipe   = "│   "
	treeBlank  = "    "

	// statusColumn is the column at which file statuses are aligned.
	statusColumn = 44
)

type treeNode struct {
	name     string
	status   string
	dir      bool
	children []*treeNode
}

func (n *treeNode) child(name string, dir bool) *treeNode {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	c := &treeNode{name: name, dir: dir}
	n.children = append(n.children, c)
	return c
}

// RenderFileTree renders the files written into a microfrontend directory.
// Keys of files are slash-separated paths relative to root, values are the
// file status (StatusCreated, StatusCopied, ...). An empty map renders nothing.
func RenderFileTree(root string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	top := &treeNode{name: root, dir: true}
	for p, status := range files {
		parts := strings.Split(path.Clean(strings.ReplaceAll(p, "\\", "/")), "/")
		cur := top
		for i, part := range parts {
			leaf := i == len(parts)-1
			cur = cur.child(part, !leaf)
			if leaf {
				cur.status = status
			}
		}
	}
	sortNodes(top)

	var sb strings.Builder
	sb.WriteString(GetStyles().Bold.Render(top.name + "/"))
	sb.WriteString("\n")
	for i, c := range top.children {
		writeNode(&sb, c, "", i == len(top.children)-1)
	}
	return sb.String()
}

// sortNodes orders directories before files, then by name.
func sortNodes(n *treeNode) {
	slices.SortFunc(n.children, func(a, b *treeNode) int {
		if a.dir != b.dir {
			if a.dir {
				return -1
			}
			return 1
		}
		return strings.Compare(a.name, b.name)
	})
	for _, c := range n.children {
		sortNodes(c)
	}
}

func writeNode(sb *strings.Builder, n *treeNode, prefix string, last bool) {
	connector, next := treeBranch, treePipe
	if last {
		connector, next = treeLast, treeBlank
	}

	name := n.name
	if n.dir {
		name += "/"
	}
	line := prefix + connector + name
	if n.status != "" {
		pad := statusColumn - len([]rune(line))
		if pad < 2 {
			pad = 2
		}
		line += strings.Repeat(" ", pad) + statusStyle(n.status).Render(n.status)
	}
	sb.WriteString(line)
	sb.WriteString("\n")

	for i, c := range n.children {
		writeNode(sb, c, prefix+next, i == len(n.children)-1)
	}
}
