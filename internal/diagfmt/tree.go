package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"quill/internal/source"
	"quill/internal/syntax"
)

// TreeLayout selects how FormatTree draws the tree.
type TreeLayout uint8

const (
	// TreeIndent prints one node per line with ├─/└─ guides.
	TreeIndent TreeLayout = iota
	// TreeASCII draws the tree top-down with / | \ connectors.
	TreeASCII
)

// TreeOpts configures FormatTree.
type TreeOpts struct {
	Layout TreeLayout
	Color  bool
	// Text, when set, adds line:col ranges to node labels.
	Text *source.Text
}

var (
	nodeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	tokenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	guideStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type treeNode struct {
	label    string
	isToken  bool
	children []*treeNode
}

type treeBlock struct {
	lines []string
	width int
	root  int
}

// FormatTree prints any syntax tree using only Kind and Children, so it
// works for every node shape without knowing the concrete type.
func FormatTree(w io.Writer, root syntax.Node, opts TreeOpts) error {
	node := buildTreeNode(root, opts.Text)
	switch opts.Layout {
	case TreeASCII:
		for _, line := range renderTree(node).lines {
			if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
				return err
			}
		}
		return nil
	default:
		return writeIndented(w, node, "", "", opts.Color)
	}
}

func buildTreeNode(n syntax.Node, text *source.Text) *treeNode {
	if syntax.IsNil(n) {
		return &treeNode{label: "<missing>"}
	}
	if tok, ok := n.(syntax.Token); ok {
		label := fmt.Sprintf("%s %q", tok.Kind(), tok.Text())
		if tok.Kind() == syntax.Number {
			label += fmt.Sprintf(" = %s", tok.Value())
		}
		return &treeNode{label: label, isToken: true}
	}

	label := n.Kind().String()
	if text != nil {
		if sp, ok := syntax.SpanOf(n); ok {
			start, end := text.Position(sp.Start), text.Position(sp.End())
			label += fmt.Sprintf(" (%d:%d-%d:%d)", start.Line, start.Col, end.Line, end.Col)
		}
	}
	node := &treeNode{label: label}
	for _, child := range n.Children() {
		node.children = append(node.children, buildTreeNode(child, text))
	}
	return node
}

func writeIndented(w io.Writer, node *treeNode, guide, prefix string, colored bool) error {
	label := node.label
	if colored {
		style := nodeStyle
		if node.isToken {
			style = tokenStyle
		}
		label = style.Render(label)
		guide = guideStyle.Render(guide)
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", guide, label); err != nil {
		return err
	}
	for i, child := range node.children {
		childGuide, childPrefix := prefix+"├─ ", prefix+"│  "
		if i == len(node.children)-1 {
			childGuide, childPrefix = prefix+"└─ ", prefix+"   "
		}
		if err := writeIndented(w, child, childGuide, childPrefix, colored); err != nil {
			return err
		}
	}
	return nil
}

// renderTree converts a treeNode into a treeBlock containing an ASCII-art representation.
//
// The block's width is the horizontal extent of the rendered lines in screen
// columns and root is the column of the node's vertical connector.
func renderTree(node *treeNode) treeBlock {
	label := node.label
	labelWidth := runewidth.StringWidth(label)

	if len(node.children) == 0 {
		return treeBlock{
			lines: []string{label},
			width: labelWidth,
			root:  labelWidth / 2,
		}
	}

	childBlocks := make([]treeBlock, len(node.children))
	maxChildHeight := 0
	for i, child := range node.children {
		childBlocks[i] = renderTree(child)
		maxChildHeight = max(maxChildHeight, len(childBlocks[i].lines))
	}

	const spacing = 3

	positions := make([]int, len(childBlocks))
	totalWidth := 0
	for i, block := range childBlocks {
		positions[i] = totalWidth + block.root
		totalWidth += block.width
		if i != len(childBlocks)-1 {
			totalWidth += spacing
		}
	}

	childrenCenter := (positions[0] + positions[len(positions)-1]) / 2
	rootPos := labelWidth / 2
	shift := childrenCenter - rootPos

	childPrefix := 0
	if shift < 0 {
		childPrefix = -shift
		for i := range positions {
			positions[i] += childPrefix
		}
		totalWidth += childPrefix
		shift = 0
	} else {
		rootPos += shift
	}

	width := max(totalWidth, shift+labelWidth)
	rootLine := padRight(strings.Repeat(" ", shift)+label, width)

	connector := []byte(strings.Repeat(" ", width))
	connector[rootPos] = '|'
	for _, pos := range positions {
		switch {
		case pos < rootPos:
			connector[pos] = '/'
		case pos > rootPos:
			connector[pos] = '\\'
		default:
			connector[pos] = '|'
		}
	}

	lines := make([]string, 0, 2+maxChildHeight)
	lines = append(lines, rootLine, string(connector))
	for row := range maxChildHeight {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", childPrefix))
		for i, block := range childBlocks {
			line := ""
			if row < len(block.lines) {
				line = block.lines[row]
			}
			sb.WriteString(padRight(line, block.width))
			if i != len(childBlocks)-1 {
				sb.WriteString(strings.Repeat(" ", spacing))
			}
		}
		lines = append(lines, padRight(sb.String(), width))
	}

	return treeBlock{
		lines: lines,
		width: width,
		root:  rootPos,
	}
}

func padRight(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
