package linkcheck

import (
	"bytes"
	"sort"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/docsite/internal/frontmatter"
)

type LinkKind string

const (
	LinkKindInline              LinkKind = "inline"
	LinkKindImage               LinkKind = "image"
	LinkKindReferenceDefinition LinkKind = "reference_definition"
)

// Link is a link-like construct found in a document.
type Link struct {
	Kind        LinkKind
	Destination string
	Line        int // 1-based; 0 when unknown
}

// ExtractLinks parses a document and returns its inline links, images and the
// reference definitions no link resolved to. Code spans and code blocks are
// never inspected.
func ExtractLinks(src []byte) []Link {
	body, offset := stripFrontMatter(src)

	ctx := parser.NewContext()
	root := goldmark.New().Parser().Parse(text.NewReader(body), parser.WithContext(ctx))

	links := make([]Link, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Image:
			links = append(links, Link{Kind: LinkKindImage, Destination: string(node.Destination), Line: lineOf(body, node, offset)})
		case *gmast.Link:
			// reference-style usages are resolved to a Link node carrying the destination
			links = append(links, Link{Kind: LinkKindInline, Destination: string(node.Destination), Line: lineOf(body, node, offset)})
		}
		return gmast.WalkContinue, nil
	})

	// Reference definitions live in the parse context, not in the AST.
	refs := ctx.References()
	sort.Slice(refs, func(i, j int) bool {
		return string(refs[i].Label()) < string(refs[j].Label())
	})
	// A used definition was already reported through the link it resolved.
	used := make(map[string]bool, len(links))
	for _, l := range links {
		used[l.Destination] = true
	}
	for _, ref := range refs {
		dest := string(ref.Destination())
		if used[dest] {
			continue
		}
		used[dest] = true
		links = append(links, Link{Kind: LinkKindReferenceDefinition, Destination: dest})
	}
	return links
}

// stripFrontMatter returns the body after a leading front matter block and the
// number of lines the block occupied. An unterminated block is kept as markdown.
func stripFrontMatter(src []byte) ([]byte, int) {
	_, body, bodyLine, had, err := frontmatter.Split(src)
	if err != nil || !had {
		return src, 0
	}
	return body, bodyLine - 1
}

// lineOf locates an inline node through the nearest enclosing block.
func lineOf(source []byte, n gmast.Node, offset int) int {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Type() != gmast.TypeBlock {
			continue
		}
		lines := p.Lines()
		if lines == nil || lines.Len() == 0 {
			return 0
		}
		start := lines.At(0).Start
		return bytes.Count(source[:start], []byte("\n")) + 1 + offset
	}
	return 0
}
