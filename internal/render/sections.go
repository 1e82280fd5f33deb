package render

import (
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

// Sections is the structured view of a Bee daily summary. The assistant
// emits loosely formatted markdown with headings like "Atmosphere",
// "Key Takeaways" (in several spellings) and "Action Items"; anything
// else is overview prose.
type Sections struct {
	Overview     string
	Atmosphere   string
	KeyTakeaways string
	ActionItems  string
}

const (
	secOverview     = "summary"
	secAtmosphere   = "atmosphere"
	secKeyTakeaways = "keytakeaways"
	secActionItems  = "actionitems"
)

var extensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock

// Split parses the summary markdown and buckets its blocks by section
// heading. Repeated headings merge into one section, which also
// de-duplicates summaries where the assistant emitted a section twice.
func Split(summary string) Sections {
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(summary))

	parts := make(map[string][]string)
	current := secOverview

	for _, node := range doc.GetChildren() {
		if heading, ok := node.(*ast.Heading); ok {
			current = normalizeHeading(inlineText(heading))
			continue
		}

		// Inline labels like "Key Takeaways:" open a section without
		// being markdown headings.
		if para, ok := node.(*ast.Paragraph); ok {
			if section, rest, ok := splitLabel(inlineText(para)); ok {
				current = section
				if rest != "" {
					parts[current] = append(parts[current], rest)
				}
				continue
			}
		}

		// The overview keeps prose only; stray bullet lists belong to
		// whatever section heading preceded them.
		if _, ok := node.(*ast.List); ok && current == secOverview {
			continue
		}

		if text := blockText(node); text != "" {
			parts[current] = append(parts[current], text)
		}
	}

	return Sections{
		Overview:     strings.TrimSpace(strings.Join(parts[secOverview], "\n\n")),
		Atmosphere:   strings.TrimSpace(strings.Join(parts[secAtmosphere], "\n\n")),
		KeyTakeaways: strings.TrimSpace(strings.Join(parts[secKeyTakeaways], "\n\n")),
		ActionItems:  strings.TrimSpace(strings.Join(parts[secActionItems], "\n\n")),
	}
}

// normalizeHeading folds heading spellings to a section key:
// "Key Take Aways", "key takeaways:" and friends all become one bucket.
// Unknown headings fold into the overview.
func normalizeHeading(text string) string {
	key := strings.ToLower(text)
	key = strings.ReplaceAll(key, " ", "")
	key = strings.TrimSuffix(key, ":")

	switch {
	case strings.Contains(key, "keytake") && strings.Contains(key, "ways"):
		return secKeyTakeaways
	case strings.Contains(key, "atmosphere"):
		return secAtmosphere
	case strings.Contains(key, "actionitems"):
		return secActionItems
	default:
		return secOverview
	}
}

// splitLabel detects paragraphs that start with a bare section label,
// e.g. "Atmosphere: calm and focused".
func splitLabel(text string) (section, rest string, ok bool) {
	head, tail, found := strings.Cut(text, ":")
	if !found || len(head) > 20 {
		return "", "", false
	}
	section = normalizeHeading(head)
	if section == secOverview {
		return "", "", false
	}
	return section, strings.TrimSpace(tail), true
}

// blockText renders a top-level block back to plain markdown-ish text.
// Lists become dash bullets; everything else collapses to its text.
func blockText(node ast.Node) string {
	if list, ok := node.(*ast.List); ok {
		var lines []string
		for _, item := range list.GetChildren() {
			if text := inlineText(item); text != "" {
				lines = append(lines, "- "+text)
			}
		}
		return strings.Join(lines, "\n")
	}
	return inlineText(node)
}

// inlineText collects the raw text leaves under a node.
func inlineText(node ast.Node) string {
	var sb strings.Builder
	ast.WalkFunc(node, func(n ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		switch t := n.(type) {
		case *ast.Text:
			sb.Write(t.Literal)
		case *ast.Code:
			sb.Write(t.Literal)
		}
		return ast.GoToNext
	})
	return strings.TrimSpace(sb.String())
}
