package document

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/smart-summarizer/internal/summarizer"
)

type BlockKind int

const (
	KindTitle BlockKind = iota
	KindHeading
	KindSubHeading
	KindBullet
	KindParagraph
)

// Run is a span of text with uniform weight.
type Run struct {
	Text string
	Bold bool
}

// Block is one paragraph of the output document.
type Block struct {
	Kind BlockKind
	Runs []Run
}

var reBold = regexp.MustCompile(`\*\*(.+?)\*\*`)

// Layout flattens a summary into document blocks.
func Layout(summary summarizer.Summary, title string) ([]Block, error) {
	blocks := []Block{plain(KindTitle, title)}

	switch s := summary.(type) {
	case *summarizer.WebsiteSummary:
		for _, sec := range s.Sections {
			blocks = append(blocks, plain(KindHeading, sec.Heading))
			blocks = append(blocks, contentBlocks(sec.Content)...)
		}
	case *summarizer.MeetingSummary:
		blocks = append(blocks, plain(KindHeading, "Minutes of Meeting"))
		blocks = append(blocks, bullets(s.MOM)...)
		blocks = append(blocks, plain(KindHeading, "To-Do List"))
		blocks = append(blocks, bullets(s.TodoList)...)
		blocks = append(blocks, plain(KindHeading, "Action Plan"))
		for _, f := range s.ActionPlan.Fields() {
			blocks = append(blocks, plain(KindSubHeading, f.Label))
			blocks = append(blocks, bullets(f.Items)...)
		}
	case nil:
		return nil, fmt.Errorf("layout: nil summary")
	default:
		return nil, fmt.Errorf("layout: unsupported summary %T", summary)
	}

	return blocks, nil
}

// contentBlocks splits free text into lines: "- " lines become bullets,
// everything else a paragraph.
func contentBlocks(content string) []Block {
	var blocks []Block
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "- "); ok {
			blocks = append(blocks, Block{Kind: KindBullet, Runs: ParseRuns(strings.TrimSpace(rest))})
			continue
		}
		blocks = append(blocks, Block{Kind: KindParagraph, Runs: ParseRuns(line)})
	}
	return blocks
}

func bullets(items []string) []Block {
	var blocks []Block
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			blocks = append(blocks, Block{Kind: KindBullet, Runs: ParseRuns(item)})
		}
	}
	if len(blocks) == 0 {
		blocks = append(blocks, plain(KindParagraph, "None noted."))
	}
	return blocks
}

// ParseRuns splits text on **bold** markers.
func ParseRuns(text string) []Run {
	var runs []Run
	last := 0
	for _, m := range reBold.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			runs = append(runs, Run{Text: text[last:m[0]]})
		}
		runs = append(runs, Run{Text: text[m[2]:m[3]], Bold: true})
		last = m[1]
	}
	if last < len(text) {
		runs = append(runs, Run{Text: text[last:]})
	}
	return runs
}

func plain(kind BlockKind, text string) Block {
	return Block{Kind: kind, Runs: []Run{{Text: text}}}
}
