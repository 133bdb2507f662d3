// Package ingest splits a markdown-ish document into the segments the
// pipeline consumes. It stands in for the book parser: blank lines end
// paragraphs, '#' lines become headings, and list lines become items.
package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"yomiage/model"
)

// ErrEmpty is returned for a document with no speakable lines.
var ErrEmpty = errors.New("empty document")

var (
	headingLine = regexp.MustCompile(`^(#{1,6})[ \t]+(.+?)[ \t#]*$`)
	listLine    = regexp.MustCompile(`^[ \t]*(?:[-*+•]|\d+[.)])[ \t]+\S`)
	fenceLine   = regexp.MustCompile("^[ \\t]*```")
)

// Split turns text into a Document. Segment IDs are derived from the
// document content and the segment position, so they are stable across runs.
func Split(text string) (model.Document, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	docID := uuid.NewSHA1(uuid.NameSpaceOID, []byte(text))
	doc := model.Document{ID: docID.String(), Text: text}

	var para []string
	inFence := false
	add := func(seg model.Segment) {
		seg.Index = len(doc.Segments)
		seg.ID = uuid.NewSHA1(docID, []byte(fmt.Sprintf("%d", seg.Index))).String()
		doc.Segments = append(doc.Segments, seg)
	}
	flush := func() {
		if len(para) == 0 {
			return
		}
		joined := strings.TrimSpace(strings.Join(para, "\n"))
		para = para[:0]
		if joined != "" {
			add(model.Segment{Text: joined, Type: model.Paragraph})
		}
	}

	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if fenceLine.MatchString(line) {
			inFence = !inFence
			para = append(para, line)
			continue
		}
		if inFence {
			para = append(para, line)
			continue
		}
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if m := headingLine.FindStringSubmatch(line); m != nil {
			flush()
			add(model.Segment{
				Text:     model.HeadingMarkerString + m[2],
				Type:     model.Heading,
				Boundary: boundaryFor(len(m[1])),
			})
			continue
		}
		if listLine.MatchString(line) {
			flush()
			add(model.Segment{Text: strings.TrimSpace(line), Type: model.ListItem})
			continue
		}
		para = append(para, line)
	}
	if err := sc.Err(); err != nil {
		return model.Document{}, fmt.Errorf("split document: %w", err)
	}
	flush()

	if len(doc.Segments) == 0 {
		return model.Document{}, ErrEmpty
	}
	return doc, nil
}

func boundaryFor(level int) model.Boundary {
	switch level {
	case 1:
		return model.ChapterBoundary
	case 2:
		return model.SectionBoundary
	}
	return model.HeadingBoundary
}
