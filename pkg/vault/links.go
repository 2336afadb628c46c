// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vault

import (
	"net/url"
	"regexp"
	"strings"
)

// 🔗 Link is one reference found in a note's text.
type Link struct {
	// Link is the target as written, without alias or subpath
	Link string
	// Original is the raw markup, e.g. "![[img.png|alt]]"
	Original string
	// DisplayText is the alias or alt text, falling back to the target
	DisplayText string
	// Start and End are byte offsets of Original within the note text
	Start int
	End   int
	// Embed is set for "!" prefixed links
	Embed bool
}

var (
	wikiLinkRe = regexp.MustCompile(`(!?)\[\[([^\[\]\n]+)\]\]`)
	mdLinkRe   = regexp.MustCompile(`(!?)\[([^\[\]\n]*)\]\(([^()\n]+)\)`)
)

// 🔍 ParseLinks extracts wikilinks and markdown links from text, skipping
// fenced code blocks and inline code. Results are ordered by Start.
func ParseLinks(text string) []Link {
	skip := codeRanges(text)
	inCode := func(start int) bool {
		for _, r := range skip {
			if start >= r[0] && start < r[1] {
				return true
			}
		}
		return false
	}

	var links []Link
	for _, m := range wikiLinkRe.FindAllStringSubmatchIndex(text, -1) {
		if inCode(m[0]) {
			continue
		}
		inner := text[m[4]:m[5]]
		target, alias, hasAlias := strings.Cut(inner, "|")
		target = strings.TrimSpace(target)
		if target == "" {
			continue
		}
		display := target
		if hasAlias {
			display = strings.TrimSpace(alias)
		}
		links = append(links, Link{
			Link:        target,
			Original:    text[m[0]:m[1]],
			DisplayText: display,
			Start:       m[0],
			End:         m[1],
			Embed:       m[3] > m[2],
		})
	}

	for _, m := range mdLinkRe.FindAllStringSubmatchIndex(text, -1) {
		if inCode(m[0]) {
			continue
		}
		target := strings.TrimSpace(text[m[6]:m[7]])
		// optional title: ![a](img.png "title")
		if i := strings.IndexAny(target, " \t"); i >= 0 {
			target = target[:i]
		}
		target = strings.TrimSuffix(strings.TrimPrefix(target, "<"), ">")
		if target == "" || strings.Contains(target, "://") || strings.HasPrefix(target, "mailto:") {
			continue
		}
		if decoded, err := url.PathUnescape(target); err == nil {
			target = decoded
		}
		display := text[m[4]:m[5]]
		links = append(links, Link{
			Link:        target,
			Original:    text[m[0]:m[1]],
			DisplayText: display,
			Start:       m[0],
			End:         m[1],
			Embed:       m[3] > m[2],
		})
	}

	sortLinks(links)
	return links
}

func sortLinks(links []Link) {
	// insertion sort: two already ordered runs, usually short
	for i := 1; i < len(links); i++ {
		for j := i; j > 0 && links[j].Start < links[j-1].Start; j-- {
			links[j], links[j-1] = links[j-1], links[j]
		}
	}
}

// codeRanges returns [start, end) byte ranges of fenced blocks and inline
// code spans.
func codeRanges(text string) [][2]int {
	var ranges [][2]int

	offset := 0
	fenceStart := -1
	fence := ""
	for _, line := range strings.SplitAfter(text, "\n") {
		trimmed := strings.TrimLeft(line, " ")
		switch {
		case fenceStart < 0 && (strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")):
			fenceStart = offset
			fence = trimmed[:3]
		case fenceStart >= 0 && strings.HasPrefix(trimmed, fence):
			ranges = append(ranges, [2]int{fenceStart, offset + len(line)})
			fenceStart = -1
		case fenceStart < 0:
			ranges = append(ranges, inlineCode(line, offset)...)
		}
		offset += len(line)
	}
	if fenceStart >= 0 {
		ranges = append(ranges, [2]int{fenceStart, len(text)})
	}
	return ranges
}

func inlineCode(line string, offset int) [][2]int {
	var ranges [][2]int
	open := -1
	for i := 0; i < len(line); i++ {
		if line[i] != '`' {
			continue
		}
		if open < 0 {
			open = i
			continue
		}
		ranges = append(ranges, [2]int{offset + open, offset + i + 1})
		open = -1
	}
	return ranges
}
