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

package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	entryIndent = 4  // spaces to indent embed entries
	pathWidth   = 35 // Base width for the vault path
	kindWidth   = 8  // Width for the entry kind
)

// 🎯 FormatEntry formats one embed entry for display
func FormatEntry(e Entry) string {
	var prefix string
	switch e.Kind {
	case KindCached:
		prefix = color.GreenString("✓")
	case KindPending:
		prefix = color.YellowString("⟳")
	case KindStale:
		prefix = color.RedString("✗")
	default:
		prefix = color.HiBlackString("-")
	}

	pathPart := fmt.Sprintf("%-*s", pathWidth, e.Path)
	kindPart := fmt.Sprintf("%-*s", kindWidth, e.Kind)

	line := fmt.Sprintf("%s%s %s %s",
		strings.Repeat(" ", entryIndent),
		prefix,
		pathPart,
		kindPart,
	)
	if e.URL != "" {
		line += " " + e.URL
	}
	return strings.TrimRight(line, " ")
}
