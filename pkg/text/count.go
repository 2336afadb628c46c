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

package text

import (
	"encoding/json"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// 🔢 GraphemeCount returns the number of user-perceived characters in s.
// A multi code point emoji (flags, ZWJ sequences, skin tones) counts as one.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// 🔢 CharacterCount counts s the way the paste service counts its text limit:
// one per code point, where a surrogate pair counts once and every unmatched
// surrogate half counts once on its own.
//
// Go strings cannot carry surrogates as valid UTF-8, so surrogate halves are
// recognised in their generalized (WTF-8/CESU-8) three byte encoding. Any
// other invalid byte counts as one character.
func CharacterCount(s string) int {
	count := 0
	for i := 0; i < len(s); {
		if unit, ok := surrogateAt(s, i); ok {
			count++
			i += 3
			if isHighSurrogate(unit) {
				if next, ok := surrogateAt(s, i); ok && isLowSurrogate(next) {
					i += 3
				}
			}
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		count++
		i += size
	}
	return count
}

func surrogateAt(s string, i int) (uint16, bool) {
	if i+2 >= len(s) || s[i] != 0xed {
		return 0, false
	}
	b1, b2 := s[i+1], s[i+2]
	if b1 < 0xa0 || b1 > 0xbf || b2 < 0x80 || b2 > 0xbf {
		return 0, false
	}
	return 0xd000 | uint16(b1&0x3f)<<6 | uint16(b2&0x3f), true
}

func isHighSurrogate(u uint16) bool { return u >= 0xd800 && u <= 0xdbff }

func isLowSurrogate(u uint16) bool { return u&0xfc00 == 0xdc00 }

// 🧩 TryParseJSON decodes s into a generic value, reporting false instead of
// an error when s is not valid JSON.
func TryParseJSON(s string) (any, bool) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	return v, true
}

// 🧩 IsRecord reports whether v is a decoded JSON object.
func IsRecord(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}
