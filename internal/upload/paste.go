// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package upload

import (
	"net/url"
	"os"
	"strings"
	"unicode"
)

// DroppedPaths interprets pasted text as a terminal drag and drop.
// Terminals paste dropped files as paths separated by whitespace, quoted
// or backslash-escaped, sometimes as file:// URIs. It returns the paths
// only when every token names an existing regular file, so ordinary
// pasted prose is never mistaken for a drop.
func DroppedPaths(text string) []string {
	tokens := splitPasted(strings.TrimSpace(text))
	if len(tokens) == 0 {
		return nil
	}

	paths := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		p := tok
		if strings.HasPrefix(p, "file://") {
			u, err := url.Parse(p)
			if err != nil {
				return nil
			}
			p = u.Path
		}
		info, err := os.Stat(p)
		if err != nil || !info.Mode().IsRegular() {
			return nil
		}
		paths = append(paths, p)
	}
	return paths
}

// splitPasted splits on unquoted whitespace, honouring single quotes,
// double quotes and backslash escapes.
func splitPasted(s string) []string {
	var (
		tokens  []string
		cur     strings.Builder
		inToken bool
		quote   rune
		escaped bool
	)

	for _, r := range s {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
			inToken = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inToken = true
		case unicode.IsSpace(r):
			if inToken {
				tokens = append(tokens, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteRune(r)
			inToken = true
		}
	}
	if quote != 0 {
		return nil
	}
	if inToken {
		tokens = append(tokens, cur.String())
	}
	return tokens
}
