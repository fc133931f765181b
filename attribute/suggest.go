// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"cmp"
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// suggestThreshold is the minimum similarity for a name to be suggested.
const suggestThreshold = 0.5

// Suggest returns up to n names in the list that are most similar to
// the given name, most similar first, for "did you mean" messages.
// It returns nothing for n <= 0.
func (l List) Suggest(name string, n int) []string {
	if n <= 0 {
		return nil
	}
	type scored struct {
		name  string
		score float64
	}
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	lname := strings.ToLower(name)
	var sc []scored
	for _, a := range l {
		s := strutil.Similarity(name, a.Name, lev)
		if lname != "" && strings.HasPrefix(strings.ToLower(a.Name), lname) {
			s = max(s, 0.9)
		}
		if s >= suggestThreshold {
			sc = append(sc, scored{a.Name, s})
		}
	}
	slices.SortStableFunc(sc, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})
	if len(sc) > n {
		sc = sc[:n]
	}
	res := make([]string, len(sc))
	for i, s := range sc {
		res[i] = s.name
	}
	return res
}
