// Copyright 2024 The eik3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eikonal

// orientEdgeFan implements the "sort-and-orient" pass of spec §4.F step 3
// / §9: each cell incident on edge (l0,l1) contributes two vertices
// opposite that edge; this chains the cells into fan order so that each
// entry's second vertex is the next entry's first vertex (opp3[i] ==
// opp2[i+1]), with neither column repeating a vertex. cv is the mesh's
// cell-vertices lookup.
func orientEdgeFan(cells []int, cv func(int) [4]int, l0, l1 int) (opp2, opp3 []int) {
	n := len(cells)
	if n == 0 {
		return nil, nil
	}
	pairs := make([][2]int, n)
	for i, c := range cells {
		verts := cv(c)
		a, b := NoParent, NoParent
		for _, v := range verts {
			if v == l0 || v == l1 {
				continue
			}
			if a == NoParent {
				a = v
			} else {
				b = v
			}
		}
		pairs[i] = [2]int{a, b}
	}

	used := make([]bool, n)
	opp2 = make([]int, 0, n)
	opp3 = make([]int, 0, n)
	used[0] = true
	opp2 = append(opp2, pairs[0][0])
	opp3 = append(opp3, pairs[0][1])

	for len(opp2) < n {
		prevB := opp3[len(opp3)-1]
		found := false
		for i, p := range pairs {
			if used[i] {
				continue
			}
			switch prevB {
			case p[0]:
				opp2, opp3 = append(opp2, p[0]), append(opp3, p[1])
			case p[1]:
				opp2, opp3 = append(opp2, p[1]), append(opp3, p[0])
			default:
				continue
			}
			used[i] = true
			found = true
			break
		}
		if found {
			continue
		}
		// no chaining vertex found (disconnected fan, e.g. two distinct
		// boundary sheets meeting only at the edge): append the next
		// unused pair as-is rather than stalling.
		for i, p := range pairs {
			if !used[i] {
				opp2, opp3 = append(opp2, p[0]), append(opp3, p[1])
				used[i] = true
				break
			}
		}
	}
	return
}
