// SPDX-License-Identifier: MIT

package paths

import "strings"

const sep = "/"

// dirComponents splits p on '/' and drops the final element (the file name).
// An absolute path keeps a leading "" component standing for the root.
func dirComponents(p string) []string {
	parts := strings.Split(p, sep)

	return parts[:len(parts)-1]
}

// CommonDir returns the longest directory shared by all paths, with a
// trailing '/'. It returns "/" when only the root is shared and "" when
// nothing is (including a mix of absolute and relative paths, or no paths).
func CommonDir(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	common := dirComponents(paths[0])
	for _, p := range paths[1:] {
		dirs := dirComponents(p)
		n := 0
		for n < len(common) && n < len(dirs) && common[n] == dirs[n] {
			n++
		}
		common = common[:n]
		if n == 0 {
			return ""
		}
	}
	if len(common) == 0 {
		return ""
	}

	return strings.Join(common, sep) + sep
}
