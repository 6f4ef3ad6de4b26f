// SPDX-License-Identifier: MIT

// Package paths finds the common directory of a set of slash-separated file
// paths.
//
//	["/web/images/image1.png", "/web/images/image2.png"]     → "/web/images/"
//	["/web/assets/style.css", "/.bin/mocha", "/read.me"]     → "/"
//	["/web/assets/style.css", "home/setting.conf"]           → ""
//
// Paths are compared component by component, so "/web" and "/web-scripts"
// share only the root. No cleaning is applied: "." and ".." are ordinary
// components.
package paths
