// SPDX-License-Identifier: MIT

package paths_test

import (
	"fmt"

	"github.com/katalvlaran/lvdrills/paths"
)

func ExampleCommonDir() {
	fmt.Printf("%q\n", paths.CommonDir([]string{"/web/images/image1.png", "/web/images/image2.png"}))
	fmt.Printf("%q\n", paths.CommonDir([]string{"/web/favicon.ico", "/web-scripts/dump", "/verbalizer/logs"}))
	fmt.Printf("%q\n", paths.CommonDir([]string{"/web/assets/style.css", "/web/scripts/app.js", "home/setting.conf"}))
	// Output:
	// "/web/images/"
	// "/"
	// ""
}
