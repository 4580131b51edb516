// SPDX-License-Identifier: MPL-2.0

// Command kite runs build-time tools in isolated artifact environments.
package main

import cmd "github.com/bubblesly/kite/cmd/kite"

func main() {
	cmd.Execute()
}
