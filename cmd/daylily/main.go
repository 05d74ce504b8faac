// Command daylily browses and filters a daylily variety gallery.
package main

import "github.com/user/daylily/internal/cli"

func main() {
	cli.Execute()
}
