// Command unitinterval validates, combines and samples values in [0, 1].
package main

import "os"

func main() {
	os.Exit(execute(os.Args[1:]))
}
