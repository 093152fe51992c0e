// cmd/main.go
package main

import cmd "github.com/mwiater/gostddev/cmd/gostddev"

// main starts gostddev by delegating to the cobra root command defined in
// the gostddev package.
func main() {
	cmd.Execute()
}
