package main

import "github.com/theirongolddev/lifedash/cmd"

func main() {
	cmd.Execute()
}
