package main

import "xamlx/cmd"

func main() {
	cmd.Execute()
}
