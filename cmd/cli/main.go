package main

import "mailstub/cmd/cli/app/cmd"

func main() {
	cmd.Execute()
}
