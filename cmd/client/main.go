package main

import "dayadmin/cmd/client/cmd"

func main() {
	cmd.Execute()
}
