package main

import "tedit/cmd"

func main() {
	cmd.Execute()
}
