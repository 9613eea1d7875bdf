package main

import "github.com/Srushti24695/tonalize/cmd"

func main() {
	cmd.Execute()
}
