package main

import "github.com/rantu/rantu-market/cmd"

func main() {
	cmd.Execute()
}
