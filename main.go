package main

import "github.com/frahmantamala/retail-management/cmd"

func main() {
	cmd.Execute()
}
