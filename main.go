package main

import "github.com/samsaffron/mdmend/cmd"

func main() {
	cmd.Execute()
}
