package main

import "github.com/chenxi-arter/short-drama-api-sub001/cmd"

func main() {
	cmd.Execute()
}
