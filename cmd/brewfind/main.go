package main

import "github.com/nekruzvatanshoev/brewfind/pkg/cmd"

func main() {
	cmd.Execute()
}
