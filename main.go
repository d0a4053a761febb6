package main

import "github.com/Manu343726/armin/cmd"

func main() {
	cmd.Execute()
}
