package main

import "github.com/ValentinKolb/vcc/cmd"

func main() {
	cmd.Execute()
}
