package main

import "ciclo-integrado/cmd"

func main() {
	cmd.Execute()
}
