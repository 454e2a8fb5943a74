package main

import "github.com/MeKo-Tech/swatchkit/internal/cmd"

func main() {
	cmd.Execute()
}
