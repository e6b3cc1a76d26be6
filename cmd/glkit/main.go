package main

import (
	"glkit/cmd/glkit/internal"
)

func main() {
	internal.Execute()
}
