package main

import "github.com/arl/go-delaunay/cmd/delaunay/cmd"

func main() {
	cmd.Execute()
}
