package main

import (
	"fmt"
)

var Version = "dev" // replaced by linker flag at build time

type VersionCmd struct{}

func (v *VersionCmd) Run() error {
	fmt.Println("trustc version:", Version)
	return nil
}
