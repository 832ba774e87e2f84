package main

import (
	"fmt"
	"os"
)

func helper() {
	os.Exit(2)
}

func main() {
	fmt.Println("start")
	defer helper()
	os.Exit(1) // want "direct calls to os.Exit in main package are not allowed."
}
