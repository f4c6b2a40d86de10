package main

import (
	"github.com/DRSN-tech/visual-search/internal/app"
)

func main() {
	app.Run()
}
