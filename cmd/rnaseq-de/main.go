// cmd/rnaseq-de/main.go
package main

import (
	"rnaseqde/internal/app"
	"rnaseqde/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
