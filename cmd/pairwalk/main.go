// cmd/pairwalk/main.go
package main

import (
	"pairwalk/internal/app"
	"pairwalk/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
