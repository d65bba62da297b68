// cmd/bvsplit/main.go
package main

import (
	"bvsplit/internal/app"
	"bvsplit/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
