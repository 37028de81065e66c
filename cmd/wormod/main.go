// cmd/wormod/main.go
package main

import (
	"wormod/internal/app"
	"wormod/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
