// cmd/dnarle/main.go
package main

import (
	"dnarle/internal/appshell"
	"dnarle/internal/encodeapp"
)

func main() { appshell.Main(encodeapp.RunContext) }
