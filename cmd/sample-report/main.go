// cmd/sample-report/main.go
package main

import (
	"samplereport/internal/app"
	"samplereport/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
