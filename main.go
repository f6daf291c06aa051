// OrarioDoc - a weekly lesson timetable for teachers.
package main

import (
	"os"

	"github.com/mbelotti-dev/orariodoc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
