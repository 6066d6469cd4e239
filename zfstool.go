package main

import (
	"github.com/jakeogh/zfstool/cmd"

	_ "github.com/jakeogh/zfstool/cmd/all"
)

func main() {
	cmd.Execute()
}
