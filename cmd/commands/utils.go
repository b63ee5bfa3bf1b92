package commands

import (
	"fmt"
	"os"

	"memorymap/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("memorymap error", "err", err.Error())
	os.Exit(1)
}

func HandleHelp(_ []string) {
	fmt.Println(`memorymap - personal map journal service

Usage:
  memorymap run <config.yml>   start the server
  memorymap version            print the version
  memorymap help               show this help`)
}
