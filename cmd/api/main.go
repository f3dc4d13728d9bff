package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"fileuploader/internal/cli"
)

// @title File Uploader API
// @version 1.0
// @description Cars, their documents and document contents.
// @BasePath /
func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
