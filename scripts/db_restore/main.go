// Command db_restore replaces the PrepWise database file with <path>.bak.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	dst := os.Getenv("PREPWISE_DATABASE_PATH")
	if dst == "" {
		dst = "prepwise.db"
	}
	src := dst + ".bak"

	srcFile, err := os.Open(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Restore error: %v\n", err)
		os.Exit(1)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Restore error: %v\n", err)
		os.Exit(1)
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Restore error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Database restore completed.")
}
