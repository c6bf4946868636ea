// Package main provides the blk2json command line tool.
//
// Usage:
//
//	blk2json convert scene.blk
//	blk2json render scene.blk --out scene.svg
//	blk2json history
package main

import (
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

func main() {
	Execute()
}
