//go:build !js

// Command gui-examples opens a desktop window running one of the example
// apps: the keyboard event debugger (default) or the widget demo.
//
//	go run ./example                        # keyboard debugger, OpenGL
//	go run ./example demo --backend wgpu    # widget demo, WebGPU
//	go run ./example --config gui.yaml -v   # settings from a file, debug logs
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
