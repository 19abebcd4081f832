// Command stgquery answers aliasing questions about the storages of a
// register file:
//
//	stgquery --regfile x86.yaml overlap eax ah
//	stgquery --regfile x86.yaml matrix al ah ax eax
//	stgquery --regfile x86.yaml order ecx tmp:0:32 eax
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
