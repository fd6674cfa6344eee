// Copyright 2025 The gc-utils Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spectraldecomp/gc-utils/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
