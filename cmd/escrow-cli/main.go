// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	_ "github.com/dontclickthat/escrow/plugin"
	_ "github.com/dontclickthat/escrow/system"
	"github.com/dontclickthat/escrow/util/cli"
)

func main() {
	cli.Run("escrow.toml")
}
