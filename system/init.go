// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system 注册系统内置的签名算法以及执行器
package system

import (
	_ "github.com/dontclickthat/escrow/common/crypto/secp256k1" //register secp256k1
	_ "github.com/dontclickthat/escrow/system/dapp/coins"       //register coins
)
